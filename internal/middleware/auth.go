package middleware

import (
	"career_compass_backend/internal/util"
	"career_compass_backend/pkg/logger"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware 要求请求携带有效的 Bearer 令牌
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := util.BearerToken(c)
		if tokenString == "" {
			util.Error(c, http.StatusUnauthorized, "Missing Authorization Header")
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, secret)
		if err != nil {
			logger.Log.Debug("jwt rejected", zap.Error(err))
			util.Error(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		util.SetUserInContext(c, claims)
		c.Next()
	}
}

type SessionChecker interface {
	Check(ctx context.Context, userID uint, token string) error
}

// InactivityMiddleware 对所有请求生效：携带令牌时检查并刷新会话的最后活跃时间。
// 令牌缺失、无法解析或存储出错都视为没有会话，直接放行
func InactivityMiddleware(sessions SessionChecker, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := util.BearerToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := util.ParseJWT(tokenString, secret)
		if err != nil {
			c.Next()
			return
		}

		err = sessions.Check(c.Request.Context(), claims.UserID, tokenString)
		switch {
		case errors.Is(err, util.ErrSessionExpired):
			util.Error(c, http.StatusUnauthorized, util.UserMessage(err))
			c.Abort()
			return
		case err != nil:
			logger.Log.Warn("session check failed",
				zap.Uint("user_id", claims.UserID),
				zap.Error(err),
			)
		}
		c.Next()
	}
}
