package service

import (
	"career_compass_backend/internal/model"
	"career_compass_backend/internal/util"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"gorm.io/gorm"
)

type SessionStore interface {
	Create(ctx context.Context, session *model.UserSession) error
	FindByToken(ctx context.Context, userID uint, tokenHash string) (*model.UserSession, error)
	Touch(ctx context.Context, id uint, at time.Time) error
	Delete(ctx context.Context, id uint) error
	DeleteByUser(ctx context.Context, userID uint) (int64, error)
}

// SessionService 跟踪每个登录令牌的最后活跃时间，超过空闲时长即失效
type SessionService struct {
	repo        SessionStore
	idleTimeout time.Duration
	now         func() time.Time
}

func NewSessionService(repo SessionStore, idleTimeout time.Duration) *SessionService {
	return &SessionService{
		repo:        repo,
		idleTimeout: idleTimeout,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Start 为新签发的令牌插入一行会话
func (s *SessionService) Start(ctx context.Context, userID uint, token string) error {
	now := s.now()
	return s.repo.Create(ctx, &model.UserSession{
		UserID:       userID,
		TokenHash:    HashToken(token),
		LastActivity: now,
		CreatedAt:    now,
	})
}

// Check 校验并刷新会话。没有会话记录时放行；超时则删除记录并返回 ErrSessionExpired
func (s *SessionService) Check(ctx context.Context, userID uint, token string) error {
	session, err := s.repo.FindByToken(ctx, userID, HashToken(token))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return util.WrapError(util.ErrStore, "Session lookup failed", err)
	}

	now := s.now()
	if now.Sub(session.LastActivity) > s.idleTimeout {
		if err := s.repo.Delete(ctx, session.ID); err != nil {
			return util.WrapError(util.ErrStore, "Session cleanup failed", err)
		}
		return util.ErrSessionExpired
	}

	if err := s.repo.Touch(ctx, session.ID, now); err != nil {
		return util.WrapError(util.ErrStore, "Session refresh failed", err)
	}
	return nil
}

// EndAll 删除该用户的全部会话
func (s *SessionService) EndAll(ctx context.Context, userID uint) error {
	if _, err := s.repo.DeleteByUser(ctx, userID); err != nil {
		return util.WrapError(util.ErrStore, "Logout failed", err)
	}
	return nil
}
