package controller

import (
	"career_compass_backend/internal/service"
	"career_compass_backend/internal/util"
	"career_compass_backend/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// RegisterRequest defines model for registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Birthday string `json:"birthday" binding:"required,datetime=2006-01-02" example:"2008-05-14"`
	Standard string `json:"standard" binding:"max=20"`
	Password string `json:"password" binding:"required,max=128"`
}

// LoginRequest defines model for login
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// bindErrorMessage 把校验失败的标签转换成对外的提示，其余情况使用 fallback
func bindErrorMessage(err error, fallback string) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fallback
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "email":
			return "Invalid email address"
		case "datetime":
			return "Birthday must be in YYYY-MM-DD format"
		}
	}
	return fallback
}

// Register godoc
// @Summary 注册新用户
// @Description 使用姓名、邮箱、生日、年级和密码注册
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "用户注册信息"
// @Success 201 {object} util.Response "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "邮箱已被注册"
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, bindErrorMessage(err, "Missing required fields"))
		return
	}

	_, err := c.AuthService.Register(ctx.Request.Context(), service.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Birthday: req.Birthday,
		Standard: req.Standard,
		Password: req.Password,
	})
	if err != nil {
		// 存储错误时附带原始错误信息
		if errors.Is(err, util.ErrStore) {
			logger.Log.Error("register failed", zap.String("email", req.Email), zap.Error(err))
			ctx.JSON(http.StatusBadRequest, util.Response{Msg: "Email already exists or DB error", Error: err.Error()})
			return
		}
		util.HandleError(ctx, err)
		return
	}

	util.Message(ctx, http.StatusCreated, "User registered successfully")
}

// Login godoc
// @Summary 用户登录
// @Description 校验邮箱和密码，返回访问令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录信息"
// @Success 200 {object} service.LoginResult "登录成功"
// @Failure 400 {object} util.Response "缺少邮箱或密码"
// @Failure 401 {object} util.Response "邮箱或密码错误"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, bindErrorMessage(err, "Missing email or password"))
		return
	}

	result, err := c.AuthService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// Logout godoc
// @Summary 退出登录
// @Description 删除当前用户的全部会话
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response "已退出"
// @Failure 401 {object} util.Response "未授权"
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.AuthService.Logout(ctx.Request.Context(), claims.UserID); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Message(ctx, http.StatusOK, "Logged out")
}
