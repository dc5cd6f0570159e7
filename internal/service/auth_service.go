package service

import (
	"career_compass_backend/internal/config"
	"career_compass_backend/internal/model"
	"career_compass_backend/internal/repository"
	"career_compass_backend/internal/util"
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Sessions *SessionService
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, sessions *SessionService, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Sessions: sessions,
		Cfg:      cfg,
	}
}

type RegisterInput struct {
	FullName string
	Email    string
	Birthday string
	Standard string
	Password string
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	UserID      uint   `json:"user_id"`
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Standard = strings.TrimSpace(in.Standard)

	// 字段格式由请求绑定校验，这里只负责转换
	birthday, err := time.Parse(util.DateFormat, strings.TrimSpace(in.Birthday))
	if err != nil {
		return nil, util.Validation("Birthday must be in YYYY-MM-DD format")
	}

	_, err = s.UserRepo.FindByEmail(ctx, in.Email)
	if err == nil {
		return nil, util.NewError(util.ErrConflict, "Email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.WrapError(util.ErrStore, "DB error", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FullName:     in.FullName,
		Email:        in.Email,
		Birthday:     birthday,
		Standard:     in.Standard,
		PasswordHash: string(hashedPassword),
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		// 并发注册时由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.NewError(util.ErrConflict, "Email already exists")
		}
		return nil, util.WrapError(util.ErrStore, "DB error", err)
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NewError(util.ErrAuth, "Invalid email or password")
		}
		return nil, util.WrapError(util.ErrStore, "DB error", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, util.NewError(util.ErrAuth, "Invalid email or password")
	}

	token, err := util.GenerateJWT(user.ID, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	if err := s.Sessions.Start(ctx, user.ID, token); err != nil {
		return nil, util.WrapError(util.ErrStore, "Could not start session", err)
	}

	return &LoginResult{AccessToken: token, UserID: user.ID}, nil
}

func (s *AuthService) Logout(ctx context.Context, userID uint) error {
	return s.Sessions.EndAll(ctx, userID)
}
