package repository

import (
	"career_compass_backend/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *model.UserSession) error {
	return r.DB.WithContext(ctx).Create(session).Error
}

// FindByToken 返回该用户对应令牌的会话
func (r *SessionRepository) FindByToken(ctx context.Context, userID uint, tokenHash string) (*model.UserSession, error) {
	var session model.UserSession
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND token_hash = ?", userID, tokenHash).
		First(&session).Error
	return &session, err
}

func (r *SessionRepository) Touch(ctx context.Context, id uint, at time.Time) error {
	return r.DB.WithContext(ctx).Model(&model.UserSession{}).
		Where("id = ?", id).
		Update("last_activity", at).Error
}

func (r *SessionRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&model.UserSession{}, id).Error
}

func (r *SessionRepository) DeleteByUser(ctx context.Context, userID uint) (int64, error) {
	res := r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.UserSession{})
	return res.RowsAffected, res.Error
}

func (r *SessionRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.UserSession{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
