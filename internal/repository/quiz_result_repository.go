package repository

import (
	"career_compass_backend/internal/model"
	"context"

	"gorm.io/gorm"
)

type QuizResultRepository struct {
	DB *gorm.DB
}

func NewQuizResultRepository(db *gorm.DB) *QuizResultRepository {
	return &QuizResultRepository{DB: db}
}

func (r *QuizResultRepository) Create(ctx context.Context, result *model.QuizResult) error {
	return r.DB.WithContext(ctx).Create(result).Error
}

// ListByUser 按时间倒序返回用户的测验结果，quizType 为空时不过滤
func (r *QuizResultRepository) ListByUser(ctx context.Context, userID uint, quizType model.QuizType) ([]model.QuizResult, error) {
	var results []model.QuizResult
	query := r.DB.WithContext(ctx).Where("user_id = ?", userID)
	if quizType != "" {
		query = query.Where("quiz_type = ?", quizType)
	}
	err := query.Order("created_at DESC").Order("id DESC").Find(&results).Error
	return results, err
}
