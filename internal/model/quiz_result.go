package model

import (
	"time"

	"gorm.io/datatypes"
)

// QuizType 测验变体标签
type QuizType string

const (
	QuizGeneral        QuizType = "10th"
	QuizScienceMaths   QuizType = "12th_science_maths"
	QuizScienceBiology QuizType = "12th_science_biology"
	QuizArts           QuizType = "12th_arts"
	QuizCommerce       QuizType = "12th_commerce"
)

// AlternateSuggestion 备选职业及理由
type AlternateSuggestion struct {
	Career string `json:"career"`
	Reason string `json:"reason"`
}

// QuizResult 存储用户的测验评估结果，只追加不修改
type QuizResult struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint           `gorm:"index;not null" json:"user_id"`
	Answers    datatypes.JSON `json:"answers"`
	Suggestion string         `gorm:"type:text" json:"suggestion"`
	Reason     string         `gorm:"type:text" json:"reason"`
	// 序列化后的 []AlternateSuggestion，读取时容错解析
	AlternateSuggestions string    `gorm:"type:text" json:"-"`
	QuizType             QuizType  `gorm:"size:32;index;not null" json:"quiz_type"`
	CreatedAt            time.Time `gorm:"index" json:"created_at"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
