package model

import "time"

// UserSession 登录会话，每次登录插入一行，按令牌哈希定位
type UserSession struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	TokenHash    string    `gorm:"size:64;index;not null" json:"-"`
	LastActivity time.Time `gorm:"not null" json:"last_activity"`
	CreatedAt    time.Time `json:"created_at"`
}

func (UserSession) TableName() string {
	return "user_sessions"
}
