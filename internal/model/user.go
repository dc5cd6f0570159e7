package model

import (
	"time"
)

// swagger:model User
type User struct {
	BaseModel
	FullName     string    `gorm:"size:100;not null" json:"full_name"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Birthday     time.Time `gorm:"type:date;not null" json:"birthday"`
	Standard     string    `gorm:"size:20" json:"standard"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	ProfilePhoto string    `gorm:"size:255" json:"profile_photo"`
}

func (User) TableName() string {
	return "users"
}
