package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	UserID    uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserName  string    `json:"user_name" gorm:"column:user_name;type:varchar(100);not null"`
	UserEmail string    `json:"user_email" gorm:"column:user_email;type:varchar(255);not null;unique"`
	UserPhone *string   `json:"user_phone" gorm:"column:user_phone;type:varchar(30)"`

	// Role mengikuti enum lama: MEMBER_FREE, MEMBER_PREMIUM, MENTOR, AFFILIATE, ADMIN
	UserRole     string `json:"user_role" gorm:"column:user_role;type:varchar(30);not null;default:'MEMBER_FREE'"`
	UserIsActive bool   `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
