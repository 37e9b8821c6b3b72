package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName       string    `gorm:"column:user_name;type:varchar(50);not null;unique" json:"user_name"`
	Email          string    `gorm:"column:email;type:varchar(255);not null;unique" json:"email"`
	GithubUsername string    `gorm:"column:github_username;type:varchar(100)" json:"github_username"`
	StudentID      string    `gorm:"column:student_id;type:varchar(50)" json:"student_id"`
	Role           string    `gorm:"column:role;type:varchar(20);default:member" json:"role"`
	IsActive       bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
