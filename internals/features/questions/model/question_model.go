package model

import (
	"time"

	"github.com/google/uuid"
)

// Moderation statuses of a submitted question.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type QuestionModel struct {
	QuestionID         uint       `gorm:"column:question_id;primaryKey;autoIncrement" json:"question_id"`
	QuestionUserID     uuid.UUID  `gorm:"column:question_user_id;type:uuid;not null;index:idx_questions_user_id" json:"question_user_id"`
	QuestionTitle      string     `gorm:"column:question_title;type:varchar(255);not null" json:"question_title"`
	QuestionContent    string     `gorm:"column:question_content;type:text;not null" json:"question_content"`
	QuestionTags       string     `gorm:"column:question_tags;type:varchar(255)" json:"question_tags"` // comma-delimited
	QuestionStatus     string     `gorm:"column:question_status;type:varchar(20);not null;default:pending" json:"question_status"`
	QuestionViews      int        `gorm:"column:question_views;not null;default:0" json:"question_views"`
	QuestionCreatedAt  time.Time  `gorm:"column:question_created_at;type:timestamptz;autoCreateTime" json:"question_created_at"`
	QuestionApprovedAt *time.Time `gorm:"column:question_approved_at;type:timestamptz" json:"question_approved_at"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

// ValidStatus guards the moderation enum.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}
