package model

import (
	"time"

	"github.com/google/uuid"
)

type AnswerModel struct {
	AnswerID         uint      `gorm:"column:answer_id;primaryKey;autoIncrement" json:"answer_id"`
	AnswerQuestionID uint      `gorm:"column:answer_question_id;not null;index:idx_answers_question_id" json:"answer_question_id"`
	AnswerUserID     uuid.UUID `gorm:"column:answer_user_id;type:uuid;not null;index:idx_answers_user_id" json:"answer_user_id"`
	AnswerContent    string    `gorm:"column:answer_content;type:text;not null" json:"answer_content"`
	AnswerCreatedAt  time.Time `gorm:"column:answer_created_at;type:timestamptz;autoCreateTime" json:"answer_created_at"`
}

func (AnswerModel) TableName() string {
	return "answers"
}
