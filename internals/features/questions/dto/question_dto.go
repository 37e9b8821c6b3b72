package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"communityhub_backend/internals/features/questions/model"
)

// 🔹 Moderation request from the admin table
type UpdateQuestionStatusRequest struct {
	QuestionID uint   `json:"question_id" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// 🔹 Question as rendered to clients; tags are exploded from the stored
// comma-delimited column.
type QuestionResponse struct {
	QuestionID uint       `json:"question_id"`
	UserID     uuid.UUID  `json:"user_id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Tags       []string   `json:"tags"`
	Status     string     `json:"status"`
	Views      int        `json:"views"`
	CreatedAt  time.Time  `json:"created_at"`
	ApprovedAt *time.Time `json:"approved_at"`
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func ToQuestionResponse(m *model.QuestionModel) *QuestionResponse {
	return &QuestionResponse{
		QuestionID: m.QuestionID,
		UserID:     m.QuestionUserID,
		Title:      m.QuestionTitle,
		Content:    m.QuestionContent,
		Tags:       splitTags(m.QuestionTags),
		Status:     m.QuestionStatus,
		Views:      m.QuestionViews,
		CreatedAt:  m.QuestionCreatedAt,
		ApprovedAt: m.QuestionApprovedAt,
	}
}

func ToQuestionResponseList(models []model.QuestionModel) []QuestionResponse {
	result := make([]QuestionResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToQuestionResponse(&models[i]))
	}
	return result
}
