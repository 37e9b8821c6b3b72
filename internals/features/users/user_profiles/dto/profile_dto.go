package dto

import (
	"time"

	"github.com/google/uuid"

	gamificationDTO "communityhub_backend/internals/features/gamification/dto"
)

// 🔹 Everything the profile page needs in one payload
type ProfileResponse struct {
	ID             uuid.UUID `json:"id"`
	UserName       string    `json:"user_name"`
	Email          string    `json:"email"`
	GithubUsername string    `json:"github_username"`
	StudentID      string    `json:"student_id"`
	MemberSince    time.Time `json:"member_since"`

	TotalPoints int64 `json:"total_points"`
	CodeCoins   int64 `json:"code_coins"`

	Badges []gamificationDTO.UserBadgeResponse `json:"badges"`

	CertificateCount int64 `json:"certificate_count"`
	QuestionCount    int64 `json:"question_count"`
	AnswerCount      int64 `json:"answer_count"`
	ActivityCount    int64 `json:"activity_count"`
}
