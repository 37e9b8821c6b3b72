package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"communityhub_backend/internals/features/questions/model"
)

// QuestionStore is the persistence surface of the question listing and
// moderation flows.
type QuestionStore interface {
	ListApprovedByUser(userID uuid.UUID) ([]model.QuestionModel, error)
	// ListAll returns every question regardless of status, newest first
	// (id desc). Unpaginated; the admin table paginates client-side.
	ListAll() ([]model.QuestionModel, error)
	GetApproved(questionID uint) (*model.QuestionModel, error)
	IncrementViews(questionID uint) error
	// UpdateStatus writes status and approved_at in one statement and
	// reports affected rows (zero = unknown question id).
	UpdateStatus(questionID uint, status string, approvedAt *time.Time) (int64, error)
}

type GormQuestionStore struct {
	DB *gorm.DB
}

func NewGormQuestionStore(db *gorm.DB) *GormQuestionStore {
	return &GormQuestionStore{DB: db}
}

func (r *GormQuestionStore) ListApprovedByUser(userID uuid.UUID) ([]model.QuestionModel, error) {
	var questions []model.QuestionModel
	err := r.DB.
		Where("question_status = ? AND question_user_id = ?", model.StatusApproved, userID).
		Order("question_id DESC").
		Find(&questions).Error
	return questions, err
}

func (r *GormQuestionStore) ListAll() ([]model.QuestionModel, error) {
	var questions []model.QuestionModel
	err := r.DB.
		Order("question_id DESC").
		Find(&questions).Error
	return questions, err
}

func (r *GormQuestionStore) GetApproved(questionID uint) (*model.QuestionModel, error) {
	var q model.QuestionModel
	err := r.DB.
		Where("question_id = ? AND question_status = ?", questionID, model.StatusApproved).
		Take(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *GormQuestionStore) IncrementViews(questionID uint) error {
	return r.DB.Model(&model.QuestionModel{}).
		Where("question_id = ?", questionID).
		UpdateColumn("question_views", gorm.Expr("question_views + 1")).Error
}

func (r *GormQuestionStore) UpdateStatus(questionID uint, status string, approvedAt *time.Time) (int64, error) {
	res := r.DB.Model(&model.QuestionModel{}).
		Where("question_id = ?", questionID).
		Updates(map[string]interface{}{
			"question_status":      status,
			"question_approved_at": approvedAt,
		})
	return res.RowsAffected, res.Error
}
