package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	gamificationModel "communityhub_backend/internals/features/gamification/model"
	questionModel "communityhub_backend/internals/features/questions/model"
	userModel "communityhub_backend/internals/features/users/user/model"
)

// ProfileStore backs the profile aggregate: the user row plus the activity
// counts rendered on the achievements tab.
type ProfileStore interface {
	GetUser(userID uuid.UUID) (*userModel.UserModel, error)
	CertificateCount(userID uuid.UUID) (int64, error)
	QuestionCount(userID uuid.UUID) (int64, error)
	AnswerCount(userID uuid.UUID) (int64, error)
	ActivityCount(userID uuid.UUID) (int64, error)
}

type GormProfileStore struct {
	DB *gorm.DB
}

func NewGormProfileStore(db *gorm.DB) *GormProfileStore {
	return &GormProfileStore{DB: db}
}

func (r *GormProfileStore) GetUser(userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := r.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormProfileStore) CertificateCount(userID uuid.UUID) (int64, error) {
	var n int64
	err := r.DB.Model(&gamificationModel.UserCertificateModel{}).
		Where("user_certificate_user_id = ?", userID).
		Count(&n).Error
	return n, err
}

func (r *GormProfileStore) QuestionCount(userID uuid.UUID) (int64, error) {
	var n int64
	err := r.DB.Model(&questionModel.QuestionModel{}).
		Where("question_user_id = ? AND question_status = ?", userID, questionModel.StatusApproved).
		Count(&n).Error
	return n, err
}

func (r *GormProfileStore) AnswerCount(userID uuid.UUID) (int64, error) {
	var n int64
	err := r.DB.Model(&questionModel.AnswerModel{}).
		Where("answer_user_id = ?", userID).
		Count(&n).Error
	return n, err
}

func (r *GormProfileStore) ActivityCount(userID uuid.UUID) (int64, error) {
	var n int64
	err := r.DB.Model(&gamificationModel.UserActivityLog{}).
		Where("user_activity_log_user_id = ?", userID).
		Count(&n).Error
	return n, err
}
