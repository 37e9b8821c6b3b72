package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"communityhub_backend/internals/features/events/dto"
	"communityhub_backend/internals/features/events/model"
)

// RegistrationWithEvent is the lookup row for a check-in attempt:
// the registration joined with its event title.
type RegistrationWithEvent struct {
	Registration model.EventRegistrationModel
	EventTitle   string
}

// UserContact is the slice of the user row the confirmation email needs.
type UserContact struct {
	UserName string
	Email    string
}

// RegistrationStore is the persistence surface of the check-in flow.
// Controllers and services depend on this interface; tests swap in an
// in-memory fake.
type RegistrationStore interface {
	FindBySecret(secret string, eventID uuid.UUID) (*RegistrationWithEvent, error)
	// MarkCheckedIn flips the flag with one conditional UPDATE scoped on
	// is_checked_in = false and reports affected rows; zero means somebody
	// else won the race (or the row was already checked in).
	MarkCheckedIn(secret string, eventID uuid.UUID, checkOutSecret string, at time.Time) (int64, error)
	GetUserContact(userID uuid.UUID) (*UserContact, error)

	ListByUser(userID uuid.UUID) ([]dto.RegistrationResponse, error)
	FindByIDForUser(registrationID, userID uuid.UUID) (*model.EventRegistrationModel, error)
	ListByEvent(eventID uuid.UUID, offset, limit int) ([]dto.RegistrantResponse, int64, error)
}

type GormRegistrationStore struct {
	DB *gorm.DB
}

func NewGormRegistrationStore(db *gorm.DB) *GormRegistrationStore {
	return &GormRegistrationStore{DB: db}
}

func (r *GormRegistrationStore) FindBySecret(secret string, eventID uuid.UUID) (*RegistrationWithEvent, error) {
	var row struct {
		model.EventRegistrationModel
		EventTitle string
	}
	err := r.DB.Table("event_registrations").
		Select("event_registrations.*, events.event_title").
		Joins("JOIN events ON events.event_id = event_registrations.event_registration_event_id").
		Where("event_registrations.event_registration_qr_code_secret = ? AND event_registrations.event_registration_event_id = ?", secret, eventID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &RegistrationWithEvent{Registration: row.EventRegistrationModel, EventTitle: row.EventTitle}, nil
}

func (r *GormRegistrationStore) MarkCheckedIn(secret string, eventID uuid.UUID, checkOutSecret string, at time.Time) (int64, error) {
	res := r.DB.Model(&model.EventRegistrationModel{}).
		Where("event_registration_qr_code_secret = ? AND event_registration_event_id = ? AND event_registration_is_checked_in = false", secret, eventID).
		Updates(map[string]interface{}{
			"event_registration_is_checked_in":      true,
			"event_registration_check_in_time":      at,
			"event_registration_qr_code_secret_out": checkOutSecret,
		})
	return res.RowsAffected, res.Error
}

func (r *GormRegistrationStore) GetUserContact(userID uuid.UUID) (*UserContact, error) {
	var contact UserContact
	err := r.DB.Table("users").
		Select("user_name, email").
		Where("id = ?", userID).
		Take(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *GormRegistrationStore) ListByUser(userID uuid.UUID) ([]dto.RegistrationResponse, error) {
	var rows []dto.RegistrationResponse
	err := r.DB.Table("event_registrations").
		Select(`event_registrations.event_registration_id,
			events.event_id, events.event_title, events.event_location, events.event_starts_at,
			event_registrations.event_registration_is_checked_in AS is_checked_in,
			event_registrations.event_registration_check_in_time AS check_in_time`).
		Joins("JOIN events ON events.event_id = event_registrations.event_registration_event_id").
		Where("event_registrations.event_registration_user_id = ?", userID).
		Order("events.event_starts_at DESC NULLS LAST").
		Scan(&rows).Error
	return rows, err
}

func (r *GormRegistrationStore) FindByIDForUser(registrationID, userID uuid.UUID) (*model.EventRegistrationModel, error) {
	var reg model.EventRegistrationModel
	err := r.DB.
		Where("event_registration_id = ? AND event_registration_user_id = ?", registrationID, userID).
		Take(&reg).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *GormRegistrationStore) ListByEvent(eventID uuid.UUID, offset, limit int) ([]dto.RegistrantResponse, int64, error) {
	var total int64
	if err := r.DB.Model(&model.EventRegistrationModel{}).
		Where("event_registration_event_id = ?", eventID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []dto.RegistrantResponse
	err := r.DB.Table("event_registrations").
		Select(`event_registrations.event_registration_id,
			users.id AS user_id, users.user_name, users.email, users.student_id,
			event_registrations.event_registration_is_checked_in AS is_checked_in,
			event_registrations.event_registration_check_in_time AS check_in_time`).
		Joins("JOIN users ON users.id = event_registrations.event_registration_user_id").
		Where("event_registrations.event_registration_event_id = ?", eventID).
		Order("users.user_name ASC").
		Offset(offset).Limit(limit).
		Scan(&rows).Error
	return rows, total, err
}
