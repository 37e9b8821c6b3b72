package model

import (
	"time"

	"github.com/google/uuid"
)

// EventRegistrationModel is one-to-one per (user, event). The check-in
// secret is issued at registration time; the check-out secret only exists
// after a successful check-in.
type EventRegistrationModel struct {
	EventRegistrationID              uuid.UUID  `gorm:"column:event_registration_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_registration_id"`
	EventRegistrationEventID         uuid.UUID  `gorm:"column:event_registration_event_id;type:uuid;not null;index:idx_event_registrations_event_id;uniqueIndex:ux_event_registrations_user_event" json:"event_registration_event_id"`
	EventRegistrationUserID          uuid.UUID  `gorm:"column:event_registration_user_id;type:uuid;not null;uniqueIndex:ux_event_registrations_user_event" json:"event_registration_user_id"`
	EventRegistrationQRCodeSecret    string     `gorm:"column:event_registration_qr_code_secret;type:varchar(64);not null;uniqueIndex" json:"-"`
	EventRegistrationQRCodeSecretOut *string    `gorm:"column:event_registration_qr_code_secret_out;type:varchar(64)" json:"-"`
	EventRegistrationIsCheckedIn     bool       `gorm:"column:event_registration_is_checked_in;not null;default:false" json:"event_registration_is_checked_in"`
	EventRegistrationCheckInTime     *time.Time `gorm:"column:event_registration_check_in_time;type:timestamptz" json:"event_registration_check_in_time"`
	EventRegistrationCreatedAt       time.Time  `gorm:"column:event_registration_created_at;type:timestamptz;autoCreateTime" json:"event_registration_created_at"`
}

func (EventRegistrationModel) TableName() string {
	return "event_registrations"
}
