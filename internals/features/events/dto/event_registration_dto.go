package dto

import (
	"time"

	"github.com/google/uuid"
)

// 🔹 Registration row as shown to the registered user
type RegistrationResponse struct {
	EventRegistrationID uuid.UUID  `json:"event_registration_id"`
	EventID             uuid.UUID  `json:"event_id"`
	EventTitle          string     `json:"event_title"`
	EventLocation       string     `json:"event_location"`
	EventStartsAt       *time.Time `json:"event_starts_at"`
	IsCheckedIn         bool       `json:"is_checked_in"`
	CheckInTime         *time.Time `json:"check_in_time"`
}

// 🔹 Registrant row as shown to an event admin
type RegistrantResponse struct {
	EventRegistrationID uuid.UUID  `json:"event_registration_id"`
	UserID              uuid.UUID  `json:"user_id"`
	UserName            string     `json:"user_name"`
	Email               string     `json:"email"`
	StudentID           string     `json:"student_id"`
	IsCheckedIn         bool       `json:"is_checked_in"`
	CheckInTime         *time.Time `json:"check_in_time"`
}
