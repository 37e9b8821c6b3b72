package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"communityhub_backend/internals/features/events/repository"
	"communityhub_backend/internals/helpers/mailer"
)

var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrInvalidSecret        = errors.New("invalid QR code")
	ErrAlreadyCheckedIn     = errors.New("already checked in")
)

// ErrEmailDispatch wraps a mail failure that happened after the check-in was
// already committed. The check-in stands; callers must not report success.
type ErrEmailDispatch struct {
	Cause error
}

func (e *ErrEmailDispatch) Error() string {
	return fmt.Sprintf("check-in recorded, confirmation email failed: %v", e.Cause)
}

type CheckInService struct {
	Store  repository.RegistrationStore
	Mailer mailer.Mailer
	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewCheckInService(store repository.RegistrationStore, m mailer.Mailer) *CheckInService {
	return &CheckInService{Store: store, Mailer: m, Now: time.Now}
}

// CheckIn validates the presented secret against the registration for the
// event and flips it to checked-in exactly once. The state change is a single
// conditional UPDATE, so two concurrent requests with the same secret cannot
// both succeed. Returns the event title for the response message.
func (s *CheckInService) CheckIn(userID, eventID uuid.UUID, qrCodeSecret string) (string, error) {
	found, err := s.Store.FindBySecret(qrCodeSecret, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrRegistrationNotFound
		}
		return "", err
	}

	// Defensive re-check; the lookup is keyed on the secret already.
	if found.Registration.EventRegistrationQRCodeSecret != qrCodeSecret {
		return "", ErrInvalidSecret
	}
	if found.Registration.EventRegistrationIsCheckedIn {
		return "", ErrAlreadyCheckedIn
	}

	checkOutSecret := uuid.NewString()
	affected, err := s.Store.MarkCheckedIn(qrCodeSecret, eventID, checkOutSecret, s.Now())
	if err != nil {
		return "", err
	}
	if affected == 0 {
		// lost the race against a concurrent request with the same secret
		return "", ErrAlreadyCheckedIn
	}

	contact, err := s.Store.GetUserContact(userID)
	if err != nil {
		log.Printf("[ERROR] check-in recorded but user contact lookup failed: %v", err)
		return found.EventTitle, &ErrEmailDispatch{Cause: err}
	}

	if err := s.Mailer.SendCheckInConfirmation(contact.Email, contact.UserName, found.EventTitle, checkOutSecret); err != nil {
		log.Printf("[ERROR] check-in recorded but email dispatch failed: %v", err)
		return found.EventTitle, &ErrEmailDispatch{Cause: err}
	}

	return found.EventTitle, nil
}
