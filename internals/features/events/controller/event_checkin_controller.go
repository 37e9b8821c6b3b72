package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"communityhub_backend/internals/features/events/service"
	helper "communityhub_backend/internals/helpers"
)

type EventCheckInController struct {
	Service *service.CheckInService
}

func NewEventCheckInController(svc *service.CheckInService) *EventCheckInController {
	return &EventCheckInController{Service: svc}
}

// 🟢 POST /api/u/events/:id/check-in?qr_code_secret=...
func (ctrl *EventCheckInController) CheckIn(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	qrCodeSecret := strings.TrimSpace(c.Query("qr_code_secret"))
	if qrCodeSecret == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "QR code secret is required")
	}

	eventTitle, err := ctrl.Service.CheckIn(userID, eventID, qrCodeSecret)
	if err != nil {
		var emailErr *service.ErrEmailDispatch
		switch {
		case errors.Is(err, service.ErrRegistrationNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
		case errors.Is(err, service.ErrInvalidSecret):
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid QR code")
		case errors.Is(err, service.ErrAlreadyCheckedIn):
			return helper.JsonError(c, fiber.StatusBadRequest, "Already checked in")
		case errors.As(err, &emailErr):
			// the check-in itself is committed; do not report success
			return helper.JsonError(c, fiber.StatusInternalServerError, "Check-in recorded, but the confirmation email could not be sent")
		default:
			log.Printf("[ERROR] check-in failed: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process check-in")
		}
	}

	return helper.JsonOK(c, "Check-in successful", fiber.Map{
		"event_title": eventTitle,
	})
}
