package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"communityhub_backend/internals/features/events/repository"
	helper "communityhub_backend/internals/helpers"
)

type EventRegistrationController struct {
	Store repository.RegistrationStore
}

func NewEventRegistrationController(store repository.RegistrationStore) *EventRegistrationController {
	return &EventRegistrationController{Store: store}
}

// 🟢 GET /api/u/events/registrations
// All registrations of the calling user, with event info joined in.
func (ctrl *EventRegistrationController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	rows, err := ctrl.Store.ListByUser(userID)
	if err != nil {
		log.Printf("[ERROR] failed to list registrations: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registrations")
	}
	return helper.JsonOK(c, "", rows)
}

// 🟢 GET /api/u/events/registrations/:id/qr
// PNG of the caller's active secret: the check-out token once checked in,
// otherwise the check-in secret.
func (ctrl *EventRegistrationController) RegistrationQR(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	registrationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	reg, err := ctrl.Store.FindByIDForUser(registrationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
		}
		log.Printf("[ERROR] registration lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registration")
	}

	secret := reg.EventRegistrationQRCodeSecret
	if reg.EventRegistrationIsCheckedIn && reg.EventRegistrationQRCodeSecretOut != nil {
		secret = *reg.EventRegistrationQRCodeSecretOut
	}

	png, err := qrcode.Encode(secret, qrcode.Medium, 250)
	if err != nil {
		log.Printf("[ERROR] qr encode failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to render QR code")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// 🟢 GET /api/a/events/:id/registrants?page=&per_page=
// Admin view of who registered for an event, paginated.
func (ctrl *EventRegistrationController) ListRegistrants(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	paging := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctrl.Store.ListByEvent(eventID, paging.Offset, paging.Limit)
	if err != nil {
		log.Printf("[ERROR] failed to list registrants: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch registrants")
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(paging, total, len(rows)))
}
