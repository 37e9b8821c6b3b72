package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "communityhub_backend/internals/features/events/controller"
	eventRepo "communityhub_backend/internals/features/events/repository"
	eventService "communityhub_backend/internals/features/events/service"
	"communityhub_backend/internals/helpers/mailer"
	middlewares "communityhub_backend/internals/middlewares"
)

func EventRoutes(private fiber.Router, admin fiber.Router, db *gorm.DB) {
	store := eventRepo.NewGormRegistrationStore(db)
	checkInSvc := eventService.NewCheckInService(store, mailer.NewSMTPMailer())

	checkInCtrl := eventController.NewEventCheckInController(checkInSvc)
	registrationCtrl := eventController.NewEventRegistrationController(store)

	events := private.Group("/events")
	events.Post("/:id/check-in", middlewares.CheckInRateLimiter(), checkInCtrl.CheckIn)
	events.Get("/registrations", registrationCtrl.ListMine)
	events.Get("/registrations/:id/qr", registrationCtrl.RegistrationQR)

	admin.Get("/events/:id/registrants", registrationCtrl.ListRegistrants)
}
