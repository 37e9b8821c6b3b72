package details

import (
	"github.com/gofiber/fiber/v2"

	authController "communityhub_backend/internals/features/users/auth/controller"
	authRepo "communityhub_backend/internals/features/users/auth/repository"
)

// AuthRoutes: logout lives outside the authenticated groups so it stays
// idempotent even with an expired or missing token.
func AuthRoutes(app *fiber.App, repo authRepo.TokenBlacklister) {
	ctrl := authController.NewAuthController(repo)

	api := app.Group("/api")
	api.Post("/logout", ctrl.Logout)
}
