package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"communityhub_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain in order:
// recovery → CORS → request logging → global rate limit.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
