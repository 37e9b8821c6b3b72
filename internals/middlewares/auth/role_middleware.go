// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"communityhub_backend/internals/constants"
)

// IsAdmin gates the /api/a group. Must run after AuthMiddleware.
func IsAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorAdmin("admin moderation"))
		}
		return c.Next()
	}
}
