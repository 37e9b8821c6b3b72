package controller

import (
	"github.com/gofiber/fiber/v2"

	"communityhub_backend/internals/features/users/auth/repository"
	"communityhub_backend/internals/features/users/auth/service"
)

type AuthController struct {
	Repo repository.TokenBlacklister
}

func NewAuthController(repo repository.TokenBlacklister) *AuthController {
	return &AuthController{Repo: repo}
}

// 🟡 POST /api/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.Repo, c)
}
