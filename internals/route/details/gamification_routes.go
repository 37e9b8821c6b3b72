package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gamificationController "communityhub_backend/internals/features/gamification/controller"
	gamificationRepo "communityhub_backend/internals/features/gamification/repository"
)

func GamificationRoutes(private fiber.Router, db *gorm.DB) {
	store := gamificationRepo.NewGormGamificationStore(db)
	ctrl := gamificationController.NewGamificationController(store)

	g := private.Group("/gamification")
	g.Get("/summary", ctrl.Summary)
	g.Get("/leaderboard", ctrl.Leaderboard)
	g.Get("/badges", ctrl.Badges)
}
