package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gamificationRepo "communityhub_backend/internals/features/gamification/repository"
	profileController "communityhub_backend/internals/features/users/user_profiles/controller"
	profileRepo "communityhub_backend/internals/features/users/user_profiles/repository"
	profileService "communityhub_backend/internals/features/users/user_profiles/service"
)

func ProfileRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := profileController.NewProfileController(
		profileRepo.NewGormProfileStore(db),
		gamificationRepo.NewGormGamificationStore(db),
		profileService.FiberGitHubFetcher{},
	)

	profile := private.Group("/profile")
	profile.Get("/", ctrl.Profile)
	profile.Get("/github", ctrl.GitHubProfile)
}
