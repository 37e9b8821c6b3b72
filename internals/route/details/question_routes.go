package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionController "communityhub_backend/internals/features/questions/controller"
	questionRepo "communityhub_backend/internals/features/questions/repository"
)

func QuestionRoutes(private fiber.Router, admin fiber.Router, db *gorm.DB) {
	store := questionRepo.NewGormQuestionStore(db)

	userCtrl := questionController.NewQuestionUserController(store)
	adminCtrl := questionController.NewQuestionAdminController(store)

	questions := private.Group("/questions")
	questions.Get("/all", userCtrl.ListMine)
	questions.Get("/:id", userCtrl.Detail)

	admin.Get("/questions", adminCtrl.ListAll)
	admin.Put("/questions/status", adminCtrl.UpdateStatus)
}
