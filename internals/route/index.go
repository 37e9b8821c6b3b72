// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRepo "communityhub_backend/internals/features/users/auth/repository"
	authMW "communityhub_backend/internals/middlewares/auth"
	routeDetails "communityhub_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	authRepository := authRepo.NewAuthRepository(db)

	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, authRepository)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMW.AuthMiddleware(authRepository),
	)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMW.AuthMiddleware(authRepository),
		authMW.IsAdmin(),
	)

	log.Println("[INFO] Setting up EventRoutes...")
	routeDetails.EventRoutes(private, admin, db)

	log.Println("[INFO] Setting up QuestionRoutes...")
	routeDetails.QuestionRoutes(private, admin, db)

	log.Println("[INFO] Setting up GamificationRoutes...")
	routeDetails.GamificationRoutes(private, db)

	log.Println("[INFO] Setting up ProfileRoutes...")
	routeDetails.ProfileRoutes(private, db)
}
