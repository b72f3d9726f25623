package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "academyku_backend/internals/features/users/auth/controller"
	"academyku_backend/internals/middlewares"
	authMiddleware "academyku_backend/internals/middlewares/auth"
)

// AuthRoutes: login publik (rate-limited) + /me di belakang auth middleware.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	h := authController.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), h.Login)
	grp.Get("/me", authMiddleware.AuthMiddleware(db), h.Me)
}
