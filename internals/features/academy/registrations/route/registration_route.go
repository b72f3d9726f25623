package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academyku_backend/internals/constants"
	registrationController "academyku_backend/internals/features/academy/registrations/controller"
	"academyku_backend/internals/middlewares"
	authMiddleware "academyku_backend/internals/middlewares/auth"
)

// RegistrationPublicRoutes: submit pendaftaran (rate-limited per IP)
func RegistrationPublicRoutes(public fiber.Router, db *gorm.DB) {
	h := registrationController.NewRegistrationController(db)
	public.Post("/registrations", middlewares.RegisterRateLimiter(), h.Create)
}

// RegistrationAdminRoutes: listing & aksi staff keuangan/admin
func RegistrationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := registrationController.NewRegistrationController(db)

	grp := admin.Group("/registrations",
		authMiddleware.OnlyRoles("", constants.AccountantAndAbove...),
	)
	grp.Get("/", h.List)
	grp.Get("/:id", h.GetByID)
	grp.Patch("/:id/status", h.PatchStatus)

	// sweep manual hanya admin ke atas
	admin.Post("/registrations/cleanup-expired",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("cleanup registrasi"), constants.AdminAndAbove...),
		h.CleanupExpired,
	)
}
