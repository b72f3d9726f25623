package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academyku_backend/internals/constants"
	programController "academyku_backend/internals/features/academy/programs/controller"
	authMiddleware "academyku_backend/internals/middlewares/auth"
)

// ProgramPublicRoutes: katalog program untuk halaman pendaftaran
func ProgramPublicRoutes(public fiber.Router, db *gorm.DB) {
	h := programController.NewProgramController(db)
	public.Get("/programs", h.ListPublic)
	public.Get("/programs/:id", h.GetByID)
}

// ProgramAdminRoutes: kelola katalog (admin ke atas)
func ProgramAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := programController.NewProgramController(db)
	grp := admin.Group("/programs",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("kelola program"), constants.AdminAndAbove...),
	)
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Patch)
}
