package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academyku_backend/internals/constants"
	settingController "academyku_backend/internals/features/settings/controller"
	authMiddleware "academyku_backend/internals/middlewares/auth"
)

func SettingPublicRoutes(public fiber.Router, db *gorm.DB) {
	h := settingController.NewSettingController(db)
	public.Get("/settings", h.GetPublicSettings)
}

func SettingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := settingController.NewSettingController(db)
	grp := admin.Group("/settings",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("kelola settings"), constants.AdminAndAbove...),
	)
	grp.Get("/", h.List)
	grp.Put("/", h.Upsert)
	grp.Delete("/:key", h.Delete)
}
