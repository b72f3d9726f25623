// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	programRoute "academyku_backend/internals/features/academy/programs/route"
	registrationRoute "academyku_backend/internals/features/academy/registrations/route"
	paymentRoute "academyku_backend/internals/features/finance/payments/route"
	settingRoute "academyku_backend/internals/features/settings/route"
	authRoute "academyku_backend/internals/features/users/auth/route"
	provisioningRoute "academyku_backend/internals/features/users/provisioning/route"
	authMiddleware "academyku_backend/internals/middlewares/auth"
)

/* =========================================================
   Route index
   /api/public/* : tanpa login (katalog, pendaftaran, payment, settings)
   /api/auth/*   : login & profil
   /api/*        : bootstrap provisioning (secret-gated)
   /api/a/*      : staff area, wajib JWT + role check per-route
========================================================= */

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ---------- Public ----------
	public := api.Group("/public")
	programRoute.ProgramPublicRoutes(public, db)
	registrationRoute.RegistrationPublicRoutes(public, db)
	settingRoute.SettingPublicRoutes(public, db)
	paymentRoute.PaymentPublicRoutes(public, db)

	// ---------- Auth ----------
	authRoute.AuthRoutes(app, db)

	// ---------- Bootstrap (sekali pakai) ----------
	provisioningRoute.ProvisioningPublicRoutes(api, db)

	// ---------- Staff area ----------
	admin := api.Group("/a", authMiddleware.AuthMiddleware(db))
	programRoute.ProgramAdminRoutes(admin, db)
	registrationRoute.RegistrationAdminRoutes(admin, db)
	settingRoute.SettingAdminRoutes(admin, db)
	provisioningRoute.ProvisioningAdminRoutes(admin, db)
}
