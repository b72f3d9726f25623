// file: internals/features/users/provisioning/route/provisioning_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academyku_backend/internals/constants"
	provController "academyku_backend/internals/features/users/provisioning/controller"
	authMiddleware "academyku_backend/internals/middlewares/auth"
)

// ProvisioningPublicRoutes: hanya bootstrap (secret-gated, bukan JWT).
func ProvisioningPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := provController.NewProvisioningController(db)
	api.Post("/provision/bootstrap-admin", ctrl.BootstrapAdmin)
}

// ProvisioningAdminRoutes: dipasang di group yang sudah lewat AuthMiddleware.
func ProvisioningAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := provController.NewProvisioningController(db)

	prov := admin.Group("/provision")
	prov.Post("/create-staff",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("pembuatan akun staff"), constants.AdminAndAbove...),
		ctrl.CreateStaff)
	prov.Post("/create-student-account",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("pembuatan akun siswa"), constants.AccountantAndAbove...),
		ctrl.CreateStudentAccount)
	prov.Post("/change-staff-password",
		authMiddleware.OnlyRoles(constants.RoleErrorSuperAdmin("penggantian password staff"), constants.SuperAdminOnly...),
		ctrl.ChangeStaffPassword)
}
