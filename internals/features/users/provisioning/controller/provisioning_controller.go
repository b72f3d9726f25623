// file: internals/features/users/provisioning/controller/provisioning_controller.go
package controller

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academyku_backend/internals/configs"
	"academyku_backend/internals/constants"
	regModel "academyku_backend/internals/features/academy/registrations/model"
	settingsService "academyku_backend/internals/features/settings/service"
	authHelper "academyku_backend/internals/features/users/auth/helper"
	authRepo "academyku_backend/internals/features/users/auth/repository"
	provDTO "academyku_backend/internals/features/users/provisioning/dto"
	provService "academyku_backend/internals/features/users/provisioning/service"
	helper "academyku_backend/internals/helpers"
	"academyku_backend/internals/helpers/mailer"
)

type ProvisioningController struct {
	DB *gorm.DB
}

func NewProvisioningController(db *gorm.DB) *ProvisioningController {
	return &ProvisioningController{DB: db}
}

/* =========================================================
   POST /api/provision/bootstrap-admin  (public, secret-gated)
========================================================= */

// BootstrapAdmin buat super_admin pertama. Jalur publik satu-satunya
// yang bisa membuat akun staff — dikunci setup secret dan hanya jalan
// selama belum ada super_admin.
func (h *ProvisioningController) BootstrapAdmin(c *fiber.Ctx) error {
	if configs.BootstrapSetupSecret == "" {
		log.Println("❌ [PROVISION] BOOTSTRAP_SETUP_SECRET belum diset")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Bootstrap belum dikonfigurasi")
	}

	var req provDTO.BootstrapAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if handled, err := helper.ValidateAndRespond(c, &req); handled {
		return err
	}

	if subtle.ConstantTimeCompare([]byte(req.SetupSecret), []byte(configs.BootstrapSetupSecret)) != 1 {
		return helper.JsonError(c, fiber.StatusForbidden, "Setup secret salah")
	}

	db := h.DB.WithContext(c.UserContext())

	exists, err := provService.SuperAdminExists(db)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa super admin")
	}
	if exists {
		return helper.JsonError(c, fiber.StatusConflict, "Super admin sudah ada")
	}

	user, reused, err := provService.FindOrCreateUser(db, req.FullName, req.Email, req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}
	if err := provService.AssignRole(db, user.ID, constants.RoleSuperAdmin, nil); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memberikan role")
	}

	log.Println("✅ [PROVISION] super admin dibuat:", user.Email)
	return helper.JsonCreated(c, "Super admin berhasil dibuat", provDTO.ProvisionedUserResponse{
		UserID:   user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     constants.RoleSuperAdmin,
		Reused:   reused,
	})
}

/* =========================================================
   POST /api/a/provision/create-staff  (admin ke atas)
========================================================= */

func (h *ProvisioningController) CreateStaff(c *fiber.Ctx) error {
	var req provDTO.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if handled, err := helper.ValidateAndRespond(c, &req); handled {
		return err
	}

	creatorRole, _ := helper.GetUserRoleFromLocals(c)
	if !provService.CanCreateRole(creatorRole, req.Role) {
		return helper.JsonError(c, fiber.StatusForbidden,
			fmt.Sprintf("Role %s tidak boleh membuat akun %s", creatorRole, req.Role))
	}

	creatorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	db := h.DB.WithContext(c.UserContext())

	user, reused, err := provService.FindOrCreateUser(db, req.FullName, req.Email, req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}
	if err := provService.AssignRole(db, user.ID, req.Role, &creatorID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memberikan role")
	}

	return helper.JsonCreated(c, "Akun staff berhasil dibuat", provDTO.ProvisionedUserResponse{
		UserID:   user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     req.Role,
		Reused:   reused,
	})
}

/* =========================================================
   POST /api/a/provision/create-student-account  (accountant ke atas)
========================================================= */

// CreateStudentAccount buat akun siswa dari registrasi yang sudah lunas
// (atau office_pending yang disetujui manual), lalu link balik ke
// registrasi dan kirim kredensial via email.
func (h *ProvisioningController) CreateStudentAccount(c *fiber.Ctx) error {
	var req provDTO.CreateStudentAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if handled, err := helper.ValidateAndRespond(c, &req); handled {
		return err
	}

	creatorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak valid")
	}

	db := h.DB.WithContext(c.UserContext())

	var reg regModel.RegistrationModel
	if err := db.First(&reg, "registration_id = ?", req.RegistrationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registrasi tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil registrasi")
	}

	if reg.HasAccount() {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Akun untuk registrasi ini sudah dibuat (%s)", reg.RegistrationEmail))
	}
	if !reg.IsPaid() && reg.RegistrationPaymentStatus != regModel.PaymentStatusOfficePending {
		return helper.JsonError(c, fiber.StatusBadRequest, "Registrasi belum lunas")
	}

	user, reused, err := provService.FindOrCreateUser(db, reg.RegistrationFullName, reg.RegistrationEmail, req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}
	if err := provService.AssignRole(db, user.ID, constants.RoleStudent, &creatorID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memberikan role")
	}

	if err := db.Model(&regModel.RegistrationModel{}).
		Where("registration_id = ?", reg.RegistrationID).
		Updates(map[string]any{
			"registration_account_created": true,
			"registration_user_id":         user.ID,
			"registration_status":          regModel.RegistrationStatusEnrolled,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menautkan akun ke registrasi")
	}

	emailSent := false
	if !reused {
		academyName := settingsService.Cache.GetString(settingsService.KeyAcademyName, configs.AcademyName)
		mailer.Send(mailer.Message{
			ToEmail: user.Email,
			ToName:  user.FullName,
			Subject: fmt.Sprintf("Akun %s kamu sudah aktif", academyName),
			Text: fmt.Sprintf(
				"Halo %s,\n\nAkun belajar kamu sudah aktif.\nEmail: %s\nPassword: %s\n\nSegera login dan ganti password kamu.\n\n%s",
				user.FullName, user.Email, req.Password, academyName),
		})
		emailSent = true
	}

	return helper.JsonCreated(c, "Akun siswa berhasil dibuat", provDTO.StudentAccountResponse{
		UserID:         user.ID,
		RegistrationID: reg.RegistrationID,
		Email:          user.Email,
		Reused:         reused,
		EmailSent:      emailSent,
	})
}

/* =========================================================
   POST /api/a/provision/change-staff-password  (super admin)
========================================================= */

func (h *ProvisioningController) ChangeStaffPassword(c *fiber.Ctx) error {
	var req provDTO.ChangeStaffPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if handled, err := helper.ValidateAndRespond(c, &req); handled {
		return err
	}

	db := h.DB.WithContext(c.UserContext())

	user, err := authRepo.FindUserByID(db, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	hashed, err := authHelper.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := authRepo.UpdateUserPassword(db, user.ID, hashed); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengganti password")
	}

	log.Println("✅ [PROVISION] password diganti untuk:", user.Email)
	return helper.JsonUpdated(c, "Password berhasil diganti", fiber.Map{
		"user_id": user.ID,
		"email":   user.Email,
	})
}
