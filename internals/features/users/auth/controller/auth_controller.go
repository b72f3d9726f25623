// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academyku_backend/internals/constants"
	authHelper "academyku_backend/internals/features/users/auth/helper"
	authRepo "academyku_backend/internals/features/users/auth/repository"
	authSvc "academyku_backend/internals/features/users/auth/service"
	helper "academyku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if handled, err := helper.ValidateAndRespond(c, &req); handled {
		return err
	}

	usr, err := authRepo.FindUserByEmail(h.DB.WithContext(c.UserContext()), req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if !usr.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := authHelper.CheckPasswordHash(usr.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	roles, err := authRepo.GetUserRoles(h.DB, usr.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	role := constants.HighestRole(roles)

	token, err := authSvc.CreateAccessToken(usr.ID, role)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": token,
		"user": fiber.Map{
			"id":        usr.ID,
			"full_name": usr.FullName,
			"email":     usr.Email,
			"role":      role,
			"roles":     roles,
		},
	})
}

// GET /api/auth/me — resolve bearer token → profil + effective roles
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	usr, err := authRepo.FindUserByID(h.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	roles, err := authRepo.GetUserRoles(h.DB, usr.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	role := constants.HighestRole(roles)

	return helper.JsonOK(c, "ok", fiber.Map{
		"id":              usr.ID,
		"full_name":       usr.FullName,
		"email":           usr.Email,
		"role":            role,
		"roles":           roles,
		"effective_roles": constants.EffectiveRoles(role),
	})
}
