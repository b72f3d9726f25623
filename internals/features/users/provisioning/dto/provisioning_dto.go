// file: internals/features/users/provisioning/dto/provisioning_dto.go
package dto

import (
	"github.com/google/uuid"
)

/* ===================== Requests ===================== */

// BootstrapAdminRequest: sekali pakai saat deploy baru.
// Secret dicek terhadap BOOTSTRAP_SETUP_SECRET di env.
type BootstrapAdminRequest struct {
	SetupSecret string `json:"setup_secret" validate:"required"`
	FullName    string `json:"full_name"    validate:"required,min=3,max=100"`
	Email       string `json:"email"        validate:"required,email"`
	Password    string `json:"password"     validate:"required,min=8"`
}

type CreateStaffRequest struct {
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8"`
	Role     string `json:"role"      validate:"required,oneof=teacher accountant admin super_admin"`
}

// CreateStudentAccountRequest: akun siswa dibuat dari registrasi yang
// sudah lunas. Password dikirim plaintext sekali via email.
type CreateStudentAccountRequest struct {
	RegistrationID uuid.UUID `json:"registration_id" validate:"required"`
	Password       string    `json:"password"        validate:"required,min=8"`
}

type ChangeStaffPasswordRequest struct {
	UserID      uuid.UUID `json:"user_id"      validate:"required"`
	NewPassword string    `json:"new_password" validate:"required,min=6"`
}

/* ===================== Responses ===================== */

type ProvisionedUserResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Reused   bool      `json:"reused"` // true kalau user lama dipakai ulang
}

type StudentAccountResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	RegistrationID uuid.UUID `json:"registration_id"`
	Email          string    `json:"email"`
	Reused         bool      `json:"reused"`
	EmailSent      bool      `json:"email_sent"`
}
