// file: internals/features/users/provisioning/service/provisioning_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"academyku_backend/internals/constants"
	authHelper "academyku_backend/internals/features/users/auth/helper"
	userModel "academyku_backend/internals/features/users/user/model"
)

/* =========================================================
   Provisioning service
   Pembuatan akun selalu lewat sini: bootstrap super admin,
   staff oleh admin, dan akun siswa dari registrasi lunas.
========================================================= */

var ErrRoleNotAllowed = errors.New("role tidak boleh dibuat oleh pembuatnya")

// CanCreateRole: aturan hirarki pembuatan akun.
// super_admin boleh membuat semua staff role termasuk super_admin lain;
// admin boleh membuat teacher & accountant; selain itu tidak boleh
// membuat siapa pun. Akun siswa lewat jalur create-student-account.
func CanCreateRole(creatorRole, targetRole string) bool {
	switch creatorRole {
	case constants.RoleSuperAdmin:
		return constants.IsValidRole(targetRole) && targetRole != constants.RoleStudent
	case constants.RoleAdmin:
		return targetRole == constants.RoleTeacher || targetRole == constants.RoleAccountant
	}
	return false
}

// SuperAdminExists cek apakah bootstrap sudah pernah dijalankan.
func SuperAdminExists(db *gorm.DB) (bool, error) {
	var count int64
	err := db.Model(&userModel.UserRoleModel{}).
		Where("user_role_role = ?", constants.RoleSuperAdmin).
		Count(&count).Error
	return count > 0, err
}

// FindOrCreateUser: email yang sudah terdaftar dipakai ulang, bukan error.
// Return (user, reused, error).
func FindOrCreateUser(db *gorm.DB, fullName, email, plainPassword string) (*userModel.UserModel, bool, error) {
	var existing userModel.UserModel
	err := db.First(&existing, "email = ?", email).Error
	if err == nil {
		return &existing, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	hashed, err := authHelper.HashPassword(plainPassword)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}

	user := userModel.UserModel{
		FullName: fullName,
		Email:    email,
		Password: hashed,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, false, nil
}

// AssignRole: upsert (user_id, role). Assign ulang role yang sama = no-op.
func AssignRole(db *gorm.DB, userID uuid.UUID, role string, assignedBy *uuid.UUID) error {
	if !constants.IsValidRole(role) {
		return fmt.Errorf("role %q tidak dikenal", role)
	}
	row := userModel.UserRoleModel{
		UserRoleUserID:     userID,
		UserRoleRole:       role,
		UserRoleAssignedBy: assignedBy,
		UserRoleAssignedAt: time.Now(),
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_role_user_id"}, {Name: "user_role_role"}},
		DoNothing: true,
	}).Create(&row).Error
}
