package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "academyku_backend/internals/features/users/user/model"
)

func FindUserByEmail(db *gorm.DB, email string) (*userModel.UserModel, error) {
	var usr userModel.UserModel
	if err := db.First(&usr, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &usr, nil
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
	var usr userModel.UserModel
	if err := db.First(&usr, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &usr, nil
}

// GetUserRoles: semua role row milik user (bisa kosong).
func GetUserRoles(db *gorm.DB, userID uuid.UUID) ([]string, error) {
	var roles []string
	err := db.Model(&userModel.UserRoleModel{}).
		Where("user_role_user_id = ?", userID).
		Pluck("user_role_role", &roles).Error
	return roles, err
}

func UpdateUserPassword(db *gorm.DB, userID uuid.UUID, hashed string) error {
	return db.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", hashed).Error
}
