// file: internals/features/users/user/model/user_role_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserRoleModel: satu row per role yang dipegang user.
// User boleh punya banyak role; role efektif di token = prioritas tertinggi
// (lihat internals/constants.HighestRole).
type UserRoleModel struct {
	UserRoleID         uuid.UUID  `gorm:"column:user_role_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_role_id"`
	UserRoleUserID     uuid.UUID  `gorm:"column:user_role_user_id;type:uuid;not null;uniqueIndex:uq_user_roles_user_role" json:"user_role_user_id"`
	UserRoleRole       string     `gorm:"column:user_role_role;type:varchar(20);not null;uniqueIndex:uq_user_roles_user_role" json:"user_role_role"`
	UserRoleAssignedBy *uuid.UUID `gorm:"column:user_role_assigned_by;type:uuid"                             json:"user_role_assigned_by,omitempty"`
	UserRoleAssignedAt time.Time  `gorm:"column:user_role_assigned_at;not null;default:now()"                json:"user_role_assigned_at"`
}

func (UserRoleModel) TableName() string { return "user_roles" }
