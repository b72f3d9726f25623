package service

import (
	"testing"

	"academyku_backend/internals/constants"
)

func TestCanCreateRole(t *testing.T) {
	tests := []struct {
		name    string
		creator string
		target  string
		want    bool
	}{
		{"super admin creates admin", constants.RoleSuperAdmin, constants.RoleAdmin, true},
		{"super admin creates accountant", constants.RoleSuperAdmin, constants.RoleAccountant, true},
		{"super admin creates teacher", constants.RoleSuperAdmin, constants.RoleTeacher, true},
		{"super admin creates super admin", constants.RoleSuperAdmin, constants.RoleSuperAdmin, true},
		{"super admin does not create student here", constants.RoleSuperAdmin, constants.RoleStudent, false},
		{"admin creates teacher", constants.RoleAdmin, constants.RoleTeacher, true},
		{"admin creates accountant", constants.RoleAdmin, constants.RoleAccountant, true},
		{"admin cannot create admin", constants.RoleAdmin, constants.RoleAdmin, false},
		{"admin cannot create super admin", constants.RoleAdmin, constants.RoleSuperAdmin, false},
		{"accountant cannot create anyone", constants.RoleAccountant, constants.RoleTeacher, false},
		{"teacher cannot create anyone", constants.RoleTeacher, constants.RoleTeacher, false},
		{"student cannot create anyone", constants.RoleStudent, constants.RoleTeacher, false},
		{"unknown creator", "ghost", constants.RoleTeacher, false},
		{"unknown target", constants.RoleSuperAdmin, "ghost", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanCreateRole(tt.creator, tt.target); got != tt.want {
				t.Errorf("CanCreateRole(%q, %q) = %v, want %v", tt.creator, tt.target, got, tt.want)
			}
		})
	}
}
