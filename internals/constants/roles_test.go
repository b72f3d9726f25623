package constants

import "testing"

func TestHighestRole(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		want  string
	}{
		{name: "empty fallback student", roles: nil, want: RoleStudent},
		{name: "single role", roles: []string{RoleTeacher}, want: RoleTeacher},
		{name: "super admin wins", roles: []string{RoleStudent, RoleSuperAdmin, RoleAccountant}, want: RoleSuperAdmin},
		{name: "admin beats accountant", roles: []string{RoleAccountant, RoleAdmin}, want: RoleAdmin},
		{name: "unknown role ignored", roles: []string{"ghost", RoleTeacher}, want: RoleTeacher},
		{name: "only unknown fallback to it", roles: []string{"ghost"}, want: "ghost"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HighestRole(tt.roles); got != tt.want {
				t.Errorf("HighestRole(%v) = %q, want %q", tt.roles, got, tt.want)
			}
		})
	}
}

func TestRoleSatisfies(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		required []string
		want     bool
	}{
		{name: "admin satisfies admin", role: RoleAdmin, required: []string{RoleAdmin}, want: true},
		{name: "super admin inherits admin", role: RoleSuperAdmin, required: []string{RoleAdmin}, want: true},
		{name: "super admin inherits accountant", role: RoleSuperAdmin, required: []string{RoleAccountant}, want: true},
		{name: "admin does not inherit super admin", role: RoleAdmin, required: []string{RoleSuperAdmin}, want: false},
		{name: "admin does not inherit accountant", role: RoleAdmin, required: []string{RoleAccountant}, want: false},
		{name: "teacher not staff-admin", role: RoleTeacher, required: AdminAndAbove, want: false},
		{name: "accountant in accountant-and-above", role: RoleAccountant, required: AccountantAndAbove, want: true},
		{name: "student satisfies nothing", role: RoleStudent, required: []string{RoleTeacher, RoleAdmin}, want: false},
		{name: "unknown role only itself", role: "ghost", required: []string{"ghost"}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoleSatisfies(tt.role, tt.required...); got != tt.want {
				t.Errorf("RoleSatisfies(%q, %v) = %v, want %v", tt.role, tt.required, got, tt.want)
			}
		})
	}
}

func TestEffectiveRoles(t *testing.T) {
	eff := EffectiveRoles(RoleSuperAdmin)
	if len(eff) != 3 {
		t.Fatalf("super_admin effective roles = %v, want 3 entries", eff)
	}
	// mutasi hasil tidak boleh bocor ke map internal
	eff[0] = "mutated"
	if got := EffectiveRoles(RoleSuperAdmin)[0]; got != RoleSuperAdmin {
		t.Errorf("EffectiveRoles leaked internal slice, got %q", got)
	}
}

func TestIsValidRole(t *testing.T) {
	for _, r := range AllRoles {
		if !IsValidRole(r) {
			t.Errorf("IsValidRole(%q) = false, want true", r)
		}
	}
	if IsValidRole("owner") {
		t.Error(`IsValidRole("owner") = true, want false`)
	}
}
