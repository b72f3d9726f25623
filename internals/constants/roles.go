package constants

import "fmt"

/* ==========================
   ✅ Role enum (closed set)
========================== */

const (
	RoleStudent    = "student"
	RoleTeacher    = "teacher"
	RoleAccountant = "accountant"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

var AllRoles = []string{
	RoleStudent,
	RoleTeacher,
	RoleAccountant,
	RoleAdmin,
	RoleSuperAdmin,
}

// StaffRoles = role yang boleh dibuat lewat create-staff
var StaffRoles = []string{
	RoleTeacher,
	RoleAccountant,
	RoleAdmin,
	RoleSuperAdmin,
}

var (
	AdminAndAbove      = []string{RoleAdmin, RoleSuperAdmin}
	AccountantAndAbove = []string{RoleAccountant, RoleAdmin, RoleSuperAdmin}
	SuperAdminOnly     = []string{RoleSuperAdmin}
)

// Prioritas role: angka besar = lebih tinggi. Dipakai untuk resolve
// "single highest role" dari user yang punya banyak role row.
var rolePriority = map[string]int{
	RoleSuperAdmin: 50,
	RoleAdmin:      40,
	RoleAccountant: 30,
	RoleTeacher:    20,
	RoleStudent:    10,
}

// effectiveRoles: role turunan yang otomatis dimiliki sebuah role.
// super_admin mewarisi admin + accountant.
var effectiveRoles = map[string][]string{
	RoleSuperAdmin: {RoleSuperAdmin, RoleAdmin, RoleAccountant},
	RoleAdmin:      {RoleAdmin},
	RoleAccountant: {RoleAccountant},
	RoleTeacher:    {RoleTeacher},
	RoleStudent:    {RoleStudent},
}

func IsValidRole(role string) bool {
	_, ok := rolePriority[role]
	return ok
}

func RolePriority(role string) int {
	return rolePriority[role]
}

// HighestRole memilih satu role dengan prioritas tertinggi.
// Role tak dikenal dianggap prioritas 0. Kosong → student (fallback aman).
func HighestRole(roles []string) string {
	best := ""
	bestPrio := -1
	for _, r := range roles {
		if p := rolePriority[r]; p > bestPrio {
			best = r
			bestPrio = p
		}
	}
	if best == "" {
		return RoleStudent
	}
	return best
}

// EffectiveRoles mengembalikan role + semua role warisannya.
func EffectiveRoles(role string) []string {
	if eff, ok := effectiveRoles[role]; ok {
		out := make([]string, len(eff))
		copy(out, eff)
		return out
	}
	return []string{role}
}

// RoleSatisfies: apakah role memenuhi salah satu requirement?
// Pure function — satu-satunya tempat aturan hirarki dicek.
func RoleSatisfies(role string, required ...string) bool {
	for _, eff := range EffectiveRoles(role) {
		for _, req := range required {
			if eff == req {
				return true
			}
		}
	}
	return false
}

/* ==========================
   Pesan error role
========================== */

const (
	ErrOnlyStaffCanAccess      = "❌ Hanya staff (admin/accountant/teacher) yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlySuperAdminCanAccess = "❌ Hanya super admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminCanAccess, feature)
}
