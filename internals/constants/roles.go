package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleBursar  = "bursar"
	RoleAuditor = "auditor"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess  = "Only admins may access %s."
	ErrOnlyFinanceCanAccess = "Only admins or bursars may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorFinance(feature string) string {
	return fmt.Sprintf(ErrOnlyFinanceCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleBursar,
		RoleAuditor,
	}

	// Roles allowed to mutate financial records.
	FinanceWriteRoles = []string{
		RoleAdmin,
		RoleBursar,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
