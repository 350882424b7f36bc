package constants

import "fmt"

// Role names as stored on the users table.
const (
	RoleResident = "resident"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// Role error message templates
const (
	ErrOnlyStaffCanAccess  = "❌ Only staff or admin may access %s."
	ErrOnlyAdminsCanAccess = "❌ Only admin may access %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleResident,
		RoleStaff,
		RoleAdmin,
	}

	StaffAndAbove = []string{
		RoleStaff,
		RoleAdmin,
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
