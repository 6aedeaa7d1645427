package constants

import "fmt"

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess    = "Only admins can access %s."
	ErrOnlyEmployeesCanAccess = "Only employees or admins can access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorEmployee(feature string) string {
	return fmt.Sprintf(ErrOnlyEmployeesCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles         = []string{RoleEmployee, RoleAdmin}
	AdminOnly        = []string{RoleAdmin}
	AdminAndEmployee = []string{RoleAdmin, RoleEmployee}
)
