package constants

import "fmt"

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Role error message template
const (
	ErrOnlyAdminsCanAccess = "❌ Only admins may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}
