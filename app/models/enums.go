package models

// Role names form a closed set; anything else is rejected at registration.
const (
	RoleEmployee   = "employee"
	RoleAdmin      = "admin"
	RoleHR         = "hr"
	RoleManager    = "manager"
	RoleSuperadmin = "superadmin"
)

// ValidRoles lists every assignable role.
var ValidRoles = []string{RoleEmployee, RoleAdmin, RoleHR, RoleManager, RoleSuperadmin}

func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Attendance session lifecycle states
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
)
