package domain

// Role identifies which kind of account a credential belongs to.
type Role string

const (
	RoleNone    Role = ""
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// ParseRole maps a stored role tag to a Role. Anything unrecognised is RoleNone.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleAdmin:
		return RoleAdmin
	case RoleStudent:
		return RoleStudent
	default:
		return RoleNone
	}
}

// Valid reports whether r names a real role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// LoginPath returns the entry point for the role.
func (r Role) LoginPath() string {
	if r == RoleStudent {
		return PathStudentLogin
	}
	return PathAdminLogin
}

// DashboardPath returns the landing page for the role.
func (r Role) DashboardPath() string {
	if r == RoleStudent {
		return PathStudentDashboard
	}
	return PathAdminDashboard
}
