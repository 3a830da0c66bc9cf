package models

// Role is the caller role asserted by the identity provider
type Role string

const (
	RoleDriver    Role = "driver"
	RolePassenger Role = "passenger"
	RoleBoth      Role = "both"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleDriver, RolePassenger, RoleBoth:
		return true
	}
	return false
}

// Identity is the authenticated caller of a request
type Identity struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// CanDrive reports whether the caller may publish and manage rides
func (i Identity) CanDrive() bool {
	return i.Role == RoleDriver || i.Role == RoleBoth
}
