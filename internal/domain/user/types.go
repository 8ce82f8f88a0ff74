package user

import "errors"

var ErrInvalidRole = errors.New("invalid user role")

// Role doubles as the federation typename for account entities: a user is
// exposed to other services as either a Guest or a Host, never as a bare User.
type Role string

const (
	RoleGuest Role = "Guest"
	RoleHost  Role = "Host"
)

func NewRole(value string) (Role, error) {
	role := Role(value)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleHost:
		return true
	default:
		return false
	}
}
