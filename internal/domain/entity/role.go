// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the single role an account holds. The set is closed.
type Role string

const (
	// RoleUser indicates a regular account that browses and rates stores.
	RoleUser Role = "user"
	// RoleOwner indicates an account linked to exactly one store.
	RoleOwner Role = "owner"
	// RoleAdmin indicates an administrator managing users and stores.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole converts a case-insensitive string into a Role.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))

	return role, role.IsValid()
}

// Roles lists every role in display order.
func Roles() []Role {
	return []Role{RoleUser, RoleOwner, RoleAdmin}
}
