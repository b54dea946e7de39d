// Package domain holds the hotel entities and their closed status types.
// Statuses stay typed here; they are flattened to strings only at the
// persistence codec boundary.
package domain

import "fmt"

// Role identifies what a user is allowed to do.
type Role string

const (
	RoleGuest         Role = "Guest"
	RoleKitchenStaff  Role = "KitchenStaff"
	RoleCleaningStaff Role = "CleaningStaff"
	RoleManager       Role = "Manager"
)

// ParseRole converts a stored string back into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleGuest, RoleKitchenStaff, RoleCleaningStaff, RoleManager:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// IsEmployee reports whether the role belongs to hotel staff.
func (r Role) IsEmployee() bool {
	return r == RoleKitchenStaff || r == RoleCleaningStaff || r == RoleManager
}

func (r Role) String() string { return string(r) }

// User is a guest or employee account. Employees additionally appear in the
// employee roster partition; see the persistence layer.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string // bcrypt hash, never plaintext
	Role      Role
	Available bool
}
