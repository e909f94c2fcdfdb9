// Package model defines domain entities for the user store.
package model

// Role is one tag from the closed set of roles a user can hold.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// IsValid checks if the role is one of the known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	default:
		return false
	}
}

// ParseRole converts a string to a Role.
// Unknown strings return false.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleUser, RoleGuest:
		return Role(s), true
	default:
		return "", false
	}
}

// User represents a user entity held by the store.
// The ID is assigned by the caller, never generated.
type User struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
	Roles  []Role `json:"roles"`
}

// Clone returns a deep copy of the user. The Roles slice is copied
// so the result shares no memory with the receiver.
func (u User) Clone() User {
	c := u
	if u.Roles != nil {
		c.Roles = make([]Role, len(u.Roles))
		copy(c.Roles, u.Roles)
	}
	return c
}

// Equal reports whether two users have identical fields.
// Role order is significant.
func (u User) Equal(other User) bool {
	if u.ID != other.ID || u.Name != other.Name || u.Email != other.Email || u.Active != other.Active {
		return false
	}
	if len(u.Roles) != len(other.Roles) {
		return false
	}
	for i, r := range u.Roles {
		if r != other.Roles[i] {
			return false
		}
	}
	return true
}

// HasRole reports whether the user holds the given role.
func (u User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
