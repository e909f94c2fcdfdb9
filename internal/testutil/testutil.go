// Package testutil provides shared helpers for tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/userstore/userstore/internal/model"
)

// NewTestUser creates a test user with sensible defaults.
func NewTestUser(t testing.TB, id uint64) model.User {
	t.Helper()
	return model.User{
		ID:     id,
		Name:   "John",
		Email:  fmt.Sprintf("john+%d@example.com", id),
		Active: true,
		Roles:  []model.Role{model.RoleUser},
	}
}

// NewTestAdmin creates a test user holding the admin role.
func NewTestAdmin(t testing.TB, id uint64) model.User {
	t.Helper()
	user := NewTestUser(t, id)
	user.Name = "Jane"
	user.Roles = []model.Role{model.RoleAdmin, model.RoleUser}
	return user
}
