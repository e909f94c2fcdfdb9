// Package store provides in-memory storage of user entities keyed by
// identifier. Nothing is persisted across process lifetime.
package store

import "github.com/userstore/userstore/internal/model"

// Store holds user entities keyed by their caller-assigned identifier.
//
// Implementations own the entities they hold: reads return copies, never
// references into the store, so callers cannot mutate stored state without
// going through Save or Delete. Each operation either fully applies its
// effect or leaves the store unchanged.
type Store interface {
	// Find returns a copy of the user with the given id,
	// or a NotFoundError if absent. No side effects.
	Find(id uint64) (model.User, error)

	// Save inserts a new user. If a user with the same id is already
	// present it returns an AlreadyExistsError and the store is left
	// unchanged. Overwrite is not supported.
	Save(user model.User) error

	// Delete removes the user with the given id, or returns a
	// NotFoundError if absent. Failure leaves the store unchanged.
	Delete(id uint64) error
}
