package store

import "github.com/userstore/userstore/internal/model"

// MemoryStore is a map-backed Store.
//
// It is not safe for concurrent use; it assumes a single owner. Wrap it in
// a GuardedStore when shared between goroutines.
type MemoryStore struct {
	users map[uint64]model.User
}

// New creates an empty MemoryStore.
func New() *MemoryStore {
	return &MemoryStore{
		users: make(map[uint64]model.User),
	}
}

// NewWithCapacity creates an empty MemoryStore sized for the given number
// of users. Capacity is an allocation hint, not a limit.
func NewWithCapacity(capacity int) *MemoryStore {
	if capacity < 0 {
		capacity = 0
	}
	return &MemoryStore{
		users: make(map[uint64]model.User, capacity),
	}
}

// Find returns a copy of the user with the given id.
func (s *MemoryStore) Find(id uint64) (model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return model.User{}, &NotFoundError{ID: id}
	}
	return user.Clone(), nil
}

// Save inserts a new user, rejecting duplicate identifiers.
func (s *MemoryStore) Save(user model.User) error {
	if _, ok := s.users[user.ID]; ok {
		return &AlreadyExistsError{ID: user.ID}
	}

	// Store a copy so later mutations of the caller's value
	// cannot reach the map.
	s.users[user.ID] = user.Clone()
	return nil
}

// Delete removes the user with the given id.
func (s *MemoryStore) Delete(id uint64) error {
	if _, ok := s.users[id]; !ok {
		return &NotFoundError{ID: id}
	}

	delete(s.users, id)
	return nil
}

// Len returns the number of stored users.
func (s *MemoryStore) Len() int {
	return len(s.users)
}

var _ Store = (*MemoryStore)(nil)
