package store

import (
	"sync"

	"github.com/userstore/userstore/internal/metrics"
	"github.com/userstore/userstore/internal/model"
)

// GuardedStore wraps a Store with a single exclusive lock, making it safe
// for concurrent use. Every operation runs in its own critical section;
// the interleaving order of concurrent callers is unspecified.
type GuardedStore struct {
	mu      sync.Mutex
	inner   Store
	metrics metrics.Recorder
}

// NewGuarded wraps the given store. The wrapped store must not be used
// directly afterwards. A nil recorder disables metrics.
func NewGuarded(inner Store, recorder metrics.Recorder) *GuardedStore {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &GuardedStore{
		inner:   inner,
		metrics: recorder,
	}
}

// Find returns a copy of the user with the given id.
func (s *GuardedStore) Find(id uint64) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.inner.Find(id)
	if err != nil {
		s.metrics.IncFindMiss()
		return model.User{}, err
	}

	s.metrics.IncFindHit()
	return user, nil
}

// Save inserts a new user, rejecting duplicate identifiers.
func (s *GuardedStore) Save(user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inner.Save(user); err != nil {
		return err
	}

	s.metrics.IncUserSaved()
	return nil
}

// Delete removes the user with the given id.
func (s *GuardedStore) Delete(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inner.Delete(id); err != nil {
		return err
	}

	s.metrics.IncUserDeleted()
	return nil
}

var _ Store = (*GuardedStore)(nil)
