package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersSaved   uint64
	UsersDeleted uint64
	FindHits     uint64
	FindMisses   uint64
}

// InMemoryRecorder stores counters in memory.
type InMemoryRecorder struct {
	usersSaved   uint64
	usersDeleted uint64
	findHits     uint64
	findMisses   uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersSaved:   atomic.LoadUint64(&m.usersSaved),
		UsersDeleted: atomic.LoadUint64(&m.usersDeleted),
		FindHits:     atomic.LoadUint64(&m.findHits),
		FindMisses:   atomic.LoadUint64(&m.findMisses),
	}
}

// IncUserSaved increments the saved-users counter.
func (m *InMemoryRecorder) IncUserSaved() {
	atomic.AddUint64(&m.usersSaved, 1)
}

// IncUserDeleted increments the deleted-users counter.
func (m *InMemoryRecorder) IncUserDeleted() {
	atomic.AddUint64(&m.usersDeleted, 1)
}

// IncFindHit increments the lookup hit counter.
func (m *InMemoryRecorder) IncFindHit() {
	atomic.AddUint64(&m.findHits, 1)
}

// IncFindMiss increments the lookup miss counter.
func (m *InMemoryRecorder) IncFindMiss() {
	atomic.AddUint64(&m.findMisses, 1)
}
