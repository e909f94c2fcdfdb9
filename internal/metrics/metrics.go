// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the store.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Store mutation metrics
	IncUserSaved()
	IncUserDeleted()

	// Lookup metrics
	IncFindHit()
	IncFindMiss()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
