package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserSaved is a no-op.
func (n *NoopRecorder) IncUserSaved() {}

// IncUserDeleted is a no-op.
func (n *NoopRecorder) IncUserDeleted() {}

// IncFindHit is a no-op.
func (n *NoopRecorder) IncFindHit() {}

// IncFindMiss is a no-op.
func (n *NoopRecorder) IncFindMiss() {}
