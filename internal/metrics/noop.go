package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserRegistered is a no-op.
func (n *NoopRecorder) IncUserRegistered() {}

// IncLoginSuccess is a no-op.
func (n *NoopRecorder) IncLoginSuccess() {}

// IncLoginFailure is a no-op.
func (n *NoopRecorder) IncLoginFailure() {}

// IncSessionRevoked is a no-op.
func (n *NoopRecorder) IncSessionRevoked() {}

// IncSessionCacheHit is a no-op.
func (n *NoopRecorder) IncSessionCacheHit() {}

// IncSessionCacheMiss is a no-op.
func (n *NoopRecorder) IncSessionCacheMiss() {}

// IncTransactionRecorded is a no-op.
func (n *NoopRecorder) IncTransactionRecorded(transactionType string) {}
