package ordstream

import "sync"

// cancelState is an idempotent, thread-safe cancellation latch. The ordered
// map engine's Cancel runs through it, so repeated or concurrent calls tear
// the engine down exactly once; the lightweight operators forward Cancel to
// their upstream directly and do not use it.
type cancelState struct {
	once     sync.Once
	upstream CancelFunc // may be nil (source adapters have no upstream)
	onCancel func()     // operator-specific teardown, may be nil
}

func newCancelState(upstream CancelFunc, onCancel func()) *cancelState {
	return &cancelState{upstream: upstream, onCancel: onCancel}
}

// cancel runs the teardown exactly once: operator-local teardown first,
// then the upstream's cancel, matching spec.md §4.6's "cancel downstream
// before propagating to upstream" ordering.
func (c *cancelState) cancel() {
	c.once.Do(func() {
		if c.onCancel != nil {
			c.onCancel()
		}
		if c.upstream != nil {
			c.upstream()
		}
	})
}
