package ordstream

import (
	"context"
	"sync/atomic"
)

// Stream is a singly-owned, single-consumer, pull-based, fallible,
// cancellable pipeline of elements.
//
// Next and Cancel are the whole contract. Next must not be called
// concurrently with itself on the same Stream; doing so is a programmer
// error and panics, matching the single-consumer guarantee every operator
// in this package relies on. Cancel is safe to call from any goroutine, any
// number of times, including after the Stream has already drained.
type Stream[T any] interface {
	// Next returns the next element. The bool is false and the error is nil
	// at end-of-stream. A non-nil error is terminal: the Stream cancels
	// itself before returning it, and every subsequent call to Next returns
	// (zero, false, nil).
	Next(ctx context.Context) (T, bool, error)

	// Cancel requests cancellation of this Stream and, transitively, of its
	// upstream. It never blocks waiting for in-flight work to quiesce and
	// never fails.
	Cancel()
}

// CancelFunc is a callable cancellation handle. It is a plain func value
// (CancelHandle binds it to a Stream's Cancel), so a consumer can capture
// one before entering a context.Context cancellation observer that outlives
// the code holding the Stream itself.
type CancelFunc func()

// CancelHandle returns a copyable CancelFunc equivalent to s.Cancel.
func CancelHandle[T any](s Stream[T]) CancelFunc {
	return s.Cancel
}

// reentrancyGuard traps concurrent Next calls on the same stream.
type reentrancyGuard struct {
	inNext atomic.Bool
}

// enter must be paired with a deferred call to leave. It panics if Next is
// already running on this stream.
func (g *reentrancyGuard) enter() {
	if !g.inNext.CompareAndSwap(false, true) {
		panic("ordstream: concurrent Next call on the same Stream")
	}
}

func (g *reentrancyGuard) leave() {
	g.inNext.Store(false)
}
