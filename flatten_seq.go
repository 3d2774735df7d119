package ordstream

import (
	"context"
	"iter"
	"sync"
)

// FlattenSeq is Flatten's "flatten over sequences" sibling: upstream yields
// synchronous iter.Seq[T] values instead of child Streams. Each inner
// iterator is fully drained before the next one is pulled.
func FlattenSeq[T any](upstream Stream[iter.Seq[T]]) Stream[T] {
	return &flattenSeqStream[T]{upstream: upstream}
}

type flattenSeqStream[T any] struct {
	reentrancyGuard
	upstream Stream[iter.Seq[T]]

	// mu guards next/stop: Next and the concurrently-callable Cancel both
	// touch them, mirroring flattenStream's rationale.
	mu   sync.Mutex
	next func() (T, bool) // nil when no inner iterator is in flight
	stop func()
}

func (f *flattenSeqStream[T]) setInner(next func() (T, bool), stop func()) {
	f.mu.Lock()
	f.next, f.stop = next, stop
	f.mu.Unlock()
}

func (f *flattenSeqStream[T]) getStop() func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stop
}

func (f *flattenSeqStream[T]) Next(ctx context.Context) (T, bool, error) {
	f.enter()
	defer f.leave()

	var zero T
	for {
		f.mu.Lock()
		next := f.next
		f.mu.Unlock()

		if next == nil {
			seq, ok, err := f.upstream.Next(ctx)
			if err != nil {
				f.upstream.Cancel()
				return zero, false, err
			}
			if !ok {
				return zero, false, nil
			}
			n, s := iter.Pull(seq)
			f.setInner(n, s)
			next = n
		}

		v, ok := next()
		if ok {
			return v, true, nil
		}

		f.getStop()()
		f.setInner(nil, nil)
	}
}

func (f *flattenSeqStream[T]) Cancel() {
	if stop := f.getStop(); stop != nil {
		stop()
	}
	f.upstream.Cancel()
}
