package ordstream

import (
	"context"
	"sync"
)

// Flatten pulls a child Stream from upstream, drains it fully, then pulls
// the next child, concatenating their elements in order. FlatMap is Map
// followed by Flatten: the outer Map constructs (and starts fanning out
// inside) each child stream concurrently with the others, while Flatten
// serializes their output in outer-index order.
func Flatten[T any](upstream Stream[Stream[T]]) Stream[T] {
	return &flattenStream[T]{upstream: upstream}
}

type flattenStream[T any] struct {
	reentrancyGuard
	upstream Stream[Stream[T]]

	// mu guards current: Next (the consumer goroutine) and Cancel (which
	// spec.md §5 requires to be callable concurrently from any goroutine)
	// both read and write it.
	mu      sync.Mutex
	current Stream[T] // nil when no child is in flight
}

func (f *flattenStream[T]) setCurrent(s Stream[T]) {
	f.mu.Lock()
	f.current = s
	f.mu.Unlock()
}

func (f *flattenStream[T]) getCurrent() Stream[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *flattenStream[T]) Next(ctx context.Context) (T, bool, error) {
	f.enter()
	defer f.leave()

	var zero T
	for {
		current := f.getCurrent()
		if current == nil {
			child, ok, err := f.upstream.Next(ctx)
			if err != nil {
				f.upstream.Cancel()
				return zero, false, err
			}
			if !ok {
				return zero, false, nil
			}
			f.setCurrent(child)
			current = child
		}

		v, ok, err := current.Next(ctx)
		if err != nil {
			// The inner child's failure propagates as the outer failure,
			// cancelling both the child and the upstream producing children.
			current.Cancel()
			f.upstream.Cancel()
			f.setCurrent(nil)
			return zero, false, err
		}
		if ok {
			return v, true, nil
		}

		// Child drained; move on to the next one.
		f.setCurrent(nil)
	}
}

func (f *flattenStream[T]) Cancel() {
	if current := f.getCurrent(); current != nil {
		current.Cancel()
	}
	f.upstream.Cancel()
}
