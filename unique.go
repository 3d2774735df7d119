package ordstream

import "context"

// Unique returns a Stream that emits each distinct upstream element once,
// the first time it is seen, in upstream order. The seen-set lives for the
// lifetime of the returned Stream and is touched only from Next, so no
// locking is required: the single-consumer contract already serializes
// access to it.
func Unique[T comparable](upstream Stream[T]) Stream[T] {
	return &uniqueStream[T]{upstream: upstream, seen: make(map[T]struct{})}
}

type uniqueStream[T comparable] struct {
	reentrancyGuard
	upstream Stream[T]
	seen     map[T]struct{}
}

func (u *uniqueStream[T]) Next(ctx context.Context) (T, bool, error) {
	u.enter()
	defer u.leave()

	var zero T
	for {
		v, ok, err := u.upstream.Next(ctx)
		if err != nil {
			u.upstream.Cancel()
			return zero, false, err
		}
		if !ok {
			return zero, false, nil
		}
		if _, dup := u.seen[v]; dup {
			continue
		}
		u.seen[v] = struct{}{}
		return v, true, nil
	}
}

func (u *uniqueStream[T]) Cancel() { u.upstream.Cancel() }
