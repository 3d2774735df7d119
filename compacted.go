package ordstream

import "context"

// Compacted drops the absent elements from a Stream[Option[T]] and unwraps
// the present ones, preserving order. CompactMap is Map followed by
// Compacted.
func Compacted[T any](upstream Stream[Option[T]]) Stream[T] {
	return &compactedStream[T]{upstream: upstream}
}

type compactedStream[T any] struct {
	reentrancyGuard
	upstream Stream[Option[T]]
}

func (c *compactedStream[T]) Next(ctx context.Context) (T, bool, error) {
	c.enter()
	defer c.leave()

	var zero T
	for {
		opt, ok, err := c.upstream.Next(ctx)
		if err != nil {
			c.upstream.Cancel()
			return zero, false, err
		}
		if !ok {
			return zero, false, nil
		}
		if v, present := opt.Get(); present {
			return v, true, nil
		}
	}
}

func (c *compactedStream[T]) Cancel() { c.upstream.Cancel() }
