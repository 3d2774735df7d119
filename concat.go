package ordstream

import "context"

// Concat returns a Stream that emits every element of a, in order, then
// every element of b, in order. Cancel always cancels both, even if b was
// never pulled from: most Stream implementations treat cancelling before
// any Next call as a harmless no-op.
func Concat[T any](a, b Stream[T]) Stream[T] {
	return &concatStream[T]{a: a, b: b, onA: true}
}

type concatStream[T any] struct {
	reentrancyGuard
	a, b Stream[T]
	onA  bool
}

func (c *concatStream[T]) Next(ctx context.Context) (T, bool, error) {
	c.enter()
	defer c.leave()

	if c.onA {
		v, ok, err := c.a.Next(ctx)
		if err != nil {
			c.a.Cancel()
			c.b.Cancel()
			var zero T
			return zero, false, err
		}
		if ok {
			return v, true, nil
		}
		c.onA = false
	}
	return c.b.Next(ctx)
}

func (c *concatStream[T]) Cancel() {
	c.a.Cancel()
	c.b.Cancel()
}
