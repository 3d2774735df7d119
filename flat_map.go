package ordstream

import "context"

// FlatMap is Map followed by Flatten: fn produces a child Stream per
// upstream element, concurrently with its siblings, and Flatten serializes
// the children's elements in outer-index order. Equivalent to
// Flatten(Map(ctx, upstream, fn, opts...)).
func FlatMap[U, T any](
	ctx context.Context, upstream Stream[U], fn func(context.Context, U) (Stream[T], error), opts ...MapOption,
) Stream[T] {
	return Flatten(Map(ctx, upstream, fn, opts...))
}
