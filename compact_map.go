package ordstream

import "context"

// CompactMap is Map followed by Compacted: fn may opt an element out of the
// output stream (by returning None) without that being a failure.
// Equivalent to Compacted(Map(ctx, upstream, fn, opts...)).
func CompactMap[U, T any](
	ctx context.Context, upstream Stream[U], fn func(context.Context, U) (Option[T], error), opts ...MapOption,
) Stream[T] {
	return Compacted(Map(ctx, upstream, fn, opts...))
}
