package ordstream

import (
	"context"
	"iter"
)

// ToSeq2 bridges s into a Go 1.23 iter.Seq2[T, error], the host's closest
// analogue to spec.md's "bridge to async iterator." Breaking out of the
// consuming range loop early (or the iterator reaching an error or
// end-of-stream) cancels s — range-over-func guarantees the yield
// function's return value is observed, so an early break reliably triggers
// the deferred Cancel below.
func ToSeq2[T any](ctx context.Context, s Stream[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		defer s.Cancel()

		for {
			v, ok, err := s.Next(ctx)
			if err != nil {
				yield(v, err)
				return
			}
			if !ok {
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
