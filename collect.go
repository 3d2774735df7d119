package ordstream

import "context"

// Collect drains s into a slice, in order. It cancels s before returning,
// whether it drained cleanly, the caller's ctx was cancelled, or s failed —
// this is the "terminal operations cancel on exit" convention documented in
// doc.go, grounded in the teacher's run_all.go (drain-then-Close shape).
func Collect[T any](ctx context.Context, s Stream[T]) ([]T, error) {
	defer s.Cancel()

	var out []T
	for {
		v, ok, err := s.Next(ctx)
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}
