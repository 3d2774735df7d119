package ordstream

import "context"

// Fold drains s and folds its elements into acc via combine, left to
// right. It cancels s before returning. Out of this package's hard scope
// per spec.md §1 ("terminal reducers... each is a trivial loop over
// next()"), provided for completeness.
func Fold[T, A any](ctx context.Context, s Stream[T], acc A, combine func(A, T) A) (A, error) {
	defer s.Cancel()

	for {
		v, ok, err := s.Next(ctx)
		if err != nil {
			return acc, err
		}
		if !ok {
			return acc, nil
		}
		acc = combine(acc, v)
	}
}

// Reduce folds into a caller-owned accumulator in place, for when combine
// mutating a pointer is more natural than returning a new value.
func Reduce[T any, A any](ctx context.Context, s Stream[T], acc *A, combine func(*A, T)) error {
	defer s.Cancel()

	for {
		v, ok, err := s.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		combine(acc, v)
	}
}

// Min returns the smallest element of s by less, and whether s had any
// elements.
func Min[T any](ctx context.Context, s Stream[T], less func(a, b T) bool) (T, bool, error) {
	return extreme(ctx, s, func(a, b T) bool { return less(a, b) })
}

// Max returns the largest element of s by less, and whether s had any
// elements.
func Max[T any](ctx context.Context, s Stream[T], less func(a, b T) bool) (T, bool, error) {
	return extreme(ctx, s, func(a, b T) bool { return less(b, a) })
}

func extreme[T any](ctx context.Context, s Stream[T], better func(candidate, current T) bool) (T, bool, error) {
	defer s.Cancel()

	var (
		best  T
		found bool
	)
	for {
		v, ok, err := s.Next(ctx)
		if err != nil {
			return best, found, err
		}
		if !ok {
			return best, found, nil
		}
		if !found || better(v, best) {
			best = v
			found = true
		}
	}
}

// CountWhere returns the number of elements for which predicate returns
// true.
func CountWhere[T any](ctx context.Context, s Stream[T], predicate func(T) bool) (int, error) {
	defer s.Cancel()

	count := 0
	for {
		v, ok, err := s.Next(ctx)
		if err != nil {
			return count, err
		}
		if !ok {
			return count, nil
		}
		if predicate(v) {
			count++
		}
	}
}

// Contains reports whether target appears in s.
func Contains[T comparable](ctx context.Context, s Stream[T], target T) (bool, error) {
	defer s.Cancel()

	for {
		v, ok, err := s.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		if v == target {
			return true, nil
		}
	}
}

// AllSatisfy reports whether every element of s satisfies predicate. An
// empty stream is vacuously true.
func AllSatisfy[T any](ctx context.Context, s Stream[T], predicate func(T) bool) (bool, error) {
	defer s.Cancel()

	for {
		v, ok, err := s.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			return true, nil
		}
		if !predicate(v) {
			return false, nil
		}
	}
}
