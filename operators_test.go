package ordstream

import (
	"context"
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	s := Filter[int](FromSlice([]int{1, 2, 3, 4, 5, 6}), func(_ context.Context, v int) (bool, error) {
		return v%2 == 0, nil
	})
	got, err := Collect(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 6}, got)
}

func TestFilter_PredicateError(t *testing.T) {
	boom := errors.New("boom")
	s := Filter[int](FromSlice([]int{1, 2, 3}), func(_ context.Context, v int) (bool, error) {
		if v == 2 {
			return false, boom
		}
		return true, nil
	})
	got, err := Collect(context.Background(), s)
	require.ErrorIs(t, err, boom)
	require.Equal(t, []int{1}, got)
}

func TestCompacted(t *testing.T) {
	opts := FromSlice([]Option[int]{Some(1), None[int](), Some(2), None[int](), Some(3)})
	got, err := Collect(context.Background(), Compacted[int](opts))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestUnique(t *testing.T) {
	s := Unique[int](FromSlice([]int{1, 2, 2, 3, 1, 4, 3}))
	got, err := Collect(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestConcat(t *testing.T) {
	a := FromSlice([]int{1, 2})
	b := FromSlice([]int{3, 4})
	got, err := Collect(context.Background(), Concat[int](a, b))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestConcat_FirstErrors(t *testing.T) {
	boom := errors.New("boom")
	a := FromSeq2[int](func(yield func(int, error) bool) {
		if !yield(1, nil) {
			return
		}
		yield(0, boom)
	})
	b := FromSlice([]int{9})
	got, err := Collect(context.Background(), Concat[int](a, b))
	require.ErrorIs(t, err, boom)
	require.Equal(t, []int{1}, got)
}

func TestFlatten(t *testing.T) {
	children := FromSlice([]Stream[int]{
		FromSlice([]int{1, 2}),
		FromSlice([]int{3}),
		FromSlice([]int{4, 5, 6}),
	})
	got, err := Collect(context.Background(), Flatten[int](children))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)
}

func TestFlatten_ChildError(t *testing.T) {
	boom := errors.New("boom")
	failing := FromSeq2[int](func(yield func(int, error) bool) {
		if !yield(1, nil) {
			return
		}
		yield(0, boom)
	})
	children := FromSlice([]Stream[int]{
		FromSlice([]int{0}),
		failing,
		FromSlice([]int{9}),
	})
	got, err := Collect(context.Background(), Flatten[int](children))
	require.ErrorIs(t, err, boom)
	require.Equal(t, []int{0, 1}, got)
}

func TestFlattenSeq(t *testing.T) {
	seqs := FromSlice([]iter.Seq[int]{
		func(yield func(int) bool) {
			for _, v := range []int{1, 2} {
				if !yield(v) {
					return
				}
			}
		},
		func(yield func(int) bool) {
			yield(3)
		},
	})
	got, err := Collect(context.Background(), FlattenSeq[int](seqs))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestFlattenSeq_CancelFromAnotherGoroutine(t *testing.T) {
	// After a Next has returned, the inner sequence is suspended between
	// elements; Cancel from another goroutine must stop it and return.
	block := make(chan struct{})
	inner := iter.Seq[int](func(yield func(int) bool) {
		if !yield(1) {
			return
		}
		<-block
		yield(2)
	})
	outer := FromSlice([]iter.Seq[int]{inner})
	s := FlattenSeq[int](outer)

	v, ok, err := s.Next(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, v)

	done := make(chan struct{})
	go func() {
		s.Cancel()
		close(done)
	}()
	close(block)
	<-done
}
