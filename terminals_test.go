package ordstream

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToSeq2_YieldsValuesThenEnds(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	var got []int
	for v, err := range ToSeq2[int](context.Background(), s) {
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestToSeq2_EarlyBreakCancelsUpstream(t *testing.T) {
	canceled := make(chan struct{}, 1)
	s := &cancelObservingStream{Stream: FromSlice([]int{1, 2, 3}), onCancel: func() {
		select {
		case canceled <- struct{}{}:
		default:
		}
	}}

	for v := range ToSeq2[int](context.Background(), s) {
		if v == 1 {
			break
		}
	}

	select {
	case <-canceled:
	default:
		t.Fatal("expected early break to cancel the stream")
	}
}

func TestToSeq2_SurfacesError(t *testing.T) {
	boom := errors.New("boom")
	s := FromSeq2[int](func(yield func(int, error) bool) {
		if !yield(1, nil) {
			return
		}
		yield(0, boom)
	})

	var got []int
	var sawErr error
	for v, err := range ToSeq2[int](context.Background(), s) {
		if err != nil {
			sawErr = err
			continue
		}
		got = append(got, v)
	}
	require.ErrorIs(t, sawErr, boom)
	require.Equal(t, []int{1}, got)
}

func TestForEach_VisitsEveryElement(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []int
	)
	s := FromSlice([]int{1, 2, 3, 4})
	err := ForEach[int](context.Background(), s, func(_ context.Context, _ int, v int) error {
		mu.Lock()
		seen = append(seen, v)
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)
	require.ElementsMatch(t, []int{1, 2, 3, 4}, seen)
}

func TestForEach_ReturnsBodyError(t *testing.T) {
	boom := errors.New("boom")
	var dispatched int32
	s := FromSlice([]int{1, 2, 3, 4, 5})
	err := ForEach[int](context.Background(), s, func(_ context.Context, index int, v int) error {
		atomic.AddInt32(&dispatched, 1)
		if v == 2 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestFold(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4})
	sum, err := Fold[int, int](context.Background(), s, 0, func(acc, v int) int { return acc + v })
	require.NoError(t, err)
	require.Equal(t, 10, sum)
}

func TestReduce(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4})
	var sum int
	err := Reduce[int, int](context.Background(), s, &sum, func(acc *int, v int) { *acc += v })
	require.NoError(t, err)
	require.Equal(t, 10, sum)
}

func TestMin(t *testing.T) {
	s := FromSlice([]int{5, 1, 4, 2, 8})
	v, ok, err := Min[int](context.Background(), s, func(a, b int) bool { return a < b })
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, v)
}

func TestMax(t *testing.T) {
	s := FromSlice([]int{5, 1, 4, 2, 8})
	v, ok, err := Max[int](context.Background(), s, func(a, b int) bool { return a < b })
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 8, v)
}

func TestMin_EmptyStream(t *testing.T) {
	s := FromSlice([]int{})
	_, ok, err := Min[int](context.Background(), s, func(a, b int) bool { return a < b })
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCountWhere(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4, 5, 6})
	n, err := CountWhere[int](context.Background(), s, func(v int) bool { return v%2 == 0 })
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestContains(t *testing.T) {
	s := FromSlice([]string{"a", "b", "c"})
	ok, err := Contains[string](context.Background(), s, "b")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestContains_NotFound(t *testing.T) {
	s := FromSlice([]string{"a", "b", "c"})
	ok, err := Contains[string](context.Background(), s, "z")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAllSatisfy(t *testing.T) {
	s := FromSlice([]int{2, 4, 6})
	ok, err := AllSatisfy[int](context.Background(), s, func(v int) bool { return v%2 == 0 })
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAllSatisfy_EmptyIsVacuouslyTrue(t *testing.T) {
	s := FromSlice([]int{})
	ok, err := AllSatisfy[int](context.Background(), s, func(v int) bool { return false })
	require.NoError(t, err)
	require.True(t, ok)
}

// cancelObservingStream wraps a Stream to observe Cancel calls without
// needing a dedicated fake implementation per test.
type cancelObservingStream struct {
	Stream[int]
	onCancel func()
}

func (c *cancelObservingStream) Cancel() {
	c.onCancel()
	c.Stream.Cancel()
}
