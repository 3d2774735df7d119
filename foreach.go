package ordstream

import (
	"context"
	"sync"
)

// ForEach drains s serially, dispatching each element to its own goroutine
// running body, and discards body's results. body receives the element's
// observed emission order (0-based), not its original submission index —
// the two coincide unless an upstream operator skipped elements (filter,
// compacted, unique). On the first error from body, s is cancelled and no
// further elements are dispatched; ForEach still waits for already-dispatched
// bodies to finish before returning. Grounded in the teacher's
// foreach.go/run_all.go (spawn-per-item, discard-result, cancel-on-first-error).
func ForEach[T any](ctx context.Context, s Stream[T], body func(ctx context.Context, index int, v T) error) error {
	defer s.Cancel()

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	recordErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
			s.Cancel()
			cancelRun()
		}
	}

	index := 0
	for {
		select {
		case <-runCtx.Done():
			goto wait
		default:
		}

		v, ok, err := s.Next(ctx)
		if err != nil {
			recordErr(err)
			break
		}
		if !ok {
			break
		}

		i := index
		index++
		wg.Add(1)
		go func(i int, v T) {
			defer wg.Done()
			if err := body(runCtx, i, v); err != nil {
				recordErr(err)
			}
		}(i, v)
	}

wait:
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	return firstErr
}
