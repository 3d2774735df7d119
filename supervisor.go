package ordstream

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nwillc/ordstream/internal/metrics"
	"github.com/nwillc/ordstream/internal/pool"
)

// supervisor is the detached background goroutine at the heart of the
// ordered map engine (spec.md C4). It drains upstream, assigns each pulled
// element a monotonic index, and spawns one worker goroutine per element,
// gated by an admission-control pool. Generalized from the teacher's
// dispatcher.go (read Task[R] from a channel, dispatch via a pool.Pool)
// from "pull a value from a channel" to "pull a value from a Stream[U]".
type supervisor[U, T any] struct {
	upstream Stream[U]
	fn       func(context.Context, U) (T, error)
	out      chan workerResult[T]
	pool     pool.Pool
	cfg      mapConfig
	cancel   func() // cancels the whole engine (this stream + its upstream)

	inflight sync.WaitGroup
}

func newSupervisor[U, T any](
	upstream Stream[U],
	fn func(context.Context, U) (T, error),
	cfg mapConfig,
	cancel func(),
) *supervisor[U, T] {
	var p pool.Pool
	if cfg.MaxConcurrency > 0 {
		p = pool.NewFixed(cfg.MaxConcurrency, func() interface{} { return struct{}{} })
	} else {
		p = pool.NewDynamic(func() interface{} { return struct{}{} })
	}

	return &supervisor[U, T]{
		upstream: upstream,
		fn:       fn,
		out:      make(chan workerResult[T], cfg.ChannelBufferSize),
		pool:     p,
		cfg:      cfg,
		cancel:   cancel,
	}
}

// run drains upstream and spawns workers until upstream ends, an upstream
// failure occurs, or ctx is cancelled. It always closes out exactly once,
// after every spawned worker has finished, whichever path it took to get
// there.
func (s *supervisor[U, T]) run(ctx context.Context) {
	defer close(s.out)
	defer s.inflight.Wait()

	var index uint64

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		v, ok, err := s.upstream.Next(ctx)
		if err != nil {
			s.emit(ctx, workerResult[T]{index: index, err: err})
			s.cancel()
			return
		}
		if !ok {
			return
		}

		// Check again before spawning: an error from a sibling worker may
		// have requested shutdown while we were blocked in upstream.Next.
		select {
		case <-ctx.Done():
			return
		default:
		}

		var id uuid.UUID
		if s.cfg.ElementIDs {
			id = uuid.New()
		}

		token := s.pool.Get()
		s.inflight.Add(1)
		s.cfg.Metrics.Counter("ordstream.elements.submitted").Add(1)
		inflightGauge := s.cfg.Metrics.UpDownCounter("ordstream.elements.inflight")
		inflightGauge.Add(1)

		go s.work(ctx, index, v, id, token, inflightGauge)

		index++
	}
}

func (s *supervisor[U, T]) work(
	ctx context.Context, index uint64, v U, id uuid.UUID, token interface{}, inflightGauge metrics.UpDownCounter,
) {
	defer s.inflight.Done()
	defer s.pool.Put(token)
	defer inflightGauge.Add(-1)

	start := time.Now()
	result, err := s.runTransform(ctx, v)
	s.cfg.Metrics.Histogram("ordstream.elements.duration_seconds").Record(time.Since(start).Seconds())

	if err != nil {
		s.cfg.Metrics.Counter("ordstream.elements.errored").Add(1)
		wrapped := newIndexedError(err, index, id, s.cfg.ElementIDs)
		s.emit(ctx, workerResult[T]{index: index, err: wrapped})
		s.cancel()
		return
	}

	s.cfg.Metrics.Counter("ordstream.elements.completed").Add(1)
	s.emit(ctx, workerResult[T]{index: index, value: result})
}

// runTransform invokes fn, recovering a panic into an error the same way
// the teacher's task.go/worker.go do.
func (s *supervisor[U, T]) runTransform(ctx context.Context, v U) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
		}
	}()
	return s.fn(ctx, v)
}

// emit sends a completion to out, or drops it if ctx is done before out has
// room. A worker whose result arrives after mapStream.Next has stopped
// reading would otherwise block on this send forever once out fills past
// its buffer, since nothing drains it again; racing the send against
// ctx.Done() is what lets cancellation actually finish the channel instead
// of leaving in-flight workers stuck sending into it (spec.md §4.6 step 3).
func (s *supervisor[U, T]) emit(ctx context.Context, r workerResult[T]) {
	select {
	case s.out <- r:
	case <-ctx.Done():
	}
}
