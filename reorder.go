package ordstream

// workerResult is the indexed completion event a worker goroutine hands to
// the reorder buffer: either a value at index, or a terminal error.
// Grounded in the teacher's completionEvent[R] (preserve_order.go), adapted
// from "present bool" to a value/error pair since this engine always
// produces exactly one output per input (no SendResult opt-out).
type workerResult[T any] struct {
	index uint64
	value T
	err   error
}

// reorderBuffer restores submission order: it holds completions that
// arrived ahead of the cursor and releases them once every lower index has
// been released. Unlike the teacher's reorderer (a standalone goroutine
// pushed into from a channel), this buffer is consulted synchronously from
// Next, since the stream contract is pull-based: spec.md's "Reorder buffer
// (the next() side)" describes exactly this shape.
type reorderBuffer[T any] struct {
	pending map[uint64]T
	next    uint64
}

func newReorderBuffer[T any]() reorderBuffer[T] {
	return reorderBuffer[T]{pending: make(map[uint64]T)}
}

// take returns the value at the current cursor if it has already arrived,
// advancing the cursor. ok is false if the cursor's value hasn't arrived
// yet.
func (b *reorderBuffer[T]) take() (T, bool) {
	v, ok := b.pending[b.next]
	if !ok {
		var zero T
		return zero, false
	}
	delete(b.pending, b.next)
	b.next++
	return v, true
}

// insert stores a completion that arrived ahead of the cursor.
func (b *reorderBuffer[T]) insert(index uint64, v T) {
	b.pending[index] = v
}
