package pool

import "sync"

// NewDynamic is an unbounded token pool: Get never blocks. It is a thin
// wrapper around sync.Pool and backs the map engine's default, unbounded
// worker concurrency.
func NewDynamic(newFn func() interface{}) Pool {
	return &sync.Pool{New: newFn}
}
