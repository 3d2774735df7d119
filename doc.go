// Package ordstream provides an ordered concurrent stream: a lazily built,
// single-consumer pipeline that fans work out across many goroutines yet
// re-serializes results to the consumer in the exact order elements were
// submitted.
//
// Construction
//   - FromSlice, FromSeq, FromSeq2, FromChannel build a Stream from a
//     synchronous source, a Go 1.23 iterator, a fallible Go 1.23 iterator,
//     or a channel, respectively.
//
// Operators
//   - Heavyweight (fan out across a worker pool): Map, CompactMap, FlatMap.
//   - Lightweight (no additional concurrency): Filter, Compacted, Unique,
//     Concat, Flatten, FlattenSeq.
//
// Terminal operations
//   - Next, Collect, ToSeq2, ForEach, and the reducers in reducers.go
//     (Fold, Reduce, Min, Max, CountWhere, Contains, AllSatisfy).
//
// Cancellation
//
// A Stream is cancelled when: a terminal operation returns (all terminals
// cancel on exit via defer), Cancel is called explicitly, the caller's
// context.Context is cancelled and observed by Next, or an upstream/transform
// error surfaces. Cancellation is idempotent and safe to trigger from any
// goroutine. Go has no deterministic destructor, so abandoning a Stream
// without ever calling a terminal operation or Cancel leaks its supervisor
// goroutine (if one was spawned by Map/CompactMap/FlatMap): it keeps
// draining upstream, and once the internal result channel is full it and
// its workers block indefinitely.
package ordstream
