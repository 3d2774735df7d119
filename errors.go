package ordstream

import "errors"

// Namespace prefixes every sentinel error this package defines, matching
// the teacher library's convention of namespacing error strings for easy
// log-grepping.
const Namespace = "ordstream"

var (
	// ErrInvalidConfig names an invalid configuration. No function in this
	// package returns it: invalid MapOption values (WithMaxConcurrency(0),
	// WithMetrics(nil), a nil MapOption) panic instead.
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")

	// ErrTaskPanicked wraps a recovered panic from a Map, CompactMap, or
	// FlatMap transform. Panics in other callbacks (Filter predicates,
	// source iterators) are not recovered. The original panic value is
	// embedded in the message; see the error returned by Next for the
	// formatted detail.
	ErrTaskPanicked = errors.New(Namespace + ": task execution panicked")
)
