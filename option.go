package ordstream

// Option is a minimal optional value, used by Compacted and CompactMap to
// let a transform opt an element out of the output stream without that
// being treated as a failure.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

// None is the absent value.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the wrapped value and whether it was present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// IsSome reports whether the option carries a value.
func (o Option[T]) IsSome() bool { return o.ok }
