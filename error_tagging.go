package ordstream

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// StreamIndexError exposes correlation metadata for a heavy-operator
// failure: which submission index produced it, and, when WithElementIDs is
// enabled, which generated element ID.
type StreamIndexError interface {
	error
	Unwrap() error
	Index() uint64
	ElementID() (uuid.UUID, bool)
}

type indexedError struct {
	err   error
	index uint64
	id    uuid.UUID
	hasID bool
}

func newIndexedError(err error, index uint64, id uuid.UUID, hasID bool) error {
	if err == nil {
		return nil
	}
	return &indexedError{err: err, index: index, id: id, hasID: hasID}
}

func (e *indexedError) Error() string { return e.err.Error() }
func (e *indexedError) Unwrap() error { return e.err }
func (e *indexedError) Index() uint64 { return e.index }

func (e *indexedError) ElementID() (uuid.UUID, bool) {
	if !e.hasID {
		return uuid.UUID{}, false
	}
	return e.id, true
}

func (e *indexedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			if e.hasID {
				_, _ = fmt.Fprintf(s, "element(index=%d,id=%s): %+v", e.index, e.id, e.err)
			} else {
				_, _ = fmt.Fprintf(s, "element(index=%d): %+v", e.index, e.err)
			}
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractIndex returns the submission index carried by err, if any.
func ExtractIndex(err error) (uint64, bool) {
	var sie StreamIndexError
	if errors.As(err, &sie) {
		return sie.Index(), true
	}
	return 0, false
}

// ExtractElementID returns the generated element ID carried by err, if any.
func ExtractElementID(err error) (uuid.UUID, bool) {
	var sie StreamIndexError
	if errors.As(err, &sie) {
		return sie.ElementID()
	}
	return uuid.UUID{}, false
}
