package tensor

import "errors"

// Sentinel errors. Callers match them with errors.Is; returned errors wrap
// them with the offending index or coordinate.
var (
	// ErrBadShape is returned when an extent is negative, the element count
	// overflows int, or a reshape changes the element count.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrIndexOutOfRange is returned by linear access when the index is not
	// in [0, size).
	ErrIndexOutOfRange = errors.New("tensor: linear index out of range")

	// ErrCoordinateOutOfRange is returned by coordinate access when any axis
	// coordinate is not in [0, extent).
	ErrCoordinateOutOfRange = errors.New("tensor: coordinate out of range")

	// ErrIteratorInvalidated is returned when an iterator is dereferenced
	// after the version of its tensor moved on.
	ErrIteratorInvalidated = errors.New("tensor: iterator was invalidated")

	// ErrSourceDestroyed is returned when an iterator is dereferenced after
	// its tensor was released or collected, or when it never had one.
	ErrSourceDestroyed = errors.New("tensor: tensor has been destroyed")

	// ErrRangeMismatch is returned by range algorithms given iterators of
	// different tensors, or a last iterator before the first.
	ErrRangeMismatch = errors.New("tensor: iterators do not form a range")
)
