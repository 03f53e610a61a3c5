package cell

import "errors"

var (
	// ErrCorruptCell indicates a cell's bytes could not be decoded as the
	// requested type.
	ErrCorruptCell = errors.New("cell: corrupt cell data")

	// ErrOutOfRange indicates an index outside a container's current bounds.
	ErrOutOfRange = errors.New("cell: index out of range")

	// ErrCapacityExceeded indicates a write past a LazyArray's fixed capacity.
	ErrCapacityExceeded = errors.New("cell: capacity exceeded")

	// ErrUnwrap indicates Option.Unwrap was called on a None value, or
	// Result.Unwrap was called on an Err value.
	ErrUnwrap = errors.New("cell: unwrap called on empty value")
)
