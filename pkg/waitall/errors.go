package waitall

import "errors"

var (
	// ErrPanicked wraps the value recovered from a panicking operation.
	ErrPanicked = errors.New("waitall: operation panicked")

	ErrNilOperation = errors.New("waitall: nil operation")
)
