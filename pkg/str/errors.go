package str

import "errors"

// Package-specific errors
var (
	// ErrInvalidArgument is returned when an input violates a precondition,
	// such as a negative repeat count or out-of-range substring bounds.
	ErrInvalidArgument = errors.New("invalid argument")
)
