package timestamp

import "errors"

// Package-specific errors
var (
	// ErrOverflow is returned when a timestamp operation would produce a
	// value outside the int64 range.
	ErrOverflow = errors.New("timestamp arithmetic overflow")
)
