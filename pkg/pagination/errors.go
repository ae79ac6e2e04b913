package pagination

import "errors"

// Package-specific errors
var (
	// ErrInvalidArgument is returned for page numbers below one,
	// non-positive sizes or widths, and negative totals.
	ErrInvalidArgument = errors.New("invalid argument")
)
