package hexutil

import "errors"

// Package-specific errors
var (
	// ErrInvalidInput is returned by Decode for odd-length input or
	// characters outside [0-9a-fA-F].
	ErrInvalidInput = errors.New("invalid hex input")
)
