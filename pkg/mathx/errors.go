package mathx

import "errors"

// Package-specific errors
var (
	// ErrInvalidArgument is returned when an input violates a precondition,
	// such as a negative exponent or an empty slice where a value is required.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow is returned when an integer result would not fit in int64.
	ErrOverflow = errors.New("arithmetic overflow")
)
