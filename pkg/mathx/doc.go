// Package mathx provides checked integer arithmetic and float64 slice
// aggregation helpers.
//
// The integer helpers operate on int64 and never wrap silently: when a result
// would leave the representable range they return an error wrapping
// ErrOverflow. Division by zero returns ErrDivisionByZero, and precondition
// violations (negative exponent, empty slice where a value is required)
// return ErrInvalidArgument. Match all of them with errors.Is.
//
// The slice helpers operate on []float64 and never mutate their input. Sum of
// an empty slice is 0.0 by convention; Average, MaxIn and MinIn are undefined
// for empty input and fail instead of inventing a value.
//
// # NaN policy
//
// MaxIn and MinIn skip NaN elements when comparing; if every element is NaN
// the result is NaN. This keeps both functions total and deterministic over
// any non-empty input.
//
// # Usage
//
//	import "github.com/taoes/huturs/pkg/mathx"
//
//	q, err := mathx.Divide(7, 2) // 3, nil
//	p, err := mathx.Power(2, 10) // 1024, nil
//	avg, err := mathx.Average([]float64{1, 2, 3}) // 2.0, nil
//
// The package holds no state and is safe for concurrent use.
package mathx
