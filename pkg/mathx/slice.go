package mathx

import (
	"fmt"
	"math"
)

// Sum returns the arithmetic sum of values. An empty or nil slice sums to
// 0.0. The input is never mutated.
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Average returns the arithmetic mean of values. An empty or nil slice has no
// mean and returns ErrInvalidArgument.
func Average(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: average of empty slice", ErrInvalidArgument)
	}
	return Sum(values) / float64(len(values)), nil
}

// MaxIn returns the largest element of values. An empty or nil slice returns
// ErrInvalidArgument. NaN elements are skipped; if every element is NaN the
// result is NaN.
func MaxIn(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: max of empty slice", ErrInvalidArgument)
	}
	best := math.NaN()
	found := false
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if !found || v > best {
			best = v
			found = true
		}
	}
	return best, nil
}

// MinIn returns the smallest element of values. An empty or nil slice returns
// ErrInvalidArgument. NaN elements are skipped; if every element is NaN the
// result is NaN.
func MinIn(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: min of empty slice", ErrInvalidArgument)
	}
	best := math.NaN()
	found := false
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if !found || v < best {
			best = v
			found = true
		}
	}
	return best, nil
}
