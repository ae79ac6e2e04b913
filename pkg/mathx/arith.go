package mathx

import (
	"cmp"
	"fmt"
	"math"
)

// Add returns a + b, or ErrOverflow when the sum leaves the int64 range.
func Add(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return a + b, nil
}

// Subtract returns a - b, or ErrOverflow when the difference leaves the int64
// range.
func Subtract(a, b int64) (int64, error) {
	if (b > 0 && a < math.MinInt64+b) || (b < 0 && a > math.MaxInt64+b) {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
	}
	return a - b, nil
}

// Multiply returns a * b, or ErrOverflow when the product leaves the int64
// range.
func Multiply(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	r := a * b
	if r/a != b {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return r, nil
}

// Divide returns the truncating quotient a / b, so Divide(7, 2) == 3 and
// Divide(-7, 2) == -3. A zero divisor returns ErrDivisionByZero; dividing
// MinInt64 by -1 returns ErrOverflow.
func Divide(a, b int64) (int64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: %d / 0", ErrDivisionByZero, a)
	}
	if a == math.MinInt64 && b == -1 {
		return 0, fmt.Errorf("%w: %d / %d", ErrOverflow, a, b)
	}
	return a / b, nil
}

// Abs returns the absolute value of x. The minimum int64 has no representable
// absolute value and returns ErrOverflow.
func Abs(x int64) (int64, error) {
	if x == math.MinInt64 {
		return 0, fmt.Errorf("%w: abs(%d)", ErrOverflow, x)
	}
	if x < 0 {
		return -x, nil
	}
	return x, nil
}

// Max returns the larger of a and b.
func Max[T cmp.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min[T cmp.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Square returns x * x, or ErrOverflow when the result leaves the int64
// range.
func Square(x int64) (int64, error) {
	return Multiply(x, x)
}

// Cube returns x * x * x, or ErrOverflow when the result leaves the int64
// range.
func Cube(x int64) (int64, error) {
	sq, err := Multiply(x, x)
	if err != nil {
		return 0, err
	}
	return Multiply(sq, x)
}

// Power returns base raised to exp using checked binary exponentiation.
// A negative exponent returns ErrInvalidArgument since no fractional result
// is representable; exponent zero returns 1 for every base, including zero,
// by convention.
func Power(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, fmt.Errorf("%w: negative exponent %d", ErrInvalidArgument, exp)
	}
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			r, err := Multiply(result, base)
			if err != nil {
				return 0, err
			}
			result = r
		}
		exp >>= 1
		if exp > 0 {
			sq, err := Multiply(base, base)
			if err != nil {
				return 0, err
			}
			base = sq
		}
	}
	return result, nil
}

// IsEven reports whether x is even. Parity is sign-independent.
func IsEven(x int64) bool {
	return x%2 == 0
}

// IsOdd reports whether x is odd. Parity is sign-independent.
func IsOdd(x int64) bool {
	return x%2 != 0
}
