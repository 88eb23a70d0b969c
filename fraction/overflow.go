package fraction

import (
	"math"

	"golang.org/x/exp/constraints"
)

// oadd adds 2 values with overflow detection
func oadd[T constraints.Signed](a, b T) (res T, overflowed bool) {
	res = a + b
	overflowed = (b > 0 && res < a) || (b < 0 && res > a)
	return
}

// omul multiplies 2 values with overflow detection
func omul[T constraints.Signed](a, b T) (res T, overflowed bool) {
	if a == 0 || b == 0 {
		return 0, false
	}
	// c/b below cannot see min*-1, which wraps back to min.
	if a == -1 {
		return -b, b < 0 && -b < 0
	}
	if b == -1 {
		return -a, a < 0 && -a < 0
	}

	c := a * b
	if c/b != a {
		return 0, true
	}
	return c, false
}

// toInt64 converts any integer to int64, reporting false when it does not fit.
func toInt64[T constraints.Integer](v T) (int64, bool) {
	if v < 0 {
		return int64(v), true
	}
	if uint64(v) > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

// gcd returns the greatest common divisor of |a| and |b| (Euclid).
// gcd(0, b) is |b|. Arguments must not be math.MinInt64.
func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// floorDiv returns floor(a/b) for b > 0.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
