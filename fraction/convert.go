package fraction

import (
	"fmt"
	"math"
	"math/big"
)

// floatScale is the fixed denominator FromFloat rounds to before reducing.
const floatScale = 1e10

// FromFloat approximates x to the nearest multiple of 1e-10.
// NaN and infinities fail with ErrInvalidArgument.
func FromFloat(x float64) (Fraction, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Fraction{}, fmt.Errorf("%w: %v", ErrInvalidArgument, x)
	}
	scaled := math.Round(x * floatScale)
	if scaled >= 0x1p63 || scaled <= -0x1p63 {
		return Fraction{}, fmt.Errorf("%w: %v", ErrOverflow, x)
	}
	return New(int64(scaled), floatScale)
}

// BigRat returns f as a new big.Rat.
func (f Fraction) BigRat() *big.Rat {
	return new(big.Rat).SetFrac64(f.num, f.Denominator())
}

// FromBigRat converts r, failing with ErrOverflow when either part of r does
// not fit.
func FromBigRat(r *big.Rat) (Fraction, error) {
	num, den := r.Num(), r.Denom()
	if !num.IsInt64() || !den.IsInt64() {
		return Fraction{}, fmt.Errorf("%w: %s", ErrOverflow, r.RatString())
	}
	return New(num.Int64(), den.Int64())
}
