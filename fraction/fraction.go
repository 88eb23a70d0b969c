// Package fraction implements an immutable rational number type.
//
// A Fraction is always kept in lowest terms with a positive denominator, so
// two Fractions hold the same value exactly when they are ==. Every operation
// returns a new value; none of them mutate the receiver.
package fraction

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Fraction is a rational number num/den with 64-bit components.
//
// The denominator is stored minus one, which makes the zero value equal to
// 0/1. Neither component is ever math.MinInt64.
type Fraction struct {
	num  int64
	den1 int64
}

// Zero and One are 0/1 and 1/1.
var (
	Zero = Fraction{}
	One  = Fraction{num: 1}
)

// New creates a normalized Fraction.
// It fails with ErrInvalidArgument when den is zero and with ErrOverflow when
// either argument is math.MinInt64.
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, fmt.Errorf("%w: zero denominator in %d/%d", ErrInvalidArgument, num, den)
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		return Fraction{}, fmt.Errorf("%w: %d/%d", ErrOverflow, num, den)
	}
	return normalize(num, den), nil
}

// 約分
func normalize(num, den int64) Fraction {
	g := gcd(num, den)
	num /= g
	den /= g

	if den < 0 {
		num = -num
		den = -den
	}

	return Fraction{num: num, den1: den - 1}
}

// FromInt returns n/1. It panics if n is math.MinInt64.
func FromInt(n int64) Fraction {
	return Must(New(n, 1))
}

// Of is New for any integer type.
func Of[T constraints.Integer](num, den T) (Fraction, error) {
	n, ok := toInt64(num)
	if !ok {
		return Fraction{}, fmt.Errorf("%w: numerator %d", ErrOverflow, num)
	}
	d, ok := toInt64(den)
	if !ok {
		return Fraction{}, fmt.Errorf("%w: denominator %d", ErrOverflow, den)
	}
	return New(n, d)
}

// Must returns f, or panics with err.
func Must(f Fraction, err error) Fraction {
	if err != nil {
		panic(err)
	}
	return f
}

// Numerator returns the numerator. It carries the sign of the Fraction.
func (f Fraction) Numerator() int64 {
	return f.num
}

// Denominator returns the denominator, always >= 1.
func (f Fraction) Denominator() int64 {
	return f.den1 + 1
}

// Sign returns -1, 0 or 1.
func (f Fraction) Sign() int {
	switch {
	case f.num < 0:
		return -1
	case f.num > 0:
		return 1
	}
	return 0
}

func (f Fraction) IsZero() bool {
	return f.num == 0
}

func (f Fraction) IsInteger() bool {
	return f.den1 == 0
}

func (f Fraction) Abs() Fraction {
	return Fraction{num: abs(f.num), den1: f.den1}
}

func (f Fraction) Negate() Fraction {
	return Fraction{num: -f.num, den1: f.den1}
}

// Inverse returns den/num. It fails with ErrInvalidArgument for zero.
func (f Fraction) Inverse() (Fraction, error) {
	if f.num == 0 {
		return Fraction{}, fmt.Errorf("%w: inverse of zero", ErrInvalidArgument)
	}
	return New(f.Denominator(), f.num)
}

// TryTimes returns f*o, or an ErrOverflow error when the product does not fit.
func (f Fraction) TryTimes(o Fraction) (Fraction, error) {
	// cross reduce first so that already normalized operands stay small
	g1 := gcd(f.num, o.Denominator())
	g2 := gcd(o.num, f.Denominator())

	num, overNum := omul(f.num/g1, o.num/g2)
	den, overDen := omul(f.Denominator()/g2, o.Denominator()/g1)
	if overNum || overDen {
		return Fraction{}, fmt.Errorf("%w: %s times %s", ErrOverflow, f, o)
	}
	return New(num, den)
}

// TryPlus returns f+o, or an ErrOverflow error when the sum does not fit.
func (f Fraction) TryPlus(o Fraction) (Fraction, error) {
	d1, d2 := f.Denominator(), o.Denominator()
	g := gcd(d1, d2)

	// Knuth 4.5.1: t/g2 over (d1/g)*(d2/g2) is already in lowest terms.
	a, overA := omul(f.num, d2/g)
	b, overB := omul(o.num, d1/g)
	t, overT := oadd(a, b)
	if overA || overB || overT || t == math.MinInt64 {
		return viaBig(new(big.Rat).Add(f.BigRat(), o.BigRat()), "%s plus %s", f, o)
	}
	g2 := gcd(t, g)
	den, overDen := omul(d1/g, d2/g2)
	if overDen {
		return Fraction{}, fmt.Errorf("%w: %s plus %s", ErrOverflow, f, o)
	}
	return New(t/g2, den)
}

// viaBig converts an exact intermediate result back, reporting ErrOverflow
// with the operation described by format.
func viaBig(r *big.Rat, format string, args ...any) (Fraction, error) {
	res, err := FromBigRat(r)
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %s", ErrOverflow, fmt.Sprintf(format, args...))
	}
	return res, nil
}

// TryMinus returns f-o, or an ErrOverflow error.
func (f Fraction) TryMinus(o Fraction) (Fraction, error) {
	return f.TryPlus(o.Negate())
}

// Times returns f*o. It panics on overflow; see TryTimes.
func (f Fraction) Times(o Fraction) Fraction {
	return Must(f.TryTimes(o))
}

func (f Fraction) TimesInt(n int64) Fraction {
	return f.Times(FromInt(n))
}

// Plus returns f+o. It panics on overflow; see TryPlus.
func (f Fraction) Plus(o Fraction) Fraction {
	return Must(f.TryPlus(o))
}

func (f Fraction) PlusInt(n int64) Fraction {
	return f.Plus(FromInt(n))
}

// Minus returns f-o. It panics on overflow; see TryMinus.
func (f Fraction) Minus(o Fraction) Fraction {
	return Must(f.TryMinus(o))
}

func (f Fraction) MinusInt(n int64) Fraction {
	return f.Minus(FromInt(n))
}

// DivideBy returns f/o. Dividing by zero fails with ErrInvalidArgument.
func (f Fraction) DivideBy(o Fraction) (Fraction, error) {
	inv, err := o.Inverse()
	if err != nil {
		return Fraction{}, fmt.Errorf("divide %s by %s: %w", f, o, err)
	}
	return f.TryTimes(inv)
}

func (f Fraction) DivideByInt(n int64) (Fraction, error) {
	o, err := New(n, 1)
	if err != nil {
		return Fraction{}, err
	}
	return f.DivideBy(o)
}

// Pow returns f raised to exp. A negative exponent inverts f first, so zero
// to a negative power fails with ErrInvalidArgument. Pow(0) is One.
func (f Fraction) Pow(exp int64) (Fraction, error) {
	base := f
	if exp < 0 {
		inv, err := f.Inverse()
		if err != nil {
			return Fraction{}, err
		}
		base = inv
	}

	var e uint64
	if exp < 0 {
		e = uint64(-(exp + 1)) + 1
	} else {
		e = uint64(exp)
	}

	var err error
	result := One
	for e > 0 {
		if e&1 == 1 {
			if result, err = result.TryTimes(base); err != nil {
				return Fraction{}, err
			}
		}
		e >>= 1
		if e > 0 {
			if base, err = base.TryTimes(base); err != nil {
				return Fraction{}, err
			}
		}
	}
	return result, nil
}

// Mod returns the Euclidean remainder r of f/o with 0 <= r < |o|. It only
// fails with ErrOverflow when r itself does not fit.
func (f Fraction) Mod(o Fraction) (Fraction, error) {
	if o.num == 0 {
		return Fraction{}, fmt.Errorf("%w: %s mod zero", ErrInvalidArgument, f)
	}
	ao := o.Abs()
	r, err := f.mod64(ao)
	if errors.Is(err, ErrOverflow) {
		// the quotient can be out of range while the remainder is not
		x, m := f.BigRat(), ao.BigRat()
		q := new(big.Rat).Quo(x, m)
		k := new(big.Int).Div(q.Num(), q.Denom())
		rem := new(big.Rat).Sub(x, new(big.Rat).Mul(m, new(big.Rat).SetInt(k)))
		return viaBig(rem, "%s mod %s", f, o)
	}
	return r, err
}

func (f Fraction) mod64(m Fraction) (Fraction, error) {
	q, err := f.DivideBy(m)
	if err != nil {
		return Fraction{}, err
	}
	k, err := New(floorDiv(q.num, q.Denominator()), 1)
	if err != nil {
		return Fraction{}, err
	}
	step, err := m.TryTimes(k)
	if err != nil {
		return Fraction{}, err
	}
	return f.TryMinus(step)
}

// Float returns the nearest float64 approximation.
func (f Fraction) Float() float64 {
	return float64(f.num) / float64(f.Denominator())
}
