package fraction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetters(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int64
		num, den int64
	}{
		{"half", 1, 2, 1, 2},
		{"one third", 2, 6, 1, 3},
		{"minus half", 9, -18, -1, 2},
		{"both negative", -3, -9, 1, 3},
		{"zero", 0, -7, 0, 1},
		{"whole", 2, 2, 1, 1},
		{"large", math.MaxInt64, math.MaxInt64, 1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := New(c.a, c.b)
			require.NoError(t, err)
			assert.Equal(t, c.num, f.Numerator(), "numerator")
			assert.Equal(t, c.den, f.Denominator(), "denominator")
		})
	}
}

func TestNewZeroDenominator(t *testing.T) {
	for _, d := range []int64{0, 1, -1, 42} {
		_, err := New(d, 0)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestNewMinInt(t *testing.T) {
	_, err := New(math.MinInt64, 1)
	require.ErrorIs(t, err, ErrOverflow)
	_, err = New(1, math.MinInt64)
	require.ErrorIs(t, err, ErrOverflow)
	require.Panics(t, func() { FromInt(math.MinInt64) })
}

func TestZeroValue(t *testing.T) {
	var f Fraction
	require.Equal(t, int64(0), f.Numerator())
	require.Equal(t, int64(1), f.Denominator())
	require.Equal(t, Must(New(0, 5)), f)
	require.Equal(t, "0", f.String())
}

func TestFromInt(t *testing.T) {
	f := FromInt(5)
	require.Equal(t, int64(5), f.Numerator())
	require.Equal(t, int64(1), f.Denominator())
	require.True(t, f.IsInteger())
}

func TestOf(t *testing.T) {
	f, err := Of[uint8](6, 8)
	require.NoError(t, err)
	require.Equal(t, Must(New(3, 4)), f)

	f, err = Of(int32(-4), int32(6))
	require.NoError(t, err)
	require.Equal(t, Must(New(-2, 3)), f)

	_, err = Of[uint64](math.MaxUint64, 1)
	require.ErrorIs(t, err, ErrOverflow)
	_, err = Of[uint](1, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestOps(t *testing.T) {
	ops := map[string]func(a, b Fraction) (Fraction, error){
		"times": func(a, b Fraction) (Fraction, error) { return a.TryTimes(b) },
		"plus":  func(a, b Fraction) (Fraction, error) { return a.TryPlus(b) },
		"minus": func(a, b Fraction) (Fraction, error) { return a.TryMinus(b) },
		"divide": func(a, b Fraction) (Fraction, error) {
			return a.DivideBy(b)
		},
	}

	cases := []struct {
		msg      string
		op       string
		expected string
		a, b     int64
		c, d     int64
	}{
		{"one half times one third is 1 sixth", "times", "(1/6)", 1, 2, 1, 3},
		{"two thirds times three halves is one", "times", "1", 2, 3, 3, 2},
		{"minus half times half", "times", "-(1/4)", -1, 2, 1, 2},
		{"one half plus one third", "plus", "(5/6)", 1, 2, 1, 3},
		{"three quarters plus three quarters", "plus", "(1+(1/2))", 3, 4, 3, 4},
		{"half plus minus half", "plus", "0", 1, 2, -1, 2},
		{"one half minus one third", "minus", "(1/6)", 1, 2, 1, 3},
		{"one third minus one half", "minus", "-(1/6)", 1, 3, 1, 2},
		{"one half divided by one third", "divide", "(1+(1/2))", 1, 2, 1, 3},
		{"one half divided by minus two", "divide", "-(1/4)", 1, 2, -2, 1},
	}
	for _, c := range cases {
		t.Run(c.msg, func(t *testing.T) {
			op, ok := ops[c.op]
			require.True(t, ok, c.op)
			got, err := op(Must(New(c.a, c.b)), Must(New(c.c, c.d)))
			require.NoError(t, err)
			require.Equal(t, c.expected, got.String())
		})
	}
}

func TestIntOverloads(t *testing.T) {
	half := Must(New(1, 2))
	require.Equal(t, half.Times(FromInt(3)), half.TimesInt(3))
	require.Equal(t, half.Plus(FromInt(3)), half.PlusInt(3))
	require.Equal(t, half.Minus(FromInt(3)), half.MinusInt(3))

	q, err := half.DivideByInt(3)
	require.NoError(t, err)
	require.Equal(t, Must(New(1, 6)), q)

	_, err = half.DivideByInt(0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestInverse(t *testing.T) {
	inv, err := Must(New(-2, 3)).Inverse()
	require.NoError(t, err)
	require.Equal(t, int64(-3), inv.Numerator())
	require.Equal(t, int64(2), inv.Denominator())

	_, err = Zero.Inverse()
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDivideByZero(t *testing.T) {
	_, err := One.DivideBy(Zero)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNegate(t *testing.T) {
	f := Must(New(2, 5))
	require.Equal(t, Must(New(-2, 5)), f.Negate())
	require.Equal(t, f, f.Negate().Negate())
	require.Equal(t, Zero, Zero.Negate())
}

func TestOverflow(t *testing.T) {
	big := FromInt(math.MaxInt64)

	_, err := big.TryTimes(FromInt(2))
	require.ErrorIs(t, err, ErrOverflow)
	_, err = big.TryPlus(One)
	require.ErrorIs(t, err, ErrOverflow)
	_, err = big.Negate().TryMinus(FromInt(2))
	require.ErrorIs(t, err, ErrOverflow)
	require.Panics(t, func() { big.Times(big) })

	// cross reduction keeps this in range
	a := Must(New(math.MaxInt64, 3))
	b := Must(New(3, math.MaxInt64))
	require.Equal(t, One, a.Times(b))
}

func TestPlusNearLimit(t *testing.T) {
	cases := []struct {
		name     string
		f, o     Fraction
		expected Fraction
	}{
		{
			// d1*(d2/g) does not fit, (d1/g)*(d2/g2) does
			"shared factor in the sum",
			Must(New(1, 2*3037000493)), Must(New(1, 2*3037000453)),
			Must(New(3037000473, 3037000493*3037000453)),
		},
		{
			// n1*(d2/g) does not fit
			"large numerators",
			Must(New(math.MaxInt64, 2)), Must(New(-math.MaxInt64, 3)),
			Must(New(math.MaxInt64, 6)),
		},
		{
			"cancels to an integer",
			Must(New(math.MaxInt64, 6)), Must(New(-math.MaxInt64+6, 6)),
			One,
		},
		{
			"halves and quarters",
			Must(New(math.MaxInt64, 2)), Must(New(-math.MaxInt64, 4)),
			Must(New(math.MaxInt64, 4)),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.f.TryPlus(c.o)
			require.NoError(t, err)
			require.Equal(t, c.expected, got)
			require.Equal(t, c.f, got.Minus(c.o))
		})
	}
}

func TestPow(t *testing.T) {
	cases := []struct {
		f        Fraction
		exp      int64
		expected Fraction
	}{
		{Must(New(2, 3)), 0, One},
		{Must(New(2, 3)), 1, Must(New(2, 3))},
		{Must(New(2, 3)), 3, Must(New(8, 27))},
		{Must(New(-2, 3)), 3, Must(New(-8, 27))},
		{Must(New(-2, 3)), -2, Must(New(9, 4))},
		{FromInt(2), 62, FromInt(1 << 62)},
		{One, math.MaxInt64, One},
		{One.Negate(), math.MinInt64, One},
		{Zero, 5, Zero},
	}
	for _, c := range cases {
		got, err := c.f.Pow(c.exp)
		require.NoError(t, err, "%v^%d", c.f, c.exp)
		require.Equal(t, c.expected, got, "%v^%d", c.f, c.exp)
	}

	_, err := Zero.Pow(-1)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = FromInt(2).Pow(63)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestMod(t *testing.T) {
	cases := []struct {
		f, o, expected Fraction
	}{
		{FromInt(7), FromInt(3), FromInt(1)},
		{FromInt(-7), FromInt(3), FromInt(2)},
		{FromInt(7), FromInt(-3), FromInt(1)},
		{Must(New(7, 2)), One, Must(New(1, 2))},
		{Must(New(-1, 3)), One, Must(New(2, 3))},
		{Must(New(3, 4)), Must(New(1, 3)), Must(New(1, 12))},
	}
	for _, c := range cases {
		got, err := c.f.Mod(c.o)
		require.NoError(t, err)
		require.Equal(t, c.expected, got, "%v mod %v", c.f, c.o)
	}

	_, err := One.Mod(Zero)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestModLargeQuotient(t *testing.T) {
	cases := []struct {
		f, o, expected Fraction
	}{
		{FromInt(math.MaxInt64), Must(New(1, 2)), Zero},
		{Must(New(math.MaxInt64, 2)), Must(New(1, 3)), Must(New(1, 6))},
		{Must(New(-math.MaxInt64, 2)), Must(New(math.MaxInt64, 3)), Must(New(math.MaxInt64, 6))},
	}
	for _, c := range cases {
		got, err := c.f.Mod(c.o)
		require.NoError(t, err, "%v mod %v", c.f, c.o)
		require.Equal(t, c.expected, got, "%v mod %v", c.f, c.o)
	}
}

func TestSignAbs(t *testing.T) {
	require.Equal(t, -1, Must(New(1, -2)).Sign())
	require.Equal(t, 0, Zero.Sign())
	require.Equal(t, 1, Must(New(-1, -2)).Sign())
	require.Equal(t, Must(New(1, 2)), Must(New(-1, 2)).Abs())
	require.True(t, Zero.IsZero())
	require.False(t, One.IsZero())
}

func TestFloat(t *testing.T) {
	require.InDelta(t, 0.5, Must(New(1, 2)).Float(), 1e-12)
	require.InDelta(t, -1.4, Must(New(35, -25)).Float(), 1e-12)
}
