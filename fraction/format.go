package fraction

import (
	"fmt"
	"strconv"
)

// String renders f for display:
//
//	2/1   -> "2"
//	2/3   -> "(2/3)"
//	-2/5  -> "-(2/5)"
//	-7/5  -> "-(1+(2/5))"
//
// Improper fractions are shown as a whole part plus a proper remainder.
// Parse accepts every form String produces.
func (f Fraction) String() string {
	den := f.Denominator()
	if den == 1 {
		return strconv.FormatInt(f.num, 10)
	}

	sign := ""
	if f.num < 0 {
		sign = "-"
	}
	num := abs(f.num)

	if num > den {
		return fmt.Sprintf("%s(%d+(%d/%d))", sign, num/den, num%den, den)
	}
	return fmt.Sprintf("%s(%d/%d)", sign, num, den)
}

// RatString renders f as "num/den", or "num" when f is an integer.
func (f Fraction) RatString() string {
	if f.IsInteger() {
		return strconv.FormatInt(f.num, 10)
	}
	return strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.Denominator(), 10)
}

// Format implements fmt.Formatter.
//
//	%v %s  String
//	%q     quoted String
//	%r     RatString
//	%e %f %g (and upper case)  Float, with flags, width and precision
func (f Fraction) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		fmt.Fprintf(s, fmt.FormatString(s, 's'), f.String())
	case 'q':
		fmt.Fprintf(s, fmt.FormatString(s, 'q'), f.String())
	case 'r':
		fmt.Fprintf(s, fmt.FormatString(s, 's'), f.RatString())
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(s, fmt.FormatString(s, verb), f.Float())
	default:
		fmt.Fprintf(s, "%%!%c(fraction.Fraction=%s)", verb, f.RatString())
	}
}
