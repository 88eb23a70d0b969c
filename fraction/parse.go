package fraction

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a Fraction in any of these forms:
//
//	n  n/d  (n/d)  -(n/d)  (w+(n/d))  -(w+(n/d))
//
// The bare forms take signed integers; inside parentheses the integers are
// unsigned and the sign goes in front. The result is normalized, so "2/4"
// and "(1/2)" parse to the same value.
func Parse(s string) (Fraction, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return Fraction{}, fmt.Errorf("%w: empty input", ErrSyntax)
	}

	neg := false
	body := in
	if strings.HasPrefix(body, "-(") {
		neg = true
		body = body[1:]
	}

	if !strings.HasPrefix(body, "(") {
		return parseRatio(in, body, true)
	}

	inner, ok := unwrap(body)
	if !ok {
		return Fraction{}, syntaxError(in)
	}

	var (
		f   Fraction
		err error
	)
	if whole, rest, mixed := strings.Cut(inner, "+"); mixed {
		f, err = parseMixed(in, whole, rest)
	} else {
		f, err = parseRatio(in, inner, false)
	}
	if err != nil {
		return Fraction{}, err
	}
	if neg {
		f = f.Negate()
	}
	return f, nil
}

// parseMixed reads "w+(n/d)" with w, n and d unsigned.
func parseMixed(in, whole, rest string) (Fraction, error) {
	w, err := parseInt(in, whole, false)
	if err != nil {
		return Fraction{}, err
	}
	part, ok := unwrap(rest)
	if !ok {
		return Fraction{}, syntaxError(in)
	}
	p, err := parseRatio(in, part, false)
	if err != nil {
		return Fraction{}, err
	}
	wf, err := New(w, 1)
	if err != nil {
		return Fraction{}, err
	}
	return wf.TryPlus(p)
}

// parseRatio reads "n" or "n/d".
func parseRatio(in, s string, signed bool) (Fraction, error) {
	numStr, denStr, hasDen := strings.Cut(s, "/")
	num, err := parseInt(in, numStr, signed)
	if err != nil {
		return Fraction{}, err
	}
	den := int64(1)
	if hasDen {
		if den, err = parseInt(in, denStr, signed); err != nil {
			return Fraction{}, err
		}
	}
	return New(num, den)
}

func parseInt(in, s string, signed bool) (int64, error) {
	if s == "" {
		return 0, syntaxError(in)
	}
	if !signed && (s[0] == '-' || s[0] == '+') {
		return 0, syntaxError(in)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrOverflow, in)
		}
		return 0, syntaxError(in)
	}
	return v, nil
}

// unwrap strips one pair of enclosing parentheses.
func unwrap(s string) (string, bool) {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return "", false
	}
	return s[1 : len(s)-1], true
}

func syntaxError(in string) error {
	return fmt.Errorf("%w: %q", ErrSyntax, in)
}
