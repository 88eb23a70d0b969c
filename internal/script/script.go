// Package script reads and evaluates fraction scripts, one statement per line:
//
//	# comment
//	times 1/2 (1/3)
//	pow -(2/3) 3
//
// Operands are anything fraction.Parse accepts and must not contain spaces.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aatomu/fraction/fraction"
)

// Op names a statement's operation.
type Op string

// Known ops and their operands. compare yields the sign of x-y.
const (
	OpShow    Op = "show"    // show x
	OpTimes   Op = "times"   // times x y
	OpPlus    Op = "plus"    // plus x y
	OpMinus   Op = "minus"   // minus x y
	OpDivide  Op = "divide"  // divide x y
	OpInverse Op = "inverse" // inverse x
	OpNegate  Op = "negate"  // negate x
	OpPow     Op = "pow"     // pow x n, n an integer
	OpMod     Op = "mod"     // mod x y, 0 <= result < |y|
	OpCompare Op = "compare" // compare x y
)

// arity is the operand count of every known op.
var arity = map[Op]int{
	OpShow:    1,
	OpTimes:   2,
	OpPlus:    2,
	OpMinus:   2,
	OpDivide:  2,
	OpInverse: 1,
	OpNegate:  1,
	OpPow:     2,
	OpMod:     2,
	OpCompare: 2,
}

// Errors wrapped by LineError and Evaluate. Match them with errors.Is.
var (
	// ErrUnknownOp is returned for a statement whose op is not listed above.
	ErrUnknownOp = errors.New("unknown operation")
	// ErrArity is returned when a statement has too many or too few operands.
	ErrArity = errors.New("wrong number of operands")
	// ErrExponent is returned when the exponent of pow has a denominator.
	ErrExponent = errors.New("exponent is not an integer")
)

// Statement is one parsed script line.
type Statement struct {
	Line int
	Text string
	Op   Op
	Args []fraction.Fraction
}

// LineError reports a statement that could not be parsed.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ParseLine parses a single line. ok is false for blank and comment lines.
func ParseLine(line int, text string) (st Statement, ok bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "#") {
		return Statement{}, false, nil
	}

	fail := func(err error) (Statement, bool, error) {
		return Statement{}, false, &LineError{Line: line, Text: text, Err: err}
	}

	fields := strings.Fields(text)
	op := Op(strings.ToLower(fields[0]))
	n, known := arity[op]
	if !known {
		return fail(fmt.Errorf("%w %q", ErrUnknownOp, fields[0]))
	}
	if len(fields)-1 != n {
		return fail(fmt.Errorf("%w: %s takes %d, got %d", ErrArity, op, n, len(fields)-1))
	}

	args := make([]fraction.Fraction, 0, n)
	for _, field := range fields[1:] {
		f, err := fraction.Parse(field)
		if err != nil {
			return fail(err)
		}
		args = append(args, f)
	}
	if op == OpPow && !args[1].IsInteger() {
		return fail(fmt.Errorf("%w: %s", ErrExponent, args[1]))
	}

	return Statement{Line: line, Text: text, Op: op, Args: args}, true, nil
}

// Parse reads every statement from r. It stops at the first bad line.
func Parse(r io.Reader) ([]Statement, error) {
	var stmts []Statement

	sc := bufio.NewScanner(r)
	for ln := 1; sc.Scan(); ln++ {
		st, ok, err := ParseLine(ln, sc.Text())
		if err != nil {
			return nil, err
		}
		if ok {
			stmts = append(stmts, st)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return stmts, nil
}

// Evaluate computes a single statement. compare yields -1, 0 or 1 as a
// Fraction. Overflow is returned as an error, never a panic.
func Evaluate(st Statement) (fraction.Fraction, error) {
	n, known := arity[st.Op]
	if !known {
		return fraction.Fraction{}, fmt.Errorf("%w %q", ErrUnknownOp, st.Op)
	}
	if len(st.Args) != n {
		return fraction.Fraction{}, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, st.Op, n, len(st.Args))
	}

	a := st.Args[0]
	switch st.Op {
	case OpShow:
		return a, nil
	case OpTimes:
		return a.TryTimes(st.Args[1])
	case OpPlus:
		return a.TryPlus(st.Args[1])
	case OpMinus:
		return a.TryMinus(st.Args[1])
	case OpDivide:
		return a.DivideBy(st.Args[1])
	case OpInverse:
		return a.Inverse()
	case OpNegate:
		return a.Negate(), nil
	case OpPow:
		if !st.Args[1].IsInteger() {
			return fraction.Fraction{}, fmt.Errorf("%w: %s", ErrExponent, st.Args[1])
		}
		return a.Pow(st.Args[1].Numerator())
	case OpMod:
		return a.Mod(st.Args[1])
	case OpCompare:
		return fraction.FromInt(int64(a.Compare(st.Args[1]))), nil
	}
	panic("unreachable")
}
