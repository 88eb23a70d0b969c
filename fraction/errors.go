package fraction

import "errors"

// Errors returned by this package. Callers should match them with errors.Is,
// since they are usually wrapped with the offending operands.
var (
	// ErrInvalidArgument is returned whenever a denominator would be zero.
	ErrInvalidArgument = errors.New("fraction: invalid argument")
	// ErrOverflow is returned when a result does not fit in 64 bits.
	ErrOverflow = errors.New("fraction: overflow")
	// ErrSyntax is returned by Parse for malformed input.
	ErrSyntax = errors.New("fraction: invalid syntax")
)
