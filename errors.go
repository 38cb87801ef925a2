package contfrac

import "errors"

// Errors returned by this package. Use [errors.Is] to test for them,
// as most call sites wrap them with additional context.
var (
	// Returned when a numeric input is ill-defined: a ratio with a zero
	// denominator, a NaN or infinite float, a nil rational, or a negative
	// convergent grade.
	ErrInvalidInput = errors.New("contfrac: invalid input")

	// Returned when a convergent grade beyond the end of a finite
	// expansion is requested.
	ErrOutOfRange = errors.New("contfrac: convergent grade out of range")

	// Returned when evaluating a coefficient sequence runs into a zero
	// divisor, e.g. for a sequence ending in zero like [1, 0].
	ErrZeroDivision = errors.New("contfrac: division by zero")
)
