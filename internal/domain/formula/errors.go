package formula

import "errors"

var (
	// ErrParse is returned when an expression is syntactically malformed
	ErrParse = errors.New("malformed expression")

	// ErrUnknownVariable is returned when an identifier is absent from the context
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrBadVariable is returned when a context value cannot be coerced to a finite number
	ErrBadVariable = errors.New("variable is not numeric")

	// ErrDivideByZero is returned when a divisor evaluates to exactly zero
	ErrDivideByZero = errors.New("division by zero")
)
