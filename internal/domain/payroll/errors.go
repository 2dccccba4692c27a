package payroll

import "errors"

var (
	// ErrNoStandardDays is returned when the month's standard work day count
	// is zero or negative
	ErrNoStandardDays = errors.New("standard work days must be positive")

	// ErrMissingBaseSalary is returned when a branch needs the monthly base
	// salary record and none was supplied
	ErrMissingBaseSalary = errors.New("monthly base salary record required")

	// ErrUnknownAttendanceType is returned for an attendance type outside the
	// fixed set
	ErrUnknownAttendanceType = errors.New("unknown attendance type")
)
