package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AttendanceType classifies how a day of work is measured and paid
type AttendanceType string

const (
	AttendanceTime      AttendanceType = "TIME"
	AttendancePiecework AttendanceType = "PIECEWORK"
	AttendanceDaily     AttendanceType = "DAILY"
	AttendanceHoliday   AttendanceType = "HOLIDAY"
	AttendancePaidLeave AttendanceType = "PAID_LEAVE"
	AttendanceMode      AttendanceType = "MODE"
)

var validAttendanceTypes = map[AttendanceType]bool{
	AttendanceTime:      true,
	AttendancePiecework: true,
	AttendanceDaily:     true,
	AttendanceHoliday:   true,
	AttendancePaidLeave: true,
	AttendanceMode:      true,
}

// IsValid returns true if the attendance type is part of the fixed set
func (t AttendanceType) IsValid() bool {
	return validAttendanceTypes[t]
}

// IsPaidLeave returns true for categories paid at one standard day of base salary
func (t AttendanceType) IsPaidLeave() bool {
	return t == AttendanceHoliday || t == AttendancePaidLeave || t == AttendanceMode
}

// AttendanceRecord is one day's attendance entry for a user
type AttendanceRecord struct {
	ID     uuid.UUID      `json:"id"`
	UserID uuid.UUID      `json:"user_id"`
	Date   time.Time      `json:"date"`
	Type   AttendanceType `json:"type"`

	// TIME entries
	HoursWorked float64 `json:"hours_worked,omitempty"`

	// PIECEWORK entries. UnitPrice zero means fall back to the user's default.
	OutputQuantity float64 `json:"output_quantity,omitempty"`
	UnitPrice      float64 `json:"unit_price,omitempty"`

	// DAILY entries carry a flat catalog price resolved by the host
	DailyUnitPrice decimal.Decimal `json:"daily_unit_price,omitempty"`

	// Overtime, either output-based or time-based. Rate zero means the
	// standard default applies.
	OvertimeOutput float64 `json:"overtime_output,omitempty"`
	OvertimeHours  float64 `json:"overtime_hours,omitempty"`
	OvertimeRate   float64 `json:"overtime_rate,omitempty"`
}
