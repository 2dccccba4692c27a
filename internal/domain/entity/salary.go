package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlySalary is the month's salary baseline for a user, maintained by the
// payroll host and read-only to the engine
type MonthlySalary struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	Month           time.Time       `json:"month"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	KPITargetBase   decimal.Decimal `json:"kpi_target_base"`
	ReservedBonus   decimal.Decimal `json:"reserved_bonus"`
	InsuranceSalary decimal.Decimal `json:"insurance_salary"`
}
