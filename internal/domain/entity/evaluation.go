package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EvaluationKind distinguishes KPI bonus points from penalty points
type EvaluationKind string

const (
	EvaluationBonus   EvaluationKind = "BONUS"
	EvaluationPenalty EvaluationKind = "PENALTY"
)

// EvaluationTarget names the pool a KPI delta is applied against
type EvaluationTarget string

const (
	// TargetKPIBase applies the percentage formula against the target base amount.
	TargetKPIBase EvaluationTarget = "KPI_BASE"
	// TargetReservedBonus draws raw, currency-denominated points from the
	// reserved bonus pool.
	TargetReservedBonus EvaluationTarget = "RESERVED_BONUS"
)

// EvaluationRecord is one KPI criterion entry for a user in a period
type EvaluationRecord struct {
	ID             uuid.UUID        `json:"id"`
	UserID         uuid.UUID        `json:"user_id"`
	Period         time.Time        `json:"period"`
	Kind           EvaluationKind   `json:"kind"`
	Target         EvaluationTarget `json:"target"`
	CriterionValue decimal.Decimal  `json:"criterion_value"`
	GroupWeight    decimal.Decimal  `json:"group_weight"`
}
