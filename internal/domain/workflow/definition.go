package workflow

import (
	"time"

	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/entity"
)

// ContentCategory classifies the kind of record a workflow applies to
type ContentCategory string

const (
	CategoryAttendance ContentCategory = "ATTENDANCE"
	CategoryEvaluation ContentCategory = "EVALUATION"
	CategorySalary     ContentCategory = "SALARY"
)

var validCategories = map[ContentCategory]bool{
	CategoryAttendance: true,
	CategoryEvaluation: true,
	CategorySalary:     true,
}

// IsValid returns true if the category is part of the fixed set
func (c ContentCategory) IsValid() bool {
	return validCategories[c]
}

// Definition is one catalog entry describing who signs off on a category of
// record during its effective window. Definitions are configuration: the
// engine reads them, it never creates or edits them.
type Definition struct {
	ID            string          `json:"id"`
	Category      ContentCategory `json:"category"`
	EffectiveFrom time.Time       `json:"effective_from"`
	// EffectiveTo nil means the definition is open-ended
	EffectiveTo *time.Time `json:"effective_to,omitempty"`

	// ApproverRoles is the ordered step sequence; ordering is significant
	ApproverRoles []entity.Role `json:"approver_roles"`
	// AuditorRoles review after every approver step is satisfied
	AuditorRoles []entity.Role `json:"auditor_roles,omitempty"`

	// SalaryRanks, when non-empty, restricts the definition to beneficiaries
	// on one of the listed salary scales
	SalaryRanks []string `json:"salary_ranks,omitempty"`
	// InitiatorRoleCodes, when non-empty, restricts the definition to
	// beneficiaries holding one of the listed role-directory codes
	InitiatorRoleCodes []string `json:"initiator_role_codes,omitempty"`
}

// ActiveAt returns true if the reference date falls inside the effective window
func (d *Definition) ActiveAt(at time.Time) bool {
	if at.Before(d.EffectiveFrom) {
		return false
	}
	if d.EffectiveTo != nil && at.After(*d.EffectiveTo) {
		return false
	}
	return true
}

// Declares returns true if the role appears in the approver or auditor lists
func (d *Definition) Declares(role entity.Role) bool {
	for _, r := range d.ApproverRoles {
		if r == role {
			return true
		}
	}
	for _, r := range d.AuditorRoles {
		if r == role {
			return true
		}
	}
	return false
}

// ApprovalStep is the legacy flat workflow form: one role paired with the
// status a record enters when it reaches that step. Retained for definitions
// created before the catalog existed.
type ApprovalStep struct {
	Role   entity.Role  `json:"role"`
	Status RecordStatus `json:"status"`
}
