package entity

import "github.com/google/uuid"

// User is a read-only snapshot of an employee as seen by the engine.
// Roles is never empty for a persisted user; SalaryRank is the code of the
// user's current salary scale.
type User struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Roles        []Role    `json:"roles"`
	SalaryRank   string    `json:"salary_rank"`
	DepartmentID uuid.UUID `json:"department_id"`

	// AssignedDepartmentIDs scopes accountant-type roles to specific
	// departments. Empty means the user's own department only.
	AssignedDepartmentIDs []uuid.UUID `json:"assigned_department_ids,omitempty"`

	// DefaultUnitPrice backs PIECEWORK attendance entries that do not carry
	// their own unit price.
	DefaultUnitPrice float64 `json:"default_unit_price,omitempty"`

	// ProbationRate is a percentage (0-100]. 100 or 0 means not on probation.
	ProbationRate float64 `json:"probation_rate,omitempty"`
}

// HasRole returns true if the user holds the given role
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole returns true if the user holds at least one of the given roles
func (u *User) HasAnyRole(roles []Role) bool {
	for _, r := range roles {
		if u.HasRole(r) {
			return true
		}
	}
	return false
}
