package workflow

import "github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/entity"

// StatusResolver computes the next pending status for a record. The two
// implementations cover the two generations of workflow configuration: the
// versioned catalog Definition and the legacy flat ApprovalStep list. Both
// apply the same rule: a step whose role the beneficiary already holds is
// self-satisfied and skipped.
type StatusResolver interface {
	// NextStatus returns the status that follows current for the given
	// beneficiary. Terminal statuses are returned unchanged. A nil
	// beneficiary holds no roles, so no step is self-satisfied. The result
	// is a pure function of its inputs; calling it twice with the same
	// arguments yields the same status.
	NextStatus(beneficiary *entity.User, current RecordStatus) RecordStatus
}

// DefinitionResolver resolves statuses against a catalog Definition
type DefinitionResolver struct {
	Definition *Definition
}

// NewResolver wraps a matched Definition in a StatusResolver. A nil
// definition means no policy gates the record: every status resolves to
// APPROVED.
func NewResolver(def *Definition) StatusResolver {
	return DefinitionResolver{Definition: def}
}

// NewLegacyResolver wraps a flat step list in a StatusResolver
func NewLegacyResolver(steps []ApprovalStep) StatusResolver {
	return LegacyResolver{Steps: steps}
}

func (r DefinitionResolver) NextStatus(beneficiary *entity.User, current RecordStatus) RecordStatus {
	if current.IsTerminal() {
		return current
	}
	if r.Definition == nil {
		return StatusApproved
	}

	// Approver steps first, auditor review after. Auditors follow the same
	// role-to-status mapping and self-satisfaction rule as approvers.
	sequence := make([]entity.Role, 0, len(r.Definition.ApproverRoles)+len(r.Definition.AuditorRoles))
	sequence = append(sequence, r.Definition.ApproverRoles...)
	sequence = append(sequence, r.Definition.AuditorRoles...)

	start := 0
	if current != StatusDraft {
		role, ok := RequiredRole(current)
		if !ok {
			return StatusApproved
		}
		// Resume strictly after the step the current status belongs to. A
		// role no longer present in the sequence means the configuration
		// changed underneath the record; the remaining steps are treated as
		// exhausted rather than replayed.
		start = len(sequence)
		for i, r := range sequence {
			if r == role {
				start = i + 1
				break
			}
		}
	}

	for i := start; i < len(sequence); i++ {
		status, ok := StatusForRole(sequence[i])
		if !ok {
			continue
		}
		if beneficiary != nil && beneficiary.HasRole(sequence[i]) {
			continue
		}
		return status
	}
	return StatusApproved
}

// LegacyResolver resolves statuses against the flat ApprovalStep list
type LegacyResolver struct {
	Steps []ApprovalStep
}

func (r LegacyResolver) NextStatus(beneficiary *entity.User, current RecordStatus) RecordStatus {
	if current.IsTerminal() {
		return current
	}

	start := 0
	if current != StatusDraft {
		start = len(r.Steps)
		for i, step := range r.Steps {
			if step.Status == current {
				start = i + 1
				break
			}
		}
	}

	for i := start; i < len(r.Steps); i++ {
		if beneficiary != nil && beneficiary.HasRole(r.Steps[i].Role) {
			continue
		}
		return r.Steps[i].Status
	}
	return StatusApproved
}
