package workflow

import "github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/entity"

// RecordStatus represents a record's position in the approval lifecycle
type RecordStatus string

const (
	StatusDraft                RecordStatus = "DRAFT"
	StatusPendingManager       RecordStatus = "PENDING_MANAGER"
	StatusPendingBlockDirector RecordStatus = "PENDING_BLOCK_DIRECTOR"
	StatusPendingBoard         RecordStatus = "PENDING_BOARD"
	StatusPendingHR            RecordStatus = "PENDING_HR"
	StatusApproved             RecordStatus = "APPROVED"
	StatusRejected             RecordStatus = "REJECTED"
)

// statusRank orders the forward path DRAFT → … → APPROVED. REJECTED sits
// outside the ordering; it is reachable from any pending status.
var statusRank = map[RecordStatus]int{
	StatusDraft:                0,
	StatusPendingManager:       1,
	StatusPendingBlockDirector: 2,
	StatusPendingBoard:         3,
	StatusPendingHR:            4,
	StatusApproved:             5,
}

// IsValid returns true if the status is a valid lifecycle status
func (s RecordStatus) IsValid() bool {
	if s == StatusRejected {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

// IsTerminal returns true if no further transition is allowed from the status
func (s RecordStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// IsPending returns true if the status is waiting on a specific role
func (s RecordStatus) IsPending() bool {
	_, ok := RequiredRole(s)
	return ok
}

// Rank returns the status position on the forward path. REJECTED and unknown
// statuses report -1.
func (s RecordStatus) Rank() int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return -1
}

// String returns the string representation of the status
func (s RecordStatus) String() string {
	return string(s)
}

// StatusForRole maps an approver or auditor role to the pending status a
// record enters while waiting on that role. Roles that never gate a step
// (ADMIN, PAYROLL_ACCOUNTANT, STAFF) report false.
func StatusForRole(role entity.Role) (RecordStatus, bool) {
	switch role {
	case entity.RoleManager:
		return StatusPendingManager, true
	case entity.RoleBlockDirector:
		return StatusPendingBlockDirector, true
	case entity.RoleBoard:
		return StatusPendingBoard, true
	case entity.RoleHR:
		return StatusPendingHR, true
	case entity.RoleAdmin, entity.RolePayrollAccountant, entity.RoleStaff:
		return "", false
	default:
		return "", false
	}
}

// RequiredRole maps a pending status to the single role that must act on it
func RequiredRole(status RecordStatus) (entity.Role, bool) {
	switch status {
	case StatusPendingManager:
		return entity.RoleManager, true
	case StatusPendingBlockDirector:
		return entity.RoleBlockDirector, true
	case StatusPendingBoard:
		return entity.RoleBoard, true
	case StatusPendingHR:
		return entity.RoleHR, true
	case StatusDraft, StatusApproved, StatusRejected:
		return "", false
	default:
		return "", false
	}
}
