package workflow

import (
	"testing"

	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/entity"
	"github.com/google/uuid"
)

func TestCanApprove(t *testing.T) {
	managerID := uuid.New()
	directorID := uuid.New()
	hrID := uuid.New()
	otherID := uuid.New()

	dept := &entity.Department{
		ID:              uuid.New(),
		Name:            "Production A",
		ManagerID:       managerID,
		BlockDirectorID: directorID,
		HRInChargeID:    hrID,
	}
	otherDept := &entity.Department{
		ID:              uuid.New(),
		Name:            "Production B",
		ManagerID:       otherID,
		BlockDirectorID: otherID,
		HRInChargeID:    otherID,
	}
	all := []*entity.Department{dept, otherDept}

	fullDef := definitionWith([]entity.Role{
		entity.RoleManager,
		entity.RoleBlockDirector,
		entity.RoleBoard,
		entity.RoleHR,
	}, nil)
	managerOnlyDef := definitionWith([]entity.Role{entity.RoleManager}, nil)

	tests := []struct {
		name     string
		actor    *entity.User
		status   RecordStatus
		dept     *entity.Department
		def      *Definition
		expected bool
	}{
		{
			name:     "admin always authorized",
			actor:    &entity.User{ID: otherID, Roles: []entity.Role{entity.RoleAdmin}},
			status:   StatusPendingBoard,
			dept:     dept,
			def:      managerOnlyDef,
			expected: true,
		},
		{
			name:     "manager of the department",
			actor:    &entity.User{ID: managerID, Roles: []entity.Role{entity.RoleManager}},
			status:   StatusPendingManager,
			dept:     dept,
			def:      fullDef,
			expected: true,
		},
		{
			name:     "manager of a different department",
			actor:    &entity.User{ID: managerID, Roles: []entity.Role{entity.RoleManager}},
			status:   StatusPendingManager,
			dept:     otherDept,
			def:      fullDef,
			expected: false,
		},
		{
			name:     "actor lacks the required role",
			actor:    &entity.User{ID: managerID, Roles: []entity.Role{entity.RoleManager}},
			status:   StatusPendingBoard,
			dept:     dept,
			def:      fullDef,
			expected: false,
		},
		{
			name:     "role not declared in the matched workflow",
			actor:    &entity.User{ID: hrID, Roles: []entity.Role{entity.RoleHR}},
			status:   StatusPendingHR,
			dept:     dept,
			def:      managerOnlyDef,
			expected: false,
		},
		{
			name:     "role declared as auditor counts",
			actor:    &entity.User{ID: hrID, Roles: []entity.Role{entity.RoleHR}},
			status:   StatusPendingHR,
			dept:     dept,
			def:      definitionWith([]entity.Role{entity.RoleManager}, []entity.Role{entity.RoleHR}),
			expected: true,
		},
		{
			name:     "block director of the department",
			actor:    &entity.User{ID: directorID, Roles: []entity.Role{entity.RoleBlockDirector}},
			status:   StatusPendingBlockDirector,
			dept:     dept,
			def:      fullDef,
			expected: true,
		},
		{
			name:     "block director of another department",
			actor:    &entity.User{ID: directorID, Roles: []entity.Role{entity.RoleBlockDirector}},
			status:   StatusPendingBlockDirector,
			dept:     otherDept,
			def:      fullDef,
			expected: false,
		},
		{
			name:     "HR in charge of the department",
			actor:    &entity.User{ID: hrID, Roles: []entity.Role{entity.RoleHR}},
			status:   StatusPendingHR,
			dept:     dept,
			def:      fullDef,
			expected: true,
		},
		{
			name:     "board spans all departments",
			actor:    &entity.User{ID: otherID, Roles: []entity.Role{entity.RoleBoard}},
			status:   StatusPendingBoard,
			dept:     dept,
			def:      fullDef,
			expected: true,
		},
		{
			name:     "no workflow matched denies",
			actor:    &entity.User{ID: managerID, Roles: []entity.Role{entity.RoleManager}},
			status:   StatusPendingManager,
			dept:     dept,
			def:      nil,
			expected: false,
		},
		{
			name:     "draft is not an actionable status",
			actor:    &entity.User{ID: managerID, Roles: []entity.Role{entity.RoleManager}},
			status:   StatusDraft,
			dept:     dept,
			def:      fullDef,
			expected: false,
		},
		{
			name:     "approved is not an actionable status",
			actor:    &entity.User{ID: managerID, Roles: []entity.Role{entity.RoleManager}},
			status:   StatusApproved,
			dept:     dept,
			def:      fullDef,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanApprove(tt.actor, tt.status, tt.dept, tt.def, all); got != tt.expected {
				t.Errorf("CanApprove() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRoleInScope_Accountant(t *testing.T) {
	deptA := &entity.Department{ID: uuid.New(), Name: "A"}
	deptB := &entity.Department{ID: uuid.New(), Name: "B"}
	all := []*entity.Department{deptA, deptB}

	assigned := &entity.User{
		ID:                    uuid.New(),
		Roles:                 []entity.Role{entity.RolePayrollAccountant},
		DepartmentID:          deptB.ID,
		AssignedDepartmentIDs: []uuid.UUID{deptA.ID},
	}
	unassigned := &entity.User{
		ID:           uuid.New(),
		Roles:        []entity.Role{entity.RolePayrollAccountant},
		DepartmentID: deptB.ID,
	}

	if !RoleInScope(assigned, entity.RolePayrollAccountant, deptA, all) {
		t.Error("accountant with explicit assignment should be in scope for the assigned department")
	}
	// An explicit assignment list replaces the primary-department rule.
	if RoleInScope(assigned, entity.RolePayrollAccountant, deptB, all) {
		t.Error("accountant with explicit assignment should not fall back to the primary department")
	}
	if !RoleInScope(unassigned, entity.RolePayrollAccountant, deptB, all) {
		t.Error("accountant without assignment list should cover their own department")
	}
	if RoleInScope(unassigned, entity.RolePayrollAccountant, deptA, all) {
		t.Error("accountant without assignment list should not cover other departments")
	}
}

func TestRoleInScope_StaffNeverInScope(t *testing.T) {
	dept := &entity.Department{ID: uuid.New()}
	staff := &entity.User{ID: uuid.New(), Roles: []entity.Role{entity.RoleStaff}, DepartmentID: dept.ID}
	if RoleInScope(staff, entity.RoleStaff, dept, []*entity.Department{dept}) {
		t.Error("STAFF has no approval scope")
	}
}
