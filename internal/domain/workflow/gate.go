package workflow

import "github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/entity"

// CanApprove decides whether the actor may act on a record sitting at the
// given pending status inside the given department. Denial is an expected
// outcome and is reported as false, never as an error.
//
// Rules, in order: ADMIN is always authorized. The status must map to a
// required role the actor holds. The required role must be declared in the
// matched definition's approver or auditor lists, so a policy that never
// involves a role cannot be acted on by it. Finally the role must be in
// scope for the department.
func CanApprove(actor *entity.User, status RecordStatus, dept *entity.Department, def *Definition, all []*entity.Department) bool {
	if actor == nil || dept == nil {
		return false
	}
	if actor.HasRole(entity.RoleAdmin) {
		return true
	}

	role, ok := RequiredRole(status)
	if !ok {
		return false
	}
	if !actor.HasRole(role) {
		return false
	}
	if def == nil || !def.Declares(role) {
		return false
	}
	return RoleInScope(actor, role, dept, all)
}

// RoleInScope applies the role-to-department scoping rules: a manager only
// acts for the department they manage, a block director or HR only for
// departments recorded under them, BOARD spans all departments, and an
// accountant is scoped to their explicitly assigned departments or, absent
// an assignment list, their own primary department.
func RoleInScope(actor *entity.User, role entity.Role, dept *entity.Department, all []*entity.Department) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleBoard:
		return true
	case entity.RoleManager:
		return dept.ManagerID == actor.ID
	case entity.RoleBlockDirector:
		for _, d := range all {
			if d.ID == dept.ID && d.BlockDirectorID == actor.ID {
				return true
			}
		}
		return false
	case entity.RoleHR:
		for _, d := range all {
			if d.ID == dept.ID && d.HRInChargeID == actor.ID {
				return true
			}
		}
		return false
	case entity.RolePayrollAccountant:
		if len(actor.AssignedDepartmentIDs) > 0 {
			for _, id := range actor.AssignedDepartmentIDs {
				if id == dept.ID {
					return true
				}
			}
			return false
		}
		return actor.DepartmentID == dept.ID
	default:
		return false
	}
}
