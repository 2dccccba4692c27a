package entity

// Role identifies a position a user can hold within the organization
type Role string

const (
	RoleAdmin             Role = "ADMIN"
	RoleBoard             Role = "BOARD"
	RoleBlockDirector     Role = "BLOCK_DIRECTOR"
	RoleManager           Role = "MANAGER"
	RoleHR                Role = "HR"
	RolePayrollAccountant Role = "PAYROLL_ACCOUNTANT"
	RoleStaff             Role = "STAFF"
)

var validRoles = map[Role]bool{
	RoleAdmin:             true,
	RoleBoard:             true,
	RoleBlockDirector:     true,
	RoleManager:           true,
	RoleHR:                true,
	RolePayrollAccountant: true,
	RoleStaff:             true,
}

// IsValid returns true if the role is part of the fixed role set
func (r Role) IsValid() bool {
	return validRoles[r]
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}
