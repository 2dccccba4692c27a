package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Department holds the organizational unit and its responsible users.
// ManagerID, BlockDirectorID and HRInChargeID are weak references resolved
// against the user directory by the host; a zero UUID means unassigned.
type Department struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	ManagerID       uuid.UUID       `json:"manager_id"`
	BlockDirectorID uuid.UUID       `json:"block_director_id"`
	HRInChargeID    uuid.UUID       `json:"hr_in_charge_id"`
	Budget          decimal.Decimal `json:"budget"`
}
