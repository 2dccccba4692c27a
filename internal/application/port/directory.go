package port

import (
	"context"

	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/entity"
	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/workflow"
	"github.com/google/uuid"
)

// RoleDirectory is the read-only mapping from role-directory codes to role
// identifiers, maintained outside the engine
type RoleDirectory interface {
	Translate(code string) (entity.Role, bool)
}

// DepartmentDirectory is the read-only department list
type DepartmentDirectory interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Department, error)
	List(ctx context.Context) ([]*entity.Department, error)
}

// WorkflowCatalog is the read-only, time-ordered workflow-definition catalog.
// Definitions returned must be treated as immutable snapshots.
type WorkflowCatalog interface {
	Definitions(ctx context.Context) ([]*workflow.Definition, error)
}
