package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/entity"
	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/workflow"
	"github.com/google/uuid"
)

// Translate implements port.RoleDirectory. Codes are matched
// case-insensitively against their canonical upper-case form.
func (c *Catalog) Translate(code string) (entity.Role, bool) {
	role, ok := c.roleCodes[strings.ToUpper(code)]
	return role, ok
}

// Get implements port.DepartmentDirectory
func (c *Catalog) Get(ctx context.Context, id uuid.UUID) (*entity.Department, error) {
	dept, ok := c.deptByID[id]
	if !ok {
		return nil, fmt.Errorf("department %s not in catalog", id)
	}
	return dept, nil
}

// List implements port.DepartmentDirectory
func (c *Catalog) List(ctx context.Context) ([]*entity.Department, error) {
	return c.departments, nil
}

// Definitions implements port.WorkflowCatalog. Catalog order is preserved:
// the matcher's first-match rule depends on it.
func (c *Catalog) Definitions(ctx context.Context) ([]*workflow.Definition, error) {
	return c.definitions, nil
}
