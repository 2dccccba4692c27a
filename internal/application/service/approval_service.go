package service

import (
	"context"
	"fmt"
	"time"

	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/application/port"
	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/entity"
	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/workflow"
	"github.com/google/uuid"
)

// Logger interface for minimal logging dependency
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// ApprovalService resolves approval steps and authorization decisions for
// records requiring sign-off. It composes the catalog matcher, the status
// resolver and the authorization gate over the read-only directories; it
// never persists anything itself.
type ApprovalService interface {
	// Resolve returns the next status for the beneficiary's record in the
	// given category. When no definition covers the category and date, no
	// policy gates the record and it resolves to APPROVED.
	Resolve(ctx context.Context, beneficiary *entity.User, category workflow.ContentCategory, at time.Time, current workflow.RecordStatus) (workflow.RecordStatus, error)

	// ResolveLegacy resolves against a pre-catalog flat step list
	ResolveLegacy(beneficiary *entity.User, steps []workflow.ApprovalStep, current workflow.RecordStatus) workflow.RecordStatus

	// Authorize reports whether the actor may act on a record at the given
	// pending status in the given department
	Authorize(ctx context.Context, actor, beneficiary *entity.User, category workflow.ContentCategory, at time.Time, departmentID uuid.UUID, status workflow.RecordStatus) (bool, error)
}

type approvalServiceImpl struct {
	catalog     port.WorkflowCatalog
	roles       port.RoleDirectory
	departments port.DepartmentDirectory
	logger      Logger
}

// NewApprovalService creates a new ApprovalService
func NewApprovalService(
	catalog port.WorkflowCatalog,
	roles port.RoleDirectory,
	departments port.DepartmentDirectory,
	logger Logger,
) ApprovalService {
	return &approvalServiceImpl{
		catalog:     catalog,
		roles:       roles,
		departments: departments,
		logger:      logger,
	}
}

func (s *approvalServiceImpl) Resolve(ctx context.Context, beneficiary *entity.User, category workflow.ContentCategory, at time.Time, current workflow.RecordStatus) (workflow.RecordStatus, error) {
	def, err := s.match(ctx, beneficiary, category, at)
	if err != nil {
		return current, err
	}

	next := workflow.NewResolver(def).NextStatus(beneficiary, current)
	s.logger.Info("Resolved next status",
		"user_id", beneficiary.ID,
		"category", category,
		"current", current,
		"next", next,
		"definition_id", definitionID(def))
	return next, nil
}

func (s *approvalServiceImpl) ResolveLegacy(beneficiary *entity.User, steps []workflow.ApprovalStep, current workflow.RecordStatus) workflow.RecordStatus {
	return workflow.NewLegacyResolver(steps).NextStatus(beneficiary, current)
}

func (s *approvalServiceImpl) Authorize(ctx context.Context, actor, beneficiary *entity.User, category workflow.ContentCategory, at time.Time, departmentID uuid.UUID, status workflow.RecordStatus) (bool, error) {
	def, err := s.match(ctx, beneficiary, category, at)
	if err != nil {
		return false, err
	}

	dept, err := s.departments.Get(ctx, departmentID)
	if err != nil {
		s.logger.Error("Failed to load department", "error", err, "department_id", departmentID)
		return false, fmt.Errorf("load department %s: %w", departmentID, err)
	}
	all, err := s.departments.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list departments", "error", err)
		return false, fmt.Errorf("list departments: %w", err)
	}

	allowed := workflow.CanApprove(actor, status, dept, def, all)
	s.logger.Info("Authorization decision",
		"actor_id", actor.ID,
		"status", status,
		"department_id", departmentID,
		"definition_id", definitionID(def),
		"allowed", allowed)
	return allowed, nil
}

func (s *approvalServiceImpl) match(ctx context.Context, beneficiary *entity.User, category workflow.ContentCategory, at time.Time) (*workflow.Definition, error) {
	defs, err := s.catalog.Definitions(ctx)
	if err != nil {
		s.logger.Error("Failed to load workflow catalog", "error", err)
		return nil, fmt.Errorf("load workflow catalog: %w", err)
	}
	return workflow.FindMatching(defs, category, beneficiary, s.roles, at), nil
}

func definitionID(def *workflow.Definition) string {
	if def == nil {
		return ""
	}
	return def.ID
}
