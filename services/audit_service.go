package services

import (
	"context"
	"fmt"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/repositories"
	"github.com/blogem/opsledger/userctx"
)

// DefaultAuditLimit is the number of audit entries returned when no limit is given
const DefaultAuditLimit = 100

// AuditService interface defines audit log access
type AuditService interface {
	// Recent lists the organization's newest entries; admins and owners only
	Recent(ctx context.Context, limit int) ([]models.AuditLogEntry, error)
}

type auditService struct {
	base
	repo repositories.AuditRepository
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditRepository, deps Deps) AuditService {
	return &auditService{base: newBase(deps, "audit_log"), repo: repo}
}

func (s *auditService) Recent(ctx context.Context, limit int) ([]models.AuditLogEntry, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if !models.RoleAtLeast(userctx.GetRole(ctx), models.RoleAdmin) {
		return nil, fmt.Errorf("%w: admin role required to read the audit log", models.ErrForbidden)
	}
	if limit <= 0 {
		limit = DefaultAuditLimit
	}
	if limit > models.MaxListLimit {
		limit = models.MaxListLimit
	}

	entries, err := s.repo.List(ctx, orgID, limit)
	if err != nil {
		return nil, s.fail(ctx, "failed to list audit log", err)
	}
	return entries, nil
}
