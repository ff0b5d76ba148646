package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/opsledger/blobstore"
	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/querycache"
	"github.com/blogem/opsledger/userctx"
)

// Cache scopes, one per entity. Mutations invalidate their own scope and
// the dashboard, which aggregates counts over most of them.
const (
	scopePPE                   = "ppe_requirements"
	scopeFoodSafetyPlans       = "food_safety_plans"
	scopeRecallPlans           = "recall_plans"
	scopeRecallEvents          = "recall_events"
	scopeDocuments             = "documents"
	scopeRecurringJournals     = "recurring_journals"
	scopeProductionRuns        = "production_runs"
	scopeContractorOrientation = "contractor_orientations"
	scopeDrugTests             = "drug_tests"
	scopeOSHA                  = "osha_entries"
	scopeSpillReports          = "spill_reports"
	scopeApprovalTiers         = "approval_tiers"
	scopeDashboard             = "dashboard"
)

// ErrNoOrganization is returned when a tenant-scoped call has no organization in context
var ErrNoOrganization = fmt.Errorf("%w: no organization selected", models.ErrForbidden)

// Deps are the shared collaborators handed to every service
type Deps struct {
	Cache  *querycache.Cache
	Logger *zap.Logger
	Blobs  blobstore.Store
	Now    func() time.Time
}

// base carries the shared collaborators of a tenant-scoped service
type base struct {
	cache  *querycache.Cache
	logger *zap.Logger
	now    func() time.Time
	scope  string
}

func newBase(deps Deps, scope string) base {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return base{cache: deps.Cache, logger: logger, now: now, scope: scope}
}

// org returns the caller's organization
func (b *base) org(ctx context.Context) (int, error) {
	orgID, ok := userctx.GetOrganizationID(ctx)
	if !ok {
		return 0, ErrNoOrganization
	}
	return orgID, nil
}

func (b *base) key(orgID int, op string, params any) querycache.Key {
	return querycache.NewKey(orgID, b.scope, op, params)
}

// invalidate drops cached reads of the service's scope and the dashboard
func (b *base) invalidate(orgID int) {
	b.cache.Invalidate(orgID, b.scope)
	b.cache.Invalidate(orgID, scopeDashboard)
}

// today is the current date at midnight UTC, matching how dates are stored
func (b *base) today() time.Time {
	n := b.now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

// fail logs unexpected backend errors and wraps err with msg.
// Not found, conflicts and validation problems are caller errors and are not logged.
func (b *base) fail(ctx context.Context, msg string, err error, fields ...zap.Field) error {
	var validation models.ValidationErrors
	if !errors.Is(err, models.ErrNotFound) && !errors.Is(err, models.ErrConflict) &&
		!errors.Is(err, models.ErrForbidden) && !errors.As(err, &validation) &&
		!errors.Is(err, context.Canceled) {
		fields = append(fields,
			zap.String("scope", b.scope),
			zap.String("user", userctx.GetUserEmail(ctx)),
			zap.Error(err))
		if orgID, ok := userctx.GetOrganizationID(ctx); ok {
			fields = append(fields, zap.Int("org_id", orgID))
		}
		b.logger.Error(msg, fields...)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// invalid converts form messages into a ValidationErrors error, or nil
func invalid(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return models.NewValidationErrors(messages)
}

// badInput reports a single validation message
func badInput(format string, args ...interface{}) error {
	return models.NewValidationErrors([]string{fmt.Sprintf(format, args...)})
}

func validID(id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid ID %d", models.ErrNotFound, id)
	}
	return nil
}

// listAll pages through a list query so aggregates are not cut off at the page size limit
func listAll[T any](fetch func(opts models.ListOptions) ([]T, error)) ([]T, error) {
	var all []T
	for offset := 0; ; offset += models.MaxListLimit {
		page, err := fetch(models.ListOptions{Limit: models.MaxListLimit, Offset: offset})
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < models.MaxListLimit {
			return all, nil
		}
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}
