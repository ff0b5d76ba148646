package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/userctx"
)

// ProductionRunRepository interface defines production run database operations
type ProductionRunRepository interface {
	List(ctx context.Context, orgID int, filter models.ProductionRunFilter) ([]models.ProductionRun, error)
	Count(ctx context.Context, orgID int, filter models.ProductionRunFilter) (int, error)
	GetByID(ctx context.Context, orgID, id int) (*models.ProductionRun, error)
	Create(ctx context.Context, run *models.ProductionRun) error
	Update(ctx context.Context, run *models.ProductionRun) error
	// UpdateCounts stores new totals only if they do not decrease and the stored status still equals from
	UpdateCounts(ctx context.Context, run *models.ProductionRun, from string) error
	// UpdateStatus stores run.Status (and timestamps) only if the stored status still equals from
	UpdateStatus(ctx context.Context, run *models.ProductionRun, from string) error
	Delete(ctx context.Context, orgID, id int) error
}

type productionRunRepository struct {
	db *sql.DB
}

// NewProductionRunRepository creates a new production run repository
func NewProductionRunRepository(db *sql.DB) ProductionRunRepository {
	return &productionRunRepository{db: db}
}

const productionRunColumns = `id, organization_id, line_name, product, sku, shift, status, target_count,
	good_count, reject_count, counter_device_id, started_at, ended_at, ` + auditColumns

var productionRunSortColumns = map[string]string{
	"line_name":  "line_name",
	"product":    "product",
	"status":     "status",
	"shift":      "shift",
	"started_at": "started_at",
	"created_at": "created_at",
}

func productionRunQuery(orgID int, filter models.ProductionRunFilter) *listQuery {
	q := newListQuery(orgID)
	q.whereEq("line_name", filter.LineName)
	q.whereEq("status", filter.Status)
	q.whereEq("shift", filter.Shift)
	q.search(filter.Search, "line_name", "product", "sku", "counter_device_id")
	return q
}

func scanProductionRun(row rowScanner) (*models.ProductionRun, error) {
	var run models.ProductionRun
	var startedAt, endedAt sql.NullTime
	var audit auditScan

	dest := []interface{}{
		&run.ID,
		&run.OrganizationID,
		&run.LineName,
		&run.Product,
		&run.SKU,
		&run.Shift,
		&run.Status,
		&run.TargetCount,
		&run.GoodCount,
		&run.RejectCount,
		&run.CounterDeviceID,
		&startedAt,
		&endedAt,
	}
	if err := row.Scan(append(dest, audit.dest()...)...); err != nil {
		return nil, err
	}

	run.StartedAt = timePtr(startedAt)
	run.EndedAt = timePtr(endedAt)
	audit.apply(&run.AuditFields)
	return &run, nil
}

// List retrieves the organization's production runs, newest first by default
func (r *productionRunRepository) List(ctx context.Context, orgID int, filter models.ProductionRunFilter) ([]models.ProductionRun, error) {
	query, args := productionRunQuery(orgID, filter).selectSQL(productionRunColumns, "production_runs",
		filter.ListOptions, productionRunSortColumns, "created_at DESC, id DESC")

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query production runs: %w", err)
	}
	defer rows.Close()

	runs := []models.ProductionRun{}
	for rows.Next() {
		run, err := scanProductionRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan production run: %w", err)
		}
		runs = append(runs, *run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating production runs: %w", err)
	}

	return runs, nil
}

// Count returns the number of runs matching the filter
func (r *productionRunRepository) Count(ctx context.Context, orgID int, filter models.ProductionRunFilter) (int, error) {
	return countRows(ctx, r.db, productionRunQuery(orgID, filter), "production_runs")
}

// GetByID retrieves a production run by ID
func (r *productionRunRepository) GetByID(ctx context.Context, orgID, id int) (*models.ProductionRun, error) {
	query := `SELECT ` + productionRunColumns + ` FROM production_runs WHERE organization_id = ? AND id = ?`

	run, err := scanProductionRun(r.db.QueryRowContext(ctx, query, orgID, id))
	if err == sql.ErrNoRows {
		return nil, notFound("production run", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get production run: %w", err)
	}

	return run, nil
}

// Create creates a new production run
func (r *productionRunRepository) Create(ctx context.Context, run *models.ProductionRun) error {
	query := `
		INSERT INTO production_runs (organization_id, line_name, product, sku, shift, status, target_count,
			good_count, reject_count, counter_device_id, started_at, ended_at, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	if run.Status == "" {
		run.Status = models.RunScheduled
	}
	stampCreated(ctx, &run.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		run.OrganizationID,
		run.LineName,
		run.Product,
		run.SKU,
		run.Shift,
		run.Status,
		run.TargetCount,
		run.GoodCount,
		run.RejectCount,
		run.CounterDeviceID,
		nullableTime(run.StartedAt),
		nullableTime(run.EndedAt),
		run.CreatedBy,
		run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create production run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	run.ID = int(id)
	return nil
}

// Update updates the planning fields of a production run. Counts and status have their own methods.
func (r *productionRunRepository) Update(ctx context.Context, run *models.ProductionRun) error {
	query := `
		UPDATE production_runs
		SET line_name = ?, product = ?, sku = ?, shift = ?, target_count = ?, counter_device_id = ?,
		    modified_by = ?, modified_at = ?
		WHERE organization_id = ? AND id = ?
	`

	stampModified(ctx, &run.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		run.LineName,
		run.Product,
		run.SKU,
		run.Shift,
		run.TargetCount,
		run.CounterDeviceID,
		run.ModifiedBy,
		*run.ModifiedAt,
		run.OrganizationID,
		run.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update production run: %w", err)
	}

	return checkAffected(result, "production run", run.ID)
}

// UpdateCounts stores absolute counter totals
func (r *productionRunRepository) UpdateCounts(ctx context.Context, run *models.ProductionRun, from string) error {
	query := `
		UPDATE production_runs
		SET good_count = ?, reject_count = ?, status = ?, started_at = ?,
		    modified_by = ?, modified_at = ?
		WHERE organization_id = ? AND id = ? AND status = ?
		  AND status != 'completed' AND good_count <= ? AND reject_count <= ?
	`

	userEmail := userctx.GetUserEmail(ctx)
	now := time.Now()

	result, err := r.db.ExecContext(ctx, query,
		run.GoodCount,
		run.RejectCount,
		run.Status,
		nullableTime(run.StartedAt),
		userEmail,
		now,
		run.OrganizationID,
		run.ID,
		from,
		run.GoodCount,
		run.RejectCount,
	)
	if err != nil {
		return fmt.Errorf("failed to update production counts: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return r.guardFailure(ctx, run.OrganizationID, run.ID, "counts were rejected")
	}

	run.ModifiedBy = userEmail
	run.ModifiedAt = &now
	return nil
}

// UpdateStatus stores a status transition
func (r *productionRunRepository) UpdateStatus(ctx context.Context, run *models.ProductionRun, from string) error {
	query := `
		UPDATE production_runs
		SET status = ?, started_at = ?, ended_at = ?, modified_by = ?, modified_at = ?
		WHERE organization_id = ? AND id = ? AND status = ?
	`

	userEmail := userctx.GetUserEmail(ctx)
	now := time.Now()

	result, err := r.db.ExecContext(ctx, query,
		run.Status,
		nullableTime(run.StartedAt),
		nullableTime(run.EndedAt),
		userEmail,
		now,
		run.OrganizationID,
		run.ID,
		from,
	)
	if err != nil {
		return fmt.Errorf("failed to update production run status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return r.guardFailure(ctx, run.OrganizationID, run.ID, "status changed concurrently")
	}

	run.ModifiedBy = userEmail
	run.ModifiedAt = &now
	return nil
}

// guardFailure distinguishes a missing run from a guarded update that did not apply
func (r *productionRunRepository) guardFailure(ctx context.Context, orgID, id int, reason string) error {
	if _, err := r.GetByID(ctx, orgID, id); err != nil {
		return err
	}
	return fmt.Errorf("production run %d: %s: %w", id, reason, models.ErrConflict)
}

// Delete deletes a production run by ID
func (r *productionRunRepository) Delete(ctx context.Context, orgID, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM production_runs WHERE organization_id = ? AND id = ?`, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete production run: %w", err)
	}

	return checkAffected(result, "production run", id)
}
