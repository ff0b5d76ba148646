package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogem/opsledger/models"
)

// RecallPlanRepository interface defines recall plan database operations
type RecallPlanRepository interface {
	List(ctx context.Context, orgID int, filter models.RecallPlanFilter) ([]models.RecallPlan, error)
	GetByID(ctx context.Context, orgID, id int) (*models.RecallPlan, error)
	Create(ctx context.Context, plan *models.RecallPlan) error
	Update(ctx context.Context, plan *models.RecallPlan) error
	Delete(ctx context.Context, orgID, id int) error
}

// RecallEventRepository interface defines recall event database operations
type RecallEventRepository interface {
	List(ctx context.Context, orgID int, filter models.RecallEventFilter) ([]models.RecallEvent, error)
	GetByID(ctx context.Context, orgID, id int) (*models.RecallEvent, error)
	Create(ctx context.Context, event *models.RecallEvent) error
	Update(ctx context.Context, event *models.RecallEvent) error
	Delete(ctx context.Context, orgID, id int) error
}

type recallPlanRepository struct {
	db *sql.DB
}

type recallEventRepository struct {
	db *sql.DB
}

// NewRecallPlanRepository creates a new recall plan repository
func NewRecallPlanRepository(db *sql.DB) RecallPlanRepository {
	return &recallPlanRepository{db: db}
}

// NewRecallEventRepository creates a new recall event repository
func NewRecallEventRepository(db *sql.DB) RecallEventRepository {
	return &recallEventRepository{db: db}
}

const recallPlanColumns = `id, organization_id, name, version, coordinator, status,
	last_mock_recall_date, next_mock_recall_date, notes, ` + auditColumns

var recallPlanSortColumns = map[string]string{
	"name":                  "name",
	"status":                "status",
	"coordinator":           "coordinator",
	"next_mock_recall_date": "next_mock_recall_date",
}

func scanRecallPlan(row rowScanner) (*models.RecallPlan, error) {
	var plan models.RecallPlan
	var lastMock, nextMock sql.NullTime
	var audit auditScan

	dest := []interface{}{
		&plan.ID,
		&plan.OrganizationID,
		&plan.Name,
		&plan.Version,
		&plan.Coordinator,
		&plan.Status,
		&lastMock,
		&nextMock,
		&plan.Notes,
	}
	if err := row.Scan(append(dest, audit.dest()...)...); err != nil {
		return nil, err
	}

	plan.LastMockRecallDate = timePtr(lastMock)
	plan.NextMockRecallDate = timePtr(nextMock)
	audit.apply(&plan.AuditFields)
	return &plan, nil
}

// List retrieves the organization's recall plans
func (r *recallPlanRepository) List(ctx context.Context, orgID int, filter models.RecallPlanFilter) ([]models.RecallPlan, error) {
	q := newListQuery(orgID)
	q.whereEq("status", filter.Status)
	q.search(filter.Search, "name", "coordinator", "notes")
	query, args := q.selectSQL(recallPlanColumns, "recall_plans", filter.ListOptions, recallPlanSortColumns, "name ASC")

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recall plans: %w", err)
	}
	defer rows.Close()

	plans := []models.RecallPlan{}
	for rows.Next() {
		plan, err := scanRecallPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recall plan: %w", err)
		}
		plans = append(plans, *plan)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recall plans: %w", err)
	}

	return plans, nil
}

// GetByID retrieves a recall plan by ID
func (r *recallPlanRepository) GetByID(ctx context.Context, orgID, id int) (*models.RecallPlan, error) {
	query := `SELECT ` + recallPlanColumns + ` FROM recall_plans WHERE organization_id = ? AND id = ?`

	plan, err := scanRecallPlan(r.db.QueryRowContext(ctx, query, orgID, id))
	if err == sql.ErrNoRows {
		return nil, notFound("recall plan", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recall plan: %w", err)
	}

	return plan, nil
}

// Create creates a new recall plan
func (r *recallPlanRepository) Create(ctx context.Context, plan *models.RecallPlan) error {
	query := `
		INSERT INTO recall_plans (organization_id, name, version, coordinator, status,
			last_mock_recall_date, next_mock_recall_date, notes, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	stampCreated(ctx, &plan.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		plan.OrganizationID,
		plan.Name,
		plan.Version,
		plan.Coordinator,
		plan.Status,
		nullableDate(plan.LastMockRecallDate),
		nullableDate(plan.NextMockRecallDate),
		plan.Notes,
		plan.CreatedBy,
		plan.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create recall plan: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	plan.ID = int(id)
	return nil
}

// Update updates an existing recall plan
func (r *recallPlanRepository) Update(ctx context.Context, plan *models.RecallPlan) error {
	query := `
		UPDATE recall_plans
		SET name = ?, version = ?, coordinator = ?, status = ?,
		    last_mock_recall_date = ?, next_mock_recall_date = ?, notes = ?,
		    modified_by = ?, modified_at = ?
		WHERE organization_id = ? AND id = ?
	`

	stampModified(ctx, &plan.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		plan.Name,
		plan.Version,
		plan.Coordinator,
		plan.Status,
		nullableDate(plan.LastMockRecallDate),
		nullableDate(plan.NextMockRecallDate),
		plan.Notes,
		plan.ModifiedBy,
		*plan.ModifiedAt,
		plan.OrganizationID,
		plan.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update recall plan: %w", err)
	}

	return checkAffected(result, "recall plan", plan.ID)
}

// Delete deletes a recall plan by ID. Events keep their history with plan_id cleared.
func (r *recallPlanRepository) Delete(ctx context.Context, orgID, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM recall_plans WHERE organization_id = ? AND id = ?`, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete recall plan: %w", err)
	}

	return checkAffected(result, "recall plan", id)
}

const recallEventColumns = `id, organization_id, plan_id, product, lot_codes, reason, classification, recall_type,
	status, initiated_at, completed_at, quantity_distributed, quantity_recovered, ` + auditColumns

var recallEventSortColumns = map[string]string{
	"product":        "product",
	"status":         "status",
	"classification": "classification",
	"initiated_at":   "initiated_at",
	"completed_at":   "completed_at",
}

func scanRecallEvent(row rowScanner) (*models.RecallEvent, error) {
	var event models.RecallEvent
	var planID sql.NullInt64
	var lotCodes string
	var completedAt sql.NullTime
	var audit auditScan

	dest := []interface{}{
		&event.ID,
		&event.OrganizationID,
		&planID,
		&event.Product,
		&lotCodes,
		&event.Reason,
		&event.Classification,
		&event.RecallType,
		&event.Status,
		&event.InitiatedAt,
		&completedAt,
		&event.QuantityDistributed,
		&event.QuantityRecovered,
	}
	if err := row.Scan(append(dest, audit.dest()...)...); err != nil {
		return nil, err
	}

	codes, err := decodeList(lotCodes)
	if err != nil {
		return nil, err
	}

	event.PlanID = intPtr(planID)
	event.LotCodes = codes
	event.CompletedAt = timePtr(completedAt)
	event.RecoveryPercent = models.ComputeRecoveryPercent(event.QuantityDistributed, event.QuantityRecovered)
	audit.apply(&event.AuditFields)
	return &event, nil
}

// List retrieves the organization's recall events, most recent first by default
func (r *recallEventRepository) List(ctx context.Context, orgID int, filter models.RecallEventFilter) ([]models.RecallEvent, error) {
	q := newListQuery(orgID)
	if filter.PlanID > 0 {
		q.where("plan_id = ?", filter.PlanID)
	}
	q.whereEq("status", filter.Status)
	q.whereEq("recall_type", filter.RecallType)
	q.search(filter.Search, "product", "reason", "lot_codes")
	query, args := q.selectSQL(recallEventColumns, "recall_events", filter.ListOptions,
		recallEventSortColumns, "initiated_at DESC, id DESC")

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recall events: %w", err)
	}
	defer rows.Close()

	events := []models.RecallEvent{}
	for rows.Next() {
		event, err := scanRecallEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recall event: %w", err)
		}
		events = append(events, *event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recall events: %w", err)
	}

	return events, nil
}

// GetByID retrieves a recall event by ID
func (r *recallEventRepository) GetByID(ctx context.Context, orgID, id int) (*models.RecallEvent, error) {
	query := `SELECT ` + recallEventColumns + ` FROM recall_events WHERE organization_id = ? AND id = ?`

	event, err := scanRecallEvent(r.db.QueryRowContext(ctx, query, orgID, id))
	if err == sql.ErrNoRows {
		return nil, notFound("recall event", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recall event: %w", err)
	}

	return event, nil
}

// Create creates a new recall event
func (r *recallEventRepository) Create(ctx context.Context, event *models.RecallEvent) error {
	query := `
		INSERT INTO recall_events (organization_id, plan_id, product, lot_codes, reason, classification,
			recall_type, status, initiated_at, completed_at, quantity_distributed, quantity_recovered,
			created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	lotCodes, err := encodeList(event.LotCodes)
	if err != nil {
		return err
	}
	stampCreated(ctx, &event.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		event.OrganizationID,
		nullableInt(event.PlanID),
		event.Product,
		lotCodes,
		event.Reason,
		event.Classification,
		event.RecallType,
		event.Status,
		dateArg(event.InitiatedAt),
		nullableDate(event.CompletedAt),
		event.QuantityDistributed,
		event.QuantityRecovered,
		event.CreatedBy,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create recall event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	event.ID = int(id)
	event.RecoveryPercent = models.ComputeRecoveryPercent(event.QuantityDistributed, event.QuantityRecovered)
	return nil
}

// Update updates an existing recall event
func (r *recallEventRepository) Update(ctx context.Context, event *models.RecallEvent) error {
	query := `
		UPDATE recall_events
		SET plan_id = ?, product = ?, lot_codes = ?, reason = ?, classification = ?, recall_type = ?,
		    status = ?, initiated_at = ?, completed_at = ?, quantity_distributed = ?, quantity_recovered = ?,
		    modified_by = ?, modified_at = ?
		WHERE organization_id = ? AND id = ?
	`

	lotCodes, err := encodeList(event.LotCodes)
	if err != nil {
		return err
	}
	stampModified(ctx, &event.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		nullableInt(event.PlanID),
		event.Product,
		lotCodes,
		event.Reason,
		event.Classification,
		event.RecallType,
		event.Status,
		dateArg(event.InitiatedAt),
		nullableDate(event.CompletedAt),
		event.QuantityDistributed,
		event.QuantityRecovered,
		event.ModifiedBy,
		*event.ModifiedAt,
		event.OrganizationID,
		event.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update recall event: %w", err)
	}

	event.RecoveryPercent = models.ComputeRecoveryPercent(event.QuantityDistributed, event.QuantityRecovered)
	return checkAffected(result, "recall event", event.ID)
}

// Delete deletes a recall event by ID
func (r *recallEventRepository) Delete(ctx context.Context, orgID, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM recall_events WHERE organization_id = ? AND id = ?`, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete recall event: %w", err)
	}

	return checkAffected(result, "recall event", id)
}
