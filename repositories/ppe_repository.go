package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogem/opsledger/models"
)

// PPERepository interface defines PPE requirement database operations
type PPERepository interface {
	List(ctx context.Context, orgID int, filter models.PPEFilter) ([]models.PPERequirement, error)
	Count(ctx context.Context, orgID int, filter models.PPEFilter) (int, error)
	GetByID(ctx context.Context, orgID, id int) (*models.PPERequirement, error)
	Create(ctx context.Context, req *models.PPERequirement) error
	Update(ctx context.Context, req *models.PPERequirement) error
	Delete(ctx context.Context, orgID, id int) error
}

type ppeRepository struct {
	db *sql.DB
}

// NewPPERepository creates a new PPE requirement repository
func NewPPERepository(db *sql.DB) PPERepository {
	return &ppeRepository{db: db}
}

const ppeColumns = `id, organization_id, area, task, hazard, ppe_type, specification, is_mandatory,
	effective_date, review_date, status, notes, ` + auditColumns

var ppeSortColumns = map[string]string{
	"area":           "area",
	"task":           "task",
	"ppe_type":       "ppe_type",
	"effective_date": "effective_date",
	"review_date":    "review_date",
	"status":         "status",
}

func ppeQuery(orgID int, filter models.PPEFilter) *listQuery {
	q := newListQuery(orgID)
	q.whereEq("area", filter.Area)
	q.whereEq("ppe_type", filter.PPEType)
	q.whereEq("status", filter.Status)
	q.search(filter.Search, "area", "task", "hazard", "specification")
	return q
}

func scanPPE(row rowScanner) (*models.PPERequirement, error) {
	var req models.PPERequirement
	var reviewDate sql.NullTime
	var audit auditScan

	dest := []interface{}{
		&req.ID,
		&req.OrganizationID,
		&req.Area,
		&req.Task,
		&req.Hazard,
		&req.PPEType,
		&req.Specification,
		&req.IsMandatory,
		&req.EffectiveDate,
		&reviewDate,
		&req.Status,
		&req.Notes,
	}
	if err := row.Scan(append(dest, audit.dest()...)...); err != nil {
		return nil, err
	}

	req.ReviewDate = timePtr(reviewDate)
	audit.apply(&req.AuditFields)
	return &req, nil
}

// List retrieves the organization's PPE requirements matching the filter
func (r *ppeRepository) List(ctx context.Context, orgID int, filter models.PPEFilter) ([]models.PPERequirement, error) {
	query, args := ppeQuery(orgID, filter).selectSQL(ppeColumns, "ppe_requirements",
		filter.ListOptions, ppeSortColumns, "area ASC, task ASC")

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query PPE requirements: %w", err)
	}
	defer rows.Close()

	reqs := []models.PPERequirement{}
	for rows.Next() {
		req, err := scanPPE(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan PPE requirement: %w", err)
		}
		reqs = append(reqs, *req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating PPE requirements: %w", err)
	}

	return reqs, nil
}

// Count returns the number of requirements matching the filter
func (r *ppeRepository) Count(ctx context.Context, orgID int, filter models.PPEFilter) (int, error) {
	return countRows(ctx, r.db, ppeQuery(orgID, filter), "ppe_requirements")
}

// GetByID retrieves a PPE requirement by ID
func (r *ppeRepository) GetByID(ctx context.Context, orgID, id int) (*models.PPERequirement, error) {
	query := `SELECT ` + ppeColumns + ` FROM ppe_requirements WHERE organization_id = ? AND id = ?`

	req, err := scanPPE(r.db.QueryRowContext(ctx, query, orgID, id))
	if err == sql.ErrNoRows {
		return nil, notFound("PPE requirement", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get PPE requirement: %w", err)
	}

	return req, nil
}

// Create creates a new PPE requirement
func (r *ppeRepository) Create(ctx context.Context, req *models.PPERequirement) error {
	query := `
		INSERT INTO ppe_requirements (organization_id, area, task, hazard, ppe_type, specification,
			is_mandatory, effective_date, review_date, status, notes, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	stampCreated(ctx, &req.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		req.OrganizationID,
		req.Area,
		req.Task,
		req.Hazard,
		req.PPEType,
		req.Specification,
		req.IsMandatory,
		dateArg(req.EffectiveDate),
		nullableDate(req.ReviewDate),
		req.Status,
		req.Notes,
		req.CreatedBy,
		req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create PPE requirement: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	req.ID = int(id)
	return nil
}

// Update updates an existing PPE requirement
func (r *ppeRepository) Update(ctx context.Context, req *models.PPERequirement) error {
	query := `
		UPDATE ppe_requirements
		SET area = ?, task = ?, hazard = ?, ppe_type = ?, specification = ?, is_mandatory = ?,
		    effective_date = ?, review_date = ?, status = ?, notes = ?,
		    modified_by = ?, modified_at = ?
		WHERE organization_id = ? AND id = ?
	`

	stampModified(ctx, &req.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		req.Area,
		req.Task,
		req.Hazard,
		req.PPEType,
		req.Specification,
		req.IsMandatory,
		dateArg(req.EffectiveDate),
		nullableDate(req.ReviewDate),
		req.Status,
		req.Notes,
		req.ModifiedBy,
		*req.ModifiedAt,
		req.OrganizationID,
		req.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update PPE requirement: %w", err)
	}

	return checkAffected(result, "PPE requirement", req.ID)
}

// Delete deletes a PPE requirement by ID
func (r *ppeRepository) Delete(ctx context.Context, orgID, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ppe_requirements WHERE organization_id = ? AND id = ?`, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete PPE requirement: %w", err)
	}

	return checkAffected(result, "PPE requirement", id)
}
