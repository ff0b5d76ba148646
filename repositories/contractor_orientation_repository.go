package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogem/opsledger/models"
)

// ContractorOrientationRepository interface defines orientation record database operations
type ContractorOrientationRepository interface {
	List(ctx context.Context, orgID int, filter models.ContractorOrientationFilter) ([]models.ContractorOrientation, error)
	Count(ctx context.Context, orgID int, filter models.ContractorOrientationFilter) (int, error)
	GetByID(ctx context.Context, orgID, id int) (*models.ContractorOrientation, error)
	Create(ctx context.Context, o *models.ContractorOrientation) error
	Update(ctx context.Context, o *models.ContractorOrientation) error
	Delete(ctx context.Context, orgID, id int) error
}

type contractorOrientationRepository struct {
	db *sql.DB
}

// NewContractorOrientationRepository creates a new contractor orientation repository
func NewContractorOrientationRepository(db *sql.DB) ContractorOrientationRepository {
	return &contractorOrientationRepository{db: db}
}

const contractorOrientationColumns = `id, organization_id, contractor_name, company, email, phone,
	orientation_date, expiry_date, trainer, topics, badge_number, status, notes, ` + auditColumns

var contractorOrientationSortColumns = map[string]string{
	"contractor_name":  "contractor_name",
	"company":          "company",
	"orientation_date": "orientation_date",
	"expiry_date":      "expiry_date",
	"status":           "status",
}

func contractorOrientationQuery(orgID int, filter models.ContractorOrientationFilter) *listQuery {
	q := newListQuery(orgID)
	q.whereEq("company", filter.Company)
	q.whereEq("status", filter.Status)
	if filter.ExpiredAsOf != nil {
		q.where("status = 'completed' AND expiry_date < ?", dateArg(*filter.ExpiredAsOf))
	}
	q.search(filter.Search, "contractor_name", "company", "badge_number", "trainer")
	return q
}

func scanContractorOrientation(row rowScanner) (*models.ContractorOrientation, error) {
	var o models.ContractorOrientation
	var topics string
	var audit auditScan

	dest := []interface{}{
		&o.ID,
		&o.OrganizationID,
		&o.ContractorName,
		&o.Company,
		&o.Email,
		&o.Phone,
		&o.OrientationDate,
		&o.ExpiryDate,
		&o.Trainer,
		&topics,
		&o.BadgeNumber,
		&o.Status,
		&o.Notes,
	}
	if err := row.Scan(append(dest, audit.dest()...)...); err != nil {
		return nil, err
	}

	decoded, err := decodeList(topics)
	if err != nil {
		return nil, err
	}

	o.Topics = decoded
	audit.apply(&o.AuditFields)
	return &o, nil
}

// List retrieves the organization's orientation records matching the filter
func (r *contractorOrientationRepository) List(ctx context.Context, orgID int, filter models.ContractorOrientationFilter) ([]models.ContractorOrientation, error) {
	query, args := contractorOrientationQuery(orgID, filter).selectSQL(contractorOrientationColumns,
		"contractor_orientations", filter.ListOptions, contractorOrientationSortColumns,
		"orientation_date DESC, contractor_name ASC")

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query contractor orientations: %w", err)
	}
	defer rows.Close()

	records := []models.ContractorOrientation{}
	for rows.Next() {
		o, err := scanContractorOrientation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contractor orientation: %w", err)
		}
		records = append(records, *o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contractor orientations: %w", err)
	}

	return records, nil
}

// Count returns the number of orientation records matching the filter
func (r *contractorOrientationRepository) Count(ctx context.Context, orgID int, filter models.ContractorOrientationFilter) (int, error) {
	return countRows(ctx, r.db, contractorOrientationQuery(orgID, filter), "contractor_orientations")
}

// GetByID retrieves an orientation record by ID
func (r *contractorOrientationRepository) GetByID(ctx context.Context, orgID, id int) (*models.ContractorOrientation, error) {
	query := `SELECT ` + contractorOrientationColumns + ` FROM contractor_orientations WHERE organization_id = ? AND id = ?`

	o, err := scanContractorOrientation(r.db.QueryRowContext(ctx, query, orgID, id))
	if err == sql.ErrNoRows {
		return nil, notFound("contractor orientation", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contractor orientation: %w", err)
	}

	return o, nil
}

// Create creates a new orientation record
func (r *contractorOrientationRepository) Create(ctx context.Context, o *models.ContractorOrientation) error {
	query := `
		INSERT INTO contractor_orientations (organization_id, contractor_name, company, email, phone,
			orientation_date, expiry_date, trainer, topics, badge_number, status, notes, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	topics, err := encodeList(o.Topics)
	if err != nil {
		return err
	}
	stampCreated(ctx, &o.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		o.OrganizationID,
		o.ContractorName,
		o.Company,
		o.Email,
		o.Phone,
		dateArg(o.OrientationDate),
		dateArg(o.ExpiryDate),
		o.Trainer,
		topics,
		o.BadgeNumber,
		o.Status,
		o.Notes,
		o.CreatedBy,
		o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create contractor orientation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	o.ID = int(id)
	return nil
}

// Update updates an existing orientation record
func (r *contractorOrientationRepository) Update(ctx context.Context, o *models.ContractorOrientation) error {
	query := `
		UPDATE contractor_orientations
		SET contractor_name = ?, company = ?, email = ?, phone = ?, orientation_date = ?, expiry_date = ?,
		    trainer = ?, topics = ?, badge_number = ?, status = ?, notes = ?,
		    modified_by = ?, modified_at = ?
		WHERE organization_id = ? AND id = ?
	`

	topics, err := encodeList(o.Topics)
	if err != nil {
		return err
	}
	stampModified(ctx, &o.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		o.ContractorName,
		o.Company,
		o.Email,
		o.Phone,
		dateArg(o.OrientationDate),
		dateArg(o.ExpiryDate),
		o.Trainer,
		topics,
		o.BadgeNumber,
		o.Status,
		o.Notes,
		o.ModifiedBy,
		*o.ModifiedAt,
		o.OrganizationID,
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contractor orientation: %w", err)
	}

	return checkAffected(result, "contractor orientation", o.ID)
}

// Delete deletes an orientation record by ID
func (r *contractorOrientationRepository) Delete(ctx context.Context, orgID, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contractor_orientations WHERE organization_id = ? AND id = ?`, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete contractor orientation: %w", err)
	}

	return checkAffected(result, "contractor orientation", id)
}
