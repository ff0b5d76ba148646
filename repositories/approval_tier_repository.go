package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/blogem/opsledger/models"
)

// ApprovalTierRepository interface defines approval tier database operations
type ApprovalTierRepository interface {
	// List returns tiers with their thresholds, ordered by category then level
	List(ctx context.Context, orgID int, filter models.ApprovalTierFilter) ([]models.ApprovalTier, error)
	GetByID(ctx context.Context, orgID, id int) (*models.ApprovalTier, error)
	Create(ctx context.Context, tier *models.ApprovalTier) error
	Update(ctx context.Context, tier *models.ApprovalTier) error
	Delete(ctx context.Context, orgID, id int) error
	// ReplaceCategory swaps every tier of a category for the given set atomically
	ReplaceCategory(ctx context.Context, orgID int, category string, tiers []models.ApprovalTier) error
}

type approvalTierRepository struct {
	db *sql.DB
}

// NewApprovalTierRepository creates a new approval tier repository
func NewApprovalTierRepository(db *sql.DB) ApprovalTierRepository {
	return &approvalTierRepository{db: db}
}

const approvalTierColumns = `id, organization_id, category, name, level, approver_role, approver_email, is_active, ` + auditColumns

var approvalTierSortColumns = map[string]string{
	"name":     "name",
	"level":    "level",
	"category": "category",
}

func scanApprovalTier(row rowScanner) (*models.ApprovalTier, error) {
	var tier models.ApprovalTier
	var audit auditScan

	dest := []interface{}{
		&tier.ID,
		&tier.OrganizationID,
		&tier.Category,
		&tier.Name,
		&tier.Level,
		&tier.ApproverRole,
		&tier.ApproverEmail,
		&tier.IsActive,
	}
	if err := row.Scan(append(dest, audit.dest()...)...); err != nil {
		return nil, err
	}

	tier.Thresholds = []models.ApprovalThreshold{}
	audit.apply(&tier.AuditFields)
	return &tier, nil
}

// List retrieves tiers matching the filter
func (r *approvalTierRepository) List(ctx context.Context, orgID int, filter models.ApprovalTierFilter) ([]models.ApprovalTier, error) {
	q := newListQuery(orgID)
	q.whereEq("category", filter.Category)
	if filter.ActiveOnly {
		q.where("is_active = 1")
	}
	q.search(filter.Search, "name", "approver_role", "approver_email")
	query, args := q.selectSQL(approvalTierColumns, "approval_tiers", filter.ListOptions,
		approvalTierSortColumns, "category ASC, level ASC, id ASC")

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query approval tiers: %w", err)
	}
	defer rows.Close()

	tiers := []models.ApprovalTier{}
	for rows.Next() {
		tier, err := scanApprovalTier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan approval tier: %w", err)
		}
		tiers = append(tiers, *tier)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating approval tiers: %w", err)
	}
	rows.Close()

	if err := r.attachThresholds(ctx, tiers); err != nil {
		return nil, err
	}

	return tiers, nil
}

// attachThresholds loads the thresholds of every tier in one query
func (r *approvalTierRepository) attachThresholds(ctx context.Context, tiers []models.ApprovalTier) error {
	if len(tiers) == 0 {
		return nil
	}

	byID := make(map[int]*models.ApprovalTier, len(tiers))
	placeholders := make([]string, len(tiers))
	args := make([]interface{}, len(tiers))
	for i := range tiers {
		byID[tiers[i].ID] = &tiers[i]
		placeholders[i] = "?"
		args[i] = tiers[i].ID
	}

	query := `
		SELECT id, tier_id, kind, operator, value, value_end
		FROM approval_thresholds
		WHERE tier_id IN (` + strings.Join(placeholders, ", ") + `)
		ORDER BY tier_id, id
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query approval thresholds: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var th models.ApprovalThreshold
		var valueEnd sql.NullFloat64
		if err := rows.Scan(&th.ID, &th.TierID, &th.Kind, &th.Operator, &th.Value, &valueEnd); err != nil {
			return fmt.Errorf("failed to scan approval threshold: %w", err)
		}
		if valueEnd.Valid {
			v := valueEnd.Float64
			th.ValueEnd = &v
		}
		if tier, ok := byID[th.TierID]; ok {
			tier.Thresholds = append(tier.Thresholds, th)
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating approval thresholds: %w", err)
	}
	return nil
}

// GetByID retrieves a tier and its thresholds
func (r *approvalTierRepository) GetByID(ctx context.Context, orgID, id int) (*models.ApprovalTier, error) {
	query := `SELECT ` + approvalTierColumns + ` FROM approval_tiers WHERE organization_id = ? AND id = ?`

	tier, err := scanApprovalTier(r.db.QueryRowContext(ctx, query, orgID, id))
	if err == sql.ErrNoRows {
		return nil, notFound("approval tier", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get approval tier: %w", err)
	}

	tiers := []models.ApprovalTier{*tier}
	if err := r.attachThresholds(ctx, tiers); err != nil {
		return nil, err
	}

	return &tiers[0], nil
}

// Create creates a tier and its thresholds in one transaction
func (r *approvalTierRepository) Create(ctx context.Context, tier *models.ApprovalTier) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertTier(ctx, tx, tier); err != nil {
		return err
	}

	return tx.Commit()
}

func insertTier(ctx context.Context, tx *sql.Tx, tier *models.ApprovalTier) error {
	query := `
		INSERT INTO approval_tiers (organization_id, category, name, level, approver_role, approver_email,
			is_active, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	stampCreated(ctx, &tier.AuditFields)

	result, err := tx.ExecContext(ctx, query,
		tier.OrganizationID,
		tier.Category,
		tier.Name,
		tier.Level,
		tier.ApproverRole,
		tier.ApproverEmail,
		tier.IsActive,
		tier.CreatedBy,
		tier.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create approval tier: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}
	tier.ID = int(id)

	return insertThresholds(ctx, tx, tier)
}

func insertThresholds(ctx context.Context, tx *sql.Tx, tier *models.ApprovalTier) error {
	query := `
		INSERT INTO approval_thresholds (tier_id, kind, operator, value, value_end)
		VALUES (?, ?, ?, ?, ?)
	`

	for i := range tier.Thresholds {
		th := &tier.Thresholds[i]
		th.TierID = tier.ID

		var valueEnd interface{}
		if th.ValueEnd != nil {
			valueEnd = *th.ValueEnd
		}

		result, err := tx.ExecContext(ctx, query, th.TierID, th.Kind, th.Operator, th.Value, valueEnd)
		if err != nil {
			return fmt.Errorf("failed to insert approval threshold: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get inserted ID: %w", err)
		}
		th.ID = int(id)
	}
	return nil
}

// Update replaces a tier and its thresholds in one transaction
func (r *approvalTierRepository) Update(ctx context.Context, tier *models.ApprovalTier) error {
	query := `
		UPDATE approval_tiers
		SET category = ?, name = ?, level = ?, approver_role = ?, approver_email = ?, is_active = ?,
		    modified_by = ?, modified_at = ?
		WHERE organization_id = ? AND id = ?
	`

	stampModified(ctx, &tier.AuditFields)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query,
		tier.Category,
		tier.Name,
		tier.Level,
		tier.ApproverRole,
		tier.ApproverEmail,
		tier.IsActive,
		tier.ModifiedBy,
		*tier.ModifiedAt,
		tier.OrganizationID,
		tier.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update approval tier: %w", err)
	}
	if err := checkAffected(result, "approval tier", tier.ID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM approval_thresholds WHERE tier_id = ?`, tier.ID); err != nil {
		return fmt.Errorf("failed to clear approval thresholds: %w", err)
	}
	if err := insertThresholds(ctx, tx, tier); err != nil {
		return err
	}

	return tx.Commit()
}

// Delete deletes a tier; its thresholds cascade
func (r *approvalTierRepository) Delete(ctx context.Context, orgID, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM approval_tiers WHERE organization_id = ? AND id = ?`, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete approval tier: %w", err)
	}

	return checkAffected(result, "approval tier", id)
}

// ReplaceCategory deletes the category's tiers and inserts the given ones
func (r *approvalTierRepository) ReplaceCategory(ctx context.Context, orgID int, category string, tiers []models.ApprovalTier) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM approval_tiers WHERE organization_id = ? AND category = ?`, orgID, category); err != nil {
		return fmt.Errorf("failed to clear %s approval tiers: %w", category, err)
	}

	for i := range tiers {
		tiers[i].OrganizationID = orgID
		tiers[i].Category = category
		if err := insertTier(ctx, tx, &tiers[i]); err != nil {
			return err
		}
	}

	return tx.Commit()
}
