package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogem/opsledger/models"
)

// FoodSafetyPlanRepository interface defines food safety plan database operations
type FoodSafetyPlanRepository interface {
	List(ctx context.Context, orgID int, filter models.FoodSafetyPlanFilter) ([]models.FoodSafetyPlan, error)
	Count(ctx context.Context, orgID int, filter models.FoodSafetyPlanFilter) (int, error)
	GetByID(ctx context.Context, orgID, id int) (*models.FoodSafetyPlan, error)
	Create(ctx context.Context, plan *models.FoodSafetyPlan) error
	Update(ctx context.Context, plan *models.FoodSafetyPlan) error
	Delete(ctx context.Context, orgID, id int) error
}

type foodSafetyPlanRepository struct {
	db *sql.DB
}

// NewFoodSafetyPlanRepository creates a new food safety plan repository
func NewFoodSafetyPlanRepository(db *sql.DB) FoodSafetyPlanRepository {
	return &foodSafetyPlanRepository{db: db}
}

const foodSafetyPlanColumns = `id, organization_id, name, plan_type, product_scope, version, status, owner,
	effective_date, last_reviewed_at, next_review_date, notes, ` + auditColumns

var foodSafetyPlanSortColumns = map[string]string{
	"name":             "name",
	"plan_type":        "plan_type",
	"status":           "status",
	"effective_date":   "effective_date",
	"next_review_date": "next_review_date",
}

func foodSafetyPlanQuery(orgID int, filter models.FoodSafetyPlanFilter) *listQuery {
	q := newListQuery(orgID)
	q.whereEq("status", filter.Status)
	q.whereEq("plan_type", filter.PlanType)
	if filter.ReviewDueBy != nil {
		q.where("status != 'archived' AND next_review_date IS NOT NULL AND next_review_date <= ?", dateArg(*filter.ReviewDueBy))
	}
	q.search(filter.Search, "name", "product_scope", "owner")
	return q
}

func scanFoodSafetyPlan(row rowScanner) (*models.FoodSafetyPlan, error) {
	var plan models.FoodSafetyPlan
	var effective, lastReviewed, nextReview sql.NullTime
	var audit auditScan

	dest := []interface{}{
		&plan.ID,
		&plan.OrganizationID,
		&plan.Name,
		&plan.PlanType,
		&plan.ProductScope,
		&plan.Version,
		&plan.Status,
		&plan.Owner,
		&effective,
		&lastReviewed,
		&nextReview,
		&plan.Notes,
	}
	if err := row.Scan(append(dest, audit.dest()...)...); err != nil {
		return nil, err
	}

	plan.EffectiveDate = timePtr(effective)
	plan.LastReviewedAt = timePtr(lastReviewed)
	plan.NextReviewDate = timePtr(nextReview)
	audit.apply(&plan.AuditFields)
	return &plan, nil
}

// List retrieves the organization's food safety plans matching the filter
func (r *foodSafetyPlanRepository) List(ctx context.Context, orgID int, filter models.FoodSafetyPlanFilter) ([]models.FoodSafetyPlan, error) {
	defaultOrder := "name ASC"
	if filter.ReviewDueBy != nil {
		defaultOrder = "next_review_date ASC, name ASC"
	}
	query, args := foodSafetyPlanQuery(orgID, filter).selectSQL(foodSafetyPlanColumns, "food_safety_plans",
		filter.ListOptions, foodSafetyPlanSortColumns, defaultOrder)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query food safety plans: %w", err)
	}
	defer rows.Close()

	plans := []models.FoodSafetyPlan{}
	for rows.Next() {
		plan, err := scanFoodSafetyPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan food safety plan: %w", err)
		}
		plans = append(plans, *plan)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating food safety plans: %w", err)
	}

	return plans, nil
}

// Count returns the number of plans matching the filter
func (r *foodSafetyPlanRepository) Count(ctx context.Context, orgID int, filter models.FoodSafetyPlanFilter) (int, error) {
	return countRows(ctx, r.db, foodSafetyPlanQuery(orgID, filter), "food_safety_plans")
}

// GetByID retrieves a food safety plan by ID
func (r *foodSafetyPlanRepository) GetByID(ctx context.Context, orgID, id int) (*models.FoodSafetyPlan, error) {
	query := `SELECT ` + foodSafetyPlanColumns + ` FROM food_safety_plans WHERE organization_id = ? AND id = ?`

	plan, err := scanFoodSafetyPlan(r.db.QueryRowContext(ctx, query, orgID, id))
	if err == sql.ErrNoRows {
		return nil, notFound("food safety plan", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get food safety plan: %w", err)
	}

	return plan, nil
}

// Create creates a new food safety plan
func (r *foodSafetyPlanRepository) Create(ctx context.Context, plan *models.FoodSafetyPlan) error {
	query := `
		INSERT INTO food_safety_plans (organization_id, name, plan_type, product_scope, version, status, owner,
			effective_date, last_reviewed_at, next_review_date, notes, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	stampCreated(ctx, &plan.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		plan.OrganizationID,
		plan.Name,
		plan.PlanType,
		plan.ProductScope,
		plan.Version,
		plan.Status,
		plan.Owner,
		nullableDate(plan.EffectiveDate),
		nullableDate(plan.LastReviewedAt),
		nullableDate(plan.NextReviewDate),
		plan.Notes,
		plan.CreatedBy,
		plan.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create food safety plan: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	plan.ID = int(id)
	return nil
}

// Update updates an existing food safety plan
func (r *foodSafetyPlanRepository) Update(ctx context.Context, plan *models.FoodSafetyPlan) error {
	query := `
		UPDATE food_safety_plans
		SET name = ?, plan_type = ?, product_scope = ?, version = ?, status = ?, owner = ?,
		    effective_date = ?, last_reviewed_at = ?, next_review_date = ?, notes = ?,
		    modified_by = ?, modified_at = ?
		WHERE organization_id = ? AND id = ?
	`

	stampModified(ctx, &plan.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		plan.Name,
		plan.PlanType,
		plan.ProductScope,
		plan.Version,
		plan.Status,
		plan.Owner,
		nullableDate(plan.EffectiveDate),
		nullableDate(plan.LastReviewedAt),
		nullableDate(plan.NextReviewDate),
		plan.Notes,
		plan.ModifiedBy,
		*plan.ModifiedAt,
		plan.OrganizationID,
		plan.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update food safety plan: %w", err)
	}

	return checkAffected(result, "food safety plan", plan.ID)
}

// Delete deletes a food safety plan by ID
func (r *foodSafetyPlanRepository) Delete(ctx context.Context, orgID, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM food_safety_plans WHERE organization_id = ? AND id = ?`, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete food safety plan: %w", err)
	}

	return checkAffected(result, "food safety plan", id)
}
