package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogem/opsledger/models"
)

// DrugTestRepository interface defines drug and alcohol test database operations
type DrugTestRepository interface {
	List(ctx context.Context, orgID int, filter models.DrugTestFilter) ([]models.DrugTest, error)
	Count(ctx context.Context, orgID int, filter models.DrugTestFilter) (int, error)
	GetByID(ctx context.Context, orgID, id int) (*models.DrugTest, error)
	Create(ctx context.Context, test *models.DrugTest) error
	Update(ctx context.Context, test *models.DrugTest) error
	Delete(ctx context.Context, orgID, id int) error
}

type drugTestRepository struct {
	db *sql.DB
}

// NewDrugTestRepository creates a new drug test repository
func NewDrugTestRepository(db *sql.DB) DrugTestRepository {
	return &drugTestRepository{db: db}
}

const drugTestColumns = `id, organization_id, employee_name, employee_number, test_type, panel,
	collection_date, result, result_date, lab_name, mro_reviewed, notes, ` + auditColumns

var drugTestSortColumns = map[string]string{
	"employee_name":   "employee_name",
	"test_type":       "test_type",
	"collection_date": "collection_date",
	"result":          "result",
	"result_date":     "result_date",
}

func drugTestQuery(orgID int, filter models.DrugTestFilter) *listQuery {
	q := newListQuery(orgID)
	q.whereEq("test_type", filter.TestType)
	q.whereEq("result", filter.Result)
	if filter.From != nil {
		q.where("collection_date >= ?", dateArg(*filter.From))
	}
	if filter.To != nil {
		q.where("collection_date <= ?", dateArg(*filter.To))
	}
	q.search(filter.Search, "employee_name", "employee_number", "lab_name")
	return q
}

func scanDrugTest(row rowScanner) (*models.DrugTest, error) {
	var test models.DrugTest
	var resultDate sql.NullTime
	var audit auditScan

	dest := []interface{}{
		&test.ID,
		&test.OrganizationID,
		&test.EmployeeName,
		&test.EmployeeNumber,
		&test.TestType,
		&test.Panel,
		&test.CollectionDate,
		&test.Result,
		&resultDate,
		&test.LabName,
		&test.MROReviewed,
		&test.Notes,
	}
	if err := row.Scan(append(dest, audit.dest()...)...); err != nil {
		return nil, err
	}

	test.ResultDate = timePtr(resultDate)
	audit.apply(&test.AuditFields)
	return &test, nil
}

// List retrieves the organization's drug tests, most recent collection first by default
func (r *drugTestRepository) List(ctx context.Context, orgID int, filter models.DrugTestFilter) ([]models.DrugTest, error) {
	query, args := drugTestQuery(orgID, filter).selectSQL(drugTestColumns, "drug_tests",
		filter.ListOptions, drugTestSortColumns, "collection_date DESC, id DESC")

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query drug tests: %w", err)
	}
	defer rows.Close()

	tests := []models.DrugTest{}
	for rows.Next() {
		test, err := scanDrugTest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan drug test: %w", err)
		}
		tests = append(tests, *test)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating drug tests: %w", err)
	}

	return tests, nil
}

// Count returns the number of tests matching the filter
func (r *drugTestRepository) Count(ctx context.Context, orgID int, filter models.DrugTestFilter) (int, error) {
	return countRows(ctx, r.db, drugTestQuery(orgID, filter), "drug_tests")
}

// GetByID retrieves a drug test by ID
func (r *drugTestRepository) GetByID(ctx context.Context, orgID, id int) (*models.DrugTest, error) {
	query := `SELECT ` + drugTestColumns + ` FROM drug_tests WHERE organization_id = ? AND id = ?`

	test, err := scanDrugTest(r.db.QueryRowContext(ctx, query, orgID, id))
	if err == sql.ErrNoRows {
		return nil, notFound("drug test", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get drug test: %w", err)
	}

	return test, nil
}

// Create creates a new drug test record
func (r *drugTestRepository) Create(ctx context.Context, test *models.DrugTest) error {
	query := `
		INSERT INTO drug_tests (organization_id, employee_name, employee_number, test_type, panel,
			collection_date, result, result_date, lab_name, mro_reviewed, notes, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	stampCreated(ctx, &test.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		test.OrganizationID,
		test.EmployeeName,
		test.EmployeeNumber,
		test.TestType,
		test.Panel,
		dateArg(test.CollectionDate),
		test.Result,
		nullableDate(test.ResultDate),
		test.LabName,
		test.MROReviewed,
		test.Notes,
		test.CreatedBy,
		test.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create drug test: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	test.ID = int(id)
	return nil
}

// Update updates an existing drug test record
func (r *drugTestRepository) Update(ctx context.Context, test *models.DrugTest) error {
	query := `
		UPDATE drug_tests
		SET employee_name = ?, employee_number = ?, test_type = ?, panel = ?, collection_date = ?,
		    result = ?, result_date = ?, lab_name = ?, mro_reviewed = ?, notes = ?,
		    modified_by = ?, modified_at = ?
		WHERE organization_id = ? AND id = ?
	`

	stampModified(ctx, &test.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		test.EmployeeName,
		test.EmployeeNumber,
		test.TestType,
		test.Panel,
		dateArg(test.CollectionDate),
		test.Result,
		nullableDate(test.ResultDate),
		test.LabName,
		test.MROReviewed,
		test.Notes,
		test.ModifiedBy,
		*test.ModifiedAt,
		test.OrganizationID,
		test.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update drug test: %w", err)
	}

	return checkAffected(result, "drug test", test.ID)
}

// Delete deletes a drug test by ID
func (r *drugTestRepository) Delete(ctx context.Context, orgID, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM drug_tests WHERE organization_id = ? AND id = ?`, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete drug test: %w", err)
	}

	return checkAffected(result, "drug test", id)
}
