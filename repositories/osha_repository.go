package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/blogem/opsledger/models"
)

// OSHARepository interface defines OSHA 300 log database operations
type OSHARepository interface {
	List(ctx context.Context, orgID int, filter models.OSHAFilter) ([]models.OSHAEntry, error)
	Count(ctx context.Context, orgID int, filter models.OSHAFilter) (int, error)
	GetByID(ctx context.Context, orgID, id int) (*models.OSHAEntry, error)
	// NextCaseSequence returns one past the highest "YYYY-NNN" sequence used in the year
	NextCaseSequence(ctx context.Context, orgID, year int) (int, error)
	Create(ctx context.Context, entry *models.OSHAEntry) error
	Update(ctx context.Context, entry *models.OSHAEntry) error
	Delete(ctx context.Context, orgID, id int) error
}

type oshaRepository struct {
	db *sql.DB
}

// NewOSHARepository creates a new OSHA log repository
func NewOSHARepository(db *sql.DB) OSHARepository {
	return &oshaRepository{db: db}
}

const oshaColumns = `id, organization_id, case_number, employee_name, job_title, incident_date, location,
	description, classification, days_away, days_restricted, injury_type, privacy_case, ` + auditColumns

var oshaSortColumns = map[string]string{
	"case_number":    "case_number",
	"incident_date":  "incident_date",
	"classification": "classification",
	"injury_type":    "injury_type",
	"days_away":      "days_away",
}

func oshaQuery(orgID int, filter models.OSHAFilter) *listQuery {
	q := newListQuery(orgID)
	if filter.Year > 0 {
		r := models.YearRange(filter.Year)
		q.where("incident_date >= ? AND incident_date <= ?", dateArg(r.Start), dateArg(r.End))
	}
	q.whereEq("classification", filter.Classification)
	q.whereEq("injury_type", filter.InjuryType)
	// Privacy case names are not searchable
	q.search(filter.Search, "case_number", "CASE WHEN privacy_case THEN '' ELSE employee_name END",
		"job_title", "location", "description")
	return q
}

func scanOSHAEntry(row rowScanner) (*models.OSHAEntry, error) {
	var entry models.OSHAEntry
	var audit auditScan

	dest := []interface{}{
		&entry.ID,
		&entry.OrganizationID,
		&entry.CaseNumber,
		&entry.EmployeeName,
		&entry.JobTitle,
		&entry.IncidentDate,
		&entry.Location,
		&entry.Description,
		&entry.Classification,
		&entry.DaysAway,
		&entry.DaysRestricted,
		&entry.InjuryType,
		&entry.PrivacyCase,
	}
	if err := row.Scan(append(dest, audit.dest()...)...); err != nil {
		return nil, err
	}

	audit.apply(&entry.AuditFields)
	return &entry, nil
}

// List retrieves the organization's OSHA entries in case number order
func (r *oshaRepository) List(ctx context.Context, orgID int, filter models.OSHAFilter) ([]models.OSHAEntry, error) {
	query, args := oshaQuery(orgID, filter).selectSQL(oshaColumns, "osha_entries",
		filter.ListOptions, oshaSortColumns, "incident_date ASC, case_number ASC")

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query OSHA entries: %w", err)
	}
	defer rows.Close()

	entries := []models.OSHAEntry{}
	for rows.Next() {
		entry, err := scanOSHAEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan OSHA entry: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating OSHA entries: %w", err)
	}

	return entries, nil
}

// Count returns the number of entries matching the filter
func (r *oshaRepository) Count(ctx context.Context, orgID int, filter models.OSHAFilter) (int, error) {
	return countRows(ctx, r.db, oshaQuery(orgID, filter), "osha_entries")
}

// GetByID retrieves an OSHA entry by ID
func (r *oshaRepository) GetByID(ctx context.Context, orgID, id int) (*models.OSHAEntry, error) {
	query := `SELECT ` + oshaColumns + ` FROM osha_entries WHERE organization_id = ? AND id = ?`

	entry, err := scanOSHAEntry(r.db.QueryRowContext(ctx, query, orgID, id))
	if err == sql.ErrNoRows {
		return nil, notFound("OSHA entry", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get OSHA entry: %w", err)
	}

	return entry, nil
}

// NextCaseSequence scans the year's case numbers. Manually entered numbers that do not
// follow the YYYY-NNN pattern are ignored.
func (r *oshaRepository) NextCaseSequence(ctx context.Context, orgID, year int) (int, error) {
	prefix := strconv.Itoa(year) + "-"
	query := `SELECT case_number FROM osha_entries WHERE organization_id = ? AND case_number LIKE ?`

	rows, err := r.db.QueryContext(ctx, query, orgID, prefix+"%")
	if err != nil {
		return 0, fmt.Errorf("failed to query OSHA case numbers: %w", err)
	}
	defer rows.Close()

	highest := 0
	for rows.Next() {
		var caseNumber string
		if err := rows.Scan(&caseNumber); err != nil {
			return 0, fmt.Errorf("failed to scan OSHA case number: %w", err)
		}
		seq, err := strconv.Atoi(strings.TrimPrefix(caseNumber, prefix))
		if err == nil && seq > highest {
			highest = seq
		}
	}

	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("error iterating OSHA case numbers: %w", err)
	}

	return highest + 1, nil
}

// Create creates a new OSHA entry. Duplicate case numbers yield models.ErrConflict.
func (r *oshaRepository) Create(ctx context.Context, entry *models.OSHAEntry) error {
	query := `
		INSERT INTO osha_entries (organization_id, case_number, employee_name, job_title, incident_date,
			location, description, classification, days_away, days_restricted, injury_type, privacy_case,
			created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	stampCreated(ctx, &entry.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		entry.OrganizationID,
		entry.CaseNumber,
		entry.EmployeeName,
		entry.JobTitle,
		dateArg(entry.IncidentDate),
		entry.Location,
		entry.Description,
		entry.Classification,
		entry.DaysAway,
		entry.DaysRestricted,
		entry.InjuryType,
		entry.PrivacyCase,
		entry.CreatedBy,
		entry.CreatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("case number %s already exists: %w", entry.CaseNumber, models.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to create OSHA entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	entry.ID = int(id)
	return nil
}

// Update updates an existing OSHA entry
func (r *oshaRepository) Update(ctx context.Context, entry *models.OSHAEntry) error {
	query := `
		UPDATE osha_entries
		SET case_number = ?, employee_name = ?, job_title = ?, incident_date = ?, location = ?,
		    description = ?, classification = ?, days_away = ?, days_restricted = ?, injury_type = ?,
		    privacy_case = ?, modified_by = ?, modified_at = ?
		WHERE organization_id = ? AND id = ?
	`

	stampModified(ctx, &entry.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		entry.CaseNumber,
		entry.EmployeeName,
		entry.JobTitle,
		dateArg(entry.IncidentDate),
		entry.Location,
		entry.Description,
		entry.Classification,
		entry.DaysAway,
		entry.DaysRestricted,
		entry.InjuryType,
		entry.PrivacyCase,
		entry.ModifiedBy,
		*entry.ModifiedAt,
		entry.OrganizationID,
		entry.ID,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("case number %s already exists: %w", entry.CaseNumber, models.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to update OSHA entry: %w", err)
	}

	return checkAffected(result, "OSHA entry", entry.ID)
}

// Delete deletes an OSHA entry by ID
func (r *oshaRepository) Delete(ctx context.Context, orgID, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM osha_entries WHERE organization_id = ? AND id = ?`, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete OSHA entry: %w", err)
	}

	return checkAffected(result, "OSHA entry", id)
}
