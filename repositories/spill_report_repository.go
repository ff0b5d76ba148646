package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogem/opsledger/models"
)

// SpillReportRepository interface defines spill report database operations
type SpillReportRepository interface {
	List(ctx context.Context, orgID int, filter models.SpillReportFilter) ([]models.SpillReport, error)
	Count(ctx context.Context, orgID int, filter models.SpillReportFilter) (int, error)
	GetByID(ctx context.Context, orgID, id int) (*models.SpillReport, error)
	Create(ctx context.Context, report *models.SpillReport) error
	Update(ctx context.Context, report *models.SpillReport) error
	Delete(ctx context.Context, orgID, id int) error
}

type spillReportRepository struct {
	db *sql.DB
}

// NewSpillReportRepository creates a new spill report repository
func NewSpillReportRepository(db *sql.DB) SpillReportRepository {
	return &spillReportRepository{db: db}
}

const spillReportColumns = `id, organization_id, report_date, location, substance, quantity, unit, source, cause,
	containment_actions, reported_by, severity, reportable, agency_notified, agency_notified_at, status, ` + auditColumns

var spillReportSortColumns = map[string]string{
	"report_date": "report_date",
	"location":    "location",
	"substance":   "substance",
	"severity":    "severity",
	"status":      "status",
	"quantity":    "quantity",
}

func spillReportQuery(orgID int, filter models.SpillReportFilter) *listQuery {
	q := newListQuery(orgID)
	q.whereEq("status", filter.Status)
	q.whereEq("severity", filter.Severity)
	if filter.Reportable != nil {
		q.where("reportable = ?", *filter.Reportable)
	}
	if filter.OpenOnly {
		q.where("status != 'closed'")
	}
	q.search(filter.Search, "location", "substance", "source", "reported_by")
	return q
}

func scanSpillReport(row rowScanner) (*models.SpillReport, error) {
	var report models.SpillReport
	var notifiedAt sql.NullTime
	var audit auditScan

	dest := []interface{}{
		&report.ID,
		&report.OrganizationID,
		&report.ReportDate,
		&report.Location,
		&report.Substance,
		&report.Quantity,
		&report.Unit,
		&report.Source,
		&report.Cause,
		&report.ContainmentActions,
		&report.ReportedBy,
		&report.Severity,
		&report.Reportable,
		&report.AgencyNotified,
		&notifiedAt,
		&report.Status,
	}
	if err := row.Scan(append(dest, audit.dest()...)...); err != nil {
		return nil, err
	}

	report.AgencyNotifiedAt = timePtr(notifiedAt)
	audit.apply(&report.AuditFields)
	return &report, nil
}

// List retrieves the organization's spill reports, newest first by default
func (r *spillReportRepository) List(ctx context.Context, orgID int, filter models.SpillReportFilter) ([]models.SpillReport, error) {
	query, args := spillReportQuery(orgID, filter).selectSQL(spillReportColumns, "spill_reports",
		filter.ListOptions, spillReportSortColumns, "report_date DESC, id DESC")

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query spill reports: %w", err)
	}
	defer rows.Close()

	reports := []models.SpillReport{}
	for rows.Next() {
		report, err := scanSpillReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan spill report: %w", err)
		}
		reports = append(reports, *report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating spill reports: %w", err)
	}

	return reports, nil
}

// Count returns the number of spill reports matching the filter
func (r *spillReportRepository) Count(ctx context.Context, orgID int, filter models.SpillReportFilter) (int, error) {
	return countRows(ctx, r.db, spillReportQuery(orgID, filter), "spill_reports")
}

// GetByID retrieves a spill report by ID
func (r *spillReportRepository) GetByID(ctx context.Context, orgID, id int) (*models.SpillReport, error) {
	query := `SELECT ` + spillReportColumns + ` FROM spill_reports WHERE organization_id = ? AND id = ?`

	report, err := scanSpillReport(r.db.QueryRowContext(ctx, query, orgID, id))
	if err == sql.ErrNoRows {
		return nil, notFound("spill report", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get spill report: %w", err)
	}

	return report, nil
}

// Create creates a new spill report
func (r *spillReportRepository) Create(ctx context.Context, report *models.SpillReport) error {
	query := `
		INSERT INTO spill_reports (organization_id, report_date, location, substance, quantity, unit, source,
			cause, containment_actions, reported_by, severity, reportable, agency_notified, agency_notified_at,
			status, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	stampCreated(ctx, &report.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		report.OrganizationID,
		dateArg(report.ReportDate),
		report.Location,
		report.Substance,
		report.Quantity,
		report.Unit,
		report.Source,
		report.Cause,
		report.ContainmentActions,
		report.ReportedBy,
		report.Severity,
		report.Reportable,
		report.AgencyNotified,
		nullableTime(report.AgencyNotifiedAt),
		report.Status,
		report.CreatedBy,
		report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create spill report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	report.ID = int(id)
	return nil
}

// Update updates an existing spill report
func (r *spillReportRepository) Update(ctx context.Context, report *models.SpillReport) error {
	query := `
		UPDATE spill_reports
		SET report_date = ?, location = ?, substance = ?, quantity = ?, unit = ?, source = ?, cause = ?,
		    containment_actions = ?, reported_by = ?, severity = ?, reportable = ?, agency_notified = ?,
		    agency_notified_at = ?, status = ?, modified_by = ?, modified_at = ?
		WHERE organization_id = ? AND id = ?
	`

	stampModified(ctx, &report.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		dateArg(report.ReportDate),
		report.Location,
		report.Substance,
		report.Quantity,
		report.Unit,
		report.Source,
		report.Cause,
		report.ContainmentActions,
		report.ReportedBy,
		report.Severity,
		report.Reportable,
		report.AgencyNotified,
		nullableTime(report.AgencyNotifiedAt),
		report.Status,
		report.ModifiedBy,
		*report.ModifiedAt,
		report.OrganizationID,
		report.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update spill report: %w", err)
	}

	return checkAffected(result, "spill report", report.ID)
}

// Delete deletes a spill report by ID
func (r *spillReportRepository) Delete(ctx context.Context, orgID, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM spill_reports WHERE organization_id = ? AND id = ?`, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete spill report: %w", err)
	}

	return checkAffected(result, "spill report", id)
}
