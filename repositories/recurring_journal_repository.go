package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/blogem/opsledger/models"
)

// RecurringJournalRepository interface defines recurring journal template database operations
type RecurringJournalRepository interface {
	List(ctx context.Context, orgID int, filter models.RecurringJournalFilter) ([]models.RecurringJournal, error)
	GetByID(ctx context.Context, orgID, id int) (*models.RecurringJournal, error)
	Create(ctx context.Context, journal *models.RecurringJournal) error
	Update(ctx context.Context, journal *models.RecurringJournal) error
	SetActive(ctx context.Context, orgID, id int, active bool) error
	Delete(ctx context.Context, orgID, id int) error
}

type recurringJournalRepository struct {
	db *sql.DB
}

// NewRecurringJournalRepository creates a new recurring journal repository
func NewRecurringJournalRepository(db *sql.DB) RecurringJournalRepository {
	return &recurringJournalRepository{db: db}
}

const recurringJournalColumns = `id, organization_id, name, description, frequency, interval_count, day_of_week,
	day_of_month, start_date, end_date, next_run_date, last_run_date, is_active, auto_post, ` + auditColumns

var recurringJournalSortColumns = map[string]string{
	"name":          "name",
	"frequency":     "frequency",
	"start_date":    "start_date",
	"next_run_date": "next_run_date",
	"last_run_date": "last_run_date",
}

func scanRecurringJournal(row rowScanner) (*models.RecurringJournal, error) {
	var j models.RecurringJournal
	var dayOfWeek, dayOfMonth sql.NullInt64
	var endDate, nextRun, lastRun sql.NullTime
	var audit auditScan

	dest := []interface{}{
		&j.ID,
		&j.OrganizationID,
		&j.Name,
		&j.Description,
		&j.Frequency,
		&j.IntervalCount,
		&dayOfWeek,
		&dayOfMonth,
		&j.StartDate,
		&endDate,
		&nextRun,
		&lastRun,
		&j.IsActive,
		&j.AutoPost,
	}
	if err := row.Scan(append(dest, audit.dest()...)...); err != nil {
		return nil, err
	}

	j.DayOfWeek = intPtr(dayOfWeek)
	j.DayOfMonth = intPtr(dayOfMonth)
	j.EndDate = timePtr(endDate)
	j.NextRunDate = timePtr(nextRun)
	j.LastRunDate = timePtr(lastRun)
	j.Lines = []models.JournalLine{}
	audit.apply(&j.AuditFields)
	return &j, nil
}

// List retrieves the organization's recurring journals with their lines
func (r *recurringJournalRepository) List(ctx context.Context, orgID int, filter models.RecurringJournalFilter) ([]models.RecurringJournal, error) {
	q := newListQuery(orgID)
	q.whereEq("frequency", filter.Frequency)
	if filter.Active != nil {
		q.where("is_active = ?", *filter.Active)
	}
	q.search(filter.Search, "name", "description")
	query, args := q.selectSQL(recurringJournalColumns, "recurring_journals", filter.ListOptions,
		recurringJournalSortColumns, "name ASC")

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring journals: %w", err)
	}
	defer rows.Close()

	journals := []models.RecurringJournal{}
	for rows.Next() {
		j, err := scanRecurringJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring journal: %w", err)
		}
		journals = append(journals, *j)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recurring journals: %w", err)
	}
	rows.Close()

	if err := r.attachLines(ctx, journals); err != nil {
		return nil, err
	}

	return journals, nil
}

// attachLines loads the lines of every journal in one query
func (r *recurringJournalRepository) attachLines(ctx context.Context, journals []models.RecurringJournal) error {
	if len(journals) == 0 {
		return nil
	}

	byID := make(map[int]*models.RecurringJournal, len(journals))
	placeholders := make([]string, len(journals))
	args := make([]interface{}, len(journals))
	for i := range journals {
		byID[journals[i].ID] = &journals[i]
		placeholders[i] = "?"
		args[i] = journals[i].ID
	}

	query := `
		SELECT id, journal_id, line_number, account_code, description, debit, credit
		FROM recurring_journal_lines
		WHERE journal_id IN (` + strings.Join(placeholders, ", ") + `)
		ORDER BY journal_id, line_number
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line models.JournalLine
		err := rows.Scan(&line.ID, &line.JournalID, &line.LineNumber, &line.AccountCode,
			&line.Description, &line.Debit, &line.Credit)
		if err != nil {
			return fmt.Errorf("failed to scan journal line: %w", err)
		}
		if j, ok := byID[line.JournalID]; ok {
			j.Lines = append(j.Lines, line)
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating journal lines: %w", err)
	}
	return nil
}

// GetByID retrieves a recurring journal and its lines
func (r *recurringJournalRepository) GetByID(ctx context.Context, orgID, id int) (*models.RecurringJournal, error) {
	query := `SELECT ` + recurringJournalColumns + ` FROM recurring_journals WHERE organization_id = ? AND id = ?`

	j, err := scanRecurringJournal(r.db.QueryRowContext(ctx, query, orgID, id))
	if err == sql.ErrNoRows {
		return nil, notFound("recurring journal", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recurring journal: %w", err)
	}

	journals := []models.RecurringJournal{*j}
	if err := r.attachLines(ctx, journals); err != nil {
		return nil, err
	}

	return &journals[0], nil
}

// Create creates a journal template and its lines in one transaction
func (r *recurringJournalRepository) Create(ctx context.Context, journal *models.RecurringJournal) error {
	query := `
		INSERT INTO recurring_journals (organization_id, name, description, frequency, interval_count,
			day_of_week, day_of_month, start_date, end_date, next_run_date, last_run_date, is_active,
			auto_post, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	stampCreated(ctx, &journal.AuditFields)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query,
		journal.OrganizationID,
		journal.Name,
		journal.Description,
		journal.Frequency,
		journal.IntervalCount,
		nullableInt(journal.DayOfWeek),
		nullableInt(journal.DayOfMonth),
		dateArg(journal.StartDate),
		nullableDate(journal.EndDate),
		nullableDate(journal.NextRunDate),
		nullableDate(journal.LastRunDate),
		journal.IsActive,
		journal.AutoPost,
		journal.CreatedBy,
		journal.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create recurring journal: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}
	journal.ID = int(id)

	if err := insertJournalLines(ctx, tx, journal); err != nil {
		return err
	}

	return tx.Commit()
}

// Update replaces a journal template and its lines in one transaction
func (r *recurringJournalRepository) Update(ctx context.Context, journal *models.RecurringJournal) error {
	query := `
		UPDATE recurring_journals
		SET name = ?, description = ?, frequency = ?, interval_count = ?, day_of_week = ?, day_of_month = ?,
		    start_date = ?, end_date = ?, next_run_date = ?, last_run_date = ?, is_active = ?, auto_post = ?,
		    modified_by = ?, modified_at = ?
		WHERE organization_id = ? AND id = ?
	`

	stampModified(ctx, &journal.AuditFields)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query,
		journal.Name,
		journal.Description,
		journal.Frequency,
		journal.IntervalCount,
		nullableInt(journal.DayOfWeek),
		nullableInt(journal.DayOfMonth),
		dateArg(journal.StartDate),
		nullableDate(journal.EndDate),
		nullableDate(journal.NextRunDate),
		nullableDate(journal.LastRunDate),
		journal.IsActive,
		journal.AutoPost,
		journal.ModifiedBy,
		*journal.ModifiedAt,
		journal.OrganizationID,
		journal.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update recurring journal: %w", err)
	}
	if err := checkAffected(result, "recurring journal", journal.ID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM recurring_journal_lines WHERE journal_id = ?`, journal.ID); err != nil {
		return fmt.Errorf("failed to clear journal lines: %w", err)
	}
	if err := insertJournalLines(ctx, tx, journal); err != nil {
		return err
	}

	return tx.Commit()
}

func insertJournalLines(ctx context.Context, tx *sql.Tx, journal *models.RecurringJournal) error {
	query := `
		INSERT INTO recurring_journal_lines (journal_id, line_number, account_code, description, debit, credit)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	for i := range journal.Lines {
		line := &journal.Lines[i]
		line.JournalID = journal.ID
		if line.LineNumber == 0 {
			line.LineNumber = i + 1
		}

		result, err := tx.ExecContext(ctx, query, line.JournalID, line.LineNumber, line.AccountCode,
			line.Description, line.Debit, line.Credit)
		if err != nil {
			return fmt.Errorf("failed to insert journal line %d: %w", line.LineNumber, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get inserted ID: %w", err)
		}
		line.ID = int(id)
	}
	return nil
}

// SetActive pauses or resumes a journal template
func (r *recurringJournalRepository) SetActive(ctx context.Context, orgID, id int, active bool) error {
	var audit models.AuditFields
	stampModified(ctx, &audit)

	query := `
		UPDATE recurring_journals
		SET is_active = ?, modified_by = ?, modified_at = ?
		WHERE organization_id = ? AND id = ?
	`

	result, err := r.db.ExecContext(ctx, query, active, audit.ModifiedBy, *audit.ModifiedAt, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to toggle recurring journal: %w", err)
	}

	return checkAffected(result, "recurring journal", id)
}

// Delete deletes a journal template; its lines cascade
func (r *recurringJournalRepository) Delete(ctx context.Context, orgID, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM recurring_journals WHERE organization_id = ? AND id = ?`, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete recurring journal: %w", err)
	}

	return checkAffected(result, "recurring journal", id)
}
