package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/blogem/opsledger/database"
	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/userctx"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// listQuery accumulates the WHERE clause of an organization scoped list query
type listQuery struct {
	conditions []string
	args       []interface{}
}

func newListQuery(orgID int) *listQuery {
	return &listQuery{
		conditions: []string{"organization_id = ?"},
		args:       []interface{}{orgID},
	}
}

func (q *listQuery) where(condition string, args ...interface{}) {
	q.conditions = append(q.conditions, condition)
	q.args = append(q.args, args...)
}

// whereEq adds column = value unless value is blank
func (q *listQuery) whereEq(column, value string) {
	if value != "" {
		q.where(column+" = ?", value)
	}
}

// likeEscaper makes %, _ and the escape character itself match literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// search adds a case-insensitive substring match over the given columns.
// Both sides go through the fold function registered by the database package.
func (q *listQuery) search(term string, columns ...string) {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return
	}

	pattern := "%" + likeEscaper.Replace(database.Fold(term)) + "%"
	parts := make([]string, len(columns))
	for i, column := range columns {
		parts[i] = "fold(" + column + ") LIKE ? ESCAPE '\\'"
		q.args = append(q.args, pattern)
	}
	q.conditions = append(q.conditions, "("+strings.Join(parts, " OR ")+")")
}

// selectSQL builds the paged SELECT. Unknown sort keys fall back to defaultOrder.
func (q *listQuery) selectSQL(columns, table string, opts models.ListOptions, sortColumns map[string]string, defaultOrder string) (string, []interface{}) {
	order := defaultOrder
	if column, ok := sortColumns[opts.SortBy]; ok {
		direction := "ASC"
		if opts.Desc {
			direction = "DESC"
		}
		order = column + " " + direction + ", id ASC"
	}

	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s LIMIT ? OFFSET ?",
		columns, table, strings.Join(q.conditions, " AND "), order)

	args := make([]interface{}, 0, len(q.args)+2)
	args = append(args, q.args...)
	args = append(args, opts.NormalizedLimit(), offset)
	return query, args
}

func (q *listQuery) countSQL(table string) (string, []interface{}) {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", table, strings.Join(q.conditions, " AND ")), q.args
}

func countRows(ctx context.Context, db *sql.DB, q *listQuery, table string) (int, error) {
	query, args := q.countSQL(table)

	var count int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}

// notFound builds the "<entity> with ID n not found" error wrapping models.ErrNotFound
func notFound(entity string, id int) error {
	return fmt.Errorf("%s with ID %d %w", entity, id, models.ErrNotFound)
}

// checkAffected turns an update or delete that touched no rows into a not found error
func checkAffected(result sql.Result, entity string, id int) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return notFound(entity, id)
	}
	return nil
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// Dates are stored as YYYY-MM-DD text so range filters compare lexically
func dateArg(t time.Time) string {
	return models.FormatDate(t)
}

func nullableDate(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return models.FormatDate(*t)
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

func intPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	v := int(ni.Int64)
	return &v
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode list: %w", err)
	}
	return string(data), nil
}

func decodeList(raw string) ([]string, error) {
	items := []string{}
	if raw == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	return items, nil
}

// auditColumns is appended to every entity SELECT
const auditColumns = "created_by, created_at, modified_by, modified_at"

// auditScan holds the nullable audit columns of a row
type auditScan struct {
	createdBy  string
	createdAt  time.Time
	modifiedBy sql.NullString
	modifiedAt sql.NullTime
}

func (a *auditScan) dest() []interface{} {
	return []interface{}{&a.createdBy, &a.createdAt, &a.modifiedBy, &a.modifiedAt}
}

func (a *auditScan) apply(fields *models.AuditFields) {
	fields.CreatedBy = a.createdBy
	fields.CreatedAt = a.createdAt
	// Convert NULL values to empty string/nil
	if a.modifiedBy.Valid {
		fields.ModifiedBy = a.modifiedBy.String
	}
	fields.ModifiedAt = timePtr(a.modifiedAt)
}

// stampCreated records the creating user from context
func stampCreated(ctx context.Context, fields *models.AuditFields) {
	fields.CreatedBy = userctx.GetUserEmail(ctx)
	fields.CreatedAt = time.Now()
}

// stampModified records the modifying user from context
func stampModified(ctx context.Context, fields *models.AuditFields) {
	now := time.Now()
	fields.ModifiedBy = userctx.GetUserEmail(ctx)
	fields.ModifiedAt = &now
}
