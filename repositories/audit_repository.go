package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/opsledger/models"
)

// AuditRepository handles audit log persistence
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLogEntry) error
	List(ctx context.Context, orgID int, limit int) ([]models.AuditLogEntry, error)
}

type sqliteAuditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &sqliteAuditRepository{db: db}
}

// Create inserts a new audit log entry
func (r *sqliteAuditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	query := `
		INSERT INTO audit_log (timestamp, organization_id, user_email, method, path, form_data, user_agent, ip_address)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	var orgID interface{}
	if entry.OrganizationID > 0 {
		orgID = entry.OrganizationID
	}

	result, err := r.db.ExecContext(ctx,
		query,
		entry.Timestamp,
		orgID,
		entry.UserEmail,
		entry.Method,
		entry.Path,
		entry.FormData,
		entry.UserAgent,
		entry.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit log entry: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		entry.ID = id
	}
	return nil
}

// List returns the most recent entries of an organization, newest first
func (r *sqliteAuditRepository) List(ctx context.Context, orgID int, limit int) ([]models.AuditLogEntry, error) {
	if limit <= 0 || limit > models.MaxListLimit {
		limit = 100
	}

	query := `
		SELECT id, timestamp, organization_id, user_email, method, path, form_data, user_agent, ip_address
		FROM audit_log
		WHERE organization_id = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, orgID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	entries := []models.AuditLogEntry{}
	for rows.Next() {
		var entry models.AuditLogEntry
		var org sql.NullInt64
		var formData, userAgent, ip sql.NullString

		err := rows.Scan(&entry.ID, &entry.Timestamp, &org, &entry.UserEmail, &entry.Method,
			&entry.Path, &formData, &userAgent, &ip)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit log entry: %w", err)
		}

		entry.OrganizationID = int(org.Int64)
		entry.FormData = formData.String
		entry.UserAgent = userAgent.String
		entry.IPAddress = ip.String
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit log: %w", err)
	}

	return entries, nil
}
