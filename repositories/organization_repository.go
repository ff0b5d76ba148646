package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/blogem/opsledger/models"
)

// OrganizationRepository handles tenants and their members
type OrganizationRepository interface {
	GetByID(ctx context.Context, id int) (*models.Organization, error)
	ListForUser(ctx context.Context, email string) ([]models.Organization, error)
	GetMembership(ctx context.Context, orgID int, email string) (*models.Membership, error)
	Create(ctx context.Context, org *models.Organization) error
	AddMember(ctx context.Context, membership *models.Membership) error
}

type organizationRepository struct {
	db *sql.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *sql.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

// GetByID retrieves an organization by ID
func (r *organizationRepository) GetByID(ctx context.Context, id int) (*models.Organization, error) {
	query := `SELECT id, name, slug, created_at FROM organizations WHERE id = ?`

	var org models.Organization
	err := r.db.QueryRowContext(ctx, query, id).Scan(&org.ID, &org.Name, &org.Slug, &org.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, notFound("organization", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &org, nil
}

// ListForUser retrieves the organizations a user belongs to, with the user's role
func (r *organizationRepository) ListForUser(ctx context.Context, email string) ([]models.Organization, error) {
	query := `
		SELECT o.id, o.name, o.slug, o.created_at, m.role
		FROM organizations o
		JOIN organization_members m ON m.organization_id = o.id
		WHERE LOWER(m.user_email) = LOWER(?)
		ORDER BY o.name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query organizations: %w", err)
	}
	defer rows.Close()

	orgs := []models.Organization{}
	for rows.Next() {
		var org models.Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.Slug, &org.CreatedAt, &org.Role); err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, org)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating organizations: %w", err)
	}

	return orgs, nil
}

// GetMembership returns the user's membership in an organization
func (r *organizationRepository) GetMembership(ctx context.Context, orgID int, email string) (*models.Membership, error) {
	query := `
		SELECT organization_id, user_email, role
		FROM organization_members
		WHERE organization_id = ? AND LOWER(user_email) = LOWER(?)
	`

	var m models.Membership
	err := r.db.QueryRowContext(ctx, query, orgID, email).Scan(&m.OrganizationID, &m.UserEmail, &m.Role)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("membership of %s in organization %d %w", email, orgID, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

// Create creates a new organization
func (r *organizationRepository) Create(ctx context.Context, org *models.Organization) error {
	query := `INSERT INTO organizations (name, slug, created_at) VALUES (?, ?, ?)`

	org.Name = strings.TrimSpace(org.Name)
	org.Slug = strings.ToLower(strings.TrimSpace(org.Slug))
	if org.CreatedAt.IsZero() {
		org.CreatedAt = time.Now()
	}

	result, err := r.db.ExecContext(ctx, query, org.Name, org.Slug, org.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("organization slug %q is taken: %w", org.Slug, models.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	org.ID = int(id)
	return nil
}

// AddMember adds a user to an organization, replacing any existing role.
// Demoting the organization's last owner is refused with ErrConflict.
func (r *organizationRepository) AddMember(ctx context.Context, membership *models.Membership) error {
	query := `
		INSERT INTO organization_members (organization_id, user_email, role)
		VALUES (?, ?, ?)
		ON CONFLICT (organization_id, user_email) DO UPDATE SET role = excluded.role
		WHERE organization_members.role <> ?
			OR excluded.role = ?
			OR (SELECT COUNT(*) FROM organization_members o
				WHERE o.organization_id = ? AND o.role = ?) > 1
	`

	membership.UserEmail = strings.ToLower(strings.TrimSpace(membership.UserEmail))
	result, err := r.db.ExecContext(ctx, query, membership.OrganizationID, membership.UserEmail, membership.Role,
		models.RoleOwner, models.RoleOwner, membership.OrganizationID, models.RoleOwner)
	if err != nil {
		return fmt.Errorf("failed to add organization member: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("organization %d must keep at least one owner: %w", membership.OrganizationID, models.ErrConflict)
	}
	return nil
}
