package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogem/opsledger/models"
)

// DocumentRepository interface defines document library database operations
type DocumentRepository interface {
	List(ctx context.Context, orgID int, filter models.DocumentFilter) ([]models.Document, error)
	Count(ctx context.Context, orgID int, filter models.DocumentFilter) (int, error)
	GetByID(ctx context.Context, orgID, id int) (*models.Document, error)
	Create(ctx context.Context, doc *models.Document) error
	Update(ctx context.Context, doc *models.Document) error
	// SetFile records the attached blob's key and metadata
	SetFile(ctx context.Context, doc *models.Document) error
	Delete(ctx context.Context, orgID, id int) error
}

type documentRepository struct {
	db *sql.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *sql.DB) DocumentRepository {
	return &documentRepository{db: db}
}

const documentColumns = `id, organization_id, title, category, manufacturer, product_name, revision,
	issued_date, expiry_date, status, tags, file_key, file_name, content_type, file_size, ` + auditColumns

var documentSortColumns = map[string]string{
	"title":       "title",
	"category":    "category",
	"status":      "status",
	"issued_date": "issued_date",
	"expiry_date": "expiry_date",
	"created_at":  "created_at",
}

func documentQuery(orgID int, filter models.DocumentFilter) *listQuery {
	q := newListQuery(orgID)
	q.whereEq("category", filter.Category)
	q.whereEq("status", filter.Status)
	if filter.ExpiringBy != nil {
		q.where("status = 'current' AND expiry_date IS NOT NULL AND expiry_date <= ?", dateArg(*filter.ExpiringBy))
	}
	q.search(filter.Search, "title", "manufacturer", "product_name", "tags")
	return q
}

func scanDocument(row rowScanner) (*models.Document, error) {
	var doc models.Document
	var issued, expiry sql.NullTime
	var tags string
	var audit auditScan

	dest := []interface{}{
		&doc.ID,
		&doc.OrganizationID,
		&doc.Title,
		&doc.Category,
		&doc.Manufacturer,
		&doc.ProductName,
		&doc.Revision,
		&issued,
		&expiry,
		&doc.Status,
		&tags,
		&doc.FileKey,
		&doc.FileName,
		&doc.ContentType,
		&doc.FileSize,
	}
	if err := row.Scan(append(dest, audit.dest()...)...); err != nil {
		return nil, err
	}

	decoded, err := decodeList(tags)
	if err != nil {
		return nil, err
	}

	doc.IssuedDate = timePtr(issued)
	doc.ExpiryDate = timePtr(expiry)
	doc.Tags = decoded
	audit.apply(&doc.AuditFields)
	return &doc, nil
}

// List retrieves the organization's documents matching the filter
func (r *documentRepository) List(ctx context.Context, orgID int, filter models.DocumentFilter) ([]models.Document, error) {
	defaultOrder := "title ASC"
	if filter.ExpiringBy != nil {
		defaultOrder = "expiry_date ASC, title ASC"
	}
	query, args := documentQuery(orgID, filter).selectSQL(documentColumns, "documents",
		filter.ListOptions, documentSortColumns, defaultOrder)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	docs := []models.Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, *doc)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}

	return docs, nil
}

// Count returns the number of documents matching the filter
func (r *documentRepository) Count(ctx context.Context, orgID int, filter models.DocumentFilter) (int, error) {
	return countRows(ctx, r.db, documentQuery(orgID, filter), "documents")
}

// GetByID retrieves a document by ID
func (r *documentRepository) GetByID(ctx context.Context, orgID, id int) (*models.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE organization_id = ? AND id = ?`

	doc, err := scanDocument(r.db.QueryRowContext(ctx, query, orgID, id))
	if err == sql.ErrNoRows {
		return nil, notFound("document", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return doc, nil
}

// Create creates a new document record. The file is attached separately.
func (r *documentRepository) Create(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (organization_id, title, category, manufacturer, product_name, revision,
			issued_date, expiry_date, status, tags, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	tags, err := encodeList(doc.Tags)
	if err != nil {
		return err
	}
	stampCreated(ctx, &doc.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		doc.OrganizationID,
		doc.Title,
		doc.Category,
		doc.Manufacturer,
		doc.ProductName,
		doc.Revision,
		nullableDate(doc.IssuedDate),
		nullableDate(doc.ExpiryDate),
		doc.Status,
		tags,
		doc.CreatedBy,
		doc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	doc.ID = int(id)
	return nil
}

// Update updates the metadata of an existing document
func (r *documentRepository) Update(ctx context.Context, doc *models.Document) error {
	query := `
		UPDATE documents
		SET title = ?, category = ?, manufacturer = ?, product_name = ?, revision = ?,
		    issued_date = ?, expiry_date = ?, status = ?, tags = ?,
		    modified_by = ?, modified_at = ?
		WHERE organization_id = ? AND id = ?
	`

	tags, err := encodeList(doc.Tags)
	if err != nil {
		return err
	}
	stampModified(ctx, &doc.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		doc.Title,
		doc.Category,
		doc.Manufacturer,
		doc.ProductName,
		doc.Revision,
		nullableDate(doc.IssuedDate),
		nullableDate(doc.ExpiryDate),
		doc.Status,
		tags,
		doc.ModifiedBy,
		*doc.ModifiedAt,
		doc.OrganizationID,
		doc.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	return checkAffected(result, "document", doc.ID)
}

// SetFile stores the file attachment columns
func (r *documentRepository) SetFile(ctx context.Context, doc *models.Document) error {
	query := `
		UPDATE documents
		SET file_key = ?, file_name = ?, content_type = ?, file_size = ?,
		    modified_by = ?, modified_at = ?
		WHERE organization_id = ? AND id = ?
	`

	stampModified(ctx, &doc.AuditFields)

	result, err := r.db.ExecContext(ctx, query,
		doc.FileKey,
		doc.FileName,
		doc.ContentType,
		doc.FileSize,
		doc.ModifiedBy,
		*doc.ModifiedAt,
		doc.OrganizationID,
		doc.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to attach document file: %w", err)
	}

	return checkAffected(result, "document", doc.ID)
}

// Delete deletes a document by ID
func (r *documentRepository) Delete(ctx context.Context, orgID, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE organization_id = ? AND id = ?`, orgID, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return checkAffected(result, "document", id)
}
