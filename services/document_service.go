package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blogem/opsledger/blobstore"
	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/querycache"
	"github.com/blogem/opsledger/repositories"
)

// DefaultExpiryWindowDays is the look-ahead for expiring documents
const DefaultExpiryWindowDays = 30

// Upload describes a file attached to a document
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// DocumentService interface defines document library business logic
type DocumentService interface {
	List(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error)
	Get(ctx context.Context, id int) (*models.Document, error)
	Create(ctx context.Context, form *models.DocumentForm) (*models.Document, error)
	Update(ctx context.Context, id int, form *models.DocumentForm) (*models.Document, error)
	Delete(ctx context.Context, id int) error
	// ExpiringWithin lists current documents expiring within days of today, expired ones included
	ExpiringWithin(ctx context.Context, days int) ([]models.Document, error)
	// AttachFile stores the upload and replaces any previous file of the document
	AttachFile(ctx context.Context, id int, upload Upload) (*models.Document, error)
	// OpenFile streams the document's file; the caller closes the reader
	OpenFile(ctx context.Context, id int) (*models.Document, io.ReadCloser, error)
}

type documentService struct {
	base
	repo  repositories.DocumentRepository
	blobs blobstore.Store
}

// NewDocumentService creates a new document service
func NewDocumentService(repo repositories.DocumentRepository, deps Deps) DocumentService {
	blobs := deps.Blobs
	if blobs == nil {
		blobs = blobstore.NewMemory()
	}
	return &documentService{base: newBase(deps, scopeDocuments), repo: repo, blobs: blobs}
}

func (s *documentService) List(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := querycache.Get(ctx, s.cache, s.key(orgID, "list", filter), func(ctx context.Context) ([]models.Document, error) {
		return s.repo.List(ctx, orgID, filter)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to list documents", err)
	}
	return docs, nil
}

func (s *documentService) Get(ctx context.Context, id int) (*models.Document, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}
	doc, err := querycache.Get(ctx, s.cache, s.key(orgID, "get", id), func(ctx context.Context) (*models.Document, error) {
		return s.repo.GetByID(ctx, orgID, id)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to get document", err)
	}
	copied := *doc
	return &copied, nil
}

func (s *documentService) Create(ctx context.Context, form *models.DocumentForm) (*models.Document, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := invalid(form.Validate()); err != nil {
		return nil, err
	}

	doc := &models.Document{OrganizationID: orgID}
	if err := form.Apply(doc); err != nil {
		return nil, badInput("%v", err)
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, s.fail(ctx, "failed to create document", err)
	}
	s.invalidate(orgID)
	return doc, nil
}

func (s *documentService) Update(ctx context.Context, id int, form *models.DocumentForm) (*models.Document, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}
	if err := invalid(form.Validate()); err != nil {
		return nil, err
	}

	doc, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, s.fail(ctx, "failed to update document", err)
	}
	if err := form.Apply(doc); err != nil {
		return nil, badInput("%v", err)
	}
	if err := s.repo.Update(ctx, doc); err != nil {
		return nil, s.fail(ctx, "failed to update document", err)
	}
	s.invalidate(orgID)
	return doc, nil
}

func (s *documentService) Delete(ctx context.Context, id int) error {
	orgID, err := s.org(ctx)
	if err != nil {
		return err
	}
	if err := validID(id); err != nil {
		return err
	}

	doc, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return s.fail(ctx, "failed to delete document", err)
	}
	if err := s.repo.Delete(ctx, orgID, id); err != nil {
		return s.fail(ctx, "failed to delete document", err)
	}
	s.invalidate(orgID)

	if doc.HasFile() {
		s.removeBlob(ctx, doc.FileKey)
	}
	return nil
}

func (s *documentService) ExpiringWithin(ctx context.Context, days int) ([]models.Document, error) {
	if days <= 0 {
		days = DefaultExpiryWindowDays
	}
	by := s.today().AddDate(0, 0, days)
	return s.List(ctx, models.DocumentFilter{ExpiringBy: &by})
}

func (s *documentService) AttachFile(ctx context.Context, id int, upload Upload) (*models.Document, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}
	name := sanitizeFileName(upload.FileName)
	if name == "" {
		return nil, badInput("File name is required")
	}

	doc, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, s.fail(ctx, "failed to upload document file", err)
	}

	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := DocumentBlobKey(orgID, id, name)
	info, err := s.blobs.Put(ctx, key, upload.Body, blobstore.PutOptions{
		ContentType: contentType,
		Size:        upload.Size,
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to upload document file", err, zap.String("key", key))
	}

	previous := doc.FileKey
	doc.FileKey = key
	doc.FileName = name
	doc.ContentType = contentType
	doc.FileSize = info.Size
	if err := s.repo.SetFile(ctx, doc); err != nil {
		s.removeBlob(ctx, key)
		return nil, s.fail(ctx, "failed to upload document file", err)
	}
	s.invalidate(orgID)

	if previous != "" && previous != key {
		s.removeBlob(ctx, previous)
	}
	return doc, nil
}

func (s *documentService) OpenFile(ctx context.Context, id int) (*models.Document, io.ReadCloser, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !doc.HasFile() {
		return nil, nil, fmt.Errorf("%w: document %d has no file", models.ErrNotFound, id)
	}

	_, body, err := s.blobs.Get(ctx, doc.FileKey)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: file for document %d is missing", models.ErrNotFound, id)
		}
		return nil, nil, s.fail(ctx, "failed to download document file", err, zap.String("key", doc.FileKey))
	}
	return doc, body, nil
}

// removeBlob deletes a blob that is no longer referenced; failures only leave an orphan
func (s *documentService) removeBlob(ctx context.Context, key string) {
	if _, err := s.blobs.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to delete document blob", zap.String("key", key), zap.Error(err))
	}
}

// DocumentBlobKey builds the storage key of a document file; every upload gets a fresh key
func DocumentBlobKey(orgID, documentID int, fileName string) string {
	return fmt.Sprintf("org/%d/documents/%d/%s-%s", orgID, documentID, uuid.NewString(), fileName)
}

func sanitizeFileName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(strings.TrimSpace(name))
	if name == "." || name == "/" {
		return ""
	}
	return name
}
