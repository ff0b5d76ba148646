package controllers

import (
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/services"
)

const maxUploadBytes = 32 << 20

// DocumentController handles document library requests
type DocumentController struct {
	resource[models.Document, models.DocumentForm]
	service services.DocumentService
}

// NewDocumentController creates a new document controller
func NewDocumentController(service services.DocumentService) *DocumentController {
	return &DocumentController{
		resource: resource[models.Document, models.DocumentForm]{entity: "document", service: service},
		service:  service,
	}
}

// List handles GET /api/documents?category=&status=&q=&expiring_within=
// expiring_within lists current documents expiring within that many days and
// ignores the other filters.
func (c *DocumentController) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := models.DocumentFilter{
		Category:    q.str("category"),
		Status:      q.str("status"),
		ListOptions: q.listOptions(),
	}
	expiring := q.str("expiring_within") != ""
	days := q.integer("expiring_within", services.DefaultExpiryWindowDays)
	if !q.ok(w) {
		return
	}

	var (
		docs []models.Document
		err  error
	)
	if expiring {
		if days < 0 {
			badRequest(w, "expiring_within must not be negative")
			return
		}
		docs, err = c.service.ExpiringWithin(r.Context(), days)
	} else {
		docs, err = c.service.List(r.Context(), filter)
	}
	if err != nil {
		respondError(w, err, "load", "documents")
		return
	}
	respondList(w, docs)
}

// UploadFile handles POST /api/documents/{id}/file (multipart field "file")
func (c *DocumentController) UploadFile(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, c.entity)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		badRequest(w, "Upload must be multipart/form-data no larger than 32 MB")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		badRequest(w, "File is required")
		return
	}
	defer file.Close()

	doc, err := c.service.AttachFile(r.Context(), id, services.Upload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		respondError(w, err, "upload", "document file")
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

// DownloadFile handles GET /api/documents/{id}/file
func (c *DocumentController) DownloadFile(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, c.entity)
	if !ok {
		return
	}

	doc, body, err := c.service.OpenFile(r.Context(), id)
	if err != nil {
		respondError(w, err, "download", "document file")
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
	if doc.FileSize > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(doc.FileSize, 10))
	}
	w.WriteHeader(http.StatusOK)
	// headers are sent; a failed copy leaves the client with a truncated body
	_, _ = io.Copy(w, body)
}
