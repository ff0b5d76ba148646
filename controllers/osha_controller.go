package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// OSHAController handles OSHA 300 log requests
type OSHAController struct {
	resource[models.OSHAEntry, models.OSHAEntryForm]
	service services.OSHAService
}

// NewOSHAController creates a new OSHA controller
func NewOSHAController(service services.OSHAService) *OSHAController {
	return &OSHAController{
		resource: resource[models.OSHAEntry, models.OSHAEntryForm]{entity: "OSHA entry", service: service},
		service:  service,
	}
}

// List handles GET /api/osha-entries?year=&classification=&injury_type=&q=
func (c *OSHAController) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := models.OSHAFilter{
		Year:           q.integer("year", 0),
		Classification: q.str("classification"),
		InjuryType:     q.str("injury_type"),
		ListOptions:    q.listOptions(),
	}
	if !q.ok(w) {
		return
	}

	entries, err := c.service.List(r.Context(), filter)
	if err != nil {
		respondError(w, err, "load", "OSHA entries")
		return
	}
	respondList(w, entries)
}

// Summary handles GET /api/osha-entries/summary?year=
func (c *OSHAController) Summary(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	year := q.integer("year", 0)
	if !q.ok(w) {
		return
	}

	summary, err := c.service.Summary(r.Context(), year)
	if err != nil {
		respondError(w, err, "load", "OSHA summary")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// Export handles GET /api/osha-entries/export?year= and returns an XLSX workbook
func (c *OSHAController) Export(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	year := q.integer("year", 0)
	if !q.ok(w) {
		return
	}

	// buffered so a failure can still be reported as JSON
	var buf bytes.Buffer
	if err := c.service.Export(r.Context(), year, &buf); err != nil {
		respondError(w, err, "export", "OSHA log")
		return
	}

	name := "osha-300.xlsx"
	if year > 0 {
		name = fmt.Sprintf("osha-300-%d.xlsx", year)
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
