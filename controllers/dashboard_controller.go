package controllers

import (
	"net/http"

	"github.com/blogem/opsledger/services"
)

// DashboardController handles dashboard-related requests
type DashboardController struct {
	service services.DashboardService
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(service services.DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

// Index handles GET /api/dashboard
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	data, err := c.service.Get(r.Context())
	if err != nil {
		respondError(w, err, "load", "dashboard")
		return
	}
	respondJSON(w, http.StatusOK, data)
}

// AuditController serves the organization's audit log
type AuditController struct {
	service services.AuditService
}

// NewAuditController creates a new audit controller
func NewAuditController(service services.AuditService) *AuditController {
	return &AuditController{service: service}
}

// Index handles GET /api/audit-log?limit=
func (c *AuditController) Index(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	limit := q.integer("limit", 0)
	if !q.ok(w) {
		return
	}

	entries, err := c.service.Recent(r.Context(), limit)
	if err != nil {
		respondError(w, err, "read", "audit log")
		return
	}
	respondList(w, entries)
}
