package controllers

import (
	"net/http"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/services"
)

// ProductionRunController handles production run requests
type ProductionRunController struct {
	resource[models.ProductionRun, models.ProductionRunForm]
	service services.ProductionRunService
}

// NewProductionRunController creates a new production run controller
func NewProductionRunController(service services.ProductionRunService) *ProductionRunController {
	return &ProductionRunController{
		resource: resource[models.ProductionRun, models.ProductionRunForm]{entity: "production run", service: service},
		service:  service,
	}
}

// List handles GET /api/production-runs?line_name=&status=&shift=&q=
func (c *ProductionRunController) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := models.ProductionRunFilter{
		LineName:    q.str("line_name"),
		Status:      q.str("status"),
		Shift:       q.str("shift"),
		ListOptions: q.listOptions(),
	}
	if !q.ok(w) {
		return
	}

	runs, err := c.service.List(r.Context(), filter)
	if err != nil {
		respondError(w, err, "load", "production runs")
		return
	}
	respondList(w, runs)
}

// RecordCounts handles POST /api/production-runs/{id}/counts
func (c *ProductionRunController) RecordCounts(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, c.entity)
	if !ok {
		return
	}
	var update models.CountUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	run, err := c.service.RecordCounts(r.Context(), id, &update)
	if err != nil {
		respondError(w, err, "record counts for", c.entity)
		return
	}
	respondJSON(w, http.StatusOK, run)
}

// ChangeStatus handles POST /api/production-runs/{id}/status
func (c *ProductionRunController) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, c.entity)
	if !ok {
		return
	}
	var change models.StatusChange
	if !decodeJSON(w, r, &change) {
		return
	}

	run, err := c.service.ChangeStatus(r.Context(), id, &change)
	if err != nil {
		respondError(w, err, "change status of", c.entity)
		return
	}
	respondJSON(w, http.StatusOK, run)
}
