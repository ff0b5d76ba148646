package controllers

import (
	"net/http"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/services"
)

// SpillReportController handles spill report requests
type SpillReportController struct {
	resource[models.SpillReport, models.SpillReportForm]
	service services.SpillReportService
}

// NewSpillReportController creates a new spill report controller
func NewSpillReportController(service services.SpillReportService) *SpillReportController {
	return &SpillReportController{
		resource: resource[models.SpillReport, models.SpillReportForm]{entity: "spill report", service: service},
		service:  service,
	}
}

// List handles GET /api/spill-reports?status=&severity=&reportable=&open=&q=
func (c *SpillReportController) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := models.SpillReportFilter{
		Status:      q.str("status"),
		Severity:    q.str("severity"),
		Reportable:  q.boolPtr("reportable"),
		ListOptions: q.listOptions(),
	}
	if open := q.boolPtr("open"); open != nil {
		filter.OpenOnly = *open
	}
	if !q.ok(w) {
		return
	}

	reports, err := c.service.List(r.Context(), filter)
	if err != nil {
		respondError(w, err, "load", "spill reports")
		return
	}
	respondList(w, reports)
}
