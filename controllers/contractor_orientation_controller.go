package controllers

import (
	"net/http"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/services"
)

// ContractorOrientationController handles contractor orientation requests
type ContractorOrientationController struct {
	resource[models.ContractorOrientation, models.ContractorOrientationForm]
	service services.ContractorOrientationService
}

// NewContractorOrientationController creates a new contractor orientation controller
func NewContractorOrientationController(service services.ContractorOrientationService) *ContractorOrientationController {
	return &ContractorOrientationController{
		resource: resource[models.ContractorOrientation, models.ContractorOrientationForm]{entity: "contractor orientation", service: service},
		service:  service,
	}
}

// List handles GET /api/contractor-orientations?company=&status=&expired=&q=
func (c *ContractorOrientationController) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := models.ContractorOrientationFilter{
		Company:     q.str("company"),
		Status:      q.str("status"),
		ListOptions: q.listOptions(),
	}
	expired := q.boolPtr("expired")
	if !q.ok(w) {
		return
	}

	orientations, err := c.service.List(r.Context(), filter, expired != nil && *expired)
	if err != nil {
		respondError(w, err, "load", "contractor orientations")
		return
	}
	respondList(w, orientations)
}
