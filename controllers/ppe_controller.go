package controllers

import (
	"net/http"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/services"
)

const entityPPE = "PPE requirement"

// PPEController handles PPE requirement requests
type PPEController struct {
	resource[models.PPERequirement, models.PPERequirementForm]
	service services.PPEService
}

// NewPPEController creates a new PPE controller
func NewPPEController(service services.PPEService) *PPEController {
	return &PPEController{
		resource: resource[models.PPERequirement, models.PPERequirementForm]{entity: entityPPE, service: service},
		service:  service,
	}
}

// List handles GET /api/ppe-requirements?area=&ppe_type=&status=&q=
func (c *PPEController) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := models.PPEFilter{
		Area:        q.str("area"),
		PPEType:     q.str("ppe_type"),
		Status:      q.str("status"),
		ListOptions: q.listOptions(),
	}
	if !q.ok(w) {
		return
	}

	items, err := c.service.List(r.Context(), filter)
	if err != nil {
		respondError(w, err, "load", "PPE requirements")
		return
	}
	respondList(w, items)
}

// Matrix handles GET /api/ppe-requirements/matrix
func (c *PPEController) Matrix(w http.ResponseWriter, r *http.Request) {
	rows, err := c.service.Matrix(r.Context())
	if err != nil {
		respondError(w, err, "load", "PPE matrix")
		return
	}
	respondList(w, rows)
}
