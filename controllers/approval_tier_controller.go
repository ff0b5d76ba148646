package controllers

import (
	"net/http"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/services"
)

// ApprovalTierController handles approval tier requests
type ApprovalTierController struct {
	resource[models.ApprovalTier, models.ApprovalTierForm]
	service services.ApprovalTierService
}

// NewApprovalTierController creates a new approval tier controller
func NewApprovalTierController(service services.ApprovalTierService) *ApprovalTierController {
	return &ApprovalTierController{
		resource: resource[models.ApprovalTier, models.ApprovalTierForm]{entity: "approval tier", service: service},
		service:  service,
	}
}

// List handles GET /api/approval-tiers?category=&active=
func (c *ApprovalTierController) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := models.ApprovalTierFilter{
		Category:    q.str("category"),
		ListOptions: q.listOptions(),
	}
	if active := q.boolPtr("active"); active != nil {
		filter.ActiveOnly = *active
	}
	if !q.ok(w) {
		return
	}

	tiers, err := c.service.List(r.Context(), filter)
	if err != nil {
		respondError(w, err, "load", "approval tiers")
		return
	}
	respondList(w, tiers)
}

// Match handles GET /api/approval-tiers/match?category=&amount=
func (c *ApprovalTierController) Match(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	category := q.str("category")
	amount, ok := q.number("amount")
	if !q.ok(w) {
		return
	}
	if !ok {
		badRequest(w, "amount is required")
		return
	}

	match, err := c.service.MatchTier(r.Context(), category, amount)
	if err != nil {
		respondError(w, err, "match", c.entity)
		return
	}
	respondJSON(w, http.StatusOK, match)
}

// Import handles POST /api/approval-tiers/import with a YAML tier file as body
func (c *ApprovalTierController) Import(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	counts, err := c.service.ImportTiers(r.Context(), body)
	if err != nil {
		respondError(w, err, "import", "approval tiers")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"imported": counts})
}
