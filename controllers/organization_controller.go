package controllers

import (
	"net/http"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/services"
	"github.com/blogem/opsledger/userctx"
)

// OrganizationController handles organization and membership requests
type OrganizationController struct {
	service services.OrganizationService
}

// NewOrganizationController creates a new organization controller
func NewOrganizationController(service services.OrganizationService) *OrganizationController {
	return &OrganizationController{service: service}
}

// List handles GET /api/organizations
func (c *OrganizationController) List(w http.ResponseWriter, r *http.Request) {
	orgs, err := c.service.ListForUser(r.Context())
	if err != nil {
		respondError(w, err, "load", "organizations")
		return
	}
	respondList(w, orgs)
}

// Create handles POST /api/organizations; the caller becomes its owner
func (c *OrganizationController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.OrganizationForm
	if !decodeJSON(w, r, &form) {
		return
	}
	org, err := c.service.Create(r.Context(), &form, userctx.GetUserEmail(r.Context()))
	if err != nil {
		respondError(w, err, "create", "organization")
		return
	}
	respondJSON(w, http.StatusCreated, org)
}

// AddMember handles POST /api/organizations/{id}/members
func (c *OrganizationController) AddMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "organization")
	if !ok {
		return
	}
	var form models.MemberForm
	if !decodeJSON(w, r, &form) {
		return
	}
	member, err := c.service.AddMember(r.Context(), id, &form)
	if err != nil {
		respondError(w, err, "add", "organization member")
		return
	}
	respondJSON(w, http.StatusOK, member)
}
