package controllers

import (
	"net/http"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/services"
)

// RecurringJournalController handles recurring journal template requests
type RecurringJournalController struct {
	resource[models.RecurringJournal, models.RecurringJournalForm]
	service services.RecurringJournalService
}

// NewRecurringJournalController creates a new recurring journal controller
func NewRecurringJournalController(service services.RecurringJournalService) *RecurringJournalController {
	return &RecurringJournalController{
		resource: resource[models.RecurringJournal, models.RecurringJournalForm]{entity: "recurring journal", service: service},
		service:  service,
	}
}

// List handles GET /api/recurring-journals?frequency=&active=&q=
func (c *RecurringJournalController) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := models.RecurringJournalFilter{
		Frequency:   q.str("frequency"),
		Active:      q.boolPtr("active"),
		ListOptions: q.listOptions(),
	}
	if !q.ok(w) {
		return
	}

	journals, err := c.service.List(r.Context(), filter)
	if err != nil {
		respondError(w, err, "load", "recurring journals")
		return
	}
	respondList(w, journals)
}

// Toggle handles POST /api/recurring-journals/{id}/toggle
func (c *RecurringJournalController) Toggle(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, c.entity)
	if !ok {
		return
	}
	journal, err := c.service.Toggle(r.Context(), id)
	if err != nil {
		respondError(w, err, "update", c.entity)
		return
	}
	respondJSON(w, http.StatusOK, journal)
}
