package controllers

import (
	"net/http"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/services"
)

// RecallPlanController handles recall plan requests
type RecallPlanController struct {
	resource[models.RecallPlan, models.RecallPlanForm]
	service services.RecallPlanService
}

// NewRecallPlanController creates a new recall plan controller
func NewRecallPlanController(service services.RecallPlanService) *RecallPlanController {
	return &RecallPlanController{
		resource: resource[models.RecallPlan, models.RecallPlanForm]{entity: "recall plan", service: service},
		service:  service,
	}
}

// List handles GET /api/recall-plans?status=&q=
func (c *RecallPlanController) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := models.RecallPlanFilter{Status: q.str("status"), ListOptions: q.listOptions()}
	if !q.ok(w) {
		return
	}

	plans, err := c.service.List(r.Context(), filter)
	if err != nil {
		respondError(w, err, "load", "recall plans")
		return
	}
	respondList(w, plans)
}

// RecallEventController handles recall event requests
type RecallEventController struct {
	resource[models.RecallEvent, models.RecallEventForm]
	service services.RecallEventService
}

// NewRecallEventController creates a new recall event controller
func NewRecallEventController(service services.RecallEventService) *RecallEventController {
	return &RecallEventController{
		resource: resource[models.RecallEvent, models.RecallEventForm]{entity: "recall event", service: service},
		service:  service,
	}
}

// List handles GET /api/recall-events?plan_id=&status=&recall_type=&q=
func (c *RecallEventController) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := models.RecallEventFilter{
		PlanID:      q.integer("plan_id", 0),
		Status:      q.str("status"),
		RecallType:  q.str("recall_type"),
		ListOptions: q.listOptions(),
	}
	if !q.ok(w) {
		return
	}

	events, err := c.service.List(r.Context(), filter)
	if err != nil {
		respondError(w, err, "load", "recall events")
		return
	}
	respondList(w, events)
}
