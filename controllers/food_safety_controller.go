package controllers

import (
	"net/http"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/services"
)

// FoodSafetyPlanController handles food safety plan requests
type FoodSafetyPlanController struct {
	resource[models.FoodSafetyPlan, models.FoodSafetyPlanForm]
	service services.FoodSafetyPlanService
}

// NewFoodSafetyPlanController creates a new food safety plan controller
func NewFoodSafetyPlanController(service services.FoodSafetyPlanService) *FoodSafetyPlanController {
	return &FoodSafetyPlanController{
		resource: resource[models.FoodSafetyPlan, models.FoodSafetyPlanForm]{entity: "food safety plan", service: service},
		service:  service,
	}
}

// List handles GET /api/food-safety-plans
func (c *FoodSafetyPlanController) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := models.FoodSafetyPlanFilter{
		Status:      q.str("status"),
		PlanType:    q.str("plan_type"),
		ListOptions: q.listOptions(),
	}
	if !q.ok(w) {
		return
	}

	plans, err := c.service.List(r.Context(), filter)
	if err != nil {
		respondError(w, err, "load", "food safety plans")
		return
	}
	respondList(w, plans)
}

// DueForReview handles GET /api/food-safety-plans/due-for-review?days=
func (c *FoodSafetyPlanController) DueForReview(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	days := q.integer("days", services.DefaultReviewWindowDays)
	if !q.ok(w) {
		return
	}
	if days < 0 {
		badRequest(w, "days must not be negative")
		return
	}

	plans, err := c.service.DueForReview(r.Context(), days)
	if err != nil {
		respondError(w, err, "load", "food safety plans")
		return
	}
	respondList(w, plans)
}

// Review handles POST /api/food-safety-plans/{id}/review
func (c *FoodSafetyPlanController) Review(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, c.entity)
	if !ok {
		return
	}
	plan, err := c.service.Review(r.Context(), id)
	if err != nil {
		respondError(w, err, "review", c.entity)
		return
	}
	respondJSON(w, http.StatusOK, plan)
}
