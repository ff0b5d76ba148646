package controllers

import (
	"net/http"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/services"
)

// DrugTestController handles drug and alcohol test requests
type DrugTestController struct {
	resource[models.DrugTest, models.DrugTestForm]
	service services.DrugTestService
}

// NewDrugTestController creates a new drug test controller
func NewDrugTestController(service services.DrugTestService) *DrugTestController {
	return &DrugTestController{
		resource: resource[models.DrugTest, models.DrugTestForm]{entity: "drug test", service: service},
		service:  service,
	}
}

// List handles GET /api/drug-tests?test_type=&result=&from=&to=&q=
func (c *DrugTestController) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	filter := models.DrugTestFilter{
		TestType:    q.str("test_type"),
		Result:      q.str("result"),
		From:        q.date("from"),
		To:          q.date("to"),
		ListOptions: q.listOptions(),
	}
	if !q.ok(w) {
		return
	}

	tests, err := c.service.List(r.Context(), filter)
	if err != nil {
		respondError(w, err, "load", "drug tests")
		return
	}
	respondList(w, tests)
}

// Stats handles GET /api/drug-tests/stats?from=&to=
func (c *DrugTestController) Stats(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	from, to := q.date("from"), q.date("to")
	if !q.ok(w) {
		return
	}

	stats, err := c.service.Stats(r.Context(), from, to)
	if err != nil {
		respondError(w, err, "load", "drug test statistics")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
