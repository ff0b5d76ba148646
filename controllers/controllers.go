package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/blogem/opsledger/authenticator"
	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/services"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// respondJSON writes data with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// respondError maps service errors onto status codes. Anything unrecognised
// is a 500 with the user-facing "Failed to <verb> <entity>" message.
func respondError(w http.ResponseWriter, err error, verb, entity string) {
	var ve models.ValidationErrors
	switch {
	case errors.As(err, &ve):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation failed", Details: ve.GetMessages()})
	case errors.Is(err, models.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: capitalize(entity) + " not found"})
	case errors.Is(err, models.ErrForbidden):
		respondJSON(w, http.StatusForbidden, errorResponse{Error: fmt.Sprintf("You do not have permission to %s %s", verb, entity)})
	case errors.Is(err, models.ErrConflict):
		respondJSON(w, http.StatusConflict, errorResponse{
			Error:   fmt.Sprintf("Cannot %s %s in its current state", verb, entity),
			Details: []string{err.Error()},
		})
	default:
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: fmt.Sprintf("Failed to %s %s", verb, entity)})
	}
}

func badRequest(w http.ResponseWriter, messages ...string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation failed", Details: messages})
}

// decodeJSON reads a JSON body into dst, rejecting unknown fields
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return false
	}
	return true
}

// parseID reads the {id} URL parameter
func parseID(w http.ResponseWriter, r *http.Request, entity string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid " + entity + " ID"})
		return 0, false
	}
	return id, true
}

// query wraps URL query parsing and collects every malformed parameter
type query struct {
	values   map[string][]string
	problems []string
}

func newQuery(r *http.Request) *query {
	return &query{values: r.URL.Query()}
}

func (q *query) str(key string) string {
	if v := q.values[key]; len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}

func (q *query) integer(key string, def int) int {
	raw := q.str(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		q.problems = append(q.problems, key+" must be a whole number")
		return def
	}
	return n
}

func (q *query) number(key string) (float64, bool) {
	raw := q.str(key)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		q.problems = append(q.problems, key+" must be a number")
		return 0, false
	}
	return f, true
}

func (q *query) boolPtr(key string) *bool {
	raw := q.str(key)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		q.problems = append(q.problems, key+" must be true or false")
		return nil
	}
	return &b
}

func (q *query) date(key string) *time.Time {
	d, err := models.ParseOptionalDate(q.str(key))
	if err != nil {
		q.problems = append(q.problems, key+" must be a date in YYYY-MM-DD format")
		return nil
	}
	return d
}

// listOptions reads q, sort, order, limit and offset
func (q *query) listOptions() models.ListOptions {
	return models.ListOptions{
		Search: q.str("q"),
		SortBy: q.str("sort"),
		Desc:   strings.EqualFold(q.str("order"), "desc"),
		Limit:  q.integer("limit", 0),
		Offset: q.integer("offset", 0),
	}
}

// ok reports the collected problems as a 400 and returns false if there were any
func (q *query) ok(w http.ResponseWriter) bool {
	if len(q.problems) > 0 {
		badRequest(w, q.problems...)
		return false
	}
	return true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Controllers holds all controller instances
type Controllers struct {
	Auth                  *AuthController
	Organization          *OrganizationController
	Dashboard             *DashboardController
	Audit                 *AuditController
	PPE                   *PPEController
	FoodSafetyPlan        *FoodSafetyPlanController
	RecallPlan            *RecallPlanController
	RecallEvent           *RecallEventController
	Document              *DocumentController
	RecurringJournal      *RecurringJournalController
	ProductionRun         *ProductionRunController
	ContractorOrientation *ContractorOrientationController
	DrugTest              *DrugTestController
	OSHA                  *OSHAController
	SpillReport           *SpillReportController
	ApprovalTier          *ApprovalTierController
}

// NewControllers creates and initializes all controller instances.
// provider may be nil when browser login is disabled; tokens may be nil
// when API tokens are disabled.
func NewControllers(srvs *services.Services, provider authenticator.Provider, tokens *authenticator.TokenIssuer, logger *zap.Logger) *Controllers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controllers{
		Auth:                  NewAuthController(provider, tokens, srvs.Organization, logger),
		Organization:          NewOrganizationController(srvs.Organization),
		Dashboard:             NewDashboardController(srvs.Dashboard),
		Audit:                 NewAuditController(srvs.Audit),
		PPE:                   NewPPEController(srvs.PPE),
		FoodSafetyPlan:        NewFoodSafetyPlanController(srvs.FoodSafetyPlan),
		RecallPlan:            NewRecallPlanController(srvs.RecallPlan),
		RecallEvent:           NewRecallEventController(srvs.RecallEvent),
		Document:              NewDocumentController(srvs.Document),
		RecurringJournal:      NewRecurringJournalController(srvs.RecurringJournal),
		ProductionRun:         NewProductionRunController(srvs.ProductionRun),
		ContractorOrientation: NewContractorOrientationController(srvs.ContractorOrientation),
		DrugTest:              NewDrugTestController(srvs.DrugTest),
		OSHA:                  NewOSHAController(srvs.OSHA),
		SpillReport:           NewSpillReportController(srvs.SpillReport),
		ApprovalTier:          NewApprovalTierController(srvs.ApprovalTier),
	}
}
