package models

import (
	"strings"
	"time"
)

// FoodSafetyPlan is a HACCP / preventive-controls style plan and its review cycle
type FoodSafetyPlan struct {
	ID             int        `json:"id"`
	OrganizationID int        `json:"organization_id"`
	Name           string     `json:"name"`
	PlanType       string     `json:"plan_type"`
	ProductScope   string     `json:"product_scope"`
	Version        string     `json:"version"`
	Status         string     `json:"status"`
	Owner          string     `json:"owner"`
	EffectiveDate  *time.Time `json:"effective_date,omitempty"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
	NextReviewDate *time.Time `json:"next_review_date,omitempty"`
	Notes          string     `json:"notes"`
	AuditFields
}

// IsDueForReview reports whether the plan needs review on or before the given day
func (p *FoodSafetyPlan) IsDueForReview(by time.Time) bool {
	if p.Status == "archived" || p.NextReviewDate == nil {
		return false
	}
	return !StartOfDay(*p.NextReviewDate).After(StartOfDay(by))
}

// FoodSafetyPlanForm represents form data for creating/updating food safety plans
type FoodSafetyPlanForm struct {
	Name           string `json:"name" validate:"required,max=200"`
	PlanType       string `json:"plan_type" validate:"required,oneof=haccp preventive_controls allergen sanitation food_defense"`
	ProductScope   string `json:"product_scope" validate:"max=500"`
	Version        string `json:"version" validate:"max=20"`
	Status         string `json:"status" validate:"required,oneof=draft active under_review archived"`
	Owner          string `json:"owner" validate:"max=100"`
	EffectiveDate  string `json:"effective_date" validate:"omitempty,datetime=2006-01-02"`
	NextReviewDate string `json:"next_review_date" validate:"omitempty,datetime=2006-01-02"`
	Notes          string `json:"notes"`
}

// Validate validates the food safety plan form data
func (f *FoodSafetyPlanForm) Validate() []string {
	errors := validateStruct(f)
	if f.Status == "active" && f.EffectiveDate == "" {
		errors = append(errors, "Effective date is required for active plans")
	}
	return checkDateOrder(errors, f.EffectiveDate, f.NextReviewDate, "Next review date must be on or after the effective date")
}

// Apply copies validated form values onto the plan
func (f *FoodSafetyPlanForm) Apply(p *FoodSafetyPlan) error {
	effective, err := ParseOptionalDate(f.EffectiveDate)
	if err != nil {
		return err
	}
	nextReview, err := ParseOptionalDate(f.NextReviewDate)
	if err != nil {
		return err
	}

	p.Name = strings.TrimSpace(f.Name)
	p.PlanType = f.PlanType
	p.ProductScope = strings.TrimSpace(f.ProductScope)
	p.Version = strings.TrimSpace(f.Version)
	if p.Version == "" {
		p.Version = "1.0"
	}
	p.Status = f.Status
	p.Owner = strings.TrimSpace(f.Owner)
	p.EffectiveDate = effective
	p.NextReviewDate = nextReview
	p.Notes = strings.TrimSpace(f.Notes)
	return nil
}

// FoodSafetyPlanFilter narrows food safety plan lists
type FoodSafetyPlanFilter struct {
	Status      string
	PlanType    string
	// ReviewDueBy, when set, keeps non-archived plans with next_review_date on or before it
	ReviewDueBy *time.Time
	ListOptions
}
