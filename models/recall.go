package models

import (
	"math"
	"strings"
	"time"
)

// RecallPlan documents how a recall is run and tracks mock recall exercises
type RecallPlan struct {
	ID                 int        `json:"id"`
	OrganizationID     int        `json:"organization_id"`
	Name               string     `json:"name"`
	Version            string     `json:"version"`
	Coordinator        string     `json:"coordinator"`
	Status             string     `json:"status"`
	LastMockRecallDate *time.Time `json:"last_mock_recall_date,omitempty"`
	NextMockRecallDate *time.Time `json:"next_mock_recall_date,omitempty"`
	Notes              string     `json:"notes"`
	AuditFields
}

// RecallPlanForm represents form data for creating/updating recall plans
type RecallPlanForm struct {
	Name               string `json:"name" validate:"required,max=200"`
	Version            string `json:"version" validate:"max=20"`
	Coordinator        string `json:"coordinator" validate:"required,max=100"`
	Status             string `json:"status" validate:"required,oneof=draft active archived"`
	NextMockRecallDate string `json:"next_mock_recall_date" validate:"omitempty,datetime=2006-01-02"`
	Notes              string `json:"notes"`
}

// Validate validates the recall plan form data
func (f *RecallPlanForm) Validate() []string {
	return validateStruct(f)
}

// Apply copies validated form values onto the plan
func (f *RecallPlanForm) Apply(p *RecallPlan) error {
	next, err := ParseOptionalDate(f.NextMockRecallDate)
	if err != nil {
		return err
	}
	p.Name = strings.TrimSpace(f.Name)
	p.Version = strings.TrimSpace(f.Version)
	if p.Version == "" {
		p.Version = "1.0"
	}
	p.Coordinator = strings.TrimSpace(f.Coordinator)
	p.Status = f.Status
	p.NextMockRecallDate = next
	p.Notes = strings.TrimSpace(f.Notes)
	return nil
}

// RecallEvent is a mock or actual recall of product lots
type RecallEvent struct {
	ID                  int        `json:"id"`
	OrganizationID      int        `json:"organization_id"`
	PlanID              *int       `json:"plan_id,omitempty"`
	Product             string     `json:"product"`
	LotCodes            []string   `json:"lot_codes"`
	Reason              string     `json:"reason"`
	Classification      string     `json:"classification"`
	RecallType          string     `json:"recall_type"`
	Status              string     `json:"status"`
	InitiatedAt         time.Time  `json:"initiated_at"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
	QuantityDistributed float64    `json:"quantity_distributed"`
	QuantityRecovered   float64    `json:"quantity_recovered"`
	RecoveryPercent     float64    `json:"recovery_percent"`
	AuditFields
}

// ComputeRecoveryPercent returns recovered/distributed as a percentage rounded to one decimal
func ComputeRecoveryPercent(distributed, recovered float64) float64 {
	if distributed <= 0 {
		return 0
	}
	return math.Round(recovered/distributed*1000) / 10
}

// IsFinished reports whether the event is completed or closed
func (e *RecallEvent) IsFinished() bool {
	return e.Status == "completed" || e.Status == "closed"
}

// RecallEventForm represents form data for creating/updating recall events
type RecallEventForm struct {
	PlanID              *int     `json:"plan_id" validate:"omitempty,gt=0"`
	Product             string   `json:"product" validate:"required,max=200"`
	LotCodes            []string `json:"lot_codes" validate:"min=1"`
	Reason              string   `json:"reason" validate:"required"`
	Classification      string   `json:"classification" validate:"required,oneof=class_i class_ii class_iii"`
	RecallType          string   `json:"recall_type" validate:"required,oneof=mock actual"`
	Status              string   `json:"status" validate:"required,oneof=initiated in_progress completed closed"`
	InitiatedAt         string   `json:"initiated_at" validate:"required,datetime=2006-01-02"`
	QuantityDistributed float64  `json:"quantity_distributed" validate:"gte=0"`
	QuantityRecovered   float64  `json:"quantity_recovered" validate:"gte=0"`
}

// Validate validates the recall event form data
func (f *RecallEventForm) Validate() []string {
	errors := validateStruct(f)
	if len(cleanList(f.LotCodes)) == 0 && len(f.LotCodes) > 0 {
		errors = append(errors, "Lot codes must not be blank")
	}
	if f.QuantityRecovered > f.QuantityDistributed {
		errors = append(errors, "Quantity recovered cannot exceed quantity distributed")
	}
	return errors
}

// Apply copies validated form values onto the event
func (f *RecallEventForm) Apply(e *RecallEvent) error {
	initiated, err := ParseDate(f.InitiatedAt)
	if err != nil {
		return err
	}
	e.PlanID = f.PlanID
	e.Product = strings.TrimSpace(f.Product)
	e.LotCodes = cleanList(f.LotCodes)
	e.Reason = strings.TrimSpace(f.Reason)
	e.Classification = f.Classification
	e.RecallType = f.RecallType
	e.Status = f.Status
	e.InitiatedAt = initiated
	e.QuantityDistributed = f.QuantityDistributed
	e.QuantityRecovered = f.QuantityRecovered
	e.RecoveryPercent = ComputeRecoveryPercent(e.QuantityDistributed, e.QuantityRecovered)
	return nil
}

// RecallPlanFilter narrows recall plan lists
type RecallPlanFilter struct {
	Status string
	ListOptions
}

// RecallEventFilter narrows recall event lists
type RecallEventFilter struct {
	PlanID     int
	Status     string
	RecallType string
	ListOptions
}
