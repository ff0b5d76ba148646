package models

import (
	"math"
	"strings"
	"time"
)

// ProductionRun is a production order on a line whose counts come from an external counting device
type ProductionRun struct {
	ID              int        `json:"id"`
	OrganizationID  int        `json:"organization_id"`
	LineName        string     `json:"line_name"`
	Product         string     `json:"product"`
	SKU             string     `json:"sku"`
	Shift           string     `json:"shift"`
	Status          string     `json:"status"`
	TargetCount     int        `json:"target_count"`
	GoodCount       int        `json:"good_count"`
	RejectCount     int        `json:"reject_count"`
	CounterDeviceID string     `json:"counter_device_id"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	AuditFields

	// Derived
	TotalCount      int     `json:"total_count"`
	YieldPercent    float64 `json:"yield_percent"`
	ProgressPercent float64 `json:"progress_percent"`
	UnitsPerHour    float64 `json:"units_per_hour"`
}

// Production run statuses
const (
	RunScheduled = "scheduled"
	RunRunning   = "running"
	RunPaused    = "paused"
	RunCompleted = "completed"
)

var runTransitions = map[string][]string{
	RunScheduled: {RunRunning},
	RunRunning:   {RunPaused, RunCompleted},
	RunPaused:    {RunRunning, RunCompleted},
}

// CanTransition reports whether a run may move from one status to another
func CanTransition(from, to string) bool {
	for _, next := range runTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Decorate fills the derived counters relative to now
func (r *ProductionRun) Decorate(now time.Time) {
	r.TotalCount = r.GoodCount + r.RejectCount
	r.YieldPercent = 0
	if r.TotalCount > 0 {
		r.YieldPercent = round1(float64(r.GoodCount) / float64(r.TotalCount) * 100)
	}

	r.ProgressPercent = 0
	if r.TargetCount > 0 {
		r.ProgressPercent = math.Min(100, round1(float64(r.GoodCount)/float64(r.TargetCount)*100))
	}

	r.UnitsPerHour = 0
	if r.StartedAt != nil {
		end := now
		if r.EndedAt != nil {
			end = *r.EndedAt
		}
		if hours := end.Sub(*r.StartedAt).Hours(); hours > 0 {
			r.UnitsPerHour = round1(float64(r.TotalCount) / hours)
		}
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ProductionRunForm represents form data for creating/updating production runs
type ProductionRunForm struct {
	LineName        string `json:"line_name" validate:"required,max=100"`
	Product         string `json:"product" validate:"required,max=200"`
	SKU             string `json:"sku" validate:"max=50"`
	Shift           string `json:"shift" validate:"required,oneof=day swing night"`
	TargetCount     int    `json:"target_count" validate:"gte=0"`
	CounterDeviceID string `json:"counter_device_id" validate:"max=100"`
}

// Validate validates the production run form data
func (f *ProductionRunForm) Validate() []string {
	return validateStruct(f)
}

// Apply copies validated form values onto the run
func (f *ProductionRunForm) Apply(r *ProductionRun) {
	r.LineName = strings.TrimSpace(f.LineName)
	r.Product = strings.TrimSpace(f.Product)
	r.SKU = strings.TrimSpace(f.SKU)
	r.Shift = f.Shift
	r.TargetCount = f.TargetCount
	r.CounterDeviceID = strings.TrimSpace(f.CounterDeviceID)
}

// CountUpdate carries absolute totals reported by a counting device
type CountUpdate struct {
	GoodCount   int `json:"good_count" validate:"gte=0"`
	RejectCount int `json:"reject_count" validate:"gte=0"`
}

// Validate validates the count update
func (u *CountUpdate) Validate() []string {
	return validateStruct(u)
}

// StatusChange requests a production run status transition
type StatusChange struct {
	Status string `json:"status" validate:"required,oneof=scheduled running paused completed"`
}

// Validate validates the status change
func (s *StatusChange) Validate() []string {
	return validateStruct(s)
}

// ProductionRunFilter narrows production run lists
type ProductionRunFilter struct {
	LineName string
	Status   string
	Shift    string
	ListOptions
}
