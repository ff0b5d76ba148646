package models

import (
	"strings"
	"time"
)

// SpillReport records a chemical or oil release and its follow-up
type SpillReport struct {
	ID                 int        `json:"id"`
	OrganizationID     int        `json:"organization_id"`
	ReportDate         time.Time  `json:"report_date"`
	Location           string     `json:"location"`
	Substance          string     `json:"substance"`
	Quantity           float64    `json:"quantity"`
	Unit               string     `json:"unit"`
	Source             string     `json:"source"`
	Cause              string     `json:"cause"`
	ContainmentActions string     `json:"containment_actions"`
	ReportedBy         string     `json:"reported_by"`
	Severity           string     `json:"severity"`
	Reportable         bool       `json:"reportable"`
	AgencyNotified     bool       `json:"agency_notified"`
	AgencyNotifiedAt   *time.Time `json:"agency_notified_at,omitempty"`
	Status             string     `json:"status"`
	AuditFields
}

// SpillReportForm represents form data for creating/updating spill reports
type SpillReportForm struct {
	ReportDate         string  `json:"report_date" validate:"required,datetime=2006-01-02"`
	Location           string  `json:"location" validate:"required,max=200"`
	Substance          string  `json:"substance" validate:"required,max=200"`
	Quantity           float64 `json:"quantity" validate:"gte=0"`
	Unit               string  `json:"unit" validate:"required,oneof=gallons liters pounds kilograms"`
	Source             string  `json:"source" validate:"max=200"`
	Cause              string  `json:"cause"`
	ContainmentActions string  `json:"containment_actions"`
	ReportedBy         string  `json:"reported_by" validate:"required,max=100"`
	Severity           string  `json:"severity" validate:"required,oneof=minor moderate major"`
	Reportable         bool    `json:"reportable"`
	AgencyNotified     bool    `json:"agency_notified"`
	Status             string  `json:"status" validate:"required,oneof=open contained cleaned_up closed"`
}

// Validate validates the spill report form data
func (f *SpillReportForm) Validate() []string {
	errors := validateStruct(f)
	if f.Reportable && f.Status == "closed" && !f.AgencyNotified {
		errors = append(errors, "A reportable spill cannot be closed until the agency has been notified")
	}
	return errors
}

// Apply copies validated form values onto the report, stamping the agency notification time
func (f *SpillReportForm) Apply(r *SpillReport, now time.Time) error {
	reported, err := ParseDate(f.ReportDate)
	if err != nil {
		return err
	}
	r.ReportDate = reported
	r.Location = strings.TrimSpace(f.Location)
	r.Substance = strings.TrimSpace(f.Substance)
	r.Quantity = f.Quantity
	r.Unit = f.Unit
	r.Source = strings.TrimSpace(f.Source)
	r.Cause = strings.TrimSpace(f.Cause)
	r.ContainmentActions = strings.TrimSpace(f.ContainmentActions)
	r.ReportedBy = strings.TrimSpace(f.ReportedBy)
	r.Severity = f.Severity
	r.Reportable = f.Reportable
	r.AgencyNotified = f.AgencyNotified
	if r.AgencyNotified && r.AgencyNotifiedAt == nil {
		r.AgencyNotifiedAt = &now
	}
	if !r.AgencyNotified {
		r.AgencyNotifiedAt = nil
	}
	r.Status = f.Status
	return nil
}

// SpillReportFilter narrows spill report lists
type SpillReportFilter struct {
	Status     string
	Severity   string
	Reportable *bool
	// OpenOnly keeps reports that are not closed
	OpenOnly   bool
	ListOptions
}
