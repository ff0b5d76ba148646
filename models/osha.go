package models

import (
	"fmt"
	"strings"
	"time"
)

// OSHA caps day counts for a single case at 180
const OSHAMaxDays = 180

// PrivacyCaseName replaces the employee name on privacy concern cases
const PrivacyCaseName = "Privacy Case"

// OSHA 300 classifications (columns G-J) and injury types (columns M1-M6)
var (
	OSHAClassifications = []string{"death", "days_away", "job_transfer", "other_recordable"}
	OSHAInjuryTypes     = []string{"injury", "skin_disorder", "respiratory", "poisoning", "hearing_loss", "other_illness"}
)

// OSHAEntry is one recordable case on the OSHA Form 300 log
type OSHAEntry struct {
	ID             int       `json:"id"`
	OrganizationID int       `json:"organization_id"`
	CaseNumber     string    `json:"case_number"`
	EmployeeName   string    `json:"employee_name"`
	JobTitle       string    `json:"job_title"`
	IncidentDate   time.Time `json:"incident_date"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	Classification string    `json:"classification"`
	DaysAway       int       `json:"days_away"`
	DaysRestricted int       `json:"days_restricted"`
	InjuryType     string    `json:"injury_type"`
	PrivacyCase    bool      `json:"privacy_case"`
	AuditFields
}

// DisplayName returns the name shown on the log, honouring privacy cases
func (e *OSHAEntry) DisplayName() string {
	if e.PrivacyCase {
		return PrivacyCaseName
	}
	return e.EmployeeName
}

// Redacted returns a copy safe for list responses and exports
func (e OSHAEntry) Redacted() OSHAEntry {
	e.EmployeeName = e.DisplayName()
	return e
}

// Year returns the log year the case belongs to
func (e *OSHAEntry) Year() int {
	return e.IncidentDate.Year()
}

// FormatCaseNumber builds the "YYYY-NNN" case number
func FormatCaseNumber(year, seq int) string {
	return fmt.Sprintf("%d-%03d", year, seq)
}

// OSHAEntryForm represents form data for creating/updating OSHA 300 entries
type OSHAEntryForm struct {
	CaseNumber     string `json:"case_number" validate:"max=20"`
	EmployeeName   string `json:"employee_name" validate:"required,max=100"`
	JobTitle       string `json:"job_title" validate:"max=100"`
	IncidentDate   string `json:"incident_date" validate:"required,datetime=2006-01-02"`
	Location       string `json:"location" validate:"required,max=200"`
	Description    string `json:"description" validate:"required"`
	Classification string `json:"classification" validate:"required,oneof=death days_away job_transfer other_recordable"`
	DaysAway       int    `json:"days_away" validate:"gte=0"`
	DaysRestricted int    `json:"days_restricted" validate:"gte=0"`
	InjuryType     string `json:"injury_type" validate:"required,oneof=injury skin_disorder respiratory poisoning hearing_loss other_illness"`
	PrivacyCase    bool   `json:"privacy_case"`
}

// Validate validates the OSHA entry form data
func (f *OSHAEntryForm) Validate() []string {
	errors := validateStruct(f)
	if f.Classification == "days_away" && f.DaysAway == 0 {
		errors = append(errors, "Days away is required for days away cases")
	}
	if f.Classification == "job_transfer" && f.DaysRestricted == 0 {
		errors = append(errors, "Days restricted is required for job transfer or restriction cases")
	}
	return errors
}

// Apply copies validated form values onto the entry, capping day counts
func (f *OSHAEntryForm) Apply(e *OSHAEntry) error {
	incident, err := ParseDate(f.IncidentDate)
	if err != nil {
		return err
	}
	e.CaseNumber = strings.TrimSpace(f.CaseNumber)
	e.EmployeeName = strings.TrimSpace(f.EmployeeName)
	e.JobTitle = strings.TrimSpace(f.JobTitle)
	e.IncidentDate = incident
	e.Location = strings.TrimSpace(f.Location)
	e.Description = strings.TrimSpace(f.Description)
	e.Classification = f.Classification
	e.DaysAway = capDays(f.DaysAway)
	e.DaysRestricted = capDays(f.DaysRestricted)
	e.InjuryType = f.InjuryType
	e.PrivacyCase = f.PrivacyCase
	return nil
}

func capDays(d int) int {
	if d > OSHAMaxDays {
		return OSHAMaxDays
	}
	return d
}

// OSHAFilter narrows OSHA log lists
type OSHAFilter struct {
	Year           int
	Classification string
	InjuryType     string
	ListOptions
}

// OSHASummary holds the Form 300A annual totals
type OSHASummary struct {
	Year                int            `json:"year"`
	TotalCases          int            `json:"total_cases"`
	ByClassification    map[string]int `json:"by_classification"`
	TotalDaysAway       int            `json:"total_days_away"`
	TotalDaysRestricted int            `json:"total_days_restricted"`
	ByInjuryType        map[string]int `json:"by_injury_type"`
}

// BuildOSHASummary computes Form 300A totals for the entries of one year
func BuildOSHASummary(year int, entries []OSHAEntry) OSHASummary {
	s := OSHASummary{
		Year:             year,
		ByClassification: make(map[string]int, len(OSHAClassifications)),
		ByInjuryType:     make(map[string]int, len(OSHAInjuryTypes)),
	}
	for _, c := range OSHAClassifications {
		s.ByClassification[c] = 0
	}
	for _, t := range OSHAInjuryTypes {
		s.ByInjuryType[t] = 0
	}

	for _, e := range entries {
		if e.Year() != year {
			continue
		}
		s.TotalCases++
		s.ByClassification[e.Classification]++
		s.ByInjuryType[e.InjuryType]++
		s.TotalDaysAway += e.DaysAway
		s.TotalDaysRestricted += e.DaysRestricted
	}
	return s
}
