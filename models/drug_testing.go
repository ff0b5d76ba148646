package models

import (
	"strings"
	"time"
)

// DrugTest is a drug and/or alcohol test record for an employee
type DrugTest struct {
	ID             int        `json:"id"`
	OrganizationID int        `json:"organization_id"`
	EmployeeName   string     `json:"employee_name"`
	EmployeeNumber string     `json:"employee_number"`
	TestType       string     `json:"test_type"`
	Panel          string     `json:"panel"`
	CollectionDate time.Time  `json:"collection_date"`
	Result         string     `json:"result"`
	ResultDate     *time.Time `json:"result_date,omitempty"`
	LabName        string     `json:"lab_name"`
	MROReviewed    bool       `json:"mro_reviewed"`
	Notes          string     `json:"notes"`
	AuditFields
}

// DrugTestForm represents form data for creating/updating drug tests
type DrugTestForm struct {
	EmployeeName   string `json:"employee_name" validate:"required,max=100"`
	EmployeeNumber string `json:"employee_number" validate:"max=50"`
	TestType       string `json:"test_type" validate:"required,oneof=pre_employment random post_accident reasonable_suspicion return_to_duty follow_up"`
	Panel          string `json:"panel" validate:"required,oneof=drug alcohol both"`
	CollectionDate string `json:"collection_date" validate:"required,datetime=2006-01-02"`
	Result         string `json:"result" validate:"required,oneof=pending negative positive dilute refused cancelled"`
	ResultDate     string `json:"result_date" validate:"omitempty,datetime=2006-01-02"`
	LabName        string `json:"lab_name" validate:"max=100"`
	MROReviewed    bool   `json:"mro_reviewed"`
	Notes          string `json:"notes"`
}

// Validate validates the drug test form data
func (f *DrugTestForm) Validate() []string {
	errors := validateStruct(f)
	if f.Result != "" && f.Result != "pending" && f.ResultDate == "" {
		errors = append(errors, "Result date is required once a result is recorded")
	}
	return checkDateOrder(errors, f.CollectionDate, f.ResultDate, "Result date must be on or after the collection date")
}

// Apply copies validated form values onto the test
func (f *DrugTestForm) Apply(t *DrugTest) error {
	collected, err := ParseDate(f.CollectionDate)
	if err != nil {
		return err
	}
	resulted, err := ParseOptionalDate(f.ResultDate)
	if err != nil {
		return err
	}
	t.EmployeeName = strings.TrimSpace(f.EmployeeName)
	t.EmployeeNumber = strings.TrimSpace(f.EmployeeNumber)
	t.TestType = f.TestType
	t.Panel = f.Panel
	t.CollectionDate = collected
	t.Result = f.Result
	t.ResultDate = resulted
	t.LabName = strings.TrimSpace(f.LabName)
	t.MROReviewed = f.MROReviewed
	t.Notes = strings.TrimSpace(f.Notes)
	return nil
}

// DrugTestFilter narrows drug test lists
type DrugTestFilter struct {
	TestType string
	Result   string
	From     *time.Time
	To       *time.Time
	ListOptions
}

// DrugTestStats counts tests in a period
type DrugTestStats struct {
	Total      int            `json:"total"`
	ByResult   map[string]int `json:"by_result"`
	ByTestType map[string]int `json:"by_test_type"`
}

// BuildDrugTestStats tallies tests by result and type
func BuildDrugTestStats(tests []DrugTest) DrugTestStats {
	stats := DrugTestStats{
		ByResult:   map[string]int{},
		ByTestType: map[string]int{},
	}
	for _, t := range tests {
		stats.Total++
		stats.ByResult[t.Result]++
		stats.ByTestType[t.TestType]++
	}
	return stats
}
