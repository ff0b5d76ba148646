package models

import (
	"sort"
	"strings"
	"time"
)

// PPE types recognised by the requirements matrix
var PPETypes = []string{"head", "eye", "face", "hearing", "respiratory", "hand", "foot", "body", "fall_protection"}

// PPERequirement states which protective equipment a task in an area requires
type PPERequirement struct {
	ID             int        `json:"id"`
	OrganizationID int        `json:"organization_id"`
	Area           string     `json:"area"`
	Task           string     `json:"task"`
	Hazard         string     `json:"hazard"`
	PPEType        string     `json:"ppe_type"`
	Specification  string     `json:"specification"`
	IsMandatory    bool       `json:"is_mandatory"`
	EffectiveDate  time.Time  `json:"effective_date"`
	ReviewDate     *time.Time `json:"review_date,omitempty"`
	Status         string     `json:"status"`
	Notes          string     `json:"notes"`
	AuditFields
}

// PPERequirementForm represents form data for creating/updating PPE requirements
type PPERequirementForm struct {
	Area          string `json:"area" validate:"required,max=100"`
	Task          string `json:"task" validate:"required,max=200"`
	Hazard        string `json:"hazard" validate:"max=500"`
	PPEType       string `json:"ppe_type" validate:"required,oneof=head eye face hearing respiratory hand foot body fall_protection"`
	Specification string `json:"specification" validate:"max=500"`
	IsMandatory   bool   `json:"is_mandatory"`
	EffectiveDate string `json:"effective_date" validate:"required,datetime=2006-01-02"`
	ReviewDate    string `json:"review_date" validate:"omitempty,datetime=2006-01-02"`
	Status        string `json:"status" validate:"required,oneof=active inactive"`
	Notes         string `json:"notes"`
}

// Validate validates the PPE requirement form data
func (f *PPERequirementForm) Validate() []string {
	errors := validateStruct(f)
	return checkDateOrder(errors, f.EffectiveDate, f.ReviewDate, "Review date must be on or after the effective date")
}

// Apply copies validated form values onto the requirement
func (f *PPERequirementForm) Apply(r *PPERequirement) error {
	effective, err := ParseDate(f.EffectiveDate)
	if err != nil {
		return err
	}
	review, err := ParseOptionalDate(f.ReviewDate)
	if err != nil {
		return err
	}

	r.Area = strings.TrimSpace(f.Area)
	r.Task = strings.TrimSpace(f.Task)
	r.Hazard = strings.TrimSpace(f.Hazard)
	r.PPEType = f.PPEType
	r.Specification = strings.TrimSpace(f.Specification)
	r.IsMandatory = f.IsMandatory
	r.EffectiveDate = effective
	r.ReviewDate = review
	r.Status = f.Status
	r.Notes = strings.TrimSpace(f.Notes)
	return nil
}

// PPEFilter narrows PPE requirement lists
type PPEFilter struct {
	Area    string
	PPEType string
	Status  string
	ListOptions
}

// PPEMatrixRow lists the PPE types required in one area
type PPEMatrixRow struct {
	Area      string   `json:"area"`
	PPETypes  []string `json:"ppe_types"`
	Mandatory []string `json:"mandatory"`
}

// BuildPPEMatrix groups active requirements by area. Areas and types are sorted.
func BuildPPEMatrix(reqs []PPERequirement) []PPEMatrixRow {
	type sets struct {
		all       map[string]bool
		mandatory map[string]bool
	}
	byArea := make(map[string]*sets)

	for _, r := range reqs {
		if r.Status != "active" {
			continue
		}
		s, ok := byArea[r.Area]
		if !ok {
			s = &sets{all: map[string]bool{}, mandatory: map[string]bool{}}
			byArea[r.Area] = s
		}
		s.all[r.PPEType] = true
		if r.IsMandatory {
			s.mandatory[r.PPEType] = true
		}
	}

	rows := make([]PPEMatrixRow, 0, len(byArea))
	for area, s := range byArea {
		rows = append(rows, PPEMatrixRow{
			Area:      area,
			PPETypes:  sortedKeys(s.all),
			Mandatory: sortedKeys(s.mandatory),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Area < rows[j].Area })
	return rows
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
