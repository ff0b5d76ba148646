package models

import (
	"strings"
	"time"
)

// OrientationValidityMonths is how long a completed orientation stays valid when no expiry is given
const OrientationValidityMonths = 12

// ContractorOrientation records a contractor's site safety orientation
type ContractorOrientation struct {
	ID              int       `json:"id"`
	OrganizationID  int       `json:"organization_id"`
	ContractorName  string    `json:"contractor_name"`
	Company         string    `json:"company"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	OrientationDate time.Time `json:"orientation_date"`
	ExpiryDate      time.Time `json:"expiry_date"`
	Trainer         string    `json:"trainer"`
	Topics          []string  `json:"topics"`
	BadgeNumber     string    `json:"badge_number"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
	AuditFields

	IsExpired bool `json:"is_expired"`
}

// Decorate fills derived fields relative to now
func (o *ContractorOrientation) Decorate(now time.Time) {
	o.IsExpired = o.Status == "completed" && DaysBetween(now, o.ExpiryDate) < 0
}

// ContractorOrientationForm represents form data for creating/updating orientation records
type ContractorOrientationForm struct {
	ContractorName  string   `json:"contractor_name" validate:"required,max=100"`
	Company         string   `json:"company" validate:"required,max=200"`
	Email           string   `json:"email" validate:"omitempty,email,max=255"`
	Phone           string   `json:"phone" validate:"max=30"`
	OrientationDate string   `json:"orientation_date" validate:"required,datetime=2006-01-02"`
	ExpiryDate      string   `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	Trainer         string   `json:"trainer" validate:"max=100"`
	Topics          []string `json:"topics"`
	BadgeNumber     string   `json:"badge_number" validate:"max=50"`
	Status          string   `json:"status" validate:"required,oneof=scheduled completed"`
	Notes           string   `json:"notes"`
}

// Validate validates the contractor orientation form data
func (f *ContractorOrientationForm) Validate() []string {
	errors := validateStruct(f)
	return checkDateOrder(errors, f.OrientationDate, f.ExpiryDate, "Expiry date must be on or after the orientation date")
}

// Apply copies validated form values onto the record, defaulting the expiry date
func (f *ContractorOrientationForm) Apply(o *ContractorOrientation) error {
	orientation, err := ParseDate(f.OrientationDate)
	if err != nil {
		return err
	}
	expiry, err := ParseOptionalDate(f.ExpiryDate)
	if err != nil {
		return err
	}
	if expiry == nil {
		d := orientation.AddDate(0, OrientationValidityMonths, 0)
		expiry = &d
	}

	o.ContractorName = strings.TrimSpace(f.ContractorName)
	o.Company = strings.TrimSpace(f.Company)
	o.Email = strings.TrimSpace(f.Email)
	o.Phone = strings.TrimSpace(f.Phone)
	o.OrientationDate = orientation
	o.ExpiryDate = *expiry
	o.Trainer = strings.TrimSpace(f.Trainer)
	o.Topics = cleanList(f.Topics)
	o.BadgeNumber = strings.TrimSpace(f.BadgeNumber)
	o.Status = f.Status
	o.Notes = strings.TrimSpace(f.Notes)
	return nil
}

// ContractorOrientationFilter narrows orientation lists
type ContractorOrientationFilter struct {
	Company     string
	Status      string
	// ExpiredAsOf, when set, keeps completed orientations whose expiry is before it
	ExpiredAsOf *time.Time
	ListOptions
}
