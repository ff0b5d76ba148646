package models

import (
	"strings"
	"time"
)

// Document is an entry in the document library (SDS sheets, policies, permits ...)
type Document struct {
	ID             int        `json:"id"`
	OrganizationID int        `json:"organization_id"`
	Title          string     `json:"title"`
	Category       string     `json:"category"`
	Manufacturer   string     `json:"manufacturer,omitempty"`
	ProductName    string     `json:"product_name,omitempty"`
	Revision       string     `json:"revision"`
	IssuedDate     *time.Time `json:"issued_date,omitempty"`
	ExpiryDate     *time.Time `json:"expiry_date,omitempty"`
	Status         string     `json:"status"`
	Tags           []string   `json:"tags"`
	FileKey        string     `json:"-"`
	FileName       string     `json:"file_name,omitempty"`
	ContentType    string     `json:"content_type,omitempty"`
	FileSize       int64      `json:"file_size"`
	AuditFields
}

// HasFile reports whether a blob is attached
func (d *Document) HasFile() bool {
	return d.FileKey != ""
}

// IsExpiringWithin reports whether the document expires within days of now (already expired included)
func (d *Document) IsExpiringWithin(now time.Time, days int) bool {
	if d.ExpiryDate == nil || d.Status == "archived" {
		return false
	}
	return DaysBetween(now, *d.ExpiryDate) <= days
}

// DocumentForm represents form data for creating/updating documents
type DocumentForm struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Category     string   `json:"category" validate:"required,oneof=sds policy procedure training permit certificate inspection other"`
	Manufacturer string   `json:"manufacturer" validate:"max=200"`
	ProductName  string   `json:"product_name" validate:"max=200"`
	Revision     string   `json:"revision" validate:"max=20"`
	IssuedDate   string   `json:"issued_date" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate   string   `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	Status       string   `json:"status" validate:"required,oneof=current archived"`
	Tags         []string `json:"tags" validate:"max=20"`
}

// Validate validates the document form data
func (f *DocumentForm) Validate() []string {
	errors := validateStruct(f)
	if f.Category == "sds" {
		if strings.TrimSpace(f.Manufacturer) == "" {
			errors = append(errors, "Manufacturer is required for SDS documents")
		}
		if strings.TrimSpace(f.ProductName) == "" {
			errors = append(errors, "Product name is required for SDS documents")
		}
	}
	return checkDateOrder(errors, f.IssuedDate, f.ExpiryDate, "Expiry date must be on or after the issued date")
}

// Apply copies validated form values onto the document
func (f *DocumentForm) Apply(d *Document) error {
	issued, err := ParseOptionalDate(f.IssuedDate)
	if err != nil {
		return err
	}
	expiry, err := ParseOptionalDate(f.ExpiryDate)
	if err != nil {
		return err
	}
	d.Title = strings.TrimSpace(f.Title)
	d.Category = f.Category
	d.Manufacturer = strings.TrimSpace(f.Manufacturer)
	d.ProductName = strings.TrimSpace(f.ProductName)
	d.Revision = strings.TrimSpace(f.Revision)
	d.IssuedDate = issued
	d.ExpiryDate = expiry
	d.Status = f.Status
	d.Tags = cleanList(f.Tags)
	return nil
}

// DocumentFilter narrows document library lists
type DocumentFilter struct {
	Category   string
	Status     string
	// ExpiringBy, when set, keeps current documents with an expiry on or before it
	ExpiringBy *time.Time
	ListOptions
}
