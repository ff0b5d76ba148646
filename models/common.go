package models

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrNotFound is wrapped by repositories when a row does not exist in the caller's organization
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when the caller lacks the role for an operation
	ErrForbidden = errors.New("forbidden")
	// ErrConflict is returned when an operation is invalid for the record's current state
	ErrConflict = errors.New("conflict")
)

// AuditFields contains common audit tracking fields
type AuditFields struct {
	CreatedBy  string     `json:"created_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	ModifiedBy string     `json:"modified_by,omitempty"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
}

// DateRange represents a range of dates
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls within the range, inclusive on both ends
func (r DateRange) Contains(t time.Time) bool {
	d := StartOfDay(t)
	return !d.Before(StartOfDay(r.Start)) && !d.After(StartOfDay(r.End))
}

// YearRange returns January 1st through December 31st of the given year
func YearRange(year int) DateRange {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(1, 0, -1)}
}

// StartOfDay truncates t to midnight in its own location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the number of calendar days from a to b (negative if b is before a)
func DaysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// FormatDate formats a time as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDate parses a YYYY-MM-DD string into a time.Time
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

// ParseOptionalDate parses a YYYY-MM-DD string, returning nil for blank input
func ParseOptionalDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}
	t, err := ParseDate(dateStr)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DayNames maps day numbers to readable names
var DayNames = map[int]string{
	0: "Monday",
	1: "Tuesday",
	2: "Wednesday",
	3: "Thursday",
	4: "Friday",
	5: "Saturday",
	6: "Sunday",
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// GetMessages returns all error messages as a slice of strings
func (ve ValidationErrors) GetMessages() []string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Message
	}
	return messages
}

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(ve.GetMessages(), ", ")
}

// NewValidationErrors wraps plain messages from a form's Validate method
func NewValidationErrors(messages []string) ValidationErrors {
	ve := make(ValidationErrors, len(messages))
	for i, m := range messages {
		ve[i] = ValidationError{Message: m}
	}
	return ve
}

// ListOptions carries the sort/paging parameters shared by every list endpoint
type ListOptions struct {
	Search string `json:"q,omitempty"`
	SortBy string `json:"sort,omitempty"`
	Desc   bool   `json:"desc,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// MaxListLimit bounds the page size of list queries
const MaxListLimit = 500

// NormalizedLimit returns the effective page size
func (o ListOptions) NormalizedLimit() int {
	if o.Limit <= 0 || o.Limit > MaxListLimit {
		return MaxListLimit
	}
	return o.Limit
}
