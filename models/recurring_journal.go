package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// RecurringJournal is a journal entry template posted on a schedule.
// NextRunDate and LastRunDate are maintained by the posting system; they are stored, never computed here.
type RecurringJournal struct {
	ID             int           `json:"id"`
	OrganizationID int           `json:"organization_id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Frequency      string        `json:"frequency"`
	IntervalCount  int           `json:"interval_count"`
	DayOfWeek      *int          `json:"day_of_week,omitempty"`
	DayOfMonth     *int          `json:"day_of_month,omitempty"`
	StartDate      time.Time     `json:"start_date"`
	EndDate        *time.Time    `json:"end_date,omitempty"`
	NextRunDate    *time.Time    `json:"next_run_date,omitempty"`
	LastRunDate    *time.Time    `json:"last_run_date,omitempty"`
	IsActive       bool          `json:"is_active"`
	AutoPost       bool          `json:"auto_post"`
	Lines          []JournalLine `json:"lines"`
	AuditFields

	// Display fields
	FrequencyLabel string  `json:"frequency_label"`
	NextRunLabel   string  `json:"next_run_label"`
	TotalAmount    float64 `json:"total_amount"`
}

// JournalLine is one debit or credit line of a recurring journal
type JournalLine struct {
	ID          int     `json:"id"`
	JournalID   int     `json:"journal_id"`
	LineNumber  int     `json:"line_number"`
	AccountCode string  `json:"account_code"`
	Description string  `json:"description"`
	Debit       float64 `json:"debit"`
	Credit      float64 `json:"credit"`
}

// Decorate fills the display fields relative to now
func (j *RecurringJournal) Decorate(now time.Time) {
	j.FrequencyLabel = FrequencyLabel(j.Frequency, j.IntervalCount, j.DayOfWeek, j.DayOfMonth)
	j.NextRunLabel = NextRunLabel(j, now)
	var debit float64
	for _, l := range j.Lines {
		debit += l.Debit
	}
	j.TotalAmount = math.Round(debit*100) / 100
}

// FrequencyLabel renders a schedule such as "Every 2 weeks on Friday" or "Monthly on day 15"
func FrequencyLabel(frequency string, interval int, dayOfWeek, dayOfMonth *int) string {
	if interval < 1 {
		interval = 1
	}

	var label string
	switch frequency {
	case "daily":
		label = plural(interval, "Daily", "days")
	case "weekly":
		label = plural(interval, "Weekly", "weeks")
	case "biweekly":
		label = fmt.Sprintf("Every %d weeks", interval*2)
	case "monthly":
		label = plural(interval, "Monthly", "months")
	case "quarterly":
		label = plural(interval, "Quarterly", "quarters")
	case "annually":
		label = plural(interval, "Annually", "years")
	default:
		return "Unknown"
	}

	switch frequency {
	case "weekly", "biweekly":
		if dayOfWeek != nil {
			if name, ok := DayNames[*dayOfWeek]; ok {
				label += " on " + name
			}
		}
	case "monthly", "quarterly":
		if dayOfMonth != nil {
			label += fmt.Sprintf(" on day %d", *dayOfMonth)
		}
	}
	return label
}

func plural(n int, single, unit string) string {
	if n == 1 {
		return single
	}
	return fmt.Sprintf("Every %d %s", n, unit)
}

// NextRunLabel describes the stored next run date relative to now
func NextRunLabel(j *RecurringJournal, now time.Time) string {
	if !j.IsActive {
		return "Paused"
	}
	if j.EndDate != nil && DaysBetween(now, *j.EndDate) < 0 {
		if j.NextRunDate == nil || j.NextRunDate.After(*j.EndDate) {
			return "Ended"
		}
	}
	if j.NextRunDate == nil {
		return "Not scheduled"
	}

	days := DaysBetween(now, *j.NextRunDate)
	switch {
	case days == 0:
		return "Due today"
	case days == 1:
		return "Due tomorrow"
	case days > 1:
		return fmt.Sprintf("In %d days", days)
	case days == -1:
		return "Overdue by 1 day"
	default:
		return fmt.Sprintf("Overdue by %d days", -days)
	}
}

// JournalLineForm represents one line of a recurring journal form
type JournalLineForm struct {
	AccountCode string  `json:"account_code" validate:"required,max=30"`
	Description string  `json:"description" validate:"max=200"`
	Debit       float64 `json:"debit" validate:"gte=0"`
	Credit      float64 `json:"credit" validate:"gte=0"`
}

// RecurringJournalForm represents form data for creating/updating recurring journals
type RecurringJournalForm struct {
	Name          string            `json:"name" validate:"required,max=200"`
	Description   string            `json:"description" validate:"max=500"`
	Frequency     string            `json:"frequency" validate:"required,oneof=daily weekly biweekly monthly quarterly annually"`
	IntervalCount int               `json:"interval_count" validate:"gte=0,lte=365"`
	DayOfWeek     *int              `json:"day_of_week" validate:"omitempty,gte=0,lte=6"`
	DayOfMonth    *int              `json:"day_of_month" validate:"omitempty,gte=1,lte=31"`
	StartDate     string            `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string            `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	NextRunDate   string            `json:"next_run_date" validate:"omitempty,datetime=2006-01-02"`
	IsActive      bool              `json:"is_active"`
	AutoPost      bool              `json:"auto_post"`
	Lines         []JournalLineForm `json:"lines" validate:"min=2,dive"`
}

// Validate validates the recurring journal form data
func (f *RecurringJournalForm) Validate() []string {
	errors := validateStruct(f)
	errors = checkDateOrder(errors, f.StartDate, f.EndDate, "End date must be on or after the start date")

	var debits, credits int64
	for i, l := range f.Lines {
		hasDebit, hasCredit := l.Debit > 0, l.Credit > 0
		if hasDebit == hasCredit {
			errors = append(errors, fmt.Sprintf("Line %d must have either a debit or a credit amount", i+1))
		}
		debits += toCents(l.Debit)
		credits += toCents(l.Credit)
	}
	if len(f.Lines) >= 2 && debits != credits {
		errors = append(errors, fmt.Sprintf("Journal is out of balance: debits %.2f, credits %.2f",
			float64(debits)/100, float64(credits)/100))
	}
	return errors
}

func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// Apply copies validated form values onto the journal
func (f *RecurringJournalForm) Apply(j *RecurringJournal) error {
	start, err := ParseDate(f.StartDate)
	if err != nil {
		return err
	}
	end, err := ParseOptionalDate(f.EndDate)
	if err != nil {
		return err
	}
	next, err := ParseOptionalDate(f.NextRunDate)
	if err != nil {
		return err
	}

	j.Name = strings.TrimSpace(f.Name)
	j.Description = strings.TrimSpace(f.Description)
	j.Frequency = f.Frequency
	j.IntervalCount = f.IntervalCount
	if j.IntervalCount < 1 {
		j.IntervalCount = 1
	}
	j.DayOfWeek = f.DayOfWeek
	j.DayOfMonth = f.DayOfMonth
	j.StartDate = start
	j.EndDate = end
	j.NextRunDate = next
	j.IsActive = f.IsActive
	j.AutoPost = f.AutoPost

	j.Lines = make([]JournalLine, len(f.Lines))
	for i, l := range f.Lines {
		j.Lines[i] = JournalLine{
			JournalID:   j.ID,
			LineNumber:  i + 1,
			AccountCode: strings.TrimSpace(l.AccountCode),
			Description: strings.TrimSpace(l.Description),
			Debit:       l.Debit,
			Credit:      l.Credit,
		}
	}
	return nil
}

// RecurringJournalFilter narrows recurring journal lists
type RecurringJournalFilter struct {
	Frequency string
	Active    *bool
	ListOptions
}
