package models

import (
	"strings"
	"testing"
	"time"
)

// Test PPERequirementForm validation
func TestPPERequirementFormValidation(t *testing.T) {
	// Test valid form
	validForm := PPERequirementForm{
		Area:          "Packaging",
		Task:          "Box cutting",
		PPEType:       "hand",
		EffectiveDate: "2025-01-01",
		Status:        "active",
	}
	errors := validForm.Validate()
	if len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	// Test invalid form
	invalidForm := PPERequirementForm{
		Area:          "",           // Missing
		Task:          "Grinding",
		PPEType:       "cape",       // Not a PPE type
		EffectiveDate: "01/02/2025", // Wrong format
		Status:        "active",
	}
	errors = invalidForm.Validate()
	if len(errors) != 3 {
		t.Errorf("Expected 3 errors for invalid form, got: %v", errors)
	}

	// Review before effective date
	reversed := validForm
	reversed.ReviewDate = "2024-06-01"
	errors = reversed.Validate()
	if len(errors) != 1 || !strings.Contains(errors[0], "Review date") {
		t.Errorf("Expected review date ordering error, got: %v", errors)
	}
}

func TestValidationMessages(t *testing.T) {
	form := PPERequirementForm{Area: "Dock", Task: "Loading", EffectiveDate: "2025-01-01", Status: "active"}
	errors := form.Validate()
	if len(errors) != 1 || errors[0] != "PPE type is required" {
		t.Errorf("Expected 'PPE type is required', got: %v", errors)
	}

	form.PPEType = "cape"
	errors = form.Validate()
	if len(errors) != 1 || !strings.HasPrefix(errors[0], "PPE type must be one of: head, eye") {
		t.Errorf("Expected oneof message, got: %v", errors)
	}
}

func TestDocumentFormRequiresSDSFields(t *testing.T) {
	form := DocumentForm{Title: "Acetone SDS", Category: "sds", Status: "current"}
	errors := form.Validate()
	if len(errors) != 2 {
		t.Errorf("Expected manufacturer and product name errors, got: %v", errors)
	}

	form.Manufacturer = "Acme Chemicals"
	form.ProductName = "Acetone 99%"
	if errors := form.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors, got: %v", errors)
	}
}

func TestRecallEventFormRecoveredCannotExceedDistributed(t *testing.T) {
	form := RecallEventForm{
		Product:             "Granola bar",
		LotCodes:            []string{"L123"},
		Reason:              "Undeclared peanut",
		Classification:      "class_i",
		RecallType:          "mock",
		Status:              "initiated",
		InitiatedAt:         "2025-03-01",
		QuantityDistributed: 100,
		QuantityRecovered:   120,
	}
	errors := form.Validate()
	if len(errors) != 1 {
		t.Fatalf("Expected 1 error, got: %v", errors)
	}

	form.LotCodes = nil
	form.QuantityRecovered = 50
	errors = form.Validate()
	if len(errors) != 1 || !strings.Contains(errors[0], "Lot codes") {
		t.Errorf("Expected lot codes error, got: %v", errors)
	}
}

func TestComputeRecoveryPercent(t *testing.T) {
	cases := []struct {
		distributed, recovered, want float64
	}{
		{0, 0, 0},
		{100, 0, 0},
		{300, 100, 33.3},
		{200, 200, 100},
	}
	for _, c := range cases {
		if got := ComputeRecoveryPercent(c.distributed, c.recovered); got != c.want {
			t.Errorf("ComputeRecoveryPercent(%v, %v) = %v, want %v", c.distributed, c.recovered, got, c.want)
		}
	}
}

func TestDrugTestFormResultDate(t *testing.T) {
	form := DrugTestForm{
		EmployeeName:   "Dana Smith",
		TestType:       "random",
		Panel:          "drug",
		CollectionDate: "2025-05-10",
		Result:         "negative",
	}
	errors := form.Validate()
	if len(errors) != 1 {
		t.Fatalf("Expected missing result date error, got: %v", errors)
	}

	form.ResultDate = "2025-05-09"
	errors = form.Validate()
	if len(errors) != 1 || !strings.Contains(errors[0], "on or after the collection date") {
		t.Errorf("Expected ordering error, got: %v", errors)
	}

	form.ResultDate = "2025-05-12"
	if errors := form.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors, got: %v", errors)
	}
}

func TestSpillReportFormReportableClose(t *testing.T) {
	form := SpillReportForm{
		ReportDate: "2025-07-04",
		Location:   "Tank farm",
		Substance:  "Diesel",
		Quantity:   50,
		Unit:       "gallons",
		ReportedBy: "J. Ortiz",
		Severity:   "major",
		Reportable: true,
		Status:     "closed",
	}
	if errors := form.Validate(); len(errors) != 1 {
		t.Errorf("Expected agency notification error, got: %v", errors)
	}

	form.AgencyNotified = true
	if errors := form.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors, got: %v", errors)
	}

	var report SpillReport
	now := time.Date(2025, 7, 5, 10, 0, 0, 0, time.UTC)
	if err := form.Apply(&report, now); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if report.AgencyNotifiedAt == nil || !report.AgencyNotifiedAt.Equal(now) {
		t.Errorf("Expected agency notified timestamp to be stamped, got %v", report.AgencyNotifiedAt)
	}
}

func TestOSHAFormCapsDays(t *testing.T) {
	form := OSHAEntryForm{
		EmployeeName:   "Lee Park",
		IncidentDate:   "2025-02-14",
		Location:       "Warehouse",
		Description:    "Back strain lifting pallet",
		Classification: "days_away",
		DaysAway:       240,
		DaysRestricted: 10,
		InjuryType:     "injury",
	}
	if errors := form.Validate(); len(errors) != 0 {
		t.Fatalf("Expected no errors, got: %v", errors)
	}

	var entry OSHAEntry
	if err := form.Apply(&entry); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if entry.DaysAway != OSHAMaxDays {
		t.Errorf("Expected days away capped at %d, got %d", OSHAMaxDays, entry.DaysAway)
	}
	if entry.DaysRestricted != 10 {
		t.Errorf("Expected days restricted 10, got %d", entry.DaysRestricted)
	}

	form.DaysAway = 0
	if errors := form.Validate(); len(errors) != 1 {
		t.Errorf("Expected days away error, got: %v", errors)
	}
}

func TestOSHASummary(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	entries := []OSHAEntry{
		{IncidentDate: day(2025, 1, 5), Classification: "days_away", DaysAway: 12, InjuryType: "injury"},
		{IncidentDate: day(2025, 3, 9), Classification: "job_transfer", DaysRestricted: 5, InjuryType: "skin_disorder"},
		{IncidentDate: day(2025, 6, 1), Classification: "other_recordable", InjuryType: "injury"},
		{IncidentDate: day(2024, 12, 30), Classification: "death", InjuryType: "injury"},
	}

	s := BuildOSHASummary(2025, entries)
	if s.TotalCases != 3 {
		t.Errorf("Expected 3 cases, got %d", s.TotalCases)
	}
	if s.ByClassification["death"] != 0 || s.ByClassification["days_away"] != 1 {
		t.Errorf("Unexpected classification totals: %v", s.ByClassification)
	}
	if s.TotalDaysAway != 12 || s.TotalDaysRestricted != 5 {
		t.Errorf("Unexpected day totals: %d away, %d restricted", s.TotalDaysAway, s.TotalDaysRestricted)
	}
	if s.ByInjuryType["injury"] != 2 || s.ByInjuryType["hearing_loss"] != 0 {
		t.Errorf("Unexpected injury type totals: %v", s.ByInjuryType)
	}
}

func TestOSHARedacted(t *testing.T) {
	entry := OSHAEntry{EmployeeName: "Sam Doe", PrivacyCase: true}
	if got := entry.Redacted().EmployeeName; got != PrivacyCaseName {
		t.Errorf("Expected %q, got %q", PrivacyCaseName, got)
	}
	if entry.EmployeeName != "Sam Doe" {
		t.Error("Redacted must not modify the original entry")
	}
	if FormatCaseNumber(2025, 7) != "2025-007" {
		t.Errorf("Unexpected case number %s", FormatCaseNumber(2025, 7))
	}
}

func TestContractorOrientationDefaultExpiry(t *testing.T) {
	form := ContractorOrientationForm{
		ContractorName:  "Alex Reyes",
		Company:         "Reyes Electric",
		Email:           "alex@reyes.example",
		OrientationDate: "2025-02-01",
		Status:          "completed",
	}
	if errors := form.Validate(); len(errors) != 0 {
		t.Fatalf("Expected no errors, got: %v", errors)
	}

	var o ContractorOrientation
	if err := form.Apply(&o); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if FormatDate(o.ExpiryDate) != "2026-02-01" {
		t.Errorf("Expected default expiry 2026-02-01, got %s", FormatDate(o.ExpiryDate))
	}

	o.Decorate(time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC))
	if !o.IsExpired {
		t.Error("Expected orientation to be expired the day after expiry")
	}
	o.Decorate(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	if o.IsExpired {
		t.Error("Expected orientation to be valid on its expiry date")
	}

	form.Email = "not-an-email"
	if errors := form.Validate(); len(errors) != 1 {
		t.Errorf("Expected email error, got: %v", errors)
	}
}

func TestProductionRunDecorate(t *testing.T) {
	start := time.Date(2025, 4, 1, 6, 0, 0, 0, time.UTC)
	run := ProductionRun{
		TargetCount: 1000,
		GoodCount:   450,
		RejectCount: 50,
		StartedAt:   &start,
	}
	run.Decorate(start.Add(2 * time.Hour))

	if run.TotalCount != 500 {
		t.Errorf("Expected total 500, got %d", run.TotalCount)
	}
	if run.YieldPercent != 90 {
		t.Errorf("Expected yield 90, got %v", run.YieldPercent)
	}
	if run.ProgressPercent != 45 {
		t.Errorf("Expected progress 45, got %v", run.ProgressPercent)
	}
	if run.UnitsPerHour != 250 {
		t.Errorf("Expected 250 units/hour, got %v", run.UnitsPerHour)
	}

	run.GoodCount = 1500
	run.Decorate(start.Add(2 * time.Hour))
	if run.ProgressPercent != 100 {
		t.Errorf("Expected progress capped at 100, got %v", run.ProgressPercent)
	}
}

func TestRunTransitions(t *testing.T) {
	allowed := [][2]string{
		{RunScheduled, RunRunning},
		{RunRunning, RunPaused},
		{RunPaused, RunRunning},
		{RunRunning, RunCompleted},
		{RunPaused, RunCompleted},
	}
	for _, tr := range allowed {
		if !CanTransition(tr[0], tr[1]) {
			t.Errorf("Expected %s -> %s to be allowed", tr[0], tr[1])
		}
	}

	denied := [][2]string{
		{RunScheduled, RunCompleted},
		{RunCompleted, RunRunning},
		{RunScheduled, RunPaused},
	}
	for _, tr := range denied {
		if CanTransition(tr[0], tr[1]) {
			t.Errorf("Expected %s -> %s to be denied", tr[0], tr[1])
		}
	}
}

func TestBuildPPEMatrix(t *testing.T) {
	reqs := []PPERequirement{
		{Area: "Welding", PPEType: "face", IsMandatory: true, Status: "active"},
		{Area: "Welding", PPEType: "hand", Status: "active"},
		{Area: "Assembly", PPEType: "eye", IsMandatory: true, Status: "active"},
		{Area: "Assembly", PPEType: "hearing", Status: "inactive"},
	}
	rows := BuildPPEMatrix(reqs)
	if len(rows) != 2 {
		t.Fatalf("Expected 2 areas, got %d", len(rows))
	}
	if rows[0].Area != "Assembly" || len(rows[0].PPETypes) != 1 {
		t.Errorf("Unexpected first row: %+v", rows[0])
	}
	if strings.Join(rows[1].PPETypes, ",") != "face,hand" || strings.Join(rows[1].Mandatory, ",") != "face" {
		t.Errorf("Unexpected welding row: %+v", rows[1])
	}
}

// Test date utilities
func TestDateUtilities(t *testing.T) {
	monday := time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)

	if DaysBetween(sunday, monday) != 1 || DaysBetween(monday, sunday) != -1 {
		t.Error("Expected DaysBetween to count calendar days in both directions")
	}

	year := YearRange(2025)
	if !year.Contains(time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)) {
		t.Error("Expected year range to include December 31st")
	}
	if year.Contains(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("Expected year range to exclude the next year")
	}

	if d, err := ParseOptionalDate("  "); err != nil || d != nil {
		t.Errorf("Expected blank optional date to be nil, got %v, %v", d, err)
	}
}

func TestRoles(t *testing.T) {
	if CanWrite(RoleViewer) {
		t.Error("Viewers must not write")
	}
	if !CanWrite(RoleMember) || !RoleAtLeast(RoleOwner, RoleAdmin) {
		t.Error("Expected member to write and owner to be at least admin")
	}
	if RoleAtLeast("superuser", RoleViewer) {
		t.Error("Unknown roles grant nothing")
	}
}

func TestOrganizationFormSlug(t *testing.T) {
	form := OrganizationForm{Name: "Acme Foods", Slug: "acme-foods"}
	if errs := form.Validate(); len(errs) != 0 {
		t.Fatalf("Expected valid form, got %v", errs)
	}

	for _, slug := range []string{"acme foods", "-acme", "acme--foods", "acme_foods"} {
		form.Slug = slug
		errs := form.Validate()
		if len(errs) != 1 || errs[0] != "Slug may only contain letters, digits and single dashes" {
			t.Errorf("Slug %q: unexpected errors %v", slug, errs)
		}
	}

	member := MemberForm{Email: "a@example.com", Role: "superuser"}
	if errs := member.Validate(); len(errs) != 1 {
		t.Errorf("Expected role error, got %v", errs)
	}
}
