package repositories

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/blogem/opsledger/database"
	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/userctx"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// Initialize test database using the actual migration system
	db, err := database.InitializeDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func createTestOrg(t *testing.T, db *sql.DB, slug string) int {
	t.Helper()

	repo := NewOrganizationRepository(db)
	org := &models.Organization{Name: "Org " + slug, Slug: slug}
	if err := repo.Create(context.Background(), org); err != nil {
		t.Fatalf("Failed to create organization: %v", err)
	}
	return org.ID
}

func testCtx() context.Context {
	return userctx.SetUserEmail(context.Background(), "tester@example.com")
}

func date(s string) time.Time {
	d, err := models.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func datePtr(s string) *time.Time {
	d := date(s)
	return &d
}

func TestOrganizationRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	org := &models.Organization{Name: "Acme Foods", Slug: "Acme"}
	if err := repo.Create(ctx, org); err != nil {
		t.Fatalf("Failed to create organization: %v", err)
	}
	if org.Slug != "acme" {
		t.Errorf("Expected slug to be lowercased, got %s", org.Slug)
	}

	dup := &models.Organization{Name: "Other", Slug: "acme"}
	if err := repo.Create(ctx, dup); !errors.Is(err, models.ErrConflict) {
		t.Errorf("Expected conflict for duplicate slug, got %v", err)
	}

	if err := repo.AddMember(ctx, &models.Membership{OrganizationID: org.ID, UserEmail: "Jane@Example.com", Role: models.RoleMember}); err != nil {
		t.Fatalf("Failed to add member: %v", err)
	}
	// Re-adding updates the role
	if err := repo.AddMember(ctx, &models.Membership{OrganizationID: org.ID, UserEmail: "jane@example.com", Role: models.RoleAdmin}); err != nil {
		t.Fatalf("Failed to update member: %v", err)
	}

	m, err := repo.GetMembership(ctx, org.ID, "JANE@example.com")
	if err != nil {
		t.Fatalf("Failed to get membership: %v", err)
	}
	if m.Role != models.RoleAdmin {
		t.Errorf("Expected role admin, got %s", m.Role)
	}

	if _, err := repo.GetMembership(ctx, org.ID, "nobody@example.com"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected not found for non-member, got %v", err)
	}

	orgs, err := repo.ListForUser(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("Failed to list organizations: %v", err)
	}
	if len(orgs) != 1 || orgs[0].Role != models.RoleAdmin {
		t.Errorf("Expected one organization with admin role, got %+v", orgs)
	}
}

func TestOrganizationRepository_KeepsLastOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrganizationRepository(db)
	ctx := context.Background()

	org := &models.Organization{Name: "Acme Foods", Slug: "acme"}
	if err := repo.Create(ctx, org); err != nil {
		t.Fatalf("Failed to create organization: %v", err)
	}
	owner := func(email string) *models.Membership {
		return &models.Membership{OrganizationID: org.ID, UserEmail: email, Role: models.RoleOwner}
	}
	if err := repo.AddMember(ctx, owner("ann@example.com")); err != nil {
		t.Fatalf("Failed to add owner: %v", err)
	}

	demote := &models.Membership{OrganizationID: org.ID, UserEmail: "ann@example.com", Role: models.RoleViewer}
	if err := repo.AddMember(ctx, demote); !errors.Is(err, models.ErrConflict) {
		t.Errorf("Expected conflict when demoting the last owner, got %v", err)
	}
	if m, _ := repo.GetMembership(ctx, org.ID, "ann@example.com"); m == nil || m.Role != models.RoleOwner {
		t.Errorf("Expected ann to remain owner, got %+v", m)
	}

	// Re-saving the same owner is not a demotion
	if err := repo.AddMember(ctx, owner("ann@example.com")); err != nil {
		t.Errorf("Expected re-adding an owner to succeed, got %v", err)
	}

	if err := repo.AddMember(ctx, owner("bob@example.com")); err != nil {
		t.Fatalf("Failed to add second owner: %v", err)
	}
	if err := repo.AddMember(ctx, demote); err != nil {
		t.Errorf("Expected demotion to succeed with another owner, got %v", err)
	}
	if err := repo.AddMember(ctx, &models.Membership{OrganizationID: org.ID, UserEmail: "bob@example.com", Role: models.RoleAdmin}); !errors.Is(err, models.ErrConflict) {
		t.Errorf("Expected conflict when demoting the remaining owner, got %v", err)
	}
}

func TestPPERepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPPERepository(db)
	ctx := testCtx()
	orgID := createTestOrg(t, db, "ppe")
	otherOrg := createTestOrg(t, db, "other")

	req := &models.PPERequirement{
		OrganizationID: orgID,
		Area:           "Packaging",
		Task:           "Stretch wrapping",
		Hazard:         "Pinch points",
		PPEType:        "hand",
		IsMandatory:    true,
		EffectiveDate:  date("2025-01-15"),
		ReviewDate:     datePtr("2026-01-15"),
		Status:         "active",
	}

	if err := repo.Create(ctx, req); err != nil {
		t.Fatalf("Failed to create PPE requirement: %v", err)
	}
	if req.ID == 0 {
		t.Error("Expected requirement ID to be set after creation")
	}
	if req.CreatedBy != "tester@example.com" {
		t.Errorf("Expected created_by from context, got %s", req.CreatedBy)
	}

	retrieved, err := repo.GetByID(ctx, orgID, req.ID)
	if err != nil {
		t.Fatalf("Failed to get PPE requirement by ID: %v", err)
	}
	if retrieved.Task != req.Task || !retrieved.IsMandatory {
		t.Errorf("Unexpected requirement: %+v", retrieved)
	}
	if retrieved.ReviewDate == nil || models.FormatDate(*retrieved.ReviewDate) != "2026-01-15" {
		t.Errorf("Expected review date 2026-01-15, got %v", retrieved.ReviewDate)
	}

	// Another tenant cannot see it
	if _, err := repo.GetByID(ctx, otherOrg, req.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected not found across organizations, got %v", err)
	}

	second := &models.PPERequirement{
		OrganizationID: orgID,
		Area:           "Boiler room",
		Task:           "Inspection",
		PPEType:        "hearing",
		EffectiveDate:  date("2025-02-01"),
		Status:         "inactive",
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Failed to create PPE requirement: %v", err)
	}

	all, err := repo.List(ctx, orgID, models.PPEFilter{})
	if err != nil {
		t.Fatalf("Failed to list PPE requirements: %v", err)
	}
	if len(all) != 2 || all[0].Area != "Boiler room" {
		t.Errorf("Expected 2 requirements sorted by area, got %+v", all)
	}

	active, err := repo.List(ctx, orgID, models.PPEFilter{Status: "active"})
	if err != nil {
		t.Fatalf("Failed to filter PPE requirements: %v", err)
	}
	if len(active) != 1 {
		t.Errorf("Expected 1 active requirement, got %d", len(active))
	}

	found, err := repo.List(ctx, orgID, models.PPEFilter{ListOptions: models.ListOptions{Search: "PINCH"}})
	if err != nil {
		t.Fatalf("Failed to search PPE requirements: %v", err)
	}
	if len(found) != 1 || found[0].ID != req.ID {
		t.Errorf("Expected search to find the wrapping task, got %+v", found)
	}

	desc, err := repo.List(ctx, orgID, models.PPEFilter{ListOptions: models.ListOptions{SortBy: "effective_date", Desc: true}})
	if err != nil {
		t.Fatalf("Failed to sort PPE requirements: %v", err)
	}
	if desc[0].ID != second.ID {
		t.Errorf("Expected newest effective date first")
	}

	count, err := repo.Count(ctx, orgID, models.PPEFilter{})
	if err != nil || count != 2 {
		t.Errorf("Expected count 2, got %d (%v)", count, err)
	}

	req.Notes = "Cut resistant level A4"
	req.ReviewDate = nil
	if err := repo.Update(ctx, req); err != nil {
		t.Fatalf("Failed to update PPE requirement: %v", err)
	}
	updated, err := repo.GetByID(ctx, orgID, req.ID)
	if err != nil {
		t.Fatalf("Failed to get updated PPE requirement: %v", err)
	}
	if updated.Notes != "Cut resistant level A4" || updated.ReviewDate != nil {
		t.Errorf("Unexpected updated requirement: %+v", updated)
	}
	if updated.ModifiedBy != "tester@example.com" || updated.ModifiedAt == nil {
		t.Errorf("Expected modified audit fields to be set")
	}

	// Update scoped to the wrong tenant touches nothing
	wrong := *req
	wrong.OrganizationID = otherOrg
	if err := repo.Update(ctx, &wrong); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected not found updating across organizations, got %v", err)
	}

	if err := repo.Delete(ctx, orgID, req.ID); err != nil {
		t.Fatalf("Failed to delete PPE requirement: %v", err)
	}
	if err := repo.Delete(ctx, orgID, req.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected not found deleting twice, got %v", err)
	}
}

func TestFoodSafetyPlanRepository_ReviewDue(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFoodSafetyPlanRepository(db)
	ctx := testCtx()
	orgID := createTestOrg(t, db, "food")

	plans := []*models.FoodSafetyPlan{
		{OrganizationID: orgID, Name: "Due soon", PlanType: "haccp", Version: "1.0", Status: "active", NextReviewDate: datePtr("2025-06-20")},
		{OrganizationID: orgID, Name: "Later", PlanType: "allergen", Version: "1.0", Status: "active", NextReviewDate: datePtr("2025-12-01")},
		{OrganizationID: orgID, Name: "Archived", PlanType: "haccp", Version: "1.0", Status: "archived", NextReviewDate: datePtr("2025-01-01")},
		{OrganizationID: orgID, Name: "Unscheduled", PlanType: "sanitation", Version: "1.0", Status: "draft"},
	}
	for _, p := range plans {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Failed to create plan: %v", err)
		}
	}

	due, err := repo.List(ctx, orgID, models.FoodSafetyPlanFilter{ReviewDueBy: datePtr("2025-07-10")})
	if err != nil {
		t.Fatalf("Failed to list plans due for review: %v", err)
	}
	if len(due) != 1 || due[0].Name != "Due soon" {
		t.Errorf("Expected only 'Due soon', got %+v", due)
	}

	count, err := repo.Count(ctx, orgID, models.FoodSafetyPlanFilter{ReviewDueBy: datePtr("2025-12-31")})
	if err != nil || count != 2 {
		t.Errorf("Expected 2 plans due by year end, got %d (%v)", count, err)
	}
}

func TestRecallRepositories(t *testing.T) {
	db := setupTestDB(t)
	plans := NewRecallPlanRepository(db)
	events := NewRecallEventRepository(db)
	ctx := testCtx()
	orgID := createTestOrg(t, db, "recall")

	plan := &models.RecallPlan{OrganizationID: orgID, Name: "Master recall plan", Version: "2.1", Coordinator: "QA Manager", Status: "active"}
	if err := plans.Create(ctx, plan); err != nil {
		t.Fatalf("Failed to create recall plan: %v", err)
	}

	event := &models.RecallEvent{
		OrganizationID:      orgID,
		PlanID:              &plan.ID,
		Product:             "Granola bars",
		LotCodes:            []string{"L2401", "L2402"},
		Reason:              "Mock exercise",
		Classification:      "class_ii",
		RecallType:          "mock",
		Status:              "initiated",
		InitiatedAt:         date("2025-03-01"),
		QuantityDistributed: 1200,
		QuantityRecovered:   1130,
	}
	if err := events.Create(ctx, event); err != nil {
		t.Fatalf("Failed to create recall event: %v", err)
	}

	got, err := events.GetByID(ctx, orgID, event.ID)
	if err != nil {
		t.Fatalf("Failed to get recall event: %v", err)
	}
	if len(got.LotCodes) != 2 || got.LotCodes[1] != "L2402" {
		t.Errorf("Expected lot codes to round trip, got %v", got.LotCodes)
	}
	if got.RecoveryPercent != 94.2 {
		t.Errorf("Expected recovery percent 94.2, got %v", got.RecoveryPercent)
	}
	if got.PlanID == nil || *got.PlanID != plan.ID {
		t.Errorf("Expected plan id %d, got %v", plan.ID, got.PlanID)
	}

	byLot, err := events.List(ctx, orgID, models.RecallEventFilter{ListOptions: models.ListOptions{Search: "l2402"}})
	if err != nil || len(byLot) != 1 {
		t.Errorf("Expected lot code search to match, got %d (%v)", len(byLot), err)
	}

	// Deleting the plan keeps the event and clears its link
	if err := plans.Delete(ctx, orgID, plan.ID); err != nil {
		t.Fatalf("Failed to delete recall plan: %v", err)
	}
	got, err = events.GetByID(ctx, orgID, event.ID)
	if err != nil {
		t.Fatalf("Failed to get recall event after plan deletion: %v", err)
	}
	if got.PlanID != nil {
		t.Errorf("Expected plan id to be cleared, got %v", *got.PlanID)
	}
}

func TestDocumentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := testCtx()
	orgID := createTestOrg(t, db, "docs")

	doc := &models.Document{
		OrganizationID: orgID,
		Title:          "Caustic soda SDS",
		Category:       "sds",
		Manufacturer:   "ChemCo",
		ProductName:    "NaOH 50%",
		ExpiryDate:     datePtr("2025-07-01"),
		Status:         "current",
		Tags:           []string{"sanitation", "corrosive"},
	}
	if err := repo.Create(ctx, doc); err != nil {
		t.Fatalf("Failed to create document: %v", err)
	}

	doc.FileKey = "org/1/documents/1/abc-sds.pdf"
	doc.FileName = "sds.pdf"
	doc.ContentType = "application/pdf"
	doc.FileSize = 2048
	if err := repo.SetFile(ctx, doc); err != nil {
		t.Fatalf("Failed to set document file: %v", err)
	}

	got, err := repo.GetByID(ctx, orgID, doc.ID)
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}
	if !got.HasFile() || got.FileSize != 2048 || len(got.Tags) != 2 {
		t.Errorf("Unexpected document: %+v", got)
	}

	expiring, err := repo.List(ctx, orgID, models.DocumentFilter{ExpiringBy: datePtr("2025-07-15")})
	if err != nil || len(expiring) != 1 {
		t.Errorf("Expected 1 expiring document, got %d (%v)", len(expiring), err)
	}
	notYet, err := repo.Count(ctx, orgID, models.DocumentFilter{ExpiringBy: datePtr("2025-06-01")})
	if err != nil || notYet != 0 {
		t.Errorf("Expected no documents expiring by June, got %d (%v)", notYet, err)
	}

	tagged, err := repo.List(ctx, orgID, models.DocumentFilter{ListOptions: models.ListOptions{Search: "corrosive"}})
	if err != nil || len(tagged) != 1 {
		t.Errorf("Expected tag search to match, got %d (%v)", len(tagged), err)
	}
}

func TestRecurringJournalRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRecurringJournalRepository(db)
	ctx := testCtx()
	orgID := createTestOrg(t, db, "finance")

	dom := 1
	journal := &models.RecurringJournal{
		OrganizationID: orgID,
		Name:           "Rent accrual",
		Frequency:      "monthly",
		IntervalCount:  1,
		DayOfMonth:     &dom,
		StartDate:      date("2025-01-01"),
		NextRunDate:    datePtr("2025-07-01"),
		IsActive:       true,
		Lines: []models.JournalLine{
			{AccountCode: "6100", Debit: 2500},
			{AccountCode: "2100", Credit: 2500},
		},
	}
	if err := repo.Create(ctx, journal); err != nil {
		t.Fatalf("Failed to create recurring journal: %v", err)
	}
	if journal.Lines[1].ID == 0 || journal.Lines[1].LineNumber != 2 {
		t.Errorf("Expected line ids and numbers to be set, got %+v", journal.Lines)
	}

	got, err := repo.GetByID(ctx, orgID, journal.ID)
	if err != nil {
		t.Fatalf("Failed to get recurring journal: %v", err)
	}
	if len(got.Lines) != 2 || got.DayOfMonth == nil || *got.DayOfMonth != 1 || got.DayOfWeek != nil {
		t.Errorf("Unexpected journal: %+v", got)
	}

	journal.Lines = []models.JournalLine{
		{AccountCode: "6100", Debit: 1000},
		{AccountCode: "6110", Debit: 1500},
		{AccountCode: "2100", Credit: 2500},
	}
	if err := repo.Update(ctx, journal); err != nil {
		t.Fatalf("Failed to update recurring journal: %v", err)
	}

	if err := repo.SetActive(ctx, orgID, journal.ID, false); err != nil {
		t.Fatalf("Failed to pause recurring journal: %v", err)
	}

	active := false
	list, err := repo.List(ctx, orgID, models.RecurringJournalFilter{Active: &active})
	if err != nil {
		t.Fatalf("Failed to list recurring journals: %v", err)
	}
	if len(list) != 1 || len(list[0].Lines) != 3 || list[0].IsActive {
		t.Errorf("Expected one paused journal with 3 lines, got %+v", list)
	}

	if err := repo.Delete(ctx, orgID, journal.ID); err != nil {
		t.Fatalf("Failed to delete recurring journal: %v", err)
	}
	var lines int
	if err := db.QueryRow(`SELECT COUNT(*) FROM recurring_journal_lines`).Scan(&lines); err != nil || lines != 0 {
		t.Errorf("Expected journal lines to cascade, %d remain (%v)", lines, err)
	}
}

func TestProductionRunRepository_GuardedUpdates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductionRunRepository(db)
	ctx := testCtx()
	orgID := createTestOrg(t, db, "plant")

	run := &models.ProductionRun{OrganizationID: orgID, LineName: "Line 1", Product: "Oat milk 1L", Shift: "day", TargetCount: 1000}
	if err := repo.Create(ctx, run); err != nil {
		t.Fatalf("Failed to create production run: %v", err)
	}
	if run.Status != models.RunScheduled {
		t.Errorf("Expected default status scheduled, got %s", run.Status)
	}

	started := time.Now().Add(-time.Hour)
	run.Status = models.RunRunning
	run.StartedAt = &started
	run.GoodCount, run.RejectCount = 400, 10
	if err := repo.UpdateCounts(ctx, run, models.RunScheduled); err != nil {
		t.Fatalf("Failed to update counts: %v", err)
	}

	// Counts read before a pause cannot flip the run back to running
	if err := repo.UpdateStatus(ctx, &models.ProductionRun{ID: run.ID, OrganizationID: orgID, Status: models.RunPaused, StartedAt: &started}, models.RunRunning); err != nil {
		t.Fatalf("Failed to pause run: %v", err)
	}
	stale := *run
	stale.GoodCount = 420
	if err := repo.UpdateCounts(ctx, &stale, models.RunRunning); !errors.Is(err, models.ErrConflict) {
		t.Errorf("Expected conflict for counts racing a pause, got %v", err)
	}
	if got, _ := repo.GetByID(ctx, orgID, run.ID); got == nil || got.Status != models.RunPaused || got.GoodCount != 400 {
		t.Errorf("Expected paused run with unchanged counts, got %+v", got)
	}
	if err := repo.UpdateStatus(ctx, run, models.RunPaused); err != nil {
		t.Fatalf("Failed to resume run: %v", err)
	}

	// Totals may not go backwards
	run.GoodCount = 399
	if err := repo.UpdateCounts(ctx, run, models.RunRunning); !errors.Is(err, models.ErrConflict) {
		t.Errorf("Expected conflict for decreasing counts, got %v", err)
	}

	// Stale status guard
	if err := repo.UpdateStatus(ctx, &models.ProductionRun{ID: run.ID, OrganizationID: orgID, Status: models.RunPaused}, models.RunScheduled); !errors.Is(err, models.ErrConflict) {
		t.Errorf("Expected conflict for stale status, got %v", err)
	}

	ended := time.Now()
	run.Status = models.RunCompleted
	run.EndedAt = &ended
	if err := repo.UpdateStatus(ctx, run, models.RunRunning); err != nil {
		t.Fatalf("Failed to complete run: %v", err)
	}

	run.GoodCount = 500
	if err := repo.UpdateCounts(ctx, run, models.RunCompleted); !errors.Is(err, models.ErrConflict) {
		t.Errorf("Expected conflict updating a completed run, got %v", err)
	}

	got, err := repo.GetByID(ctx, orgID, run.ID)
	if err != nil {
		t.Fatalf("Failed to get production run: %v", err)
	}
	if got.GoodCount != 400 || got.Status != models.RunCompleted || got.StartedAt == nil || got.EndedAt == nil {
		t.Errorf("Unexpected run: %+v", got)
	}

	if err := repo.UpdateCounts(ctx, &models.ProductionRun{ID: 9999, OrganizationID: orgID}, models.RunRunning); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected not found for missing run, got %v", err)
	}

	running, err := repo.Count(ctx, orgID, models.ProductionRunFilter{Status: models.RunRunning})
	if err != nil || running != 0 {
		t.Errorf("Expected no running runs, got %d (%v)", running, err)
	}
}

func TestContractorOrientationAndDrugTestRepositories(t *testing.T) {
	db := setupTestDB(t)
	orientations := NewContractorOrientationRepository(db)
	tests := NewDrugTestRepository(db)
	ctx := testCtx()
	orgID := createTestOrg(t, db, "hr")

	o := &models.ContractorOrientation{
		OrganizationID:  orgID,
		ContractorName:  "Sam Welder",
		Company:         "Sparks LLC",
		OrientationDate: date("2024-01-10"),
		ExpiryDate:      date("2025-01-10"),
		Topics:          []string{"LOTO", "Hot work"},
		Status:          "completed",
	}
	if err := orientations.Create(ctx, o); err != nil {
		t.Fatalf("Failed to create orientation: %v", err)
	}

	expired, err := orientations.List(ctx, orgID, models.ContractorOrientationFilter{ExpiredAsOf: datePtr("2025-02-01")})
	if err != nil || len(expired) != 1 || len(expired[0].Topics) != 2 {
		t.Errorf("Expected one expired orientation with topics, got %+v (%v)", expired, err)
	}
	current, err := orientations.Count(ctx, orgID, models.ContractorOrientationFilter{ExpiredAsOf: datePtr("2025-01-10")})
	if err != nil || current != 0 {
		t.Errorf("Expected orientation valid on its expiry day, got %d (%v)", current, err)
	}

	for _, d := range []string{"2025-01-05", "2025-02-10", "2025-03-15"} {
		test := &models.DrugTest{
			OrganizationID: orgID,
			EmployeeName:   "Pat",
			TestType:       "random",
			Panel:          "drug",
			CollectionDate: date(d),
			Result:         "pending",
		}
		if err := tests.Create(ctx, test); err != nil {
			t.Fatalf("Failed to create drug test: %v", err)
		}
	}

	inRange, err := tests.List(ctx, orgID, models.DrugTestFilter{From: datePtr("2025-02-01"), To: datePtr("2025-03-15")})
	if err != nil || len(inRange) != 2 {
		t.Fatalf("Expected 2 tests in range, got %d (%v)", len(inRange), err)
	}
	if !inRange[0].CollectionDate.After(inRange[1].CollectionDate) {
		t.Errorf("Expected most recent collection first")
	}
}

func TestOSHARepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOSHARepository(db)
	ctx := testCtx()
	orgID := createTestOrg(t, db, "osha")
	otherOrg := createTestOrg(t, db, "osha-other")

	seq, err := repo.NextCaseSequence(ctx, orgID, 2025)
	if err != nil || seq != 1 {
		t.Fatalf("Expected first sequence 1, got %d (%v)", seq, err)
	}

	for i, caseNumber := range []string{"2025-001", "2025-007", "2025-A1", "2024-050"} {
		incident := date("2025-04-01").AddDate(0, 0, i)
		entry := &models.OSHAEntry{
			OrganizationID: orgID,
			CaseNumber:     caseNumber,
			EmployeeName:   "Worker",
			IncidentDate:   incident,
			Location:       "Dock",
			Description:    "Strain",
			Classification: "other_recordable",
			InjuryType:     "injury",
			PrivacyCase:    i == 0,
		}
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("Failed to create OSHA entry: %v", err)
		}
	}

	seq, err = repo.NextCaseSequence(ctx, orgID, 2025)
	if err != nil || seq != 8 {
		t.Errorf("Expected next sequence 8, got %d (%v)", seq, err)
	}
	seq, err = repo.NextCaseSequence(ctx, otherOrg, 2025)
	if err != nil || seq != 1 {
		t.Errorf("Expected sequences to be per organization, got %d (%v)", seq, err)
	}

	dup := &models.OSHAEntry{OrganizationID: orgID, CaseNumber: "2025-001", IncidentDate: date("2025-05-01")}
	if err := repo.Create(ctx, dup); !errors.Is(err, models.ErrConflict) {
		t.Errorf("Expected conflict for duplicate case number, got %v", err)
	}

	count, err := repo.Count(ctx, orgID, models.OSHAFilter{Year: 2025})
	if err != nil || count != 4 {
		t.Errorf("Expected 4 entries in 2025, got %d (%v)", count, err)
	}

	// Privacy case names are excluded from search
	found, err := repo.List(ctx, orgID, models.OSHAFilter{ListOptions: models.ListOptions{Search: "worker"}})
	if err != nil || len(found) != 3 {
		t.Errorf("Expected 3 searchable entries, got %d (%v)", len(found), err)
	}
}

func TestSpillReportRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSpillReportRepository(db)
	ctx := testCtx()
	orgID := createTestOrg(t, db, "env")

	notified := time.Now()
	reports := []*models.SpillReport{
		{OrganizationID: orgID, ReportDate: date("2025-05-01"), Location: "Tank farm", Substance: "Diesel", Quantity: 30, Unit: "gallons", ReportedBy: "Lee", Severity: "major", Reportable: true, AgencyNotified: true, AgencyNotifiedAt: &notified, Status: "contained"},
		{OrganizationID: orgID, ReportDate: date("2025-05-03"), Location: "Shop", Substance: "Hydraulic oil", Quantity: 1, Unit: "liters", ReportedBy: "Kim", Severity: "minor", Status: "closed"},
	}
	for _, r := range reports {
		if err := repo.Create(ctx, r); err != nil {
			t.Fatalf("Failed to create spill report: %v", err)
		}
	}

	open, err := repo.Count(ctx, orgID, models.SpillReportFilter{OpenOnly: true})
	if err != nil || open != 1 {
		t.Errorf("Expected 1 open spill, got %d (%v)", open, err)
	}

	reportable := true
	list, err := repo.List(ctx, orgID, models.SpillReportFilter{Reportable: &reportable})
	if err != nil || len(list) != 1 || list[0].AgencyNotifiedAt == nil {
		t.Errorf("Expected the reportable spill with notification time, got %+v (%v)", list, err)
	}
}

func TestApprovalTierRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApprovalTierRepository(db)
	ctx := testCtx()
	orgID := createTestOrg(t, db, "ap")

	upper := 10000.0
	tiers := []models.ApprovalTier{
		{Name: "Director", Level: 3, ApproverRole: "director", IsActive: true,
			Thresholds: []models.ApprovalThreshold{{Kind: "amount", Operator: models.OpGreaterThan, Value: 10000}}},
		{Name: "Supervisor", Level: 1, ApproverRole: "supervisor", IsActive: true,
			Thresholds: []models.ApprovalThreshold{{Kind: "amount", Operator: models.OpLessThan, Value: 1000}}},
		{Name: "Manager", Level: 2, ApproverRole: "manager", IsActive: true,
			Thresholds: []models.ApprovalThreshold{{Kind: "amount", Operator: models.OpBetween, Value: 1000, ValueEnd: &upper}}},
		{Name: "Retired", Level: 4, ApproverRole: "cfo", IsActive: false},
	}
	if err := repo.ReplaceCategory(ctx, orgID, "purchase_order", tiers); err != nil {
		t.Fatalf("Failed to import approval tiers: %v", err)
	}

	list, err := repo.List(ctx, orgID, models.ApprovalTierFilter{Category: "purchase_order", ActiveOnly: true})
	if err != nil {
		t.Fatalf("Failed to list approval tiers: %v", err)
	}
	if len(list) != 3 || list[0].Name != "Supervisor" || list[2].Name != "Director" {
		t.Fatalf("Expected active tiers in level order, got %+v", list)
	}
	if list[1].Thresholds[0].ValueEnd == nil || *list[1].Thresholds[0].ValueEnd != upper {
		t.Errorf("Expected between upper bound to round trip")
	}
	if got := models.MatchTierForAmount(list, 5000); got == nil || got.Name != "Manager" {
		t.Errorf("Expected Manager for 5000, got %+v", got)
	}

	// Replacing drops the old set and its thresholds
	if err := repo.ReplaceCategory(ctx, orgID, "purchase_order", []models.ApprovalTier{
		{Name: "Anyone", Level: 1, ApproverRole: "staff", IsActive: true},
	}); err != nil {
		t.Fatalf("Failed to replace approval tiers: %v", err)
	}
	list, err = repo.List(ctx, orgID, models.ApprovalTierFilter{Category: "purchase_order"})
	if err != nil || len(list) != 1 {
		t.Fatalf("Expected 1 tier after replace, got %d (%v)", len(list), err)
	}
	var thresholds int
	if err := db.QueryRow(`SELECT COUNT(*) FROM approval_thresholds`).Scan(&thresholds); err != nil || thresholds != 0 {
		t.Errorf("Expected thresholds to cascade, %d remain (%v)", thresholds, err)
	}

	tier := &list[0]
	tier.Thresholds = []models.ApprovalThreshold{{Kind: "amount", Operator: models.OpEquals, Value: 42}}
	if err := repo.Update(ctx, tier); err != nil {
		t.Fatalf("Failed to update approval tier: %v", err)
	}
	got, err := repo.GetByID(ctx, orgID, tier.ID)
	if err != nil || len(got.Thresholds) != 1 || got.Thresholds[0].Value != 42 {
		t.Errorf("Expected updated threshold, got %+v (%v)", got, err)
	}
}

func TestAuditRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()
	orgID := createTestOrg(t, db, "audit")

	for i, path := range []string{"/api/ppe-requirements", "/api/spill-reports/1"} {
		entry := &models.AuditLogEntry{
			Timestamp:      time.Now().Add(time.Duration(i) * time.Second),
			OrganizationID: orgID,
			UserEmail:      "jane@example.com",
			Method:         "POST",
			Path:           path,
			UserAgent:      "test",
			IPAddress:      "127.0.0.1",
		}
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("Failed to create audit entry: %v", err)
		}
	}
	// Unscoped entries (login, token) are stored without an organization
	if err := repo.Create(ctx, &models.AuditLogEntry{UserEmail: "jane@example.com", Method: "POST", Path: "/api/token"}); err != nil {
		t.Fatalf("Failed to create audit entry: %v", err)
	}

	entries, err := repo.List(ctx, orgID, 10)
	if err != nil {
		t.Fatalf("Failed to list audit entries: %v", err)
	}
	if len(entries) != 2 || entries[0].Path != "/api/spill-reports/1" {
		t.Errorf("Expected 2 entries newest first, got %+v", entries)
	}
}

func TestSearchFoldsUnicodeAndMatchesLiterally(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPPERepository(db)
	ctx := testCtx()
	orgID := createTestOrg(t, db, "search")

	for _, area := range []string{"École kitchen", "Line 1", "Line_2", "100% wash bay"} {
		err := repo.Create(ctx, &models.PPERequirement{
			OrganizationID: orgID,
			Area:           area,
			Task:           "Cleaning",
			PPEType:        "hand",
			EffectiveDate:  date("2025-01-15"),
			Status:         "active",
		})
		if err != nil {
			t.Fatalf("Failed to create PPE requirement: %v", err)
		}
	}

	tests := []struct {
		term string
		want []string
	}{
		{"École", []string{"École kitchen"}},
		{"école", []string{"École kitchen"}},
		{"ÉCOLE", []string{"École kitchen"}},
		{"_", []string{"Line_2"}},
		{"line_", []string{"Line_2"}},
		{"%", []string{"100% wash bay"}},
		{"line", []string{"Line 1", "Line_2"}},
	}
	for _, tt := range tests {
		found, err := repo.List(ctx, orgID, models.PPEFilter{ListOptions: models.ListOptions{Search: tt.term}})
		if err != nil {
			t.Fatalf("Failed to search %q: %v", tt.term, err)
		}
		var areas []string
		for _, r := range found {
			areas = append(areas, r.Area)
		}
		if strings.Join(areas, "|") != strings.Join(tt.want, "|") {
			t.Errorf("Search %q: expected %v, got %v", tt.term, tt.want, areas)
		}
	}
}
