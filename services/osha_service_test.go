package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/repositories/mocks"
)

// OSHAServiceTestSuite is a test suite for the OSHA log service
type OSHAServiceTestSuite struct {
	suite.Suite
	service  OSHAService
	mockRepo *mocks.MockOSHARepository
	ctx      context.Context
}

// SetupTest sets up the test suite before each test
func (suite *OSHAServiceTestSuite) SetupTest() {
	suite.mockRepo = mocks.NewMockOSHARepository(suite.T())
	suite.service = NewOSHAService(suite.mockRepo, testDeps(suite.T()))
	suite.ctx = orgCtx(models.RoleMember)
}

func oshaForm() *models.OSHAEntryForm {
	return &models.OSHAEntryForm{
		EmployeeName:   "Dana Smith",
		IncidentDate:   "2025-03-14",
		Location:       "Dock 3",
		Description:    "Strained back lifting pallet",
		Classification: "days_away",
		DaysAway:       200,
		InjuryType:     "injury",
	}
}

func yearEntries() []models.OSHAEntry {
	return []models.OSHAEntry{
		{ID: 1, CaseNumber: "2025-001", EmployeeName: "Dana Smith", IncidentDate: day("2025-03-14"),
			Classification: "days_away", DaysAway: 12, InjuryType: "injury"},
		{ID: 2, CaseNumber: "2025-002", EmployeeName: "Lee Park", IncidentDate: day("2025-05-02"),
			Classification: "other_recordable", InjuryType: "skin_disorder", PrivacyCase: true},
	}
}

func (suite *OSHAServiceTestSuite) expectYear(year int, entries []models.OSHAEntry) {
	suite.mockRepo.EXPECT().List(mock.Anything, testOrgID, models.OSHAFilter{
		Year:        year,
		ListOptions: models.ListOptions{SortBy: "case_number", Limit: models.MaxListLimit},
	}).Return(entries, nil).Once()
}

// TestCreate_AssignsCaseNumber tests automatic "YYYY-NNN" numbering and the 180 day cap
func (suite *OSHAServiceTestSuite) TestCreate_AssignsCaseNumber() {
	suite.mockRepo.EXPECT().NextCaseSequence(mock.Anything, testOrgID, 2025).Return(8, nil)
	suite.mockRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.OSHAEntry")).Return(nil)

	entry, err := suite.service.Create(suite.ctx, oshaForm())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2025-008", entry.CaseNumber)
	assert.Equal(suite.T(), models.OSHAMaxDays, entry.DaysAway)
}

// TestCreate_KeepsGivenCaseNumber tests that explicit case numbers skip the sequence
func (suite *OSHAServiceTestSuite) TestCreate_KeepsGivenCaseNumber() {
	suite.mockRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.OSHAEntry")).Return(models.ErrConflict)

	form := oshaForm()
	form.CaseNumber = "2025-001"
	_, err := suite.service.Create(suite.ctx, form)

	assert.ErrorIs(suite.T(), err, models.ErrConflict)
}

// TestUpdate_BlankCaseNumberKeepsStored tests that editing without a case number keeps the stored one
func (suite *OSHAServiceTestSuite) TestUpdate_BlankCaseNumberKeepsStored() {
	existing := &models.OSHAEntry{ID: 1, OrganizationID: testOrgID, CaseNumber: "2025-004"}
	suite.mockRepo.EXPECT().GetByID(mock.Anything, testOrgID, 1).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(mock.Anything, existing).Return(nil)

	entry, err := suite.service.Update(suite.ctx, 1, oshaForm())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2025-004", entry.CaseNumber)
}

// TestList_RedactsPrivacyCases tests that list responses hide privacy case names
func (suite *OSHAServiceTestSuite) TestList_RedactsPrivacyCases() {
	suite.mockRepo.EXPECT().List(mock.Anything, testOrgID, models.OSHAFilter{}).Return(yearEntries(), nil)

	entries, err := suite.service.List(suite.ctx, models.OSHAFilter{})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Dana Smith", entries[0].EmployeeName)
	assert.Equal(suite.T(), models.PrivacyCaseName, entries[1].EmployeeName)
}

// TestSummary_DefaultsToCurrentYear tests Form 300A totals for the current year
func (suite *OSHAServiceTestSuite) TestSummary_DefaultsToCurrentYear() {
	suite.expectYear(2025, yearEntries())

	summary, err := suite.service.Summary(suite.ctx, 0)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2025, summary.Year)
	assert.Equal(suite.T(), 2, summary.TotalCases)
	assert.Equal(suite.T(), 12, summary.TotalDaysAway)
	assert.Equal(suite.T(), 1, summary.ByClassification["other_recordable"])
	assert.Equal(suite.T(), 0, summary.ByClassification["death"])
}

// TestExport_WritesWorkbook tests that the export contains both forms with redacted names
func (suite *OSHAServiceTestSuite) TestExport_WritesWorkbook() {
	suite.expectYear(2025, yearEntries())

	var buf bytes.Buffer
	require.NoError(suite.T(), suite.service.Export(suite.ctx, 2025, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(suite.T(), err)
	defer f.Close()

	assert.Equal(suite.T(), []string{Form300Sheet, Form300ASheet}, f.GetSheetList())

	rows, err := f.GetRows(Form300Sheet)
	require.NoError(suite.T(), err)
	require.Len(suite.T(), rows, 3)
	assert.Equal(suite.T(), "Case No.", rows[0][0])
	assert.Equal(suite.T(), "2025-001", rows[1][0])
	assert.Equal(suite.T(), models.PrivacyCaseName, rows[2][1])
	assert.Equal(suite.T(), "Skin disorder", rows[2][9])

	total, err := f.GetCellValue(Form300ASheet, "B2")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2", total)
}

// TestOSHAServiceTestSuite runs the OSHA log service test suite
func TestOSHAServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OSHAServiceTestSuite))
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Days away", humanize("days_away"))
	assert.Equal(t, "Injury", humanize("injury"))
	assert.Equal(t, "", humanize(""))
}
