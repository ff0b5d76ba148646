package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/repositories/mocks"
)

func spillForm() *models.SpillReportForm {
	return &models.SpillReportForm{
		ReportDate: "2025-06-09",
		Location:   "Tank farm",
		Substance:  "Diesel",
		Quantity:   30,
		Unit:       "gallons",
		ReportedBy: "J. Rivera",
		Severity:   "moderate",
		Reportable: true,
		Status:     "open",
	}
}

func TestSpillReportAgencyNotification(t *testing.T) {
	repo := mocks.NewMockSpillReportRepository(t)
	service := NewSpillReportService(repo, testDeps(t))
	ctx := orgCtx(models.RoleMember)

	existing := &models.SpillReport{ID: 2, OrganizationID: testOrgID, Reportable: true, Status: "open"}
	repo.EXPECT().GetByID(mock.Anything, testOrgID, 2).Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, existing).Return(nil)

	form := spillForm()
	form.AgencyNotified = true
	form.Status = "closed"
	report, err := service.Update(ctx, 2, form)

	require.NoError(t, err)
	require.NotNil(t, report.AgencyNotifiedAt)
	assert.Equal(t, fixedNow, *report.AgencyNotifiedAt)
}

func TestSpillReportCannotCloseUnnotified(t *testing.T) {
	service := NewSpillReportService(mocks.NewMockSpillReportRepository(t), testDeps(t))

	form := spillForm()
	form.Status = "closed"
	_, err := service.Create(orgCtx(models.RoleMember), form)

	var ve models.ValidationErrors
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"A reportable spill cannot be closed until the agency has been notified"}, ve.GetMessages())
}
