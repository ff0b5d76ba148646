package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/repositories"
	"github.com/blogem/opsledger/repositories/mocks"
)

type dashboardMocks struct {
	spills       *mocks.MockSpillReportRepository
	runs         *mocks.MockProductionRunRepository
	plans        *mocks.MockFoodSafetyPlanRepository
	documents    *mocks.MockDocumentRepository
	orientations *mocks.MockContractorOrientationRepository
	drugTests    *mocks.MockDrugTestRepository
	osha         *mocks.MockOSHARepository
}

func newDashboardMocks(t *testing.T) (*dashboardMocks, *repositories.Repositories) {
	m := &dashboardMocks{
		spills:       mocks.NewMockSpillReportRepository(t),
		runs:         mocks.NewMockProductionRunRepository(t),
		plans:        mocks.NewMockFoodSafetyPlanRepository(t),
		documents:    mocks.NewMockDocumentRepository(t),
		orientations: mocks.NewMockContractorOrientationRepository(t),
		drugTests:    mocks.NewMockDrugTestRepository(t),
		osha:         mocks.NewMockOSHARepository(t),
	}
	return m, &repositories.Repositories{
		SpillReport:           m.spills,
		ProductionRun:         m.runs,
		FoodSafetyPlan:        m.plans,
		Document:              m.documents,
		ContractorOrientation: m.orientations,
		DrugTest:              m.drugTests,
		OSHA:                  m.osha,
	}
}

func TestDashboardCounts(t *testing.T) {
	m, repos := newDashboardMocks(t)
	service := NewDashboardService(repos, testDeps(t))
	ctx := orgCtx(models.RoleViewer)

	window := dayPtr("2025-07-10")
	m.spills.EXPECT().Count(mock.Anything, testOrgID, models.SpillReportFilter{OpenOnly: true}).Return(2, nil).Once()
	m.runs.EXPECT().Count(mock.Anything, testOrgID, models.ProductionRunFilter{Status: models.RunRunning}).Return(1, nil).Once()
	m.plans.EXPECT().Count(mock.Anything, testOrgID, models.FoodSafetyPlanFilter{ReviewDueBy: window}).Return(3, nil).Once()
	m.documents.EXPECT().Count(mock.Anything, testOrgID, models.DocumentFilter{ExpiringBy: window}).Return(4, nil).Once()
	m.orientations.EXPECT().Count(mock.Anything, testOrgID, models.ContractorOrientationFilter{ExpiredAsOf: dayPtr("2025-06-10")}).Return(5, nil).Once()
	m.drugTests.EXPECT().Count(mock.Anything, testOrgID, models.DrugTestFilter{Result: "pending"}).Return(6, nil).Once()
	m.osha.EXPECT().Count(mock.Anything, testOrgID, models.OSHAFilter{Year: 2025}).Return(7, nil).Once()

	d, err := service.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.Dashboard{
		OpenSpillReports:      2,
		RunningProductionRuns: 1,
		PlansDueForReview:     3,
		ExpiringDocuments:     4,
		ExpiredOrientations:   5,
		PendingDrugTests:      6,
		OSHARecordablesYTD:    7,
	}, d)

	// second read is cached
	_, err = service.Get(ctx)
	require.NoError(t, err)
}

func TestDashboardInvalidatedByMutation(t *testing.T) {
	m, repos := newDashboardMocks(t)
	deps := testDeps(t)
	dashboard := NewDashboardService(repos, deps)
	spills := NewSpillReportService(m.spills, deps)
	ctx := orgCtx(models.RoleMember)

	m.spills.EXPECT().Count(mock.Anything, testOrgID, mock.Anything).Return(0, nil).Once()
	m.spills.EXPECT().Count(mock.Anything, testOrgID, mock.Anything).Return(1, nil).Once()
	m.runs.EXPECT().Count(mock.Anything, testOrgID, mock.Anything).Return(0, nil)
	m.plans.EXPECT().Count(mock.Anything, testOrgID, mock.Anything).Return(0, nil)
	m.documents.EXPECT().Count(mock.Anything, testOrgID, mock.Anything).Return(0, nil)
	m.orientations.EXPECT().Count(mock.Anything, testOrgID, mock.Anything).Return(0, nil)
	m.drugTests.EXPECT().Count(mock.Anything, testOrgID, mock.Anything).Return(0, nil)
	m.osha.EXPECT().Count(mock.Anything, testOrgID, mock.Anything).Return(0, nil)
	m.spills.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	before, err := dashboard.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, before.OpenSpillReports)

	_, err = spills.Create(ctx, spillForm())
	require.NoError(t, err)

	after, err := dashboard.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, after.OpenSpillReports)
}

func TestDashboardFailure(t *testing.T) {
	m, repos := newDashboardMocks(t)
	service := NewDashboardService(repos, testDeps(t))

	m.spills.EXPECT().Count(mock.Anything, testOrgID, mock.Anything).Return(0, errors.New("database is locked")).Maybe()
	m.runs.EXPECT().Count(mock.Anything, testOrgID, mock.Anything).Return(0, nil).Maybe()
	m.plans.EXPECT().Count(mock.Anything, testOrgID, mock.Anything).Return(0, nil).Maybe()
	m.documents.EXPECT().Count(mock.Anything, testOrgID, mock.Anything).Return(0, nil).Maybe()
	m.orientations.EXPECT().Count(mock.Anything, testOrgID, mock.Anything).Return(0, nil).Maybe()
	m.drugTests.EXPECT().Count(mock.Anything, testOrgID, mock.Anything).Return(0, nil).Maybe()
	m.osha.EXPECT().Count(mock.Anything, testOrgID, mock.Anything).Return(0, nil).Maybe()

	_, err := service.Get(orgCtx(models.RoleMember))
	assert.EqualError(t, err, "failed to load dashboard: database is locked")
}
