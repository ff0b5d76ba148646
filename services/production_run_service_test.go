package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/repositories/mocks"
)

// ProductionRunServiceTestSuite is a test suite for the production run service
type ProductionRunServiceTestSuite struct {
	suite.Suite
	service  ProductionRunService
	mockRepo *mocks.MockProductionRunRepository
	ctx      context.Context
}

// SetupTest sets up the test suite before each test
func (suite *ProductionRunServiceTestSuite) SetupTest() {
	suite.mockRepo = mocks.NewMockProductionRunRepository(suite.T())
	suite.service = NewProductionRunService(suite.mockRepo, testDeps(suite.T()))
	suite.ctx = orgCtx(models.RoleMember)
}

// TestCreate_StartsScheduled tests that new runs are scheduled
func (suite *ProductionRunServiceTestSuite) TestCreate_StartsScheduled() {
	suite.mockRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.ProductionRun")).Return(nil)

	run, err := suite.service.Create(suite.ctx, &models.ProductionRunForm{
		LineName: "Line 2", Product: "Oat crackers", Shift: "day", TargetCount: 5000,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RunScheduled, run.Status)
	assert.Equal(suite.T(), testOrgID, run.OrganizationID)
}

// TestRecordCounts_StartsScheduledRun tests that the first counts move a scheduled run to running
func (suite *ProductionRunServiceTestSuite) TestRecordCounts_StartsScheduledRun() {
	run := &models.ProductionRun{ID: 1, OrganizationID: testOrgID, Status: models.RunScheduled, TargetCount: 1000}
	suite.mockRepo.EXPECT().GetByID(mock.Anything, testOrgID, 1).Return(run, nil)
	suite.mockRepo.EXPECT().UpdateCounts(mock.Anything, run, models.RunScheduled).Return(nil)

	updated, err := suite.service.RecordCounts(suite.ctx, 1, &models.CountUpdate{GoodCount: 450, RejectCount: 50})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RunRunning, updated.Status)
	require.NotNil(suite.T(), updated.StartedAt)
	assert.Equal(suite.T(), fixedNow, *updated.StartedAt)
	assert.Equal(suite.T(), 500, updated.TotalCount)
	assert.Equal(suite.T(), 90.0, updated.YieldPercent)
	assert.Equal(suite.T(), 45.0, updated.ProgressPercent)
}

// TestRecordCounts_Conflicts tests decreasing totals and completed runs
func (suite *ProductionRunServiceTestSuite) TestRecordCounts_Conflicts() {
	suite.mockRepo.EXPECT().GetByID(mock.Anything, testOrgID, 2).
		Return(&models.ProductionRun{ID: 2, Status: models.RunRunning, GoodCount: 100, RejectCount: 5}, nil)
	suite.mockRepo.EXPECT().GetByID(mock.Anything, testOrgID, 3).
		Return(&models.ProductionRun{ID: 3, Status: models.RunCompleted}, nil)

	_, err := suite.service.RecordCounts(suite.ctx, 2, &models.CountUpdate{GoodCount: 99, RejectCount: 5})
	assert.ErrorIs(suite.T(), err, models.ErrConflict)

	_, err = suite.service.RecordCounts(suite.ctx, 3, &models.CountUpdate{GoodCount: 1})
	assert.ErrorIs(suite.T(), err, models.ErrConflict)
}

// TestRecordCounts_NegativeRejected tests count validation
func (suite *ProductionRunServiceTestSuite) TestRecordCounts_NegativeRejected() {
	_, err := suite.service.RecordCounts(suite.ctx, 2, &models.CountUpdate{GoodCount: -1})

	var ve models.ValidationErrors
	assert.ErrorAs(suite.T(), err, &ve)
}

// TestChangeStatus_Complete tests that completing stamps ended_at and guards on the previous status
func (suite *ProductionRunServiceTestSuite) TestChangeStatus_Complete() {
	started := fixedNow.Add(-2 * time.Hour)
	run := &models.ProductionRun{ID: 4, Status: models.RunPaused, StartedAt: &started, GoodCount: 900, RejectCount: 100}
	suite.mockRepo.EXPECT().GetByID(mock.Anything, testOrgID, 4).Return(run, nil)
	suite.mockRepo.EXPECT().UpdateStatus(mock.Anything, run, models.RunPaused).Return(nil)

	updated, err := suite.service.ChangeStatus(suite.ctx, 4, &models.StatusChange{Status: models.RunCompleted})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RunCompleted, updated.Status)
	require.NotNil(suite.T(), updated.EndedAt)
	assert.Equal(suite.T(), fixedNow, *updated.EndedAt)
	assert.Equal(suite.T(), 500.0, updated.UnitsPerHour)
}

// TestChangeStatus_InvalidTransition tests that disallowed transitions are conflicts
func (suite *ProductionRunServiceTestSuite) TestChangeStatus_InvalidTransition() {
	suite.mockRepo.EXPECT().GetByID(mock.Anything, testOrgID, 5).
		Return(&models.ProductionRun{ID: 5, Status: models.RunScheduled}, nil)

	_, err := suite.service.ChangeStatus(suite.ctx, 5, &models.StatusChange{Status: models.RunCompleted})
	assert.ErrorIs(suite.T(), err, models.ErrConflict)
}

// TestChangeStatus_ConcurrentChange tests that a lost guarded update surfaces the repository conflict
func (suite *ProductionRunServiceTestSuite) TestChangeStatus_ConcurrentChange() {
	run := &models.ProductionRun{ID: 6, Status: models.RunRunning}
	suite.mockRepo.EXPECT().GetByID(mock.Anything, testOrgID, 6).Return(run, nil)
	suite.mockRepo.EXPECT().UpdateStatus(mock.Anything, run, models.RunRunning).Return(models.ErrConflict)

	_, err := suite.service.ChangeStatus(suite.ctx, 6, &models.StatusChange{Status: models.RunPaused})
	assert.ErrorIs(suite.T(), err, models.ErrConflict)
}

// TestList_DecoratesCopies tests that derived fields do not leak into the cached slice
func (suite *ProductionRunServiceTestSuite) TestList_DecoratesCopies() {
	cached := []models.ProductionRun{{ID: 1, GoodCount: 10, RejectCount: 0}}
	suite.mockRepo.EXPECT().List(mock.Anything, testOrgID, models.ProductionRunFilter{}).Return(cached, nil).Once()

	runs, err := suite.service.List(suite.ctx, models.ProductionRunFilter{})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 10, runs[0].TotalCount)
	assert.Equal(suite.T(), 0, cached[0].TotalCount)
}

// TestProductionRunServiceTestSuite runs the production run service test suite
func TestProductionRunServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductionRunServiceTestSuite))
}
