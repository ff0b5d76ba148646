package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/repositories/mocks"
)

// FoodSafetyPlanServiceTestSuite is a test suite for the food safety plan service
type FoodSafetyPlanServiceTestSuite struct {
	suite.Suite
	service  FoodSafetyPlanService
	mockRepo *mocks.MockFoodSafetyPlanRepository
	ctx      context.Context
}

// SetupTest sets up the test suite before each test
func (suite *FoodSafetyPlanServiceTestSuite) SetupTest() {
	suite.mockRepo = mocks.NewMockFoodSafetyPlanRepository(suite.T())
	suite.service = NewFoodSafetyPlanService(suite.mockRepo, testDeps(suite.T()))
	suite.ctx = orgCtx(models.RoleMember)
}

// TestDueForReview_DefaultWindow tests that a zero window looks 30 days ahead
func (suite *FoodSafetyPlanServiceTestSuite) TestDueForReview_DefaultWindow() {
	suite.mockRepo.EXPECT().List(mock.Anything, testOrgID, models.FoodSafetyPlanFilter{ReviewDueBy: dayPtr("2025-07-10")}).
		Return([]models.FoodSafetyPlan{{ID: 1, Name: "HACCP"}}, nil)

	plans, err := suite.service.DueForReview(suite.ctx, 0)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), plans, 1)
}

// TestReview_StampsDates tests that a review records today and schedules the next one a year out
func (suite *FoodSafetyPlanServiceTestSuite) TestReview_StampsDates() {
	plan := &models.FoodSafetyPlan{ID: 2, OrganizationID: testOrgID, Status: "active", NextReviewDate: dayPtr("2025-06-01")}
	suite.mockRepo.EXPECT().GetByID(mock.Anything, testOrgID, 2).Return(plan, nil)
	suite.mockRepo.EXPECT().Update(mock.Anything, plan).Return(nil)

	reviewed, err := suite.service.Review(suite.ctx, 2)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), day("2025-06-10"), *reviewed.LastReviewedAt)
	assert.Equal(suite.T(), day("2026-06-10"), *reviewed.NextReviewDate)
}

// TestReview_ArchivedConflict tests that archived plans cannot be reviewed
func (suite *FoodSafetyPlanServiceTestSuite) TestReview_ArchivedConflict() {
	suite.mockRepo.EXPECT().GetByID(mock.Anything, testOrgID, 3).
		Return(&models.FoodSafetyPlan{ID: 3, Status: "archived"}, nil)

	_, err := suite.service.Review(suite.ctx, 3)
	assert.ErrorIs(suite.T(), err, models.ErrConflict)
}

// TestCreate_ActivePlanNeedsEffectiveDate tests the cross-field form check
func (suite *FoodSafetyPlanServiceTestSuite) TestCreate_ActivePlanNeedsEffectiveDate() {
	form := &models.FoodSafetyPlanForm{Name: "Allergen control", PlanType: "allergen", Status: "active"}

	_, err := suite.service.Create(suite.ctx, form)

	var ve models.ValidationErrors
	assert.ErrorAs(suite.T(), err, &ve)
	assert.Equal(suite.T(), []string{"Effective date is required for active plans"}, ve.GetMessages())
}

// TestGet_ReturnsCopy tests that callers cannot modify the cached record
func (suite *FoodSafetyPlanServiceTestSuite) TestGet_ReturnsCopy() {
	suite.mockRepo.EXPECT().GetByID(mock.Anything, testOrgID, 5).
		Return(&models.FoodSafetyPlan{ID: 5, Name: "Sanitation"}, nil).Once()

	first, err := suite.service.Get(suite.ctx, 5)
	assert.NoError(suite.T(), err)
	first.Name = "changed"

	second, err := suite.service.Get(suite.ctx, 5)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Sanitation", second.Name)
}

// TestFoodSafetyPlanServiceTestSuite runs the food safety plan service test suite
func TestFoodSafetyPlanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FoodSafetyPlanServiceTestSuite))
}
