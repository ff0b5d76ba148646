package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/repositories/mocks"
)

// PPEServiceTestSuite is a test suite for the PPE requirement service
type PPEServiceTestSuite struct {
	suite.Suite
	service  PPEService
	mockRepo *mocks.MockPPERepository
	ctx      context.Context
}

// SetupTest sets up the test suite before each test
func (suite *PPEServiceTestSuite) SetupTest() {
	suite.mockRepo = mocks.NewMockPPERepository(suite.T())
	suite.service = NewPPEService(suite.mockRepo, testDeps(suite.T()))
	suite.ctx = orgCtx(models.RoleMember)
}

func validPPEForm() *models.PPERequirementForm {
	return &models.PPERequirementForm{
		Area:          "Packaging",
		Task:          "Box sealing",
		PPEType:       "hand",
		IsMandatory:   true,
		EffectiveDate: "2025-01-01",
		Status:        "active",
	}
}

// TestList_CachesUntilMutation tests that identical lists hit the repository once until a create invalidates them
func (suite *PPEServiceTestSuite) TestList_CachesUntilMutation() {
	filter := models.PPEFilter{Area: "Packaging"}
	suite.mockRepo.EXPECT().List(mock.Anything, testOrgID, filter).
		Return([]models.PPERequirement{{ID: 1, Area: "Packaging"}}, nil).Times(2)
	suite.mockRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.PPERequirement")).
		Run(func(_ context.Context, req *models.PPERequirement) { req.ID = 2 }).
		Return(nil).Once()

	first, err := suite.service.List(suite.ctx, filter)
	assert.NoError(suite.T(), err)
	second, err := suite.service.List(suite.ctx, filter)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), first, second)

	created, err := suite.service.Create(suite.ctx, validPPEForm())
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), testOrgID, created.OrganizationID)

	_, err = suite.service.List(suite.ctx, filter)
	assert.NoError(suite.T(), err)
}

// TestList_RequiresOrganization tests that calls without an organization are rejected before the repository
func (suite *PPEServiceTestSuite) TestList_RequiresOrganization() {
	_, err := suite.service.List(context.Background(), models.PPEFilter{})
	assert.ErrorIs(suite.T(), err, models.ErrForbidden)
}

// TestCreate_ValidationFailure tests that invalid forms never reach the repository
func (suite *PPEServiceTestSuite) TestCreate_ValidationFailure() {
	form := validPPEForm()
	form.PPEType = "cape"
	form.Area = ""

	_, err := suite.service.Create(suite.ctx, form)

	var ve models.ValidationErrors
	assert.ErrorAs(suite.T(), err, &ve)
	assert.Len(suite.T(), ve, 2)
}

// TestUpdate_NotFound tests that a missing record surfaces as ErrNotFound
func (suite *PPEServiceTestSuite) TestUpdate_NotFound() {
	suite.mockRepo.EXPECT().GetByID(mock.Anything, testOrgID, 99).
		Return(nil, models.ErrNotFound)

	_, err := suite.service.Update(suite.ctx, 99, validPPEForm())
	assert.ErrorIs(suite.T(), err, models.ErrNotFound)
}

// TestUpdate_AppliesForm tests that the stored record is updated with the form values
func (suite *PPEServiceTestSuite) TestUpdate_AppliesForm() {
	existing := &models.PPERequirement{ID: 3, OrganizationID: testOrgID, Area: "Old", Status: "active"}
	suite.mockRepo.EXPECT().GetByID(mock.Anything, testOrgID, 3).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(mock.Anything, existing).Return(nil)

	form := validPPEForm()
	form.Area = "  Cold storage "
	updated, err := suite.service.Update(suite.ctx, 3, form)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Cold storage", updated.Area)
	assert.Equal(suite.T(), day("2025-01-01"), updated.EffectiveDate)
}

// TestDelete_RepositoryError tests that backend failures are wrapped with the operation
func (suite *PPEServiceTestSuite) TestDelete_RepositoryError() {
	suite.mockRepo.EXPECT().Delete(mock.Anything, testOrgID, 4).Return(errors.New("database is locked"))

	err := suite.service.Delete(suite.ctx, 4)
	assert.EqualError(suite.T(), err, "failed to delete PPE requirement: database is locked")
}

// TestMatrix tests that the matrix only considers active requirements
func (suite *PPEServiceTestSuite) TestMatrix() {
	suite.mockRepo.EXPECT().List(mock.Anything, testOrgID, models.PPEFilter{
		Status:      "active",
		ListOptions: models.ListOptions{Limit: models.MaxListLimit},
	}).Return([]models.PPERequirement{
		{Area: "Kitchen", PPEType: "hand", IsMandatory: true, Status: "active"},
		{Area: "Kitchen", PPEType: "eye", Status: "active"},
	}, nil).Once()

	rows, err := suite.service.Matrix(suite.ctx)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []models.PPEMatrixRow{
		{Area: "Kitchen", PPETypes: []string{"eye", "hand"}, Mandatory: []string{"hand"}},
	}, rows)
}

// TestPPEServiceTestSuite runs the PPE service test suite
func TestPPEServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PPEServiceTestSuite))
}
