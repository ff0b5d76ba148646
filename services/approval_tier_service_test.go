package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/repositories/mocks"
)

// ApprovalTierServiceTestSuite is a test suite for the approval tier service
type ApprovalTierServiceTestSuite struct {
	suite.Suite
	service  ApprovalTierService
	mockRepo *mocks.MockApprovalTierRepository
	ctx      context.Context
}

// SetupTest sets up the test suite before each test
func (suite *ApprovalTierServiceTestSuite) SetupTest() {
	suite.mockRepo = mocks.NewMockApprovalTierRepository(suite.T())
	suite.service = NewApprovalTierService(suite.mockRepo, testDeps(suite.T()))
	suite.ctx = orgCtx(models.RoleAdmin)
}

func purchaseTiers() []models.ApprovalTier {
	upper := 10000.0
	return []models.ApprovalTier{
		{ID: 1, Name: "Supervisor", Level: 1, IsActive: true, Thresholds: []models.ApprovalThreshold{
			{Kind: "amount", Operator: models.OpLessThan, Value: 1000}}},
		{ID: 2, Name: "Manager", Level: 2, IsActive: true, Thresholds: []models.ApprovalThreshold{
			{Kind: "amount", Operator: models.OpBetween, Value: 1000, ValueEnd: &upper}}},
		{ID: 3, Name: "Director", Level: 3, IsActive: true},
	}
}

func (suite *ApprovalTierServiceTestSuite) expectActive(category string, tiers []models.ApprovalTier) {
	suite.mockRepo.EXPECT().List(mock.Anything, testOrgID, models.ApprovalTierFilter{
		Category:    category,
		ActiveOnly:  true,
		ListOptions: models.ListOptions{Limit: models.MaxListLimit},
	}).Return(tiers, nil).Once()
}

// TestMatchTier tests tier selection through the cached active tier list
func (suite *ApprovalTierServiceTestSuite) TestMatchTier() {
	suite.expectActive("purchase_order", purchaseTiers())

	cases := map[float64]string{
		250:      "Supervisor",
		1000:     "Manager",
		10000:    "Manager",
		10000.01: "Director",
	}
	for amount, want := range cases {
		match, err := suite.service.MatchTier(suite.ctx, "purchase_order", amount)
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), match.Tier)
		assert.Equal(suite.T(), want, match.Tier.Name, "amount %v", amount)
		assert.Equal(suite.T(), amount, match.Amount)
	}
}

// TestMatchTier_ResultsDoNotShareCache tests that editing a returned tier leaves the cached copy intact
func (suite *ApprovalTierServiceTestSuite) TestMatchTier_ResultsDoNotShareCache() {
	suite.expectActive("purchase_order", purchaseTiers())

	first, err := suite.service.MatchTier(suite.ctx, "purchase_order", 5000)
	require.NoError(suite.T(), err)
	require.Equal(suite.T(), "Manager", first.Tier.Name)
	first.Tier.Thresholds[0].Value = 6000
	*first.Tier.Thresholds[0].ValueEnd = 7000

	second, err := suite.service.MatchTier(suite.ctx, "purchase_order", 5000)
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), second.Tier)
	assert.Equal(suite.T(), "Manager", second.Tier.Name)
	assert.Equal(suite.T(), 1000.0, second.Tier.Thresholds[0].Value)
	assert.Equal(suite.T(), 10000.0, *second.Tier.Thresholds[0].ValueEnd)
}

// TestGet_ResultsDoNotShareCache tests the same for single tier reads
func (suite *ApprovalTierServiceTestSuite) TestGet_ResultsDoNotShareCache() {
	tier := purchaseTiers()[0]
	suite.mockRepo.EXPECT().GetByID(mock.Anything, testOrgID, 1).Return(&tier, nil).Once()

	first, err := suite.service.Get(suite.ctx, 1)
	require.NoError(suite.T(), err)
	first.Thresholds[0].Operator = models.OpGreaterThan

	second, err := suite.service.Get(suite.ctx, 1)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.OpLessThan, second.Thresholds[0].Operator)
}

// TestMatchTier_NoTiers tests that a category without tiers matches nothing
func (suite *ApprovalTierServiceTestSuite) TestMatchTier_NoTiers() {
	suite.expectActive("expense", []models.ApprovalTier{})

	match, err := suite.service.MatchTier(suite.ctx, "expense", 50)
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), match.Tier)
}

// TestMatchTier_UnknownCategory tests category validation
func (suite *ApprovalTierServiceTestSuite) TestMatchTier_UnknownCategory() {
	_, err := suite.service.MatchTier(suite.ctx, "lunch", 50)

	var ve models.ValidationErrors
	assert.ErrorAs(suite.T(), err, &ve)
}

// TestImportTiers tests YAML import grouped per category in level order
func (suite *ApprovalTierServiceTestSuite) TestImportTiers() {
	doc := `
tiers:
  - category: purchase_order
    name: Director
    level: 2
    approver_role: director
    is_active: true
    thresholds:
      - {kind: amount, operator: greater_than, value: 5000}
  - category: purchase_order
    name: Manager
    level: 1
    approver_role: manager
    is_active: true
    thresholds:
      - {kind: amount, operator: less_than, value: 5000}
  - category: expense
    name: Finance
    level: 1
    approver_role: finance
    is_active: true
`
	suite.mockRepo.EXPECT().ReplaceCategory(mock.Anything, testOrgID, "expense", mock.Anything).Return(nil)
	suite.mockRepo.EXPECT().ReplaceCategory(mock.Anything, testOrgID, "purchase_order",
		mock.MatchedBy(func(tiers []models.ApprovalTier) bool {
			return len(tiers) == 2 && tiers[0].Name == "Manager" && tiers[1].Name == "Director"
		})).Return(nil)

	counts, err := suite.service.ImportTiers(suite.ctx, strings.NewReader(doc))

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), map[string]int{"purchase_order": 2, "expense": 1}, counts)
}

// TestImportTiers_Invalid tests that invalid documents are rejected before anything is replaced
func (suite *ApprovalTierServiceTestSuite) TestImportTiers_Invalid() {
	doc := `
tiers:
  - category: purchase_order
    name: Manager
    level: 1
    approver_role: manager
    thresholds:
      - {kind: amount, operator: between, value: 5000}
`
	_, err := suite.service.ImportTiers(suite.ctx, strings.NewReader(doc))

	var ve models.ValidationErrors
	require.ErrorAs(suite.T(), err, &ve)
	assert.Equal(suite.T(), []string{"Tier 1: Between thresholds require an upper value"}, ve.GetMessages())

	_, err = suite.service.ImportTiers(suite.ctx, strings.NewReader("tiers:\n  - colour: blue\n"))
	assert.ErrorAs(suite.T(), err, &ve)

	_, err = suite.service.ImportTiers(suite.ctx, strings.NewReader(""))
	assert.ErrorAs(suite.T(), err, &ve)
}

// TestUpdate_InvalidatesMatches tests that editing a tier drops cached matches
func (suite *ApprovalTierServiceTestSuite) TestUpdate_InvalidatesMatches() {
	suite.expectActive("purchase_order", purchaseTiers())
	suite.expectActive("purchase_order", purchaseTiers()[2:])

	existing := &models.ApprovalTier{ID: 1, OrganizationID: testOrgID}
	suite.mockRepo.EXPECT().GetByID(mock.Anything, testOrgID, 1).Return(existing, nil)
	suite.mockRepo.EXPECT().Update(mock.Anything, existing).Return(nil)

	match, err := suite.service.MatchTier(suite.ctx, "purchase_order", 10)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Supervisor", match.Tier.Name)

	_, err = suite.service.Update(suite.ctx, 1, &models.ApprovalTierForm{
		Category: "purchase_order", Name: "Supervisor", Level: 1, ApproverRole: "supervisor",
	})
	require.NoError(suite.T(), err)

	match, err = suite.service.MatchTier(suite.ctx, "purchase_order", 10)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Director", match.Tier.Name)
}

// TestApprovalTierServiceTestSuite runs the approval tier service test suite
func TestApprovalTierServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalTierServiceTestSuite))
}
