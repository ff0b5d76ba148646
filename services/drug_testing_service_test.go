package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/repositories/mocks"
)

func TestDrugTestStats(t *testing.T) {
	repo := mocks.NewMockDrugTestRepository(t)
	service := NewDrugTestService(repo, testDeps(t))
	ctx := orgCtx(models.RoleMember)

	from, to := dayPtr("2025-01-01"), dayPtr("2025-03-31")
	repo.EXPECT().List(mock.Anything, testOrgID, models.DrugTestFilter{
		From: from, To: to, ListOptions: models.ListOptions{Limit: models.MaxListLimit},
	}).Return([]models.DrugTest{
		{TestType: "random", Result: "negative"},
		{TestType: "random", Result: "pending"},
		{TestType: "post_accident", Result: "negative"},
	}, nil).Once()

	stats, err := service.Stats(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByResult["negative"])
	assert.Equal(t, 2, stats.ByTestType["random"])

	// served from cache
	again, err := service.Stats(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, stats.Total, again.Total)
}

func TestDrugTestStatsRejectsInvertedRange(t *testing.T) {
	service := NewDrugTestService(mocks.NewMockDrugTestRepository(t), testDeps(t))

	_, err := service.Stats(orgCtx(models.RoleMember), dayPtr("2025-03-01"), dayPtr("2025-01-01"))

	var ve models.ValidationErrors
	assert.ErrorAs(t, err, &ve)
}

func TestDrugTestErrorsAreNotCached(t *testing.T) {
	repo := mocks.NewMockDrugTestRepository(t)
	service := NewDrugTestService(repo, testDeps(t))
	ctx := orgCtx(models.RoleMember)

	repo.EXPECT().GetByID(mock.Anything, testOrgID, 1).Return(nil, errors.New("disk I/O error")).Once()
	repo.EXPECT().GetByID(mock.Anything, testOrgID, 1).Return(&models.DrugTest{ID: 1}, nil).Once()

	_, err := service.Get(ctx, 1)
	assert.EqualError(t, err, "failed to get drug test: disk I/O error")

	test, err := service.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, test.ID)
}
