package services

import (
	"context"
	"time"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/querycache"
	"github.com/blogem/opsledger/repositories"
)

// DrugTestService interface defines drug and alcohol testing business logic
type DrugTestService interface {
	List(ctx context.Context, filter models.DrugTestFilter) ([]models.DrugTest, error)
	Get(ctx context.Context, id int) (*models.DrugTest, error)
	Create(ctx context.Context, form *models.DrugTestForm) (*models.DrugTest, error)
	Update(ctx context.Context, id int, form *models.DrugTestForm) (*models.DrugTest, error)
	Delete(ctx context.Context, id int) error
	// Stats counts tests collected in [from, to] by result and test type; nil bounds are open
	Stats(ctx context.Context, from, to *time.Time) (*models.DrugTestStats, error)
}

type drugTestService struct {
	base
	repo repositories.DrugTestRepository
}

// NewDrugTestService creates a new drug test service
func NewDrugTestService(repo repositories.DrugTestRepository, deps Deps) DrugTestService {
	return &drugTestService{base: newBase(deps, scopeDrugTests), repo: repo}
}

func (s *drugTestService) List(ctx context.Context, filter models.DrugTestFilter) ([]models.DrugTest, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	tests, err := querycache.Get(ctx, s.cache, s.key(orgID, "list", filter), func(ctx context.Context) ([]models.DrugTest, error) {
		return s.repo.List(ctx, orgID, filter)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to list drug tests", err)
	}
	return tests, nil
}

func (s *drugTestService) Get(ctx context.Context, id int) (*models.DrugTest, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}
	test, err := querycache.Get(ctx, s.cache, s.key(orgID, "get", id), func(ctx context.Context) (*models.DrugTest, error) {
		return s.repo.GetByID(ctx, orgID, id)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to get drug test", err)
	}
	copied := *test
	return &copied, nil
}

func (s *drugTestService) Create(ctx context.Context, form *models.DrugTestForm) (*models.DrugTest, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := invalid(form.Validate()); err != nil {
		return nil, err
	}

	test := &models.DrugTest{OrganizationID: orgID}
	if err := form.Apply(test); err != nil {
		return nil, badInput("%v", err)
	}
	if err := s.repo.Create(ctx, test); err != nil {
		return nil, s.fail(ctx, "failed to create drug test", err)
	}
	s.invalidate(orgID)
	return test, nil
}

func (s *drugTestService) Update(ctx context.Context, id int, form *models.DrugTestForm) (*models.DrugTest, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}
	if err := invalid(form.Validate()); err != nil {
		return nil, err
	}

	test, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, s.fail(ctx, "failed to update drug test", err)
	}
	if err := form.Apply(test); err != nil {
		return nil, badInput("%v", err)
	}
	if err := s.repo.Update(ctx, test); err != nil {
		return nil, s.fail(ctx, "failed to update drug test", err)
	}
	s.invalidate(orgID)
	return test, nil
}

func (s *drugTestService) Delete(ctx context.Context, id int) error {
	orgID, err := s.org(ctx)
	if err != nil {
		return err
	}
	if err := validID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, orgID, id); err != nil {
		return s.fail(ctx, "failed to delete drug test", err)
	}
	s.invalidate(orgID)
	return nil
}

func (s *drugTestService) Stats(ctx context.Context, from, to *time.Time) (*models.DrugTestStats, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, badInput("From date must be on or before the to date")
	}
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}

	filter := models.DrugTestFilter{From: from, To: to}
	stats, err := querycache.Get(ctx, s.cache, s.key(orgID, "stats", filter), func(ctx context.Context) (models.DrugTestStats, error) {
		tests, err := listAll(func(opts models.ListOptions) ([]models.DrugTest, error) {
			f := filter
			f.ListOptions = opts
			return s.repo.List(ctx, orgID, f)
		})
		if err != nil {
			return models.DrugTestStats{}, err
		}
		return models.BuildDrugTestStats(tests), nil
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to compute drug test stats", err)
	}
	return &stats, nil
}
