package services

import (
	"context"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/querycache"
	"github.com/blogem/opsledger/repositories"
)

// ContractorOrientationService interface defines contractor orientation business logic
type ContractorOrientationService interface {
	// List returns orientations; expiredOnly keeps completed ones past their expiry today
	List(ctx context.Context, filter models.ContractorOrientationFilter, expiredOnly bool) ([]models.ContractorOrientation, error)
	Get(ctx context.Context, id int) (*models.ContractorOrientation, error)
	Create(ctx context.Context, form *models.ContractorOrientationForm) (*models.ContractorOrientation, error)
	Update(ctx context.Context, id int, form *models.ContractorOrientationForm) (*models.ContractorOrientation, error)
	Delete(ctx context.Context, id int) error
}

type contractorOrientationService struct {
	base
	repo repositories.ContractorOrientationRepository
}

// NewContractorOrientationService creates a new contractor orientation service
func NewContractorOrientationService(repo repositories.ContractorOrientationRepository, deps Deps) ContractorOrientationService {
	return &contractorOrientationService{base: newBase(deps, scopeContractorOrientation), repo: repo}
}

func (s *contractorOrientationService) List(ctx context.Context, filter models.ContractorOrientationFilter, expiredOnly bool) ([]models.ContractorOrientation, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if expiredOnly {
		today := s.today()
		filter.ExpiredAsOf = &today
	}
	cached, err := querycache.Get(ctx, s.cache, s.key(orgID, "list", filter), func(ctx context.Context) ([]models.ContractorOrientation, error) {
		return s.repo.List(ctx, orgID, filter)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to list contractor orientations", err)
	}

	now := s.now()
	orientations := append([]models.ContractorOrientation(nil), cached...)
	for i := range orientations {
		orientations[i].Decorate(now)
	}
	return orientations, nil
}

func (s *contractorOrientationService) Get(ctx context.Context, id int) (*models.ContractorOrientation, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}
	cached, err := querycache.Get(ctx, s.cache, s.key(orgID, "get", id), func(ctx context.Context) (*models.ContractorOrientation, error) {
		return s.repo.GetByID(ctx, orgID, id)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to get contractor orientation", err)
	}
	o := *cached
	o.Decorate(s.now())
	return &o, nil
}

func (s *contractorOrientationService) Create(ctx context.Context, form *models.ContractorOrientationForm) (*models.ContractorOrientation, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := invalid(form.Validate()); err != nil {
		return nil, err
	}

	o := &models.ContractorOrientation{OrganizationID: orgID}
	if err := form.Apply(o); err != nil {
		return nil, badInput("%v", err)
	}
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, s.fail(ctx, "failed to create contractor orientation", err)
	}
	s.invalidate(orgID)
	o.Decorate(s.now())
	return o, nil
}

func (s *contractorOrientationService) Update(ctx context.Context, id int, form *models.ContractorOrientationForm) (*models.ContractorOrientation, error) {
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

	o, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, s.fail(ctx, "failed to update contractor orientation", err)
	}
	if err := form.Apply(o); err != nil {
		return nil, badInput("%v", err)
	}
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, s.fail(ctx, "failed to update contractor orientation", err)
	}
	s.invalidate(orgID)
	o.Decorate(s.now())
	return o, nil
}

func (s *contractorOrientationService) Delete(ctx context.Context, id int) error {
	orgID, err := s.org(ctx)
	if err != nil {
		return err
	}
	if err := validID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, orgID, id); err != nil {
		return s.fail(ctx, "failed to delete contractor orientation", err)
	}
	s.invalidate(orgID)
	return nil
}
