package services

import (
	"context"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/querycache"
	"github.com/blogem/opsledger/repositories"
)

// PPEService interface defines PPE requirement business logic
type PPEService interface {
	List(ctx context.Context, filter models.PPEFilter) ([]models.PPERequirement, error)
	Get(ctx context.Context, id int) (*models.PPERequirement, error)
	Create(ctx context.Context, form *models.PPERequirementForm) (*models.PPERequirement, error)
	Update(ctx context.Context, id int, form *models.PPERequirementForm) (*models.PPERequirement, error)
	Delete(ctx context.Context, id int) error
	// Matrix groups active requirements by area
	Matrix(ctx context.Context) ([]models.PPEMatrixRow, error)
}

type ppeService struct {
	base
	repo repositories.PPERepository
}

// NewPPEService creates a new PPE requirement service
func NewPPEService(repo repositories.PPERepository, deps Deps) PPEService {
	return &ppeService{base: newBase(deps, scopePPE), repo: repo}
}

func (s *ppeService) List(ctx context.Context, filter models.PPEFilter) ([]models.PPERequirement, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	reqs, err := querycache.Get(ctx, s.cache, s.key(orgID, "list", filter), func(ctx context.Context) ([]models.PPERequirement, error) {
		return s.repo.List(ctx, orgID, filter)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to list PPE requirements", err)
	}
	return reqs, nil
}

func (s *ppeService) Get(ctx context.Context, id int) (*models.PPERequirement, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}
	req, err := querycache.Get(ctx, s.cache, s.key(orgID, "get", id), func(ctx context.Context) (*models.PPERequirement, error) {
		return s.repo.GetByID(ctx, orgID, id)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to get PPE requirement", err)
	}
	copied := *req
	return &copied, nil
}

func (s *ppeService) Create(ctx context.Context, form *models.PPERequirementForm) (*models.PPERequirement, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := invalid(form.Validate()); err != nil {
		return nil, err
	}

	req := &models.PPERequirement{OrganizationID: orgID}
	if err := form.Apply(req); err != nil {
		return nil, badInput("%v", err)
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, s.fail(ctx, "failed to create PPE requirement", err)
	}
	s.invalidate(orgID)
	return req, nil
}

func (s *ppeService) Update(ctx context.Context, id int, form *models.PPERequirementForm) (*models.PPERequirement, error) {
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

	req, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, s.fail(ctx, "failed to update PPE requirement", err)
	}
	if err := form.Apply(req); err != nil {
		return nil, badInput("%v", err)
	}
	if err := s.repo.Update(ctx, req); err != nil {
		return nil, s.fail(ctx, "failed to update PPE requirement", err)
	}
	s.invalidate(orgID)
	return req, nil
}

func (s *ppeService) Delete(ctx context.Context, id int) error {
	orgID, err := s.org(ctx)
	if err != nil {
		return err
	}
	if err := validID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, orgID, id); err != nil {
		return s.fail(ctx, "failed to delete PPE requirement", err)
	}
	s.invalidate(orgID)
	return nil
}

func (s *ppeService) Matrix(ctx context.Context) ([]models.PPEMatrixRow, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := querycache.Get(ctx, s.cache, s.key(orgID, "matrix", nil), func(ctx context.Context) ([]models.PPEMatrixRow, error) {
		reqs, err := listAll(func(opts models.ListOptions) ([]models.PPERequirement, error) {
			return s.repo.List(ctx, orgID, models.PPEFilter{Status: "active", ListOptions: opts})
		})
		if err != nil {
			return nil, err
		}
		return models.BuildPPEMatrix(reqs), nil
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to build PPE matrix", err)
	}
	return rows, nil
}
