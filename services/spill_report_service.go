package services

import (
	"context"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/querycache"
	"github.com/blogem/opsledger/repositories"
)

// SpillReportService interface defines spill report business logic
type SpillReportService interface {
	List(ctx context.Context, filter models.SpillReportFilter) ([]models.SpillReport, error)
	Get(ctx context.Context, id int) (*models.SpillReport, error)
	Create(ctx context.Context, form *models.SpillReportForm) (*models.SpillReport, error)
	Update(ctx context.Context, id int, form *models.SpillReportForm) (*models.SpillReport, error)
	Delete(ctx context.Context, id int) error
}

type spillReportService struct {
	base
	repo repositories.SpillReportRepository
}

// NewSpillReportService creates a new spill report service
func NewSpillReportService(repo repositories.SpillReportRepository, deps Deps) SpillReportService {
	return &spillReportService{base: newBase(deps, scopeSpillReports), repo: repo}
}

func (s *spillReportService) List(ctx context.Context, filter models.SpillReportFilter) ([]models.SpillReport, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	reports, err := querycache.Get(ctx, s.cache, s.key(orgID, "list", filter), func(ctx context.Context) ([]models.SpillReport, error) {
		return s.repo.List(ctx, orgID, filter)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to list spill reports", err)
	}
	return reports, nil
}

func (s *spillReportService) Get(ctx context.Context, id int) (*models.SpillReport, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}
	report, err := querycache.Get(ctx, s.cache, s.key(orgID, "get", id), func(ctx context.Context) (*models.SpillReport, error) {
		return s.repo.GetByID(ctx, orgID, id)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to get spill report", err)
	}
	copied := *report
	return &copied, nil
}

func (s *spillReportService) Create(ctx context.Context, form *models.SpillReportForm) (*models.SpillReport, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := invalid(form.Validate()); err != nil {
		return nil, err
	}

	report := &models.SpillReport{OrganizationID: orgID}
	if err := form.Apply(report, s.now().UTC()); err != nil {
		return nil, badInput("%v", err)
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, s.fail(ctx, "failed to create spill report", err)
	}
	s.invalidate(orgID)
	return report, nil
}

func (s *spillReportService) Update(ctx context.Context, id int, form *models.SpillReportForm) (*models.SpillReport, error) {
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

	report, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, s.fail(ctx, "failed to update spill report", err)
	}
	if err := form.Apply(report, s.now().UTC()); err != nil {
		return nil, badInput("%v", err)
	}
	if err := s.repo.Update(ctx, report); err != nil {
		return nil, s.fail(ctx, "failed to update spill report", err)
	}
	s.invalidate(orgID)
	return report, nil
}

func (s *spillReportService) Delete(ctx context.Context, id int) error {
	orgID, err := s.org(ctx)
	if err != nil {
		return err
	}
	if err := validID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, orgID, id); err != nil {
		return s.fail(ctx, "failed to delete spill report", err)
	}
	s.invalidate(orgID)
	return nil
}
