package services

import (
	"context"
	"fmt"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/querycache"
	"github.com/blogem/opsledger/repositories"
)

// ProductionRunService interface defines production run business logic
type ProductionRunService interface {
	List(ctx context.Context, filter models.ProductionRunFilter) ([]models.ProductionRun, error)
	Get(ctx context.Context, id int) (*models.ProductionRun, error)
	Create(ctx context.Context, form *models.ProductionRunForm) (*models.ProductionRun, error)
	Update(ctx context.Context, id int, form *models.ProductionRunForm) (*models.ProductionRun, error)
	Delete(ctx context.Context, id int) error
	// RecordCounts stores absolute totals from the run's counting device
	RecordCounts(ctx context.Context, id int, update *models.CountUpdate) (*models.ProductionRun, error)
	// ChangeStatus moves the run through scheduled, running, paused and completed
	ChangeStatus(ctx context.Context, id int, change *models.StatusChange) (*models.ProductionRun, error)
}

type productionRunService struct {
	base
	repo repositories.ProductionRunRepository
}

// NewProductionRunService creates a new production run service
func NewProductionRunService(repo repositories.ProductionRunRepository, deps Deps) ProductionRunService {
	return &productionRunService{base: newBase(deps, scopeProductionRuns), repo: repo}
}

func (s *productionRunService) List(ctx context.Context, filter models.ProductionRunFilter) ([]models.ProductionRun, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	cached, err := querycache.Get(ctx, s.cache, s.key(orgID, "list", filter), func(ctx context.Context) ([]models.ProductionRun, error) {
		return s.repo.List(ctx, orgID, filter)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to list production runs", err)
	}

	now := s.now()
	runs := append([]models.ProductionRun(nil), cached...)
	for i := range runs {
		runs[i].Decorate(now)
	}
	return runs, nil
}

func (s *productionRunService) Get(ctx context.Context, id int) (*models.ProductionRun, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}
	cached, err := querycache.Get(ctx, s.cache, s.key(orgID, "get", id), func(ctx context.Context) (*models.ProductionRun, error) {
		return s.repo.GetByID(ctx, orgID, id)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to get production run", err)
	}
	run := *cached
	run.Decorate(s.now())
	return &run, nil
}

func (s *productionRunService) Create(ctx context.Context, form *models.ProductionRunForm) (*models.ProductionRun, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := invalid(form.Validate()); err != nil {
		return nil, err
	}

	run := &models.ProductionRun{OrganizationID: orgID, Status: models.RunScheduled}
	form.Apply(run)
	if err := s.repo.Create(ctx, run); err != nil {
		return nil, s.fail(ctx, "failed to create production run", err)
	}
	s.invalidate(orgID)
	run.Decorate(s.now())
	return run, nil
}

// Update edits the run's plan fields; counts and status have their own operations
func (s *productionRunService) Update(ctx context.Context, id int, form *models.ProductionRunForm) (*models.ProductionRun, error) {
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

	run, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, s.fail(ctx, "failed to update production run", err)
	}
	form.Apply(run)
	if err := s.repo.Update(ctx, run); err != nil {
		return nil, s.fail(ctx, "failed to update production run", err)
	}
	s.invalidate(orgID)
	run.Decorate(s.now())
	return run, nil
}

func (s *productionRunService) Delete(ctx context.Context, id int) error {
	orgID, err := s.org(ctx)
	if err != nil {
		return err
	}
	if err := validID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, orgID, id); err != nil {
		return s.fail(ctx, "failed to delete production run", err)
	}
	s.invalidate(orgID)
	return nil
}

func (s *productionRunService) RecordCounts(ctx context.Context, id int, update *models.CountUpdate) (*models.ProductionRun, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}
	if err := invalid(update.Validate()); err != nil {
		return nil, err
	}

	run, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, s.fail(ctx, "failed to record production counts", err)
	}
	if run.Status == models.RunCompleted {
		return nil, fmt.Errorf("%w: production run %d is completed", models.ErrConflict, id)
	}
	if update.GoodCount < run.GoodCount || update.RejectCount < run.RejectCount {
		return nil, fmt.Errorf("%w: counts for production run %d cannot decrease", models.ErrConflict, id)
	}

	from := run.Status
	run.GoodCount = update.GoodCount
	run.RejectCount = update.RejectCount
	if run.Status == models.RunScheduled {
		run.Status = models.RunRunning
	}
	if run.Status == models.RunRunning && run.StartedAt == nil {
		now := s.now().UTC()
		run.StartedAt = &now
	}
	if err := s.repo.UpdateCounts(ctx, run, from); err != nil {
		return nil, s.fail(ctx, "failed to record production counts", err)
	}
	s.invalidate(orgID)
	run.Decorate(s.now())
	return run, nil
}

func (s *productionRunService) ChangeStatus(ctx context.Context, id int, change *models.StatusChange) (*models.ProductionRun, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}
	if err := invalid(change.Validate()); err != nil {
		return nil, err
	}

	run, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, s.fail(ctx, "failed to change production run status", err)
	}
	from := run.Status
	if !models.CanTransition(from, change.Status) {
		return nil, fmt.Errorf("%w: production run cannot move from %s to %s", models.ErrConflict, from, change.Status)
	}

	now := s.now().UTC()
	run.Status = change.Status
	switch change.Status {
	case models.RunRunning:
		if run.StartedAt == nil {
			run.StartedAt = &now
		}
	case models.RunCompleted:
		run.EndedAt = &now
	}
	if err := s.repo.UpdateStatus(ctx, run, from); err != nil {
		return nil, s.fail(ctx, "failed to change production run status", err)
	}
	s.invalidate(orgID)
	run.Decorate(s.now())
	return run, nil
}
