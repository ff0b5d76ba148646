package services

import (
	"context"
	"fmt"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/querycache"
	"github.com/blogem/opsledger/repositories"
)

// DefaultReviewWindowDays is the look-ahead used when no review window is given
const DefaultReviewWindowDays = 30

// FoodSafetyPlanService interface defines food safety plan business logic
type FoodSafetyPlanService interface {
	List(ctx context.Context, filter models.FoodSafetyPlanFilter) ([]models.FoodSafetyPlan, error)
	Get(ctx context.Context, id int) (*models.FoodSafetyPlan, error)
	Create(ctx context.Context, form *models.FoodSafetyPlanForm) (*models.FoodSafetyPlan, error)
	Update(ctx context.Context, id int, form *models.FoodSafetyPlanForm) (*models.FoodSafetyPlan, error)
	Delete(ctx context.Context, id int) error
	// DueForReview lists non-archived plans whose next review falls within days of today
	DueForReview(ctx context.Context, days int) ([]models.FoodSafetyPlan, error)
	// Review records a completed review today and schedules the next one a year out
	Review(ctx context.Context, id int) (*models.FoodSafetyPlan, error)
}

type foodSafetyPlanService struct {
	base
	repo repositories.FoodSafetyPlanRepository
}

// NewFoodSafetyPlanService creates a new food safety plan service
func NewFoodSafetyPlanService(repo repositories.FoodSafetyPlanRepository, deps Deps) FoodSafetyPlanService {
	return &foodSafetyPlanService{base: newBase(deps, scopeFoodSafetyPlans), repo: repo}
}

func (s *foodSafetyPlanService) List(ctx context.Context, filter models.FoodSafetyPlanFilter) ([]models.FoodSafetyPlan, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	plans, err := querycache.Get(ctx, s.cache, s.key(orgID, "list", filter), func(ctx context.Context) ([]models.FoodSafetyPlan, error) {
		return s.repo.List(ctx, orgID, filter)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to list food safety plans", err)
	}
	return plans, nil
}

func (s *foodSafetyPlanService) Get(ctx context.Context, id int) (*models.FoodSafetyPlan, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}
	plan, err := querycache.Get(ctx, s.cache, s.key(orgID, "get", id), func(ctx context.Context) (*models.FoodSafetyPlan, error) {
		return s.repo.GetByID(ctx, orgID, id)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to get food safety plan", err)
	}
	copied := *plan
	return &copied, nil
}

func (s *foodSafetyPlanService) Create(ctx context.Context, form *models.FoodSafetyPlanForm) (*models.FoodSafetyPlan, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := invalid(form.Validate()); err != nil {
		return nil, err
	}

	plan := &models.FoodSafetyPlan{OrganizationID: orgID}
	if err := form.Apply(plan); err != nil {
		return nil, badInput("%v", err)
	}
	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, s.fail(ctx, "failed to create food safety plan", err)
	}
	s.invalidate(orgID)
	return plan, nil
}

func (s *foodSafetyPlanService) Update(ctx context.Context, id int, form *models.FoodSafetyPlanForm) (*models.FoodSafetyPlan, error) {
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

	plan, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, s.fail(ctx, "failed to update food safety plan", err)
	}
	if err := form.Apply(plan); err != nil {
		return nil, badInput("%v", err)
	}
	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, s.fail(ctx, "failed to update food safety plan", err)
	}
	s.invalidate(orgID)
	return plan, nil
}

func (s *foodSafetyPlanService) Delete(ctx context.Context, id int) error {
	orgID, err := s.org(ctx)
	if err != nil {
		return err
	}
	if err := validID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, orgID, id); err != nil {
		return s.fail(ctx, "failed to delete food safety plan", err)
	}
	s.invalidate(orgID)
	return nil
}

func (s *foodSafetyPlanService) DueForReview(ctx context.Context, days int) ([]models.FoodSafetyPlan, error) {
	if days <= 0 {
		days = DefaultReviewWindowDays
	}
	by := s.today().AddDate(0, 0, days)
	return s.List(ctx, models.FoodSafetyPlanFilter{ReviewDueBy: &by})
}

func (s *foodSafetyPlanService) Review(ctx context.Context, id int) (*models.FoodSafetyPlan, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}

	plan, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, s.fail(ctx, "failed to review food safety plan", err)
	}
	if plan.Status == "archived" {
		return nil, fmt.Errorf("%w: archived plans cannot be reviewed", models.ErrConflict)
	}

	today := s.today()
	next := today.AddDate(1, 0, 0)
	plan.LastReviewedAt = &today
	plan.NextReviewDate = &next
	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, s.fail(ctx, "failed to review food safety plan", err)
	}
	s.invalidate(orgID)
	return plan, nil
}
