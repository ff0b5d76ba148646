package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/querycache"
	"github.com/blogem/opsledger/repositories"
)

// RecallPlanService interface defines recall plan business logic
type RecallPlanService interface {
	List(ctx context.Context, filter models.RecallPlanFilter) ([]models.RecallPlan, error)
	Get(ctx context.Context, id int) (*models.RecallPlan, error)
	Create(ctx context.Context, form *models.RecallPlanForm) (*models.RecallPlan, error)
	Update(ctx context.Context, id int, form *models.RecallPlanForm) (*models.RecallPlan, error)
	Delete(ctx context.Context, id int) error
}

// RecallEventService interface defines recall event business logic
type RecallEventService interface {
	List(ctx context.Context, filter models.RecallEventFilter) ([]models.RecallEvent, error)
	Get(ctx context.Context, id int) (*models.RecallEvent, error)
	Create(ctx context.Context, form *models.RecallEventForm) (*models.RecallEvent, error)
	Update(ctx context.Context, id int, form *models.RecallEventForm) (*models.RecallEvent, error)
	Delete(ctx context.Context, id int) error
}

type recallPlanService struct {
	base
	repo repositories.RecallPlanRepository
}

// NewRecallPlanService creates a new recall plan service
func NewRecallPlanService(repo repositories.RecallPlanRepository, deps Deps) RecallPlanService {
	return &recallPlanService{base: newBase(deps, scopeRecallPlans), repo: repo}
}

func (s *recallPlanService) List(ctx context.Context, filter models.RecallPlanFilter) ([]models.RecallPlan, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	plans, err := querycache.Get(ctx, s.cache, s.key(orgID, "list", filter), func(ctx context.Context) ([]models.RecallPlan, error) {
		return s.repo.List(ctx, orgID, filter)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to list recall plans", err)
	}
	return plans, nil
}

func (s *recallPlanService) Get(ctx context.Context, id int) (*models.RecallPlan, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}
	plan, err := querycache.Get(ctx, s.cache, s.key(orgID, "get", id), func(ctx context.Context) (*models.RecallPlan, error) {
		return s.repo.GetByID(ctx, orgID, id)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to get recall plan", err)
	}
	copied := *plan
	return &copied, nil
}

func (s *recallPlanService) Create(ctx context.Context, form *models.RecallPlanForm) (*models.RecallPlan, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := invalid(form.Validate()); err != nil {
		return nil, err
	}

	plan := &models.RecallPlan{OrganizationID: orgID}
	if err := form.Apply(plan); err != nil {
		return nil, badInput("%v", err)
	}
	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, s.fail(ctx, "failed to create recall plan", err)
	}
	s.invalidate(orgID)
	return plan, nil
}

func (s *recallPlanService) Update(ctx context.Context, id int, form *models.RecallPlanForm) (*models.RecallPlan, error) {
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
		return nil, s.fail(ctx, "failed to update recall plan", err)
	}
	if err := form.Apply(plan); err != nil {
		return nil, badInput("%v", err)
	}
	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, s.fail(ctx, "failed to update recall plan", err)
	}
	s.invalidate(orgID)
	return plan, nil
}

// Delete removes the plan; its events are kept and lose the link
func (s *recallPlanService) Delete(ctx context.Context, id int) error {
	orgID, err := s.org(ctx)
	if err != nil {
		return err
	}
	if err := validID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, orgID, id); err != nil {
		return s.fail(ctx, "failed to delete recall plan", err)
	}
	s.invalidate(orgID)
	s.cache.Invalidate(orgID, scopeRecallEvents)
	return nil
}

type recallEventService struct {
	base
	repo  repositories.RecallEventRepository
	plans repositories.RecallPlanRepository
}

// NewRecallEventService creates a new recall event service
func NewRecallEventService(repo repositories.RecallEventRepository, plans repositories.RecallPlanRepository, deps Deps) RecallEventService {
	return &recallEventService{base: newBase(deps, scopeRecallEvents), repo: repo, plans: plans}
}

func (s *recallEventService) List(ctx context.Context, filter models.RecallEventFilter) ([]models.RecallEvent, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	events, err := querycache.Get(ctx, s.cache, s.key(orgID, "list", filter), func(ctx context.Context) ([]models.RecallEvent, error) {
		return s.repo.List(ctx, orgID, filter)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to list recall events", err)
	}
	return events, nil
}

func (s *recallEventService) Get(ctx context.Context, id int) (*models.RecallEvent, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}
	event, err := querycache.Get(ctx, s.cache, s.key(orgID, "get", id), func(ctx context.Context) (*models.RecallEvent, error) {
		return s.repo.GetByID(ctx, orgID, id)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to get recall event", err)
	}
	copied := *event
	return &copied, nil
}

func (s *recallEventService) Create(ctx context.Context, form *models.RecallEventForm) (*models.RecallEvent, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := invalid(form.Validate()); err != nil {
		return nil, err
	}
	if err := s.checkPlan(ctx, orgID, form.PlanID); err != nil {
		return nil, err
	}

	event := &models.RecallEvent{OrganizationID: orgID}
	if err := form.Apply(event); err != nil {
		return nil, badInput("%v", err)
	}
	s.stampCompletion(event, false)
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, s.fail(ctx, "failed to create recall event", err)
	}
	s.invalidate(orgID)

	if event.Status == "completed" {
		s.recordMockRecall(ctx, orgID, event)
	}
	return event, nil
}

func (s *recallEventService) Update(ctx context.Context, id int, form *models.RecallEventForm) (*models.RecallEvent, error) {
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
	if err := s.checkPlan(ctx, orgID, form.PlanID); err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, s.fail(ctx, "failed to update recall event", err)
	}
	wasFinished := event.IsFinished()
	wasCompleted := event.Status == "completed"
	if err := form.Apply(event); err != nil {
		return nil, badInput("%v", err)
	}
	s.stampCompletion(event, wasFinished)
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, s.fail(ctx, "failed to update recall event", err)
	}
	s.invalidate(orgID)

	if event.Status == "completed" && !wasCompleted {
		s.recordMockRecall(ctx, orgID, event)
	}
	return event, nil
}

func (s *recallEventService) Delete(ctx context.Context, id int) error {
	orgID, err := s.org(ctx)
	if err != nil {
		return err
	}
	if err := validID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, orgID, id); err != nil {
		return s.fail(ctx, "failed to delete recall event", err)
	}
	s.invalidate(orgID)
	return nil
}

// checkPlan rejects plan ids that do not belong to the organization
func (s *recallEventService) checkPlan(ctx context.Context, orgID int, planID *int) error {
	if planID == nil {
		return nil
	}
	if _, err := s.plans.GetByID(ctx, orgID, *planID); err != nil {
		if isNotFound(err) {
			return badInput("Recall plan %d does not exist", *planID)
		}
		return s.fail(ctx, "failed to load recall plan", err)
	}
	return nil
}

// stampCompletion keeps completed_at in step with the event status
func (s *recallEventService) stampCompletion(event *models.RecallEvent, wasFinished bool) {
	switch {
	case !event.IsFinished():
		event.CompletedAt = nil
	case !wasFinished || event.CompletedAt == nil:
		now := s.now().UTC()
		event.CompletedAt = &now
	}
}

// recordMockRecall stamps the linked plan after a mock recall exercise completes.
// The event is already saved, so a failure here is logged and not returned.
func (s *recallEventService) recordMockRecall(ctx context.Context, orgID int, event *models.RecallEvent) {
	if event.RecallType != "mock" || event.PlanID == nil {
		return
	}
	plan, err := s.plans.GetByID(ctx, orgID, *event.PlanID)
	if err == nil {
		today := s.today()
		next := today.AddDate(1, 0, 0)
		plan.LastMockRecallDate = &today
		plan.NextMockRecallDate = &next
		err = s.plans.Update(ctx, plan)
	}
	if err != nil {
		s.logger.Error("failed to record mock recall on plan",
			zap.Int("org_id", orgID),
			zap.Int("plan_id", *event.PlanID),
			zap.Int("event_id", event.ID),
			zap.Error(err))
		return
	}
	s.cache.Invalidate(orgID, scopeRecallPlans)
}
