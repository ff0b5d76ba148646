package services

import (
	"context"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/querycache"
	"github.com/blogem/opsledger/repositories"
)

// RecurringJournalService interface defines recurring journal template business logic
type RecurringJournalService interface {
	List(ctx context.Context, filter models.RecurringJournalFilter) ([]models.RecurringJournal, error)
	Get(ctx context.Context, id int) (*models.RecurringJournal, error)
	Create(ctx context.Context, form *models.RecurringJournalForm) (*models.RecurringJournal, error)
	Update(ctx context.Context, id int, form *models.RecurringJournalForm) (*models.RecurringJournal, error)
	Delete(ctx context.Context, id int) error
	// Toggle flips is_active and returns the updated template
	Toggle(ctx context.Context, id int) (*models.RecurringJournal, error)
}

type recurringJournalService struct {
	base
	repo repositories.RecurringJournalRepository
}

// NewRecurringJournalService creates a new recurring journal service
func NewRecurringJournalService(repo repositories.RecurringJournalRepository, deps Deps) RecurringJournalService {
	return &recurringJournalService{base: newBase(deps, scopeRecurringJournals), repo: repo}
}

// List returns templates with their display labels computed for now.
// Labels depend on the clock, so they are filled after the cache.
func (s *recurringJournalService) List(ctx context.Context, filter models.RecurringJournalFilter) ([]models.RecurringJournal, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	cached, err := querycache.Get(ctx, s.cache, s.key(orgID, "list", filter), func(ctx context.Context) ([]models.RecurringJournal, error) {
		return s.repo.List(ctx, orgID, filter)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to list recurring journals", err)
	}

	now := s.now()
	journals := append([]models.RecurringJournal(nil), cached...)
	for i := range journals {
		journals[i].Decorate(now)
	}
	return journals, nil
}

func (s *recurringJournalService) Get(ctx context.Context, id int) (*models.RecurringJournal, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}
	cached, err := querycache.Get(ctx, s.cache, s.key(orgID, "get", id), func(ctx context.Context) (*models.RecurringJournal, error) {
		return s.repo.GetByID(ctx, orgID, id)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to get recurring journal", err)
	}
	journal := *cached
	journal.Decorate(s.now())
	return &journal, nil
}

func (s *recurringJournalService) Create(ctx context.Context, form *models.RecurringJournalForm) (*models.RecurringJournal, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := invalid(form.Validate()); err != nil {
		return nil, err
	}

	journal := &models.RecurringJournal{OrganizationID: orgID}
	if err := form.Apply(journal); err != nil {
		return nil, badInput("%v", err)
	}
	if err := s.repo.Create(ctx, journal); err != nil {
		return nil, s.fail(ctx, "failed to create recurring journal", err)
	}
	s.invalidate(orgID)
	journal.Decorate(s.now())
	return journal, nil
}

// Update replaces the template and its lines; stored run dates other than next_run_date are kept
func (s *recurringJournalService) Update(ctx context.Context, id int, form *models.RecurringJournalForm) (*models.RecurringJournal, error) {
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

	journal, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, s.fail(ctx, "failed to update recurring journal", err)
	}
	if err := form.Apply(journal); err != nil {
		return nil, badInput("%v", err)
	}
	if err := s.repo.Update(ctx, journal); err != nil {
		return nil, s.fail(ctx, "failed to update recurring journal", err)
	}
	s.invalidate(orgID)
	journal.Decorate(s.now())
	return journal, nil
}

func (s *recurringJournalService) Delete(ctx context.Context, id int) error {
	orgID, err := s.org(ctx)
	if err != nil {
		return err
	}
	if err := validID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, orgID, id); err != nil {
		return s.fail(ctx, "failed to delete recurring journal", err)
	}
	s.invalidate(orgID)
	return nil
}

func (s *recurringJournalService) Toggle(ctx context.Context, id int) (*models.RecurringJournal, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}

	journal, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, s.fail(ctx, "failed to toggle recurring journal", err)
	}
	journal.IsActive = !journal.IsActive
	if err := s.repo.SetActive(ctx, orgID, id, journal.IsActive); err != nil {
		return nil, s.fail(ctx, "failed to toggle recurring journal", err)
	}
	s.invalidate(orgID)
	journal.Decorate(s.now())
	return journal, nil
}
