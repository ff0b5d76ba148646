package services

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/querycache"
	"github.com/blogem/opsledger/repositories"
)

// OSHAService interface defines OSHA 300 log business logic
type OSHAService interface {
	// List returns entries with privacy case names redacted
	List(ctx context.Context, filter models.OSHAFilter) ([]models.OSHAEntry, error)
	Get(ctx context.Context, id int) (*models.OSHAEntry, error)
	Create(ctx context.Context, form *models.OSHAEntryForm) (*models.OSHAEntry, error)
	Update(ctx context.Context, id int, form *models.OSHAEntryForm) (*models.OSHAEntry, error)
	Delete(ctx context.Context, id int) error
	// Summary computes the Form 300A totals of a year, the current one when year is 0
	Summary(ctx context.Context, year int) (*models.OSHASummary, error)
	// Export writes the year's Form 300 log and 300A summary as an XLSX workbook
	Export(ctx context.Context, year int, w io.Writer) error
}

type oshaService struct {
	base
	repo repositories.OSHARepository
}

// NewOSHAService creates a new OSHA log service
func NewOSHAService(repo repositories.OSHARepository, deps Deps) OSHAService {
	return &oshaService{base: newBase(deps, scopeOSHA), repo: repo}
}

func (s *oshaService) List(ctx context.Context, filter models.OSHAFilter) ([]models.OSHAEntry, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	cached, err := querycache.Get(ctx, s.cache, s.key(orgID, "list", filter), func(ctx context.Context) ([]models.OSHAEntry, error) {
		return s.repo.List(ctx, orgID, filter)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to list OSHA entries", err)
	}
	return redactAll(cached), nil
}

func (s *oshaService) Get(ctx context.Context, id int) (*models.OSHAEntry, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := validID(id); err != nil {
		return nil, err
	}
	entry, err := querycache.Get(ctx, s.cache, s.key(orgID, "get", id), func(ctx context.Context) (*models.OSHAEntry, error) {
		return s.repo.GetByID(ctx, orgID, id)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to get OSHA entry", err)
	}
	copied := *entry
	return &copied, nil
}

func (s *oshaService) Create(ctx context.Context, form *models.OSHAEntryForm) (*models.OSHAEntry, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	if err := invalid(form.Validate()); err != nil {
		return nil, err
	}

	entry := &models.OSHAEntry{OrganizationID: orgID}
	if err := form.Apply(entry); err != nil {
		return nil, badInput("%v", err)
	}
	if err := s.assignCaseNumber(ctx, entry); err != nil {
		return nil, s.fail(ctx, "failed to create OSHA entry", err)
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, s.fail(ctx, "failed to create OSHA entry", err)
	}
	s.invalidate(orgID)
	return entry, nil
}

// Update keeps the stored case number when the form leaves it blank
func (s *oshaService) Update(ctx context.Context, id int, form *models.OSHAEntryForm) (*models.OSHAEntry, error) {
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

	entry, err := s.repo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, s.fail(ctx, "failed to update OSHA entry", err)
	}
	previous := entry.CaseNumber
	if err := form.Apply(entry); err != nil {
		return nil, badInput("%v", err)
	}
	if entry.CaseNumber == "" {
		entry.CaseNumber = previous
	}
	if err := s.assignCaseNumber(ctx, entry); err != nil {
		return nil, s.fail(ctx, "failed to update OSHA entry", err)
	}
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, s.fail(ctx, "failed to update OSHA entry", err)
	}
	s.invalidate(orgID)
	return entry, nil
}

func (s *oshaService) Delete(ctx context.Context, id int) error {
	orgID, err := s.org(ctx)
	if err != nil {
		return err
	}
	if err := validID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, orgID, id); err != nil {
		return s.fail(ctx, "failed to delete OSHA entry", err)
	}
	s.invalidate(orgID)
	return nil
}

func (s *oshaService) Summary(ctx context.Context, year int) (*models.OSHASummary, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	year = s.year(year)
	entries, err := s.yearEntries(ctx, orgID, year)
	if err != nil {
		return nil, s.fail(ctx, "failed to summarize OSHA log", err, zap.Int("year", year))
	}
	summary := models.BuildOSHASummary(year, entries)
	return &summary, nil
}

func (s *oshaService) Export(ctx context.Context, year int, w io.Writer) error {
	orgID, err := s.org(ctx)
	if err != nil {
		return err
	}
	year = s.year(year)
	entries, err := s.yearEntries(ctx, orgID, year)
	if err != nil {
		return s.fail(ctx, "failed to export OSHA log", err, zap.Int("year", year))
	}
	if err := WriteOSHAWorkbook(w, year, redactAll(entries)); err != nil {
		return s.fail(ctx, "failed to export OSHA log", err, zap.Int("year", year))
	}
	return nil
}

// yearEntries loads every entry of the year in case number order
func (s *oshaService) yearEntries(ctx context.Context, orgID, year int) ([]models.OSHAEntry, error) {
	filter := models.OSHAFilter{Year: year}
	return querycache.Get(ctx, s.cache, s.key(orgID, "year", filter), func(ctx context.Context) ([]models.OSHAEntry, error) {
		return listAll(func(opts models.ListOptions) ([]models.OSHAEntry, error) {
			opts.SortBy = "case_number"
			f := filter
			f.ListOptions = opts
			return s.repo.List(ctx, orgID, f)
		})
	})
}

func (s *oshaService) assignCaseNumber(ctx context.Context, entry *models.OSHAEntry) error {
	if entry.CaseNumber != "" {
		return nil
	}
	seq, err := s.repo.NextCaseSequence(ctx, entry.OrganizationID, entry.Year())
	if err != nil {
		return err
	}
	entry.CaseNumber = models.FormatCaseNumber(entry.Year(), seq)
	return nil
}

func (s *oshaService) year(year int) int {
	if year <= 0 {
		return s.today().Year()
	}
	return year
}

func redactAll(entries []models.OSHAEntry) []models.OSHAEntry {
	out := make([]models.OSHAEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Redacted()
	}
	return out
}
