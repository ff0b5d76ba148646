package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/blogem/opsledger/models"
	"github.com/blogem/opsledger/querycache"
	"github.com/blogem/opsledger/repositories"
)

// DashboardWindowDays is the look-ahead for review and expiry counts on the dashboard
const DashboardWindowDays = 30

// DashboardService interface defines the per-organization overview
type DashboardService interface {
	Get(ctx context.Context) (*models.Dashboard, error)
}

type dashboardService struct {
	base
	repos *repositories.Repositories
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repos *repositories.Repositories, deps Deps) DashboardService {
	return &dashboardService{base: newBase(deps, scopeDashboard), repos: repos}
}

func (s *dashboardService) Get(ctx context.Context) (*models.Dashboard, error) {
	orgID, err := s.org(ctx)
	if err != nil {
		return nil, err
	}
	today := s.today()

	d, err := querycache.Get(ctx, s.cache, s.key(orgID, "counts", models.FormatDate(today)), func(ctx context.Context) (models.Dashboard, error) {
		return s.load(ctx, orgID, today)
	})
	if err != nil {
		return nil, s.fail(ctx, "failed to load dashboard", err)
	}
	return &d, nil
}

// load runs the counts concurrently; the first failure cancels the rest
func (s *dashboardService) load(ctx context.Context, orgID int, today time.Time) (models.Dashboard, error) {
	var d models.Dashboard
	window := today.AddDate(0, 0, DashboardWindowDays)
	year := today.Year()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.OpenSpillReports, err = s.repos.SpillReport.Count(ctx, orgID, models.SpillReportFilter{OpenOnly: true})
		return err
	})
	g.Go(func() (err error) {
		d.RunningProductionRuns, err = s.repos.ProductionRun.Count(ctx, orgID, models.ProductionRunFilter{Status: models.RunRunning})
		return err
	})
	g.Go(func() (err error) {
		d.PlansDueForReview, err = s.repos.FoodSafetyPlan.Count(ctx, orgID, models.FoodSafetyPlanFilter{ReviewDueBy: &window})
		return err
	})
	g.Go(func() (err error) {
		d.ExpiringDocuments, err = s.repos.Document.Count(ctx, orgID, models.DocumentFilter{ExpiringBy: &window})
		return err
	})
	g.Go(func() (err error) {
		d.ExpiredOrientations, err = s.repos.ContractorOrientation.Count(ctx, orgID, models.ContractorOrientationFilter{ExpiredAsOf: &today})
		return err
	})
	g.Go(func() (err error) {
		d.PendingDrugTests, err = s.repos.DrugTest.Count(ctx, orgID, models.DrugTestFilter{Result: "pending"})
		return err
	})
	g.Go(func() (err error) {
		d.OSHARecordablesYTD, err = s.repos.OSHA.Count(ctx, orgID, models.OSHAFilter{Year: year})
		return err
	})

	if err := g.Wait(); err != nil {
		return models.Dashboard{}, err
	}
	return d, nil
}
