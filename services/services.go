package services

import (
	"github.com/blogem/opsledger/repositories"
)

// Services holds all service instances
type Services struct {
	Organization          OrganizationService
	PPE                   PPEService
	FoodSafetyPlan        FoodSafetyPlanService
	RecallPlan            RecallPlanService
	RecallEvent           RecallEventService
	Document              DocumentService
	RecurringJournal      RecurringJournalService
	ProductionRun         ProductionRunService
	ContractorOrientation ContractorOrientationService
	DrugTest              DrugTestService
	OSHA                  OSHAService
	SpillReport           SpillReportService
	ApprovalTier          ApprovalTierService
	Dashboard             DashboardService
	Audit                 AuditService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, deps Deps) *Services {
	return &Services{
		Organization:          NewOrganizationService(repos.Organization, deps),
		PPE:                   NewPPEService(repos.PPE, deps),
		FoodSafetyPlan:        NewFoodSafetyPlanService(repos.FoodSafetyPlan, deps),
		RecallPlan:            NewRecallPlanService(repos.RecallPlan, deps),
		RecallEvent:           NewRecallEventService(repos.RecallEvent, repos.RecallPlan, deps),
		Document:              NewDocumentService(repos.Document, deps),
		RecurringJournal:      NewRecurringJournalService(repos.RecurringJournal, deps),
		ProductionRun:         NewProductionRunService(repos.ProductionRun, deps),
		ContractorOrientation: NewContractorOrientationService(repos.ContractorOrientation, deps),
		DrugTest:              NewDrugTestService(repos.DrugTest, deps),
		OSHA:                  NewOSHAService(repos.OSHA, deps),
		SpillReport:           NewSpillReportService(repos.SpillReport, deps),
		ApprovalTier:          NewApprovalTierService(repos.ApprovalTier, deps),
		Dashboard:             NewDashboardService(repos, deps),
		Audit:                 NewAuditService(repos.Audit, deps),
	}
}
