package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Organization          OrganizationRepository
	PPE                   PPERepository
	FoodSafetyPlan        FoodSafetyPlanRepository
	RecallPlan            RecallPlanRepository
	RecallEvent           RecallEventRepository
	Document              DocumentRepository
	RecurringJournal      RecurringJournalRepository
	ProductionRun         ProductionRunRepository
	ContractorOrientation ContractorOrientationRepository
	DrugTest              DrugTestRepository
	OSHA                  OSHARepository
	SpillReport           SpillReportRepository
	ApprovalTier          ApprovalTierRepository
	Audit                 AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Organization:          NewOrganizationRepository(db),
		PPE:                   NewPPERepository(db),
		FoodSafetyPlan:        NewFoodSafetyPlanRepository(db),
		RecallPlan:            NewRecallPlanRepository(db),
		RecallEvent:           NewRecallEventRepository(db),
		Document:              NewDocumentRepository(db),
		RecurringJournal:      NewRecurringJournalRepository(db),
		ProductionRun:         NewProductionRunRepository(db),
		ContractorOrientation: NewContractorOrientationRepository(db),
		DrugTest:              NewDrugTestRepository(db),
		OSHA:                  NewOSHARepository(db),
		SpillReport:           NewSpillReportRepository(db),
		ApprovalTier:          NewApprovalTierRepository(db),
		Audit:                 NewAuditRepository(db),
	}
}
