package models

// Dashboard summarises open work across modules for one organization
type Dashboard struct {
	OpenSpillReports      int `json:"open_spill_reports"`
	RunningProductionRuns int `json:"running_production_runs"`
	PlansDueForReview     int `json:"plans_due_for_review"`
	ExpiringDocuments     int `json:"expiring_documents"`
	ExpiredOrientations   int `json:"expired_orientations"`
	PendingDrugTests      int `json:"pending_drug_tests"`
	OSHARecordablesYTD    int `json:"osha_recordables_ytd"`
}
