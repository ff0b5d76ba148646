package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Guards are the middleware chains wrapped around API routes
type Guards struct {
	// Auth resolves the user; every /api route requires it
	Auth func(http.Handler) http.Handler
	// Organization resolves the active organization and role
	Organization func(http.Handler) http.Handler
	// Audit records mutations; it runs after Organization so entries carry the org
	Audit func(http.Handler) http.Handler
}

// MountAuth registers the browser login routes
func (c *Controllers) MountAuth(r chi.Router) {
	r.Get("/login", c.Auth.Login)
	r.Get("/callback", c.Auth.Callback)
	r.Get("/logout", c.Auth.Logout)
}

// MountAPI registers every /api route
func (c *Controllers) MountAPI(r chi.Router, g Guards) {
	r.Route("/api", func(r chi.Router) {
		r.Use(g.Auth)

		// user-level routes, no organization needed
		r.Post("/token", c.Auth.IssueToken)
		r.Get("/organizations", c.Organization.List)
		r.Post("/organizations", c.Organization.Create)

		r.Group(func(r chi.Router) {
			r.Use(g.Organization)
			if g.Audit != nil {
				r.Use(g.Audit)
			}

			r.Post("/organizations/{id}/members", c.Organization.AddMember)
			r.Get("/dashboard", c.Dashboard.Index)
			r.Get("/audit-log", c.Audit.Index)

			r.Route("/ppe-requirements", func(r chi.Router) {
				r.Get("/", c.PPE.List)
				r.Post("/", c.PPE.Create)
				r.Get("/matrix", c.PPE.Matrix)
				r.Get("/{id}", c.PPE.Get)
				r.Put("/{id}", c.PPE.Update)
				r.Delete("/{id}", c.PPE.Delete)
			})

			r.Route("/food-safety-plans", func(r chi.Router) {
				r.Get("/", c.FoodSafetyPlan.List)
				r.Post("/", c.FoodSafetyPlan.Create)
				r.Get("/due-for-review", c.FoodSafetyPlan.DueForReview)
				r.Get("/{id}", c.FoodSafetyPlan.Get)
				r.Put("/{id}", c.FoodSafetyPlan.Update)
				r.Delete("/{id}", c.FoodSafetyPlan.Delete)
				r.Post("/{id}/review", c.FoodSafetyPlan.Review)
			})

			r.Route("/recall-plans", func(r chi.Router) {
				r.Get("/", c.RecallPlan.List)
				r.Post("/", c.RecallPlan.Create)
				r.Get("/{id}", c.RecallPlan.Get)
				r.Put("/{id}", c.RecallPlan.Update)
				r.Delete("/{id}", c.RecallPlan.Delete)
			})

			r.Route("/recall-events", func(r chi.Router) {
				r.Get("/", c.RecallEvent.List)
				r.Post("/", c.RecallEvent.Create)
				r.Get("/{id}", c.RecallEvent.Get)
				r.Put("/{id}", c.RecallEvent.Update)
				r.Delete("/{id}", c.RecallEvent.Delete)
			})

			r.Route("/documents", func(r chi.Router) {
				r.Get("/", c.Document.List)
				r.Post("/", c.Document.Create)
				r.Get("/{id}", c.Document.Get)
				r.Put("/{id}", c.Document.Update)
				r.Delete("/{id}", c.Document.Delete)
				r.Post("/{id}/file", c.Document.UploadFile)
				r.Get("/{id}/file", c.Document.DownloadFile)
			})

			r.Route("/recurring-journals", func(r chi.Router) {
				r.Get("/", c.RecurringJournal.List)
				r.Post("/", c.RecurringJournal.Create)
				r.Get("/{id}", c.RecurringJournal.Get)
				r.Put("/{id}", c.RecurringJournal.Update)
				r.Delete("/{id}", c.RecurringJournal.Delete)
				r.Post("/{id}/toggle", c.RecurringJournal.Toggle)
			})

			r.Route("/production-runs", func(r chi.Router) {
				r.Get("/", c.ProductionRun.List)
				r.Post("/", c.ProductionRun.Create)
				r.Get("/{id}", c.ProductionRun.Get)
				r.Put("/{id}", c.ProductionRun.Update)
				r.Delete("/{id}", c.ProductionRun.Delete)
				r.Post("/{id}/counts", c.ProductionRun.RecordCounts)
				r.Post("/{id}/status", c.ProductionRun.ChangeStatus)
			})

			r.Route("/contractor-orientations", func(r chi.Router) {
				r.Get("/", c.ContractorOrientation.List)
				r.Post("/", c.ContractorOrientation.Create)
				r.Get("/{id}", c.ContractorOrientation.Get)
				r.Put("/{id}", c.ContractorOrientation.Update)
				r.Delete("/{id}", c.ContractorOrientation.Delete)
			})

			r.Route("/drug-tests", func(r chi.Router) {
				r.Get("/", c.DrugTest.List)
				r.Post("/", c.DrugTest.Create)
				r.Get("/stats", c.DrugTest.Stats)
				r.Get("/{id}", c.DrugTest.Get)
				r.Put("/{id}", c.DrugTest.Update)
				r.Delete("/{id}", c.DrugTest.Delete)
			})

			r.Route("/osha-entries", func(r chi.Router) {
				r.Get("/", c.OSHA.List)
				r.Post("/", c.OSHA.Create)
				r.Get("/summary", c.OSHA.Summary)
				r.Get("/export", c.OSHA.Export)
				r.Get("/{id}", c.OSHA.Get)
				r.Put("/{id}", c.OSHA.Update)
				r.Delete("/{id}", c.OSHA.Delete)
			})

			r.Route("/spill-reports", func(r chi.Router) {
				r.Get("/", c.SpillReport.List)
				r.Post("/", c.SpillReport.Create)
				r.Get("/{id}", c.SpillReport.Get)
				r.Put("/{id}", c.SpillReport.Update)
				r.Delete("/{id}", c.SpillReport.Delete)
			})

			r.Route("/approval-tiers", func(r chi.Router) {
				r.Get("/", c.ApprovalTier.List)
				r.Post("/", c.ApprovalTier.Create)
				r.Get("/match", c.ApprovalTier.Match)
				r.Post("/import", c.ApprovalTier.Import)
				r.Get("/{id}", c.ApprovalTier.Get)
				r.Put("/{id}", c.ApprovalTier.Update)
				r.Delete("/{id}", c.ApprovalTier.Delete)
			})
		})
	})
}
