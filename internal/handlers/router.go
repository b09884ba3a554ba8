// internal/handlers/router.go
package handlers

import (
	"github.com/go-chi/chi/v5"

	"warsztat/internal/clock"
	"warsztat/internal/handlers/customers"
	"warsztat/internal/handlers/dashboard"
	"warsztat/internal/handlers/orders"
	"warsztat/internal/handlers/parts"
	"warsztat/internal/handlers/reports"
	"warsztat/internal/handlers/vehicles"
	"warsztat/internal/middleware"
	"warsztat/internal/models"
	"warsztat/internal/repo"
	"warsztat/internal/report"
)

func RegisterRoutes(mux *chi.Mux, r repo.Repo, svc *report.Service, clk clock.Clock) {
	cu := customers.New(r)
	ve := vehicles.New(r)
	or := orders.New(r, clk)
	pa := parts.New(r)
	da := dashboard.New(r, clk)
	re := reports.New(svc)

	frontDesk := middleware.RequireRole(models.RoleAdmin, models.RoleReceptionist)
	workshop := middleware.RequireRole(models.RoleAdmin, models.RoleMechanic)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	mux.Route("/customers", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(r))
		sr.Use(frontDesk)
		sr.Get("/", cu.List)
		sr.Post("/", cu.Create)
		sr.Get("/{id}", cu.Get)
		sr.Put("/{id}", cu.Update)
		sr.Delete("/{id}", cu.Delete)
	})

	mux.Route("/vehicles", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(r))
		sr.Use(frontDesk)
		sr.Get("/", ve.List)
		sr.Post("/", ve.Create)
		sr.Get("/{id}", ve.Get)
		sr.Put("/{id}", ve.Update)
		sr.Delete("/{id}", ve.Delete)
	})

	mux.Route("/orders", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(r))
		sr.Get("/", or.List)
		sr.Get("/mechanics", or.Mechanics)
		sr.Get("/{id}", or.Get)
		sr.With(frontDesk).Post("/", or.Create)
		sr.With(frontDesk).Patch("/{id}/mechanic", or.AssignMechanic)
		sr.With(workshop).Patch("/{id}/status", or.UpdateStatus)
		sr.With(adminOnly).Delete("/{id}", or.Delete)

		sr.With(workshop).Post("/{id}/tasks", or.AddTask)
		sr.With(workshop).Delete("/{id}/tasks/{taskID}", or.DeleteTask)
		sr.With(workshop).Post("/{id}/tasks/{taskID}/parts", or.AddUsedPart)
		sr.With(workshop).Delete("/{id}/tasks/{taskID}/parts/{usedPartID}", or.DeleteUsedPart)

		sr.Get("/{id}/comments", or.ListComments)
		sr.Post("/{id}/comments", or.AddComment)
	})

	mux.Route("/parts", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(r))
		sr.Use(frontDesk)
		sr.Get("/", pa.List)
		sr.Post("/", pa.Create)
		sr.Get("/{id}", pa.Get)
		sr.Put("/{id}", pa.Update)
		sr.Delete("/{id}", pa.Delete)
	})

	mux.Route("/dashboard", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(r))
		sr.Get("/", da.Get)
	})

	mux.Route("/reports", func(sr chi.Router) {
		sr.Use(middleware.RequireAuth(r))
		sr.With(frontDesk).Get("/customers/{id}", re.Customer)
		sr.With(frontDesk).Get("/vehicles/{id}", re.Vehicle)
		sr.With(adminOnly).Get("/monthly", re.Monthly)
		sr.With(frontDesk).Get("/active", re.Active)
		sr.With(adminOnly).Post("/active/email", re.EmailActive)
	})
}
