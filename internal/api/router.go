package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"tenantnotes/internal/auth"
	"tenantnotes/internal/metrics"
	"tenantnotes/internal/model"
)

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(metrics.Middleware)

	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Public
	r.Post("/login", a.Login)
	r.Post("/seed", a.Seed)

	// Notes: any authenticated tenant member. Isolation is enforced by
	// scoping every query to the claims tenant slug.
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware)
		r.Use(auth.RequireRoles("Access denied", model.RoleAdmin, model.RoleMember))

		r.Get("/notes", a.ListNotes)
		r.Post("/notes", a.CreateNote)
		r.Get("/notes/{id}", a.GetNote)
		r.Put("/notes/{id}", a.UpdateNote)
		r.Delete("/notes/{id}", a.DeleteNote)
	})

	// Billing: admins of the addressed tenant only. The tenant match is
	// checked before the role so a foreign admin or member sees the
	// tenant error, a same-tenant member the role error.
	r.Route("/tenants/{slug}", func(r chi.Router) {
		r.Use(auth.Middleware)
		r.Use(auth.RequireTenant("slug"))
		r.Use(auth.RequireRoles("Admin role required", model.RoleAdmin))

		r.Post("/upgrade", a.UpgradeTenant)
		r.Get("/billing-history", a.BillingHistory)
		r.Get("/audit-events", a.AuditEvents)
	})

	return r
}
