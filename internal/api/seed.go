package api

import (
	"net/http"

	"github.com/google/uuid"

	"tenantnotes/internal/auth"
	"tenantnotes/internal/model"
)

var seedTenants = []model.Tenant{
	{Slug: "acme", Name: "Acme", Subscription: model.PlanFree},
	{Slug: "globex", Name: "Globex", Subscription: model.PlanFree},
}

var seedUsers = []struct {
	Email      string
	Password   string
	Role       model.Role
	TenantSlug string
}{
	{"admin@acme.test", "password", model.RoleAdmin, "acme"},
	{"user@acme.test", "password", model.RoleMember, "acme"},
	{"admin@globex.test", "password", model.RoleAdmin, "globex"},
	{"user@globex.test", "password", model.RoleMember, "globex"},
}

// @Summary Reset the database and load demo tenants and users
// @Description Destructive: clears every table before repopulating.
// @Tags Seed
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /seed [post]
func (a *API) Seed(w http.ResponseWriter, r *http.Request) {
	if err := a.Storage.ResetAll(); err != nil {
		a.internalError(w, err, "seed: reset failed")
		return
	}

	for i := range seedTenants {
		if err := a.Storage.CreateTenant(&seedTenants[i]); err != nil {
			a.internalError(w, err, "seed: tenant insert failed")
			return
		}
	}

	for _, su := range seedUsers {
		hash, err := auth.HashPassword(su.Password)
		if err != nil {
			a.internalError(w, err, "seed: password hash failed")
			return
		}
		user := &model.User{
			ID:           uuid.New(),
			Email:        su.Email,
			PasswordHash: hash,
			Role:         su.Role,
			TenantSlug:   su.TenantSlug,
		}
		if err := a.Storage.CreateUser(user); err != nil {
			a.internalError(w, err, "seed: user insert failed")
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Seed data created successfully",
		"tenants": len(seedTenants),
		"users":   len(seedUsers),
	})
}
