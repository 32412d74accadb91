package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"tenantnotes/internal/model"
)

func claimsRequest(method, target string, c *Claims) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(WithClaims(req.Context(), c))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireRolesAllowsMember(t *testing.T) {
	handler := RequireRoles("Access denied", model.RoleAdmin, model.RoleMember)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, claimsRequest(http.MethodGet, "/notes", &Claims{Role: model.RoleMember, TenantSlug: "acme"}))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRolesDeniesOutsider(t *testing.T) {
	handler := RequireRoles("Admin role required", model.RoleAdmin)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, claimsRequest(http.MethodGet, "/tenants/acme/billing-history", &Claims{Role: model.RoleMember, TenantSlug: "acme"}))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Admin role required", decodeMessage(t, rec))
}

func TestRequireRolesWithoutClaims(t *testing.T) {
	handler := RequireRoles("Access denied", model.RoleAdmin)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/notes", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireTenant(t *testing.T) {
	router := chi.NewRouter()
	router.With(RequireTenant("slug")).Post("/tenants/{slug}/upgrade", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		slug       string
		claimsSlug string
		wantStatus int
	}{
		{"matching tenant", "acme", "acme", http.StatusOK},
		{"foreign tenant", "acme", "globex", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := claimsRequest(http.MethodPost, "/tenants/"+tt.slug+"/upgrade", &Claims{Role: model.RoleAdmin, TenantSlug: tt.claimsSlug})
			router.ServeHTTP(rec, req)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusForbidden {
				require.Equal(t, "Cannot access other tenant", decodeMessage(t, rec))
			}
		})
	}
}
