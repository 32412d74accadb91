// internal/auth/guard.go
package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tenantnotes/internal/model"
)

// RequireRoles rejects requests whose claims role is not in the allowed
// set. denied is the message returned on violation; the wording differs
// between note routes ("Access denied") and billing routes
// ("Admin role required").
func RequireRoles(denied string, allowed ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := FromContext(r)
			if claims == nil {
				writeError(w, http.StatusUnauthorized, "Authorization header missing")
				return
			}
			for _, role := range allowed {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, http.StatusForbidden, denied)
		})
	}
}

// RequireTenant rejects requests whose path tenant parameter does not
// equal the claims tenant slug. The parameter is used only for this
// comparison; data queries are always scoped by the claims slug.
func RequireTenant(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := FromContext(r)
			if claims == nil {
				writeError(w, http.StatusUnauthorized, "Authorization header missing")
				return
			}
			if chi.URLParam(r, param) != claims.TenantSlug {
				writeError(w, http.StatusForbidden, "Cannot access other tenant")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
