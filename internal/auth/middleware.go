// internal/auth/middleware.go
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const claimsKey contextKey = "claims"

// Middleware authenticates the Authorization header and injects the
// decoded claims into the request context. The three failure modes are
// kept distinct: missing header (401), header without a token segment
// (401), and a token that fails verification (403).
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, "Authorization header missing")
			return
		}

		parts := strings.Fields(header)
		if len(parts) < 2 {
			writeError(w, http.StatusUnauthorized, "Token missing")
			return
		}

		claims, err := ValidateToken(parts[1])
		if err != nil {
			writeError(w, http.StatusForbidden, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext extracts the authenticated claims from a request.
func FromContext(r *http.Request) *Claims {
	if c, ok := r.Context().Value(claimsKey).(*Claims); ok {
		return c
	}
	return nil
}

// WithClaims returns ctx carrying the given claims. Used by tests to
// exercise guarded handlers without a full token round trip.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
