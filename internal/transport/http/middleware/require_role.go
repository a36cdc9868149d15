package middleware

import (
	"net/http"

	"hradmin/internal/domain/auth"
	"hradmin/internal/transport/http/api"
)

// RequireAuth gates a route on session presence only.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		if !auth.KnownRole(user.Role) {
			// A token carrying a role outside the closed set never passes.
			api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole gates a route on an exact role match.
func RequireRole(role auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			if !ok {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
				return
			}
			if user.Role != role || !auth.KnownRole(user.Role) {
				api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
