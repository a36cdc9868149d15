package middleware

import (
	"context"
	"net/http"
	"strings"

	"hradmin/internal/domain/auth"
)

type ctxKey string

const ctxKeyUser ctxKey = "user"

// UserContext is the authenticated principal attached to a request.
type UserContext struct {
	StaffID   int64
	Role      auth.Role
	SectionID int64
	SessionID string
}

// Auth parses a bearer token when present. Invalid or missing tokens leave
// the request anonymous; access decisions belong to RequireAuth/RequireRole.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUser, UserContext{
				StaffID:   claims.StaffID,
				Role:      claims.Role,
				SectionID: claims.SectionID,
				SessionID: claims.SessionID,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (UserContext, bool) {
	user, ok := ctx.Value(ctxKeyUser).(UserContext)
	return user, ok
}
