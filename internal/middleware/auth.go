package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/crucial707/taskdeck/internal/auth"
	"github.com/crucial707/taskdeck/internal/metrics"
	"github.com/crucial707/taskdeck/internal/models"
)

type contextKey string

const userKey contextKey = "user"

// Authenticate guards a route group with the dual gate: X-API-Key header plus
// Authorization: Bearer token. Every rejection is a uniform 401 so callers
// cannot tell which factor failed.
func Authenticate(resolver *auth.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bearer := bearerToken(r)
			apiKey := r.Header.Get("X-API-Key")

			user, err := resolver.Authenticate(r.Context(), bearer, apiKey)
			if err != nil {
				metrics.IncAuthFailures()
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
// Returns "" for a missing or malformed header; the resolver rejects "".
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// UserFromContext returns the authenticated user stored by Authenticate.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey).(models.User)
	return user, ok
}

// WithUser returns a context carrying user, as Authenticate would produce.
// Handlers under test use it to simulate an authenticated request.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}
