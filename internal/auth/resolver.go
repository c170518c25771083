package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/crucial707/taskdeck/internal/models"
)

// ErrUnauthorized is the single outcome for every authentication failure:
// wrong API key, bad or expired token, or a subject with no matching user.
var ErrUnauthorized = errors.New("unauthorized")

// UserFinder is the slice of the user store the resolver needs.
type UserFinder interface {
	GetByUsername(ctx context.Context, username string) (models.User, error)
}

// Resolver turns a bearer token plus API key header into an authenticated
// user. Both factors must pass before the store is touched.
type Resolver struct {
	Gate   *APIKeyGate
	Issuer *TokenIssuer
	Users  UserFinder
}

func NewResolver(gate *APIKeyGate, issuer *TokenIssuer, users UserFinder) *Resolver {
	return &Resolver{Gate: gate, Issuer: issuer, Users: users}
}

// Authenticate checks the API key, then the token, then loads the user named
// by the token subject. The reason for a failure is logged but never returned;
// callers see only ErrUnauthorized.
func (r *Resolver) Authenticate(ctx context.Context, bearerToken, apiKey string) (models.User, error) {
	if !r.Gate.Check(apiKey) {
		slog.Debug("auth rejected", "reason", "api key")
		return models.User{}, ErrUnauthorized
	}

	username, err := r.Issuer.Verify(bearerToken)
	if err != nil {
		slog.Debug("auth rejected", "reason", "token")
		return models.User{}, ErrUnauthorized
	}

	user, err := r.Users.GetByUsername(ctx, username)
	if err != nil {
		// Covers accounts deleted after token issuance.
		slog.Debug("auth rejected", "reason", "unknown subject", "subject", username)
		return models.User{}, ErrUnauthorized
	}

	return user, nil
}
