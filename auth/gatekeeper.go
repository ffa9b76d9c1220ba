package auth

import (
	"candidate-notes/domain"
	"candidate-notes/errors"
	"context"
	stdErrors "errors"
	"log/slog"
	"strings"
)

// userLookup is the slice of the user store the gatekeeper needs.
type userLookup interface {
	GetUserByID(ctx context.Context, id domain.UserID) (domain.User, error)
}

// Gatekeeper validates a presented credential and resolves it to an identity.
// It holds no state: validity is decided once, when a connection or request arrives.
type Gatekeeper struct {
	log    *slog.Logger
	tokens *TokenManager
	users  userLookup
}

func NewGatekeeper(log *slog.Logger, tokens *TokenManager, users userLookup) *Gatekeeper {
	return &Gatekeeper{log: log, tokens: tokens, users: users}
}

// Validate returns the identity behind credential. Every rejection wraps
// errors.ErrAuthRejected; a store outage is reported as errors.ErrPersistence.
func (g *Gatekeeper) Validate(ctx context.Context, credential string) (domain.User, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return domain.User{}, errors.ErrMissingCredential
	}

	claims, err := g.tokens.ValidateToken(credential)
	if err != nil {
		g.log.Debug("Token rejected", "error", err)
		return domain.User{}, errors.ErrInvalidCredential
	}

	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	if userID == "" {
		return domain.User{}, errors.ErrInvalidCredential
	}

	user, err := g.users.GetUserByID(ctx, domain.UserID(userID))
	if stdErrors.Is(err, errors.ErrUserNotFound) {
		return domain.User{}, errors.ErrUnknownIdentity
	}
	if err != nil {
		return domain.User{}, stdErrors.Join(errors.ErrPersistence, err)
	}
	return user, nil
}
