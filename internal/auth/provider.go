package auth

import (
	"context"
	"errors"

	"github.com/harryhartz/bimoodtracker/internal"
	"github.com/harryhartz/bimoodtracker/internal/storage"
)

// IdentityProvider resolves a bearer token to a user. Identity resolution is
// an injected dependency so each environment picks its strategy explicitly.
type IdentityProvider interface {
	Resolve(ctx context.Context, token string) (*internal.User, error)
}

// TokenIdentityProvider verifies a signed token and loads the user it names.
type TokenIdentityProvider struct {
	tokens *TokenManager
	users  storage.UserRepository
	logger internal.Logger
}

func NewTokenIdentityProvider(tokens *TokenManager, users storage.UserRepository, logger internal.Logger) *TokenIdentityProvider {
	return &TokenIdentityProvider{tokens: tokens, users: users, logger: logger}
}

func (p *TokenIdentityProvider) Resolve(ctx context.Context, token string) (*internal.User, error) {
	userID, err := p.tokens.Verify(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	user, err := p.users.GetUserByID(ctx, userID)
	if err != nil {
		// A still-valid token for a deleted account is not an identity.
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		p.logger.Errorf("identity lookup failed for user %d: %v", userID, err)
		return nil, err
	}
	return user, nil
}

// StaticIdentityProvider always resolves to a fixed user. For tests and local
// tooling only; it is never selected by an environment flag inside the
// request path.
type StaticIdentityProvider struct {
	User *internal.User
}

func (p *StaticIdentityProvider) Resolve(ctx context.Context, token string) (*internal.User, error) {
	if p.User == nil {
		return nil, ErrInvalidToken
	}
	return p.User, nil
}
