package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/harryhartz/bimoodtracker/internal"
	"github.com/harryhartz/bimoodtracker/internal/storage"
)

func TestTokenIdentityProviderResolvesUser(t *testing.T) {
	store := storage.NewMemoryStore()
	user := &internal.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "h"}
	assert.NoError(t, store.CreateUser(context.Background(), user))

	tokens := NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Issue(user.ID)
	assert.NoError(t, err)

	provider := NewTokenIdentityProvider(tokens, store, internal.NopLogger{})
	resolved, err := provider.Resolve(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, "ann@x.com", resolved.Email)
}

func TestTokenIdentityProviderUnknownUser(t *testing.T) {
	store := storage.NewMemoryStore()
	tokens := NewTokenManager("test-secret", time.Hour)

	// Valid signature but the account it names does not exist.
	token, err := tokens.Issue(999)
	assert.NoError(t, err)

	provider := NewTokenIdentityProvider(tokens, store, internal.NopLogger{})
	_, err = provider.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenIdentityProviderBadToken(t *testing.T) {
	store := storage.NewMemoryStore()
	tokens := NewTokenManager("test-secret", time.Hour)
	provider := NewTokenIdentityProvider(tokens, store, internal.NopLogger{})

	_, err := provider.Resolve(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
