package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sayma/internal/domain/entity"
	"sayma/internal/domain/service"
)

func createTestSignedTokenStrategy(t *testing.T) service.SessionStrategy {
	t.Helper()

	tokens, err := NewJWTService(newTestConfig("signed-strategy-secret"))
	require.NoError(t, err)

	return NewSignedTokenStrategy(tokens)
}

func TestSignedTokenStrategy_EstablishAndResolve(t *testing.T) {
	strategy := createTestSignedTokenStrategy(t)
	ctx := context.Background()

	principal := service.Principal{
		UserID: uuid.New(),
		Email:  "admin@example.com",
		Role:   entity.RoleAdmin.String(),
	}

	credential, expiresAt, err := strategy.Establish(ctx, principal)
	require.NoError(t, err)
	assert.NotEmpty(t, credential)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, 5*time.Second)

	resolved, err := strategy.Resolve(ctx, credential)
	require.NoError(t, err)
	assert.Equal(t, principal.UserID, resolved.UserID)
	assert.Equal(t, principal.Email, resolved.Email)
	assert.Equal(t, entity.RoleAdmin.String(), resolved.Role)
}

func TestSignedTokenStrategy_ResolveRejectsGarbage(t *testing.T) {
	strategy := createTestSignedTokenStrategy(t)

	_, err := strategy.Resolve(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestSignedTokenStrategy_ResolveRejectsForeignSignature(t *testing.T) {
	ctx := context.Background()

	issuer := createTestSignedTokenStrategy(t)
	otherTokens, err := NewJWTService(newTestConfig("a-different-secret"))
	require.NoError(t, err)
	verifier := NewSignedTokenStrategy(otherTokens)

	credential, _, err := issuer.Establish(ctx, service.Principal{
		UserID: uuid.New(),
		Email:  "admin@example.com",
		Role:   entity.RoleAdmin.String(),
	})
	require.NoError(t, err)

	_, err = verifier.Resolve(ctx, credential)
	assert.Error(t, err)
}

func TestSignedTokenStrategy_RevokeIsStateless(t *testing.T) {
	strategy := createTestSignedTokenStrategy(t)
	ctx := context.Background()

	credential, _, err := strategy.Establish(ctx, service.Principal{
		UserID: uuid.New(),
		Email:  "admin@example.com",
		Role:   entity.RoleAdmin.String(),
	})
	require.NoError(t, err)

	require.NoError(t, strategy.Revoke(ctx, credential))

	// The token stays valid until expiry: the caller clears the cookie.
	_, err = strategy.Resolve(ctx, credential)
	assert.NoError(t, err)
}

func TestSignedTokenStrategy_CookieName(t *testing.T) {
	strategy := createTestSignedTokenStrategy(t)
	assert.Equal(t, "admin_token", strategy.CookieName())
}
