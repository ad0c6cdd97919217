package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sayma/internal/domain/entity"
	"sayma/internal/domain/repository"
	"sayma/internal/domain/service"
	mockrepository "sayma/internal/mocks/repository"
)

type persistedStrategyFixtures struct {
	sessions *mockrepository.MockSessionRepository
	users    *mockrepository.MockUserRepository
}

func createTestPersistedStrategy(t *testing.T, ttl time.Duration) (service.SessionStrategy, persistedStrategyFixtures) {
	t.Helper()

	fx := persistedStrategyFixtures{
		sessions: mockrepository.NewMockSessionRepository(t),
		users:    mockrepository.NewMockUserRepository(t),
	}

	return NewPersistedSessionStrategy(fx.sessions, fx.users, ttl), fx
}

func TestPersistedSessionStrategy_EstablishStoresTokenHash(t *testing.T) {
	strategy, fx := createTestPersistedStrategy(t, time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	fx.sessions.EXPECT().DeleteExpired(ctx).Return(nil)

	var stored *entity.Session
	fx.sessions.EXPECT().Create(ctx, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*entity.Session)
	}).Return(nil)

	token, expiresAt, err := strategy.Establish(ctx, service.Principal{UserID: userID})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	require.NotNil(t, stored)
	assert.Equal(t, userID, stored.UserID)
	assert.Equal(t, expiresAt, stored.ExpiresAt)

	// The row holds a SHA-256 digest of the token, never the token itself.
	sum := sha256.Sum256([]byte(token))
	assert.Equal(t, hex.EncodeToString(sum[:]), stored.TokenHash)
	assert.NotContains(t, stored.TokenHash, token)
}

func TestPersistedSessionStrategy_EstablishSurvivesFailedSweep(t *testing.T) {
	strategy, fx := createTestPersistedStrategy(t, time.Hour)
	ctx := context.Background()

	fx.sessions.EXPECT().DeleteExpired(ctx).Return(errors.New("table locked"))
	fx.sessions.EXPECT().Create(ctx, mock.Anything).Return(nil)

	token, _, err := strategy.Establish(ctx, service.Principal{UserID: uuid.New()})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestPersistedSessionStrategy_ResolveSuccess(t *testing.T) {
	strategy, fx := createTestPersistedStrategy(t, time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	token := "opaque-session-token"
	sum := sha256.Sum256([]byte(token))
	hash := hex.EncodeToString(sum[:])

	fx.sessions.EXPECT().FindByTokenHash(ctx, hash).Return(&entity.Session{
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	fx.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{
		ID:    userID,
		Email: "user@example.com",
	}, nil)

	principal, err := strategy.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, principal.UserID)
	assert.Equal(t, "user@example.com", principal.Email)
	assert.Equal(t, entity.RoleUser.String(), principal.Role)
}

func TestPersistedSessionStrategy_ResolveUnknownToken(t *testing.T) {
	strategy, fx := createTestPersistedStrategy(t, time.Hour)
	ctx := context.Background()

	fx.sessions.EXPECT().FindByTokenHash(ctx, mock.Anything).Return(nil, repository.ErrSessionNotFound)

	_, err := strategy.Resolve(ctx, "no-such-token")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestPersistedSessionStrategy_ResolveExpiredReapsRow(t *testing.T) {
	strategy, fx := createTestPersistedStrategy(t, time.Hour)
	ctx := context.Background()

	token := "stale-session-token"
	sum := sha256.Sum256([]byte(token))
	hash := hex.EncodeToString(sum[:])

	fx.sessions.EXPECT().FindByTokenHash(ctx, hash).Return(&entity.Session{
		UserID:    uuid.New(),
		TokenHash: hash,
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)
	fx.sessions.EXPECT().DeleteByTokenHash(ctx, hash).Return(nil)

	_, err := strategy.Resolve(ctx, token)
	assert.ErrorIs(t, err, repository.ErrSessionExpired)
}

func TestPersistedSessionStrategy_RevokeDeletesByHash(t *testing.T) {
	strategy, fx := createTestPersistedStrategy(t, time.Hour)
	ctx := context.Background()

	token := "revoked-session-token"
	sum := sha256.Sum256([]byte(token))
	hash := hex.EncodeToString(sum[:])

	fx.sessions.EXPECT().DeleteByTokenHash(ctx, hash).Return(nil)

	assert.NoError(t, strategy.Revoke(ctx, token))
}

func TestPersistedSessionStrategy_CookieName(t *testing.T) {
	strategy, _ := createTestPersistedStrategy(t, time.Hour)
	assert.Equal(t, "session_token", strategy.CookieName())
}
