package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"

	"sayma/internal/domain/entity"
	"sayma/internal/domain/repository"
	"sayma/internal/domain/service"
)

// SessionCookieName is the cookie carrying the opaque customer session token.
const SessionCookieName = "session_token"

const sessionTokenBytes = 32

// persistedSessionStrategy establishes customer sessions as random
// opaque tokens backed by a database row. Only a hash of the token is
// stored, so a leaked sessions table cannot be replayed as cookies.
type persistedSessionStrategy struct {
	sessions repository.SessionRepository
	users    repository.UserRepository
	ttl      time.Duration
}

// NewPersistedSessionStrategy is the constructor for persistedSessionStrategy.
func NewPersistedSessionStrategy(
	sessions repository.SessionRepository,
	users repository.UserRepository,
	ttl time.Duration,
) service.SessionStrategy {
	return &persistedSessionStrategy{
		sessions: sessions,
		users:    users,
		ttl:      ttl,
	}
}

func (s *persistedSessionStrategy) Establish(ctx context.Context, principal service.Principal) (string, time.Time, error) {
	raw := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", time.Time{}, errors.Wrap(err, "generate session token")
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	// Each login sweeps rows already past expiry so the table does not
	// grow unbounded. A failed sweep never blocks the login.
	_ = s.sessions.DeleteExpired(ctx)

	expiresAt := time.Now().Add(s.ttl)
	session := &entity.Session{
		UserID:    principal.UserID,
		TokenHash: hashSessionToken(token),
		ExpiresAt: expiresAt,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", time.Time{}, errors.Wrap(err, "persist session")
	}

	return token, expiresAt, nil
}

func (s *persistedSessionStrategy) Resolve(ctx context.Context, credential string) (*service.Principal, error) {
	session, err := s.sessions.FindByTokenHash(ctx, hashSessionToken(credential))
	if err != nil {
		return nil, err
	}

	if session.Expired(time.Now()) {
		// Lazily reap the stale row; resolution still fails.
		_ = s.sessions.DeleteByTokenHash(ctx, session.TokenHash)

		return nil, repository.ErrSessionExpired
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	return &service.Principal{
		UserID: user.ID,
		Email:  user.Email,
		Role:   entity.RoleUser.String(),
	}, nil
}

func (s *persistedSessionStrategy) Revoke(ctx context.Context, credential string) error {
	return s.sessions.DeleteByTokenHash(ctx, hashSessionToken(credential))
}

func (s *persistedSessionStrategy) CookieName() string {
	return SessionCookieName
}

func hashSessionToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
