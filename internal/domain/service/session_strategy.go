package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Principal is the authenticated identity resolved from a session credential.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

// SessionStrategy abstracts how a login produces a credential and how a
// credential is later resolved back to a principal. Two implementations
// exist: a signed stateless token for admins and a persisted random
// token for customers. Handlers and middleware only see this interface.
type SessionStrategy interface {
	// Establish creates a new session credential for the given principal.
	// The returned string is the opaque value to place in the cookie,
	// and the time is its expiry.
	Establish(ctx context.Context, principal Principal) (string, time.Time, error)

	// Resolve maps a credential back to its principal. It returns an
	// error when the credential is invalid, expired, or revoked.
	Resolve(ctx context.Context, credential string) (*Principal, error)

	// Revoke invalidates a credential. For stateless tokens this is a
	// no-op; for persisted sessions the stored record is removed.
	Revoke(ctx context.Context, credential string) error

	// CookieName returns the name of the cookie this strategy manages.
	CookieName() string
}
