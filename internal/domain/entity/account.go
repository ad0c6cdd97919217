// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies an authentication method linked to a User.
type ProviderType string

const (
	// ProviderTypeCredentials is email + password authentication.
	ProviderTypeCredentials ProviderType = "credentials"
	// ProviderTypeGoogle is Google Sign-In.
	ProviderTypeGoogle ProviderType = "google"
)

// Account represents a single method of logging in (a credential).
// A user's email/password is one record, while a linked Google account is another.
// Credential material lives in PasswordHash, typed apart from ProviderUserID,
// so OAuth identifiers and password hashes can never be conflated.
type Account struct {
	ID             uuid.UUID    // The unique ID for this specific account record itself.
	UserID         uuid.UUID    // Links this authentication method to the User it belongs to.
	Provider       ProviderType // The authentication provider, e.g., "credentials", "google".
	ProviderUserID string       // The user's unique ID from the external provider (e.g., Google's 'sub' claim). Empty for credentials.
	PasswordHash   string       // The bcrypt-hashed password, only set when the Provider is "credentials".
	CreatedAt      time.Time    // Timestamp of when this authentication method was linked.
}

// Session represents a long-lived, persisted customer login.
// The raw session token is only ever held by the browser cookie; the database
// stores a SHA-256 hash for comparison.
type Session struct {
	ID        uuid.UUID // The unique ID for this specific session record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw session token.
	ExpiresAt time.Time // The exact time when this session becomes invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., login time).
}

// Expired reports whether the session is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
