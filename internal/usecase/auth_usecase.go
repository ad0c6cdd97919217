// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterAndLoginInput defines the data required to register a new
// customer. A session is established immediately on success.
type RegisterAndLoginInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// LoginInput defines the data required for a credentials login.
type LoginInput struct {
	Email    string
	Password string
}

// GoogleSignInInput carries the provider ID token from the client.
type GoogleSignInInput struct {
	IDToken string
}

// UpdateProfileInput defines the mutable profile fields.
type UpdateProfileInput struct {
	UserID uuid.UUID
	Name   string
	Phone  string
}

// --- Output DTOs ---

// SessionUser is the session-enriched view of the logged-in customer.
type SessionUser struct {
	ID       uuid.UUID
	Email    string
	Name     string
	Phone    string
	Image    string
	HasPhone bool
	IsAdmin  bool
}

// LoginOutput returns the session credential established for the user.
// The delivery layer turns Token into a cookie.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *SessionUser
}

// CheckEmailOutput reports how an email can sign in.
type CheckEmailOutput struct {
	Exists      bool
	HasPassword bool
}

// AuthUsecase defines the customer-facing authentication operations.
type AuthUsecase interface {
	// RegisterAndLogin creates the user and their credentials account
	// atomically, then establishes a session.
	RegisterAndLogin(ctx context.Context, input RegisterAndLoginInput) (*LoginOutput, error)

	// Login verifies email/password and establishes a session. All
	// failure modes surface as the same invalid-credentials error.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// GoogleSignIn verifies the ID token, finds or creates the user,
	// links the provider account and establishes a session. When the
	// email is on the admin allow-list, the admin profile is upserted
	// as a side effect.
	GoogleSignIn(ctx context.Context, input GoogleSignInInput) (*LoginOutput, error)

	// Me resolves the current user with session enrichment flags.
	Me(ctx context.Context, userID uuid.UUID) (*SessionUser, error)

	// Logout revokes the session behind the given credential.
	Logout(ctx context.Context, credential string) error

	// CheckEmail reports whether an email is registered and whether it
	// can log in with a password.
	CheckEmail(ctx context.Context, email string) (*CheckEmailOutput, error)

	// UpdateProfile updates name and phone for the logged-in user.
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*SessionUser, error)
}
