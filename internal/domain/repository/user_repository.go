// Package repository defines the persistence contracts the use cases depend
// on, keeping the domain independent of GORM and PostgreSQL.
package repository

import (
	"context"

	"sayma/internal/domain/entity"
	"sayma/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors returned by repository implementations.
var (
	ErrUserNotFound            = errors.New("user not found")
	ErrAccountNotFound         = errors.New("account not found")
	ErrSessionNotFound         = errors.New("session not found")
	ErrSessionExpired          = errors.New("session expired")
	ErrAdminNotFound           = errors.New("admin not found")
	ErrAuthorizedEmailNotFound = errors.New("authorized email not found")
	ErrMaidNotFound            = errors.New("maid not found")
	ErrReviewNotFound          = errors.New("review not found")
	ErrContactNotFound         = errors.New("contact form not found")
)

// UserRepository persists customer identities.
type UserRepository interface {
	// Create persists a new user, together with any attached Accounts.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user.
	Update(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their unique ID, preloading accounts.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email, preloading accounts.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByPhone retrieves a user by phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// ListWithReviews returns all users with their reviews preloaded,
	// newest user first. Used by the admin customer listing.
	ListWithReviews(ctx context.Context) ([]*entity.User, error)
}

// AccountRepository persists provider-linkage records.
type AccountRepository interface {
	// Create persists a new account. At most one account may exist per
	// (user, provider) pair; violations surface as a domain conflict.
	Create(ctx context.Context, account *entity.Account) error

	// FindByProviderUserID finds the account linked for an external
	// provider identity (e.g. a Google 'sub' claim).
	FindByProviderUserID(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Account, error)

	// FindByUserAndProvider finds a user's account for a given provider.
	FindByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Account, error)
}

// SessionRepository persists customer sessions. The raw token never reaches
// this layer; callers pass its SHA-256 hash.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session by its token hash. Expiry is
	// checked by the caller.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes a session, ending the login.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpired removes all sessions past their expiry.
	DeleteExpired(ctx context.Context) error
}
