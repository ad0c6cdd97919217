package repository

import (
	"context"
	"time"

	"sayma/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminRepository persists back-office operator records.
type AdminRepository interface {
	// FindByEmail retrieves an admin by email.
	FindByEmail(ctx context.Context, email string) (*entity.Admin, error)

	// UpsertOTP creates the admin row if absent, otherwise overwrites its
	// pending OTP challenge. Only the otp fields are touched on update.
	UpsertOTP(ctx context.Context, email, otp string, expiresAt time.Time) (*entity.Admin, error)

	// ClearOTP nulls the otp fields after a successful verification,
	// making the consumed code unusable.
	ClearOTP(ctx context.Context, email string) error

	// UpsertProfile creates or refreshes the admin row with OAuth profile
	// data and stamps last login. Used by the Google sign-in hook.
	UpsertProfile(ctx context.Context, email, name, picture, googleID string, loginAt time.Time) (*entity.Admin, error)
}

// AuthorizedEmailRepository persists the admin allow-list.
type AuthorizedEmailRepository interface {
	// Exists reports whether an exact-match row exists for the email.
	Exists(ctx context.Context, email string) (bool, error)

	// Create adds an allow-list entry. Duplicate emails surface as a
	// domain conflict.
	Create(ctx context.Context, entry *entity.AuthorizedEmail) error

	// Delete removes an allow-list entry by ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves an entry by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AuthorizedEmail, error)

	// List returns all entries, newest first.
	List(ctx context.Context) ([]*entity.AuthorizedEmail, error)
}
