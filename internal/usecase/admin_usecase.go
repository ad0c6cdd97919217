package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sayma/internal/domain/entity"
)

// AdminInfo is the admin identity exposed to the back office UI.
type AdminInfo struct {
	ID          uuid.UUID
	Email       string
	Name        string
	Picture     string
	LastLoginAt *time.Time
}

// AdminLoginOutput returns the signed token established after OTP
// verification. The delivery layer turns Token into a cookie.
type AdminLoginOutput struct {
	Token     string
	ExpiresAt time.Time
	Admin     *AdminInfo
}

// CustomerSummary is the admin view of a registered customer.
type CustomerSummary struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Phone     string
	Providers []string
	CreatedAt time.Time
}

// AdminUsecase defines the back-office authentication and
// administration operations.
type AdminUsecase interface {
	// RequestOTP gates on the allow-list, then generates, stores and
	// emails a login code. Non-allow-listed emails are rejected before
	// any side effect.
	RequestOTP(ctx context.Context, email string) error

	// VerifyOTP checks the pending code and on success clears it and
	// issues a signed admin token. A code is usable at most once.
	VerifyOTP(ctx context.Context, email, otp string) (*AdminLoginOutput, error)

	// Me resolves the current admin identity.
	Me(ctx context.Context, email string) (*AdminInfo, error)

	// IsEmailAuthorized reports allow-list membership, consulting the
	// cache before the database.
	IsEmailAuthorized(ctx context.Context, email string) (bool, error)

	// ListAuthorizedEmails returns the allow-list, newest first.
	ListAuthorizedEmails(ctx context.Context) ([]*entity.AuthorizedEmail, error)

	// AddAuthorizedEmail adds an email to the allow-list.
	AddAuthorizedEmail(ctx context.Context, email, addedBy string) (*entity.AuthorizedEmail, error)

	// RemoveAuthorizedEmail removes an allow-list entry. An admin
	// cannot remove their own email.
	RemoveAuthorizedEmail(ctx context.Context, id uuid.UUID, requesterEmail string) error

	// ListCustomers returns all registered customers for the back office.
	ListCustomers(ctx context.Context) ([]*CustomerSummary, error)
}
