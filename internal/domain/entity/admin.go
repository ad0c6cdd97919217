// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Admin is the identity record for a back-office operator. It is created or
// refreshed by upsert whenever an authorized email completes a login cycle,
// never registered directly.
type Admin struct {
	ID           uuid.UUID  // The unique identifier for the admin.
	Email        string     // The admin's email. Must match an AuthorizedEmail row to be usable.
	Name         string     // Display name, taken from the Google profile when present.
	Picture      string     // Avatar URL, taken from the Google profile when present.
	GoogleID     string     // Google 'sub' claim when the admin has signed in with Google.
	OTP          *string    // The pending one-time code, nil when no challenge is outstanding.
	OTPExpiresAt *time.Time // Expiry of the pending code, nil when no challenge is outstanding.
	LastLoginAt  *time.Time // Timestamp of the last completed login.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPendingOTP reports whether an OTP challenge is outstanding.
func (a *Admin) HasPendingOTP() bool {
	return a.OTP != nil && a.OTPExpiresAt != nil
}

// AuthorizedEmail is an allow-list entry. The presence of a row for an email
// is the sole authorization predicate for admin access.
type AuthorizedEmail struct {
	ID        uuid.UUID // The unique identifier for the entry.
	Email     string    // The authorized email, stored lower-cased.
	AddedBy   string    // Email of the admin who added the entry, empty for bootstrap rows.
	CreatedAt time.Time
}
