// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record for an end customer of the agency site.
// It carries only identity data; credentials live in Account records.
type User struct {
	ID        uuid.UUID  // The unique identifier for the user.
	Email     string     // The user's primary email, used as the login identifier.
	Name      string     // The user's display name.
	Phone     *string    // Optional contact phone. Unique when present.
	Image     string     // URL of the user's avatar, usually from an OAuth provider.
	Accounts  []*Account // All authentication methods linked to this user.
	CreatedAt time.Time  // Timestamp of when this account was created.
	UpdatedAt time.Time  // Timestamp of the last modification to this user's data.
}

// HasPhone reports whether the user has completed their profile with a phone number.
func (u *User) HasPhone() bool {
	return u.Phone != nil && *u.Phone != ""
}

// CredentialsAccount returns the user's credentials Account, or nil when the
// user signed up through an OAuth provider only.
func (u *User) CredentialsAccount() *Account {
	return u.AccountFor(ProviderTypeCredentials)
}

// AccountFor returns the Account linked for the given provider, or nil.
func (u *User) AccountFor(provider ProviderType) *Account {
	for _, acc := range u.Accounts {
		if acc.Provider == provider {
			return acc
		}
	}

	return nil
}
