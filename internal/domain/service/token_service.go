package service

import (
	"time"

	"github.com/google/uuid"

	"sayma/internal/domain/entity"
)

// AdminClaims is the payload carried inside a signed admin token.
type AdminClaims struct {
	AdminID   uuid.UUID
	Email     string
	Role      entity.Role
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// TokenService signs and validates the stateless admin token.
// Tokens are self-contained: validation never touches storage.
type TokenService interface {
	// Issue signs a token carrying the given admin identity,
	// valid for the configured token lifetime.
	Issue(adminID uuid.UUID, email string) (string, error)

	// Validate parses and verifies a token string. It returns the
	// embedded claims, or an error when the signature is invalid,
	// the token is malformed, or it has expired.
	Validate(tokenString string) (*AdminClaims, error)
}
