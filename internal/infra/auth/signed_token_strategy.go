package auth

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"sayma/internal/domain/service"
)

// AdminCookieName is the cookie carrying the signed admin token.
const AdminCookieName = "admin_token"

// signedTokenStrategy establishes admin sessions as self-contained
// signed tokens. Nothing is persisted: validity is entirely determined
// by the signature and the embedded expiry, and revocation on logout is
// limited to clearing the cookie.
type signedTokenStrategy struct {
	tokens service.TokenService
}

// NewSignedTokenStrategy is the constructor for signedTokenStrategy.
func NewSignedTokenStrategy(tokens service.TokenService) service.SessionStrategy {
	return &signedTokenStrategy{tokens: tokens}
}

func (s *signedTokenStrategy) Establish(_ context.Context, principal service.Principal) (string, time.Time, error) {
	token, err := s.tokens.Issue(principal.UserID, principal.Email)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "establish admin session")
	}

	claims, err := s.tokens.Validate(token)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "establish admin session")
	}

	return token, claims.ExpiresAt, nil
}

func (s *signedTokenStrategy) Resolve(_ context.Context, credential string) (*service.Principal, error) {
	claims, err := s.tokens.Validate(credential)
	if err != nil {
		return nil, err
	}

	return &service.Principal{
		UserID: claims.AdminID,
		Email:  claims.Email,
		Role:   claims.Role.String(),
	}, nil
}

// Revoke is a no-op: signed tokens cannot be invalidated server-side,
// the caller clears the cookie instead.
func (s *signedTokenStrategy) Revoke(_ context.Context, _ string) error {
	return nil
}

func (s *signedTokenStrategy) CookieName() string {
	return AdminCookieName
}
