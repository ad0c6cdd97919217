package service

import "context"

// OAuthUser holds the verified identity extracted from a provider ID token.
type OAuthUser struct {
	ProviderUserID string
	Email          string
	Name           string
	Picture        string
}

// OAuthService verifies identity tokens issued by an external provider.
type OAuthService interface {
	// VerifyIDToken validates the token's signature, issuer, audience
	// and expiry, and returns the verified identity. The email must be
	// verified by the provider.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
