package auth

import (
	"testing"
	"time"

	"sayma/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{AdminTokenTTL: 24 * time.Hour},
	}
	cfg.SecretKey.AdminToken = secret

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_admin_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	adminID := uuid.New()

	token, err := svc.Issue(adminID, "boss@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, adminID, claims.AdminID)
	assert.Equal(t, "boss@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role.String())
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt, time.Minute)
}

func TestJWTService_RejectsMissingSecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(""))

	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_admin_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := svc.Validate("clearly-not-a-jwt-token")

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret_one_very_long_for_testing_purposes"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret_two_very_long_for_testing_purposes"))
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New(), "boss@example.com")
	require.NoError(t, err)

	claims, err := verifier.Validate(token)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	secret := "test_admin_secret_key_very_long_for_testing"
	svc, err := NewJWTService(newTestConfig(secret))
	require.NoError(t, err)

	// Sign an already expired token with the same secret and claims shape.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uuid.New().String(),
		"email": "boss@example.com",
		"role":  "admin",
		"iat":   time.Now().Add(-2 * time.Hour).Unix(),
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	tokenString, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := svc.Validate(tokenString)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsForeignRole(t *testing.T) {
	secret := "test_admin_secret_key_very_long_for_testing"
	svc, err := NewJWTService(newTestConfig(secret))
	require.NoError(t, err)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uuid.New().String(),
		"email": "user@example.com",
		"role":  "user",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := forged.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := svc.Validate(tokenString)

	assert.Error(t, err)
	assert.Nil(t, claims)
}
