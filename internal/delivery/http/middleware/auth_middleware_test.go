package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "sayma/internal/domain/errors"
	"sayma/internal/domain/service"
	mockservice "sayma/internal/mocks/service"
)

// gateAllowlist satisfies impl.AllowlistChecker with a fixed answer.
type gateAllowlist struct {
	allowed bool
	err     error
}

func (a gateAllowlist) IsEmailAuthorized(_ context.Context, _ string) (bool, error) {
	return a.allowed, a.err
}

type authMiddlewareFixtures struct {
	customerSessions *mockservice.MockSessionStrategy
	adminSessions    *mockservice.MockSessionStrategy
}

func createTestAuthMiddleware(t *testing.T, allowlist gateAllowlist) (*AuthMiddleware, authMiddlewareFixtures) {
	t.Helper()

	fx := authMiddlewareFixtures{
		customerSessions: mockservice.NewMockSessionStrategy(t),
		adminSessions:    mockservice.NewMockSessionStrategy(t),
	}
	gate := NewAuthMiddleware(AuthMiddlewareParams{
		CustomerSessions: fx.customerSessions,
		AdminSessions:    fx.adminSessions,
		Allowlist:        allowlist,
	})

	return gate, fx
}

func newGateContext(t *testing.T, cookies ...*http.Cookie) echo.Context {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

// nextProbe records whether the wrapped handler ran and what it saw.
func nextProbe(called *bool, principal **service.Principal) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true
		if principal != nil {
			*principal = PrincipalFrom(c)
		}

		return nil
	}
}

func TestRequireCustomer_MissingCookie(t *testing.T) {
	gate, fx := createTestAuthMiddleware(t, gateAllowlist{})
	fx.customerSessions.EXPECT().CookieName().Return("session_token")

	called := false
	err := gate.RequireCustomer(nextProbe(&called, nil))(newGateContext(t))

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.False(t, called)
}

func TestRequireCustomer_InvalidSession(t *testing.T) {
	gate, fx := createTestAuthMiddleware(t, gateAllowlist{})
	fx.customerSessions.EXPECT().CookieName().Return("session_token")
	fx.customerSessions.EXPECT().Resolve(mock.Anything, "stale").
		Return(nil, errors.New("session expired"))

	called := false
	c := newGateContext(t, &http.Cookie{Name: "session_token", Value: "stale"})
	err := gate.RequireCustomer(nextProbe(&called, nil))(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.False(t, called)
}

func TestRequireCustomer_Success(t *testing.T) {
	gate, fx := createTestAuthMiddleware(t, gateAllowlist{})
	userID := uuid.New()

	fx.customerSessions.EXPECT().CookieName().Return("session_token")
	fx.customerSessions.EXPECT().Resolve(mock.Anything, "valid-token").
		Return(&service.Principal{UserID: userID, Email: "user@example.com", Role: "user"}, nil)

	called := false
	var seen *service.Principal
	c := newGateContext(t, &http.Cookie{Name: "session_token", Value: "valid-token"})
	err := gate.RequireCustomer(nextProbe(&called, &seen))(c)

	require.NoError(t, err)
	assert.True(t, called)
	require.NotNil(t, seen)
	assert.Equal(t, userID, seen.UserID)
	assert.Equal(t, "valid-token", CredentialFrom(c))
}

func TestRequireAdmin_Success(t *testing.T) {
	gate, fx := createTestAuthMiddleware(t, gateAllowlist{allowed: true})
	adminID := uuid.New()

	fx.adminSessions.EXPECT().CookieName().Return("admin_token")
	fx.adminSessions.EXPECT().Resolve(mock.Anything, "admin-credential").
		Return(&service.Principal{UserID: adminID, Email: "admin@example.com", Role: "admin"}, nil)

	called := false
	var seen *service.Principal
	c := newGateContext(t, &http.Cookie{Name: "admin_token", Value: "admin-credential"})
	err := gate.RequireAdmin(nextProbe(&called, &seen))(c)

	require.NoError(t, err)
	assert.True(t, called)
	require.NotNil(t, seen)
	assert.Equal(t, "admin@example.com", seen.Email)
}

func TestRequireAdmin_RejectsCustomerPrincipal(t *testing.T) {
	gate, fx := createTestAuthMiddleware(t, gateAllowlist{allowed: true})

	fx.adminSessions.EXPECT().CookieName().Return("admin_token")
	fx.adminSessions.EXPECT().Resolve(mock.Anything, "user-credential").
		Return(&service.Principal{UserID: uuid.New(), Email: "user@example.com", Role: "user"}, nil)

	called := false
	c := newGateContext(t, &http.Cookie{Name: "admin_token", Value: "user-credential"})
	err := gate.RequireAdmin(nextProbe(&called, nil))(c)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.False(t, called)
}

func TestRequireAdmin_RevokedAllowlistLocksOut(t *testing.T) {
	// The token is still valid; only the allow-list entry is gone.
	gate, fx := createTestAuthMiddleware(t, gateAllowlist{allowed: false})

	fx.adminSessions.EXPECT().CookieName().Return("admin_token")
	fx.adminSessions.EXPECT().Resolve(mock.Anything, "admin-credential").
		Return(&service.Principal{UserID: uuid.New(), Email: "removed@example.com", Role: "admin"}, nil)

	called := false
	c := newGateContext(t, &http.Cookie{Name: "admin_token", Value: "admin-credential"})
	err := gate.RequireAdmin(nextProbe(&called, nil))(c)

	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
	assert.False(t, called)
}

func TestRequireAdmin_AllowlistLookupFailure(t *testing.T) {
	gate, fx := createTestAuthMiddleware(t, gateAllowlist{err: errors.New("cache down")})

	fx.adminSessions.EXPECT().CookieName().Return("admin_token")
	fx.adminSessions.EXPECT().Resolve(mock.Anything, "admin-credential").
		Return(&service.Principal{UserID: uuid.New(), Email: "admin@example.com", Role: "admin"}, nil)

	c := newGateContext(t, &http.Cookie{Name: "admin_token", Value: "admin-credential"})
	err := gate.RequireAdmin(nextProbe(new(bool), nil))(c)

	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestOptionalAdmin_AnonymousPassesThrough(t *testing.T) {
	gate, fx := createTestAuthMiddleware(t, gateAllowlist{})
	fx.adminSessions.EXPECT().CookieName().Return("admin_token")

	called := false
	var seen *service.Principal
	err := gate.OptionalAdmin(nextProbe(&called, &seen))(newGateContext(t))

	require.NoError(t, err)
	assert.True(t, called)
	assert.Nil(t, seen)
}

func TestOptionalAdmin_VerifiedAdminGetsPrincipal(t *testing.T) {
	gate, fx := createTestAuthMiddleware(t, gateAllowlist{allowed: true})

	fx.adminSessions.EXPECT().CookieName().Return("admin_token")
	fx.adminSessions.EXPECT().Resolve(mock.Anything, "admin-credential").
		Return(&service.Principal{UserID: uuid.New(), Email: "admin@example.com", Role: "admin"}, nil)

	called := false
	var seen *service.Principal
	c := newGateContext(t, &http.Cookie{Name: "admin_token", Value: "admin-credential"})
	err := gate.OptionalAdmin(nextProbe(&called, &seen))(c)

	require.NoError(t, err)
	assert.True(t, called)
	require.NotNil(t, seen)
	assert.Equal(t, "admin@example.com", seen.Email)
}

func TestOptionalAdmin_UnlistedAdminStaysAnonymous(t *testing.T) {
	gate, fx := createTestAuthMiddleware(t, gateAllowlist{allowed: false})

	fx.adminSessions.EXPECT().CookieName().Return("admin_token")
	fx.adminSessions.EXPECT().Resolve(mock.Anything, "admin-credential").
		Return(&service.Principal{UserID: uuid.New(), Email: "removed@example.com", Role: "admin"}, nil)

	called := false
	var seen *service.Principal
	c := newGateContext(t, &http.Cookie{Name: "admin_token", Value: "admin-credential"})
	err := gate.OptionalAdmin(nextProbe(&called, &seen))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Nil(t, seen)
}
