package middleware

import (
	domainerrors "sayma/internal/domain/errors"
	"sayma/internal/domain/service"
	"sayma/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Context keys set by the authentication gate.
const (
	keyPrincipal       = "principal"
	keySessionToken    = "session_credential"
	principalRoleUser  = "user"
	principalRoleAdmin = "admin"
)

// AuthMiddleware is the single authentication gate for all protected
// routes. Handlers never inspect cookies themselves; they read the
// principal this gate stores on the request context.
type AuthMiddleware struct {
	customerSessions service.SessionStrategy
	adminSessions    service.SessionStrategy
	allowlist        impl.AllowlistChecker
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	CustomerSessions service.SessionStrategy `name:"customerSessions"`
	AdminSessions    service.SessionStrategy `name:"adminSessions"`
	Allowlist        impl.AllowlistChecker
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		customerSessions: params.CustomerSessions,
		adminSessions:    params.AdminSessions,
		allowlist:        params.Allowlist,
	}
}

// RequireCustomer rejects requests without a valid customer session.
func (m *AuthMiddleware) RequireCustomer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, credential, err := m.resolve(c, m.customerSessions)
		if err != nil {
			return domainerrors.ErrUnauthorized
		}

		c.Set(keyPrincipal, principal)
		c.Set(keySessionToken, credential)

		return next(c)
	}
}

// RequireAdmin rejects requests without a valid admin token. The
// allow-list is re-checked on every request so removing an email locks
// the admin out immediately, even with an unexpired token.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, credential, err := m.resolve(c, m.adminSessions)
		if err != nil {
			return domainerrors.ErrUnauthorized
		}
		if principal.Role != principalRoleAdmin {
			return domainerrors.ErrForbidden
		}

		allowed, err := m.allowlist.IsEmailAuthorized(c.Request().Context(), principal.Email)
		if err != nil || !allowed {
			return domainerrors.ErrAccessDenied
		}

		c.Set(keyPrincipal, principal)
		c.Set(keySessionToken, credential)

		return next(c)
	}
}

// OptionalAdmin resolves the admin cookie when present but never
// rejects the request. Handlers behind it serve public traffic and
// widen their output for verified admins.
func (m *AuthMiddleware) OptionalAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, credential, err := m.resolve(c, m.adminSessions)
		if err == nil && principal.Role == principalRoleAdmin {
			allowed, err := m.allowlist.IsEmailAuthorized(c.Request().Context(), principal.Email)
			if err == nil && allowed {
				c.Set(keyPrincipal, principal)
				c.Set(keySessionToken, credential)
			}
		}

		return next(c)
	}
}

// resolve extracts the strategy's cookie and maps it to a principal.
func (m *AuthMiddleware) resolve(c echo.Context, sessions service.SessionStrategy) (*service.Principal, string, error) {
	cookie, err := c.Cookie(sessions.CookieName())
	if err != nil || cookie.Value == "" {
		return nil, "", domainerrors.ErrUnauthorized
	}

	principal, err := sessions.Resolve(c.Request().Context(), cookie.Value)
	if err != nil {
		return nil, "", err
	}

	return principal, cookie.Value, nil
}

// PrincipalFrom returns the authenticated principal stored by the gate,
// or nil on unauthenticated routes.
func PrincipalFrom(c echo.Context) *service.Principal {
	principal, _ := c.Get(keyPrincipal).(*service.Principal)

	return principal
}

// CredentialFrom returns the raw session credential stored by the gate.
func CredentialFrom(c echo.Context) string {
	credential, _ := c.Get(keySessionToken).(string)

	return credential
}
