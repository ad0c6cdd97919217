// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"sayma/config"
	"sayma/internal/delivery/http/middleware"
	"sayma/internal/delivery/http/response"
	domainerrors "sayma/internal/domain/errors"
	"sayma/internal/domain/service"
	"sayma/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandler holds dependencies for customer authentication handlers.
type AuthHandler struct {
	uc            usecase.AuthUsecase
	sessions      service.SessionStrategy
	adminSessions service.SessionStrategy
	logger        *slog.Logger
	secureCookies bool
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UC            usecase.AuthUsecase
	Sessions      service.SessionStrategy `name:"customerSessions"`
	AdminSessions service.SessionStrategy `name:"adminSessions"`
	Logger        *slog.Logger
	Config        *config.Config
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		uc:            params.UC,
		sessions:      params.Sessions,
		adminSessions: params.AdminSessions,
		logger:        params.Logger,
		secureCookies: params.Config.Auth.SecureCookies,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type googleSignInRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type checkEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type updateProfileRequest struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

type sessionUserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Image    string `json:"image,omitempty"`
	HasPhone bool   `json:"hasPhone"`
	IsAdmin  bool   `json:"isAdmin"`
}

func toSessionUserResponse(user *usecase.SessionUser) *sessionUserResponse {
	return &sessionUserResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		Name:     user.Name,
		Phone:    user.Phone,
		Image:    user.Image,
		HasPhone: user.HasPhone,
		IsAdmin:  user.IsAdmin,
	}
}

// Register handles customer registration. A session cookie is set on
// success so the new user is logged in immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RegisterAndLogin(c.Request().Context(), usecase.RegisterAndLoginInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token, output.ExpiresAt)

	return response.Success(c, http.StatusCreated, toSessionUserResponse(output.User), "Registration successful")
}

// Login handles the credentials login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token, output.ExpiresAt)

	return response.Success(c, http.StatusOK, toSessionUserResponse(output.User), "Login successful")
}

// GoogleSignIn handles the Google ID token login request.
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var req googleSignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid Google sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.GoogleSignIn(c.Request().Context(), usecase.GoogleSignInInput{
		IDToken: req.IDToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token, output.ExpiresAt)

	return response.Success(c, http.StatusOK, toSessionUserResponse(output.User), "Login successful")
}

// Me returns the logged-in customer's identity.
func (h *AuthHandler) Me(c echo.Context) error {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		return domainerrors.ErrUnauthorized
	}

	user, err := h.uc.Me(c.Request().Context(), principal.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSessionUserResponse(user), "Session resolved")
}

// Logout revokes the persisted session and expires the cookie. It
// succeeds even when no session cookie is present.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(h.sessions.CookieName()); err == nil && cookie.Value != "" {
		if err := h.uc.Logout(c.Request().Context(), cookie.Value); err != nil {
			h.logger.WarnContext(c.Request().Context(), "session revocation failed", slog.Any("error", err))
		}
	}

	// Both cookies are cleared so one logout button on the frontend
	// covers admins browsing the public site too.
	h.clearCookie(c, h.sessions.CookieName())
	h.clearCookie(c, h.adminSessions.CookieName())

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// CheckEmail reports whether an email is registered and whether it has
// a password, so the frontend can route between login flows.
func (h *AuthHandler) CheckEmail(c echo.Context) error {
	var req checkEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check-email input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CheckEmail(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{
		"exists":      output.Exists,
		"hasPassword": output.HasPassword,
	}, "Email checked")
}

// UpdateProfile updates name and phone for the logged-in customer.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		return domainerrors.ErrUnauthorized
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), usecase.UpdateProfileInput{
		UserID: principal.UserID,
		Name:   req.Name,
		Phone:  req.Phone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSessionUserResponse(user), "Profile updated")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     h.sessions.CookieName(),
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
