package handler

import (
	"log/slog"
	"net/http"
	"time"

	"sayma/config"
	"sayma/internal/delivery/http/middleware"
	"sayma/internal/delivery/http/response"
	"sayma/internal/domain/entity"
	domainerrors "sayma/internal/domain/errors"
	"sayma/internal/domain/service"
	"sayma/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminHandler holds dependencies for back-office handlers.
type AdminHandler struct {
	uc            usecase.AdminUsecase
	sessions      service.SessionStrategy
	logger        *slog.Logger
	secureCookies bool
}

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	UC       usecase.AdminUsecase
	Sessions service.SessionStrategy `name:"adminSessions"`
	Logger   *slog.Logger
	Config   *config.Config
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		uc:            params.UC,
		sessions:      params.Sessions,
		logger:        params.Logger,
		secureCookies: params.Config.Auth.SecureCookies,
	}
}

type otpRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type otpVerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

type addAuthorizedEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type adminInfoResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name,omitempty"`
	Picture     string     `json:"picture,omitempty"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

func toAdminInfoResponse(info *usecase.AdminInfo) *adminInfoResponse {
	return &adminInfoResponse{
		ID:          info.ID.String(),
		Email:       info.Email,
		Name:        info.Name,
		Picture:     info.Picture,
		LastLoginAt: info.LastLoginAt,
	}
}

type authorizedEmailResponse struct {
	ID      string    `json:"id"`
	Email   string    `json:"email"`
	AddedBy string    `json:"addedBy,omitempty"`
	AddedAt time.Time `json:"addedAt"`
}

func toAuthorizedEmailResponse(e *entity.AuthorizedEmail) *authorizedEmailResponse {
	return &authorizedEmailResponse{
		ID:      e.ID.String(),
		Email:   e.Email,
		AddedBy: e.AddedBy,
		AddedAt: e.CreatedAt,
	}
}

type customerResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Providers []string  `json:"providers"`
	CreatedAt time.Time `json:"createdAt"`
}

// RequestOTP asks for a one-time code to be emailed to an allow-listed
// address. The response body never reveals whether the email is on the
// allow-list beyond the status code.
func (h *AdminHandler) RequestOTP(c echo.Context) error {
	var req otpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RequestOTP(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "OTP sent"}, "OTP sent")
}

// VerifyOTP exchanges a valid code for the signed admin cookie.
func (h *AdminHandler) VerifyOTP(c echo.Context) error {
	var req otpVerifyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.VerifyOTP(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setAdminCookie(c, output.Token, output.ExpiresAt)

	return response.Success(c, http.StatusOK, toAdminInfoResponse(output.Admin), "Login successful")
}

// Me returns the logged-in admin's identity.
func (h *AdminHandler) Me(c echo.Context) error {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		return domainerrors.ErrUnauthorized
	}

	info, err := h.uc.Me(c.Request().Context(), principal.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAdminInfoResponse(info), "Session resolved")
}

// Logout expires the admin cookie. The token itself is stateless, so
// nothing is revoked server side.
func (h *AdminHandler) Logout(c echo.Context) error {
	h.clearAdminCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// ListAuthorizedEmails returns the admin allow-list.
func (h *AdminHandler) ListAuthorizedEmails(c echo.Context) error {
	emails, err := h.uc.ListAuthorizedEmails(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*authorizedEmailResponse, 0, len(emails))
	for _, e := range emails {
		out = append(out, toAuthorizedEmailResponse(e))
	}

	return response.Success(c, http.StatusOK, out, "Authorized emails retrieved")
}

// AddAuthorizedEmail adds an email to the allow-list.
func (h *AdminHandler) AddAuthorizedEmail(c echo.Context) error {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		return domainerrors.ErrUnauthorized
	}

	var req addAuthorizedEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	added, err := h.uc.AddAuthorizedEmail(c.Request().Context(), req.Email, principal.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAuthorizedEmailResponse(added), "Email authorized")
}

// RemoveAuthorizedEmail removes the allow-list entry named by the id
// query parameter. Admins cannot remove their own email.
func (h *AdminHandler) RemoveAuthorizedEmail(c echo.Context) error {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		return domainerrors.ErrUnauthorized
	}

	id, err := uuid.Parse(c.QueryParam("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid id")
	}

	if err := h.uc.RemoveAuthorizedEmail(c.Request().Context(), id, principal.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Email removed"}, "Email removed")
}

// ListCustomers returns all registered customers for the back office.
func (h *AdminHandler) ListCustomers(c echo.Context) error {
	customers, err := h.uc.ListCustomers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*customerResponse, 0, len(customers))
	for _, customer := range customers {
		out = append(out, &customerResponse{
			ID:        customer.ID.String(),
			Email:     customer.Email,
			Name:      customer.Name,
			Phone:     customer.Phone,
			Providers: customer.Providers,
			CreatedAt: customer.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, out, "Customers retrieved")
}

func (h *AdminHandler) setAdminCookie(c echo.Context, token string, expiresAt time.Time) {
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

func (h *AdminHandler) clearAdminCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.sessions.CookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}
