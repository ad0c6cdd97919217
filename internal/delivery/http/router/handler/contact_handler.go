package handler

import (
	"net/http"
	"time"

	"sayma/internal/delivery/http/response"
	"sayma/internal/domain/entity"
	"sayma/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContactHandler holds dependencies for contact form handlers.
type ContactHandler struct {
	uc usecase.ContactUsecase
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Message string `json:"message" validate:"required"`
}

type updateContactStatusRequest struct {
	ID     string `json:"id" validate:"required,uuid"`
	Status string `json:"status" validate:"required"`
}

type contactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func toContactResponse(f *entity.ContactForm) *contactResponse {
	return &contactResponse{
		ID:        f.ID.String(),
		Name:      f.Name,
		Phone:     f.Phone,
		Email:     f.Email,
		Message:   f.Message,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
	}
}

// Submit stores a contact form submission from the public site.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	form, err := h.uc.Submit(c.Request().Context(), usecase.ContactInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toContactResponse(form), "Message received")
}

// List returns all submissions for the back office.
func (h *ContactHandler) List(c echo.Context) error {
	forms, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*contactResponse, 0, len(forms))
	for _, f := range forms {
		out = append(out, toContactResponse(f))
	}

	return response.Success(c, http.StatusOK, out, "Submissions retrieved")
}

// UpdateStatus moves a submission through triage.
func (h *ContactHandler) UpdateStatus(c echo.Context) error {
	var req updateContactStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid id")
	}

	form, err := h.uc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContactResponse(form), "Status updated")
}

// Delete removes the submission named by the id query parameter.
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.QueryParam("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Submission deleted"}, "Submission deleted")
}
