package handler

import (
	"net/http"
	"time"

	"sayma/internal/delivery/http/middleware"
	"sayma/internal/delivery/http/response"
	"sayma/internal/domain/entity"
	domainerrors "sayma/internal/domain/errors"
	"sayma/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

type createReviewRequest struct {
	MaidID  *string `json:"maidId"`
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment string  `json:"comment" validate:"max=500"`
}

type reviewResponse struct {
	ID        string    `json:"id"`
	MaidID    *string   `json:"maidId,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	Hidden    bool      `json:"hidden"`
	UserName  string    `json:"userName,omitempty"`
	MaidName  string    `json:"maidName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toReviewResponse(r *entity.Review) *reviewResponse {
	out := &reviewResponse{
		ID:        r.ID.String(),
		Rating:    r.Rating,
		Comment:   r.Comment,
		Hidden:    r.Hidden,
		CreatedAt: r.CreatedAt,
	}
	if r.MaidID != nil {
		id := r.MaidID.String()
		out.MaidID = &id
	}
	if r.User != nil {
		out.UserName = r.User.Name
	}
	if r.Maid != nil {
		out.MaidName = r.Maid.Name
	}

	return out
}

// Create adds a review by the logged-in customer.
func (h *ReviewHandler) Create(c echo.Context) error {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		return domainerrors.ErrUnauthorized
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	var maidID *uuid.UUID
	if req.MaidID != nil && *req.MaidID != "" {
		parsed, err := uuid.Parse(*req.MaidID)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid maid id")
		}
		maidID = &parsed
	}

	review, err := h.uc.Create(c.Request().Context(), usecase.CreateReviewInput{
		UserID:  principal.UserID,
		MaidID:  maidID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toReviewResponse(review), "Review created")
}

// List returns visible reviews, optionally filtered by maid.
func (h *ReviewHandler) List(c echo.Context) error {
	var maidID *uuid.UUID
	if raw := c.QueryParam("maidId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid maid id")
		}
		maidID = &parsed
	}

	reviews, err := h.uc.List(c.Request().Context(), maidID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toReviewResponse(r))
	}

	return response.Success(c, http.StatusOK, out, "Reviews retrieved")
}

type toggleReviewRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

// ToggleVisibility flips a review's hidden flag. Mounted behind the
// admin gate.
func (h *ReviewHandler) ToggleVisibility(c echo.Context) error {
	var req toggleReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid id")
	}

	review, err := h.uc.ToggleVisibility(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toReviewResponse(review), "Visibility toggled")
}
