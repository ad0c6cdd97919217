package handler

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"sayma/internal/delivery/http/middleware"
	"sayma/internal/delivery/http/response"
	"sayma/internal/domain/entity"
	"sayma/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxUploadsPerRequest bounds a single photo upload request.
const maxUploadsPerRequest = 10

// MaidHandler holds dependencies for the housemaid catalog handlers.
type MaidHandler struct {
	uc     usecase.MaidUsecase
	logger *slog.Logger
}

// NewMaidHandler is the constructor for MaidHandler, injected by Fx.
func NewMaidHandler(uc usecase.MaidUsecase, logger *slog.Logger) *MaidHandler {
	return &MaidHandler{uc: uc, logger: logger}
}

type maidRequest struct {
	Name                string   `json:"name" validate:"required"`
	NameAr              string   `json:"nameAr"`
	Nationality         string   `json:"nationality" validate:"required"`
	NationalityAr       string   `json:"nationalityAr"`
	Role                string   `json:"role" validate:"required"`
	RoleAr              string   `json:"roleAr"`
	Experience          int      `json:"experience" validate:"min=0"`
	Salary              int      `json:"salary" validate:"min=0"`
	Age                 int      `json:"age" validate:"min=0"`
	Skills              []string `json:"skills"`
	SkillsAr            []string `json:"skillsAr"`
	Languages           []string `json:"languages"`
	LanguagesAr         []string `json:"languagesAr"`
	PreviousCountries   []string `json:"previousCountries"`
	PreviousCountriesAr []string `json:"previousCountriesAr"`
	Images              []string `json:"images"`
	Hidden              bool     `json:"hidden"`
}

func (r *maidRequest) toInput() usecase.MaidInput {
	return usecase.MaidInput{
		Name:                r.Name,
		NameAr:              r.NameAr,
		Nationality:         r.Nationality,
		NationalityAr:       r.NationalityAr,
		Role:                r.Role,
		RoleAr:              r.RoleAr,
		Experience:          r.Experience,
		Salary:              r.Salary,
		Age:                 r.Age,
		Skills:              r.Skills,
		SkillsAr:            r.SkillsAr,
		Languages:           r.Languages,
		LanguagesAr:         r.LanguagesAr,
		PreviousCountries:   r.PreviousCountries,
		PreviousCountriesAr: r.PreviousCountriesAr,
		Images:              r.Images,
		Hidden:              r.Hidden,
	}
}

type maidResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	NameAr              string    `json:"nameAr,omitempty"`
	Nationality         string    `json:"nationality"`
	NationalityAr       string    `json:"nationalityAr,omitempty"`
	Role                string    `json:"role"`
	RoleAr              string    `json:"roleAr,omitempty"`
	Experience          int       `json:"experience"`
	Salary              int       `json:"salary"`
	Age                 int       `json:"age"`
	Skills              []string  `json:"skills"`
	SkillsAr            []string  `json:"skillsAr"`
	Languages           []string  `json:"languages"`
	LanguagesAr         []string  `json:"languagesAr"`
	PreviousCountries   []string  `json:"previousCountries"`
	PreviousCountriesAr []string  `json:"previousCountriesAr"`
	Images              []string  `json:"images"`
	Hidden              bool      `json:"hidden"`
	CreatedAt           time.Time `json:"createdAt"`
}

func toMaidResponse(m *entity.Maid) *maidResponse {
	return &maidResponse{
		ID:                  m.ID.String(),
		Name:                m.Name,
		NameAr:              m.NameAr,
		Nationality:         m.Nationality,
		NationalityAr:       m.NationalityAr,
		Role:                m.Role,
		RoleAr:              m.RoleAr,
		Experience:          m.Experience,
		Salary:              m.Salary,
		Age:                 m.Age,
		Skills:              m.Skills,
		SkillsAr:            m.SkillsAr,
		Languages:           m.Languages,
		LanguagesAr:         m.LanguagesAr,
		PreviousCountries:   m.PreviousCountries,
		PreviousCountriesAr: m.PreviousCountriesAr,
		Images:              m.Images,
		Hidden:              m.Hidden,
		CreatedAt:           m.CreatedAt,
	}
}

func toMaidResponses(maids []*entity.Maid) []*maidResponse {
	out := make([]*maidResponse, 0, len(maids))
	for _, m := range maids {
		out = append(out, toMaidResponse(m))
	}

	return out
}

// List returns the catalog. Hidden profiles are included only when a
// verified admin asks for them.
func (h *MaidHandler) List(c echo.Context) error {
	includeHidden := c.QueryParam("include_hidden") == "true" && middleware.PrincipalFrom(c) != nil

	maids, err := h.uc.List(c.Request().Context(), includeHidden)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMaidResponses(maids), "Maids retrieved")
}

// Get returns a single profile.
func (h *MaidHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid id")
	}

	maid, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMaidResponse(maid), "Maid retrieved")
}

// Create adds a new profile.
func (h *MaidHandler) Create(c echo.Context) error {
	var req maidRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid maid input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	maid, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMaidResponse(maid), "Maid created")
}

// Update replaces a profile's editable fields.
func (h *MaidHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid id")
	}

	var req maidRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid maid input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	maid, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMaidResponse(maid), "Maid updated")
}

// Delete removes a profile and its stored photos.
func (h *MaidHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Maid deleted"}, "Maid deleted")
}

// ToggleVisibility flips the hidden flag.
func (h *MaidHandler) ToggleVisibility(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid id")
	}

	maid, err := h.uc.ToggleVisibility(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMaidResponse(maid), "Visibility toggled")
}

// UploadPhotos stores multipart image uploads and appends their URLs to
// the profile.
func (h *MaidHandler) UploadPhotos(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid id")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid multipart form")
	}

	files := form.File["images"]
	if len(files) == 0 {
		return response.BadRequest(c, "INVALID_INPUT", "No images provided")
	}
	if len(files) > maxUploadsPerRequest {
		return response.BadRequest(c, "INVALID_INPUT", "Too many images in one request")
	}

	uploads := make([]usecase.PhotoUpload, 0, len(files))
	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return errors.WithStack(err)
		}

		data, err := io.ReadAll(file)
		closeErr := file.Close()
		if err != nil {
			return errors.WithStack(err)
		}
		if closeErr != nil {
			h.logger.WarnContext(c.Request().Context(), "upload close failed", slog.Any("error", closeErr))
		}

		uploads = append(uploads, usecase.PhotoUpload{
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	maid, err := h.uc.AddPhotos(c.Request().Context(), id, uploads)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMaidResponse(maid), "Photos uploaded")
}
