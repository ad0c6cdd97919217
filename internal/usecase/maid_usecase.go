package usecase

import (
	"context"

	"github.com/google/uuid"

	"sayma/internal/domain/entity"
)

// MaidInput defines the editable fields of a housemaid profile.
type MaidInput struct {
	Name                string
	NameAr              string
	Nationality         string
	NationalityAr       string
	Role                string
	RoleAr              string
	Experience          int
	Salary              int
	Age                 int
	Skills              []string
	SkillsAr            []string
	Languages           []string
	LanguagesAr         []string
	PreviousCountries   []string
	PreviousCountriesAr []string
	Images              []string
	Hidden              bool
}

// PhotoUpload carries one uploaded image.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MaidUsecase defines the housemaid catalog operations.
type MaidUsecase interface {
	// List returns profiles for display. Hidden profiles are included
	// only for admin callers.
	List(ctx context.Context, includeHidden bool) ([]*entity.Maid, error)

	// Get retrieves a single profile.
	Get(ctx context.Context, id uuid.UUID) (*entity.Maid, error)

	// Create adds a new profile.
	Create(ctx context.Context, input MaidInput) (*entity.Maid, error)

	// Update replaces a profile's editable fields.
	Update(ctx context.Context, id uuid.UUID, input MaidInput) (*entity.Maid, error)

	// Delete removes a profile and its stored photos.
	Delete(ctx context.Context, id uuid.UUID) error

	// ToggleVisibility flips the hidden flag.
	ToggleVisibility(ctx context.Context, id uuid.UUID) (*entity.Maid, error)

	// AddPhotos stores uploaded images and appends their URLs to the
	// profile.
	AddPhotos(ctx context.Context, id uuid.UUID, uploads []PhotoUpload) (*entity.Maid, error)
}
