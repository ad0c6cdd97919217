package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "sayma/internal/delivery/context"
	"sayma/internal/domain/entity"
	domainerrors "sayma/internal/domain/errors"
	"sayma/internal/domain/repository"
	"sayma/internal/domain/service"
	"sayma/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maidService implements the MaidUsecase interface.
type maidService struct {
	maidRepo repository.MaidRepository
	photos   service.PhotoStore
	logger   *slog.Logger
}

// MaidServiceParams holds dependencies for maidService, injected by Fx.
type MaidServiceParams struct {
	fx.In

	MaidRepo repository.MaidRepository
	Photos   service.PhotoStore
	Logger   *slog.Logger
}

// NewMaidService is the constructor for maidService.
func NewMaidService(params MaidServiceParams) usecase.MaidUsecase {
	return &maidService{
		maidRepo: params.MaidRepo,
		photos:   params.Photos,
		logger:   params.Logger,
	}
}

func (srv *maidService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns profiles for display.
func (srv *maidService) List(ctx context.Context, includeHidden bool) ([]*entity.Maid, error) {
	return srv.maidRepo.List(ctx, includeHidden)
}

// Get retrieves a single profile.
func (srv *maidService) Get(ctx context.Context, id uuid.UUID) (*entity.Maid, error) {
	return srv.maidRepo.FindByID(ctx, id)
}

// Create adds a new profile.
func (srv *maidService) Create(ctx context.Context, input usecase.MaidInput) (*entity.Maid, error) {
	maid, err := maidFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := srv.maidRepo.Create(ctx, maid); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Maid profile created", slog.Any("maidID", maid.ID))

	return maid, nil
}

// Update replaces a profile's editable fields.
func (srv *maidService) Update(ctx context.Context, id uuid.UUID, input usecase.MaidInput) (*entity.Maid, error) {
	maid, err := maidFromInput(input)
	if err != nil {
		return nil, err
	}
	maid.ID = id

	if err := srv.maidRepo.Update(ctx, maid); err != nil {
		return nil, err
	}

	return srv.maidRepo.FindByID(ctx, id)
}

// Delete removes a profile and its stored photos.
func (srv *maidService) Delete(ctx context.Context, id uuid.UUID) error {
	maid, err := srv.maidRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.maidRepo.Delete(ctx, id); err != nil {
		return err
	}

	// The row is gone; orphaned photos only waste space, so deletion
	// failures are logged and swallowed.
	for _, url := range maid.Images {
		if delErr := srv.photos.Delete(ctx, url); delErr != nil {
			srv.log(ctx).Warn("Failed to delete maid photo", slog.String("url", url), slog.Any("error", delErr))
		}
	}

	srv.log(ctx).Info("Maid profile deleted", slog.Any("maidID", id))

	return nil
}

// ToggleVisibility flips the hidden flag.
func (srv *maidService) ToggleVisibility(ctx context.Context, id uuid.UUID) (*entity.Maid, error) {
	maid, err := srv.maidRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	maid.Hidden = !maid.Hidden
	if err := srv.maidRepo.Update(ctx, maid); err != nil {
		return nil, err
	}

	return maid, nil
}

// AddPhotos stores uploaded images and appends their URLs to the profile.
func (srv *maidService) AddPhotos(ctx context.Context, id uuid.UUID, uploads []usecase.PhotoUpload) (*entity.Maid, error) {
	if len(uploads) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("no files uploaded")
	}

	maid, err := srv.maidRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		if !strings.HasPrefix(upload.ContentType, "image/") {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("only image uploads are accepted")
		}

		url, saveErr := srv.photos.Save(ctx, upload.Filename, upload.ContentType, upload.Data)
		if saveErr != nil {
			return nil, errors.Wrap(saveErr, "failed to store photo")
		}
		urls = append(urls, url)
	}

	maid.Images = append(maid.Images, urls...)
	if err := srv.maidRepo.Update(ctx, maid); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Maid photos added", slog.Any("maidID", id), slog.Int("count", len(urls)))

	return maid, nil
}

// maidFromInput validates and maps the input DTO to an entity.
func maidFromInput(input usecase.MaidInput) (*entity.Maid, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}
	if input.Experience < 0 || input.Salary < 0 || input.Age < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("numeric fields must not be negative")
	}

	return &entity.Maid{
		Name:                strings.TrimSpace(input.Name),
		NameAr:              strings.TrimSpace(input.NameAr),
		Nationality:         input.Nationality,
		NationalityAr:       input.NationalityAr,
		Role:                input.Role,
		RoleAr:              input.RoleAr,
		Experience:          input.Experience,
		Salary:              input.Salary,
		Age:                 input.Age,
		Skills:              input.Skills,
		SkillsAr:            input.SkillsAr,
		Languages:           input.Languages,
		LanguagesAr:         input.LanguagesAr,
		PreviousCountries:   input.PreviousCountries,
		PreviousCountriesAr: input.PreviousCountriesAr,
		Images:              input.Images,
		Hidden:              input.Hidden,
	}, nil
}
