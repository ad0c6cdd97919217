package postgres

import (
	"context"

	"sayma/internal/domain/entity"
	domainerrors "sayma/internal/domain/errors"
	"sayma/internal/domain/repository"
	"sayma/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// maidRepository implements the repository.MaidRepository interface using GORM.
type maidRepository struct {
	db *gorm.DB
}

// NewMaidRepository is the constructor for maidRepository.
func NewMaidRepository(db *gorm.DB) repository.MaidRepository {
	return &maidRepository{db: db}
}

// Create persists a new profile.
func (repo *maidRepository) Create(ctx context.Context, maid *entity.Maid) error {
	maidM := fromMaidDomain(maid)

	if err := repo.db.WithContext(ctx).Create(maidM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create maid")
	}

	maid.ID = maidM.ID
	maid.CreatedAt = maidM.CreatedAt
	maid.UpdatedAt = maidM.UpdatedAt

	return nil
}

// Update replaces an existing profile.
func (repo *maidRepository) Update(ctx context.Context, maid *entity.Maid) error {
	maidM := fromMaidDomain(maid)

	result := repo.db.WithContext(ctx).
		Model(&model.MaidModel{}).
		Where("id = ?", maidM.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(maidM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update maid")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMaidNotFound
	}

	return nil
}

// Delete removes a profile by ID.
func (repo *maidRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MaidModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete maid")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMaidNotFound
	}

	return nil
}

// FindByID retrieves a profile by ID.
func (repo *maidRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Maid, error) {
	var maidM model.MaidModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&maidM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMaidNotFound
		}

		return nil, errors.Wrap(err, "failed to find maid by id")
	}

	return toMaidDomain(&maidM), nil
}

// List returns profiles newest first, excluding hidden ones unless asked.
func (repo *maidRepository) List(ctx context.Context, includeHidden bool) ([]*entity.Maid, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if !includeHidden {
		query = query.Where("hidden = ?", false)
	}

	var maidMs []*model.MaidModel
	if err := query.Find(&maidMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list maids")
	}

	maids := make([]*entity.Maid, 0, len(maidMs))
	for _, maidM := range maidMs {
		maids = append(maids, toMaidDomain(maidM))
	}

	return maids, nil
}

// --- Mapper Functions ---

// toMaidDomain converts a GORM MaidModel to a domain Maid entity.
func toMaidDomain(data *model.MaidModel) *entity.Maid {
	if data == nil {
		return nil
	}

	return &entity.Maid{
		ID:                  data.ID,
		Name:                data.Name,
		NameAr:              data.NameAr,
		Nationality:         data.Nationality,
		NationalityAr:       data.NationalityAr,
		Role:                data.Role,
		RoleAr:              data.RoleAr,
		Experience:          data.Experience,
		Salary:              data.Salary,
		Age:                 data.Age,
		Skills:              data.Skills,
		SkillsAr:            data.SkillsAr,
		Languages:           data.Languages,
		LanguagesAr:         data.LanguagesAr,
		PreviousCountries:   data.PreviousCountries,
		PreviousCountriesAr: data.PreviousCountriesAr,
		Images:              data.Images,
		Hidden:              data.Hidden,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromMaidDomain converts a domain Maid entity to a GORM MaidModel.
func fromMaidDomain(data *entity.Maid) *model.MaidModel {
	if data == nil {
		return nil
	}

	return &model.MaidModel{
		ID:                  data.ID,
		Name:                data.Name,
		NameAr:              data.NameAr,
		Nationality:         data.Nationality,
		NationalityAr:       data.NationalityAr,
		Role:                data.Role,
		RoleAr:              data.RoleAr,
		Experience:          data.Experience,
		Salary:              data.Salary,
		Age:                 data.Age,
		Skills:              data.Skills,
		SkillsAr:            data.SkillsAr,
		Languages:           data.Languages,
		LanguagesAr:         data.LanguagesAr,
		PreviousCountries:   data.PreviousCountries,
		PreviousCountriesAr: data.PreviousCountriesAr,
		Images:              data.Images,
		Hidden:              data.Hidden,
	}
}
