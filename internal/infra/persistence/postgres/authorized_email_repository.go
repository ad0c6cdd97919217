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

// authorizedEmailRepository implements repository.AuthorizedEmailRepository using GORM.
type authorizedEmailRepository struct {
	db *gorm.DB
}

// NewAuthorizedEmailRepository is the constructor for authorizedEmailRepository.
func NewAuthorizedEmailRepository(db *gorm.DB) repository.AuthorizedEmailRepository {
	return &authorizedEmailRepository{db: db}
}

// Exists reports whether an exact-match row exists for the email.
func (repo *authorizedEmailRepository) Exists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AuthorizedEmailModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check authorized email")
	}

	return count > 0, nil
}

// Create adds an allow-list entry.
func (repo *authorizedEmailRepository) Create(ctx context.Context, entry *entity.AuthorizedEmail) error {
	entryM := &model.AuthorizedEmailModel{
		Email:   entry.Email,
		AddedBy: entry.AddedBy,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyAuthorized
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create authorized email")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// Delete removes an allow-list entry by ID.
func (repo *authorizedEmailRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AuthorizedEmailModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete authorized email")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAuthorizedEmailNotFound
	}

	return nil
}

// FindByID retrieves an entry by ID.
func (repo *authorizedEmailRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AuthorizedEmail, error) {
	var entryM model.AuthorizedEmailModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthorizedEmailNotFound
		}

		return nil, errors.Wrap(err, "failed to find authorized email by id")
	}

	return toAuthorizedEmailDomain(&entryM), nil
}

// List returns all entries, newest first.
func (repo *authorizedEmailRepository) List(ctx context.Context) ([]*entity.AuthorizedEmail, error) {
	var entryMs []*model.AuthorizedEmailModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&entryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list authorized emails")
	}

	entries := make([]*entity.AuthorizedEmail, 0, len(entryMs))
	for _, entryM := range entryMs {
		entries = append(entries, toAuthorizedEmailDomain(entryM))
	}

	return entries, nil
}

// toAuthorizedEmailDomain converts a GORM model to a domain entity.
func toAuthorizedEmailDomain(data *model.AuthorizedEmailModel) *entity.AuthorizedEmail {
	if data == nil {
		return nil
	}

	return &entity.AuthorizedEmail{
		ID:        data.ID,
		Email:     data.Email,
		AddedBy:   data.AddedBy,
		CreatedAt: data.CreatedAt,
	}
}
