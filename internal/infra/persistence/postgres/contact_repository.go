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

// contactRepository implements the repository.ContactRepository interface using GORM.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

// Create persists a new submission.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.ContactForm) error {
	contactM := &model.ContactFormModel{
		Name:    contact.Name,
		Phone:   contact.Phone,
		Email:   contact.Email,
		Message: contact.Message,
		Status:  entity.ContactStatusNew,
	}

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact form")
	}

	contact.ID = contactM.ID
	contact.Status = contactM.Status
	contact.CreatedAt = contactM.CreatedAt

	return nil
}

// UpdateStatus updates the triage status of a submission.
func (repo *contactRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.ContactForm, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ContactFormModel{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update contact status")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrContactNotFound
	}

	var contactM model.ContactFormModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&contactM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload contact form")
	}

	return toContactDomain(&contactM), nil
}

// Delete removes a submission by ID.
func (repo *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ContactFormModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete contact form")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// List returns all submissions, newest first.
func (repo *contactRepository) List(ctx context.Context) ([]*entity.ContactForm, error) {
	var contactMs []*model.ContactFormModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&contactMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contact forms")
	}

	contacts := make([]*entity.ContactForm, 0, len(contactMs))
	for _, contactM := range contactMs {
		contacts = append(contacts, toContactDomain(contactM))
	}

	return contacts, nil
}

// toContactDomain converts a GORM ContactFormModel to a domain entity.
func toContactDomain(data *model.ContactFormModel) *entity.ContactForm {
	if data == nil {
		return nil
	}

	return &entity.ContactForm{
		ID:        data.ID,
		Name:      data.Name,
		Phone:     data.Phone,
		Email:     data.Email,
		Message:   data.Message,
		Status:    data.Status,
		CreatedAt: data.CreatedAt,
	}
}
