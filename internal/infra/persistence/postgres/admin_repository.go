package postgres

import (
	"context"
	"time"

	"sayma/internal/domain/entity"
	domainerrors "sayma/internal/domain/errors"
	"sayma/internal/domain/repository"
	"sayma/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// adminRepository implements the repository.AdminRepository interface using GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// FindByEmail retrieves an admin by email.
func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.Admin, error) {
	var adminM model.AdminModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&adminM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	return toAdminDomain(&adminM), nil
}

// UpsertOTP creates the admin row if absent, otherwise overwrites its
// pending login challenge. A new code always replaces the previous one.
func (repo *adminRepository) UpsertOTP(ctx context.Context, email, otp string, expiresAt time.Time) (*entity.Admin, error) {
	adminM := &model.AdminModel{
		Email:        email,
		OTP:          &otp,
		OTPExpiresAt: &expiresAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"otp", "otp_expires_at", "updated_at"}),
		}).
		Create(adminM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert admin otp")
	}

	return repo.FindByEmail(ctx, email)
}

// ClearOTP nulls the otp fields after a successful verification.
func (repo *adminRepository) ClearOTP(ctx context.Context, email string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.AdminModel{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"otp":            nil,
			"otp_expires_at": nil,
			"last_login_at":  time.Now(),
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear admin otp")
	}

	return nil
}

// UpsertProfile creates or refreshes the admin row with OAuth profile
// data and stamps last login.
func (repo *adminRepository) UpsertProfile(ctx context.Context, email, name, picture, googleID string, loginAt time.Time) (*entity.Admin, error) {
	adminM := &model.AdminModel{
		Email:       email,
		Name:        name,
		Picture:     picture,
		GoogleID:    googleID,
		LastLoginAt: &loginAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "picture", "google_id", "last_login_at", "updated_at"}),
		}).
		Create(adminM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert admin profile")
	}

	return repo.FindByEmail(ctx, email)
}

// toAdminDomain converts a GORM AdminModel to a domain Admin entity.
func toAdminDomain(data *model.AdminModel) *entity.Admin {
	if data == nil {
		return nil
	}

	return &entity.Admin{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		Picture:      data.Picture,
		GoogleID:     data.GoogleID,
		OTP:          data.OTP,
		OTPExpiresAt: data.OTPExpiresAt,
		LastLoginAt:  data.LastLoginAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
