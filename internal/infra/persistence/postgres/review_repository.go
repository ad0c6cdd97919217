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

// reviewRepository implements the repository.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := &model.ReviewModel{
		UserID:  review.UserID,
		MaidID:  review.MaidID,
		Rating:  review.Rating,
		Comment: review.Comment,
		Hidden:  review.Hidden,
	}

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if review.MaidID == nil {
				return domainerrors.ErrDuplicateGeneralReview
			}

			return domainerrors.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMaidNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// Update modifies an existing review. Only the hidden flag is mutable.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ?", review.ID).
		Update("hidden", review.Hidden)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// FindByID retrieves a review by ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// FindByUserAndMaid retrieves a user's review of a specific maid, or
// their general review when maidID is nil.
func (repo *reviewRepository) FindByUserAndMaid(ctx context.Context, userID uuid.UUID, maidID *uuid.UUID) (*entity.Review, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if maidID == nil {
		query = query.Where("maid_id IS NULL")
	} else {
		query = query.Where("maid_id = ?", *maidID)
	}

	var reviewM model.ReviewModel
	if err := query.First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by user and maid")
	}

	return toReviewDomain(&reviewM), nil
}

// List returns visible reviews newest first, optionally filtered by maid,
// with author and maid summaries preloaded.
func (repo *reviewRepository) List(ctx context.Context, maidID *uuid.UUID) ([]*entity.Review, error) {
	query := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Maid").
		Where("hidden = ?", false).
		Order("created_at DESC")
	if maidID != nil {
		query = query.Where("maid_id = ?", *maidID)
	}

	var reviewMs []*model.ReviewModel
	if err := query.Find(&reviewMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewMs))
	for _, reviewM := range reviewMs {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		UserID:    data.UserID,
		MaidID:    data.MaidID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		Hidden:    data.Hidden,
		User:      toUserDomain(data.User),
		Maid:      toMaidDomain(data.Maid),
		CreatedAt: data.CreatedAt,
	}
}
