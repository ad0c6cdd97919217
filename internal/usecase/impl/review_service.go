package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "sayma/internal/delivery/context"
	"sayma/internal/domain/entity"
	domainerrors "sayma/internal/domain/errors"
	"sayma/internal/domain/repository"
	"sayma/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxReviewCommentLength = 500

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	maidRepo   repository.MaidRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	MaidRepo   repository.MaidRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		maidRepo:   params.MaidRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create adds a review. A user may leave one review per maid plus one
// general review of the agency.
func (srv *reviewService) Create(ctx context.Context, input usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}
	comment := strings.TrimSpace(input.Comment)
	if utf8.RuneCountInString(comment) > maxReviewCommentLength {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("comment too long")
	}

	if input.MaidID != nil {
		if _, err := srv.maidRepo.FindByID(ctx, *input.MaidID); err != nil {
			return nil, err
		}
	}

	review := &entity.Review{
		UserID:  input.UserID,
		MaidID:  input.MaidID,
		Rating:  input.Rating,
		Comment: comment,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		_, findErr := reviewRepo.FindByUserAndMaid(ctx, input.UserID, input.MaidID)
		if findErr == nil {
			if input.MaidID == nil {
				return domainerrors.ErrDuplicateGeneralReview
			}

			return domainerrors.ErrDuplicateReview
		}
		if !errors.Is(findErr, repository.ErrReviewNotFound) {
			return errors.Wrap(findErr, "failed to check existing review")
		}

		return reviewRepo.Create(ctx, review)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Review created", slog.Any("userID", input.UserID), slog.Any("maidID", input.MaidID))

	return review, nil
}

// List returns visible reviews, optionally filtered by maid.
func (srv *reviewService) List(ctx context.Context, maidID *uuid.UUID) ([]*entity.Review, error) {
	return srv.reviewRepo.List(ctx, maidID)
}

// ToggleVisibility flips a review's hidden flag.
func (srv *reviewService) ToggleVisibility(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	review.Hidden = !review.Hidden
	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Review visibility toggled", slog.Any("reviewID", id), slog.Bool("hidden", review.Hidden))

	return review, nil
}
