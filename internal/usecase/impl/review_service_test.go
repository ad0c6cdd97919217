package impl

import (
	"context"
	"strings"
	"testing"

	"sayma/internal/domain/entity"
	domainerrors "sayma/internal/domain/errors"
	"sayma/internal/domain/repository"
	mockRepo "sayma/internal/mocks/repository"
	"sayma/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	txManager  *mockRepo.MockTransactionManager
	reviewRepo *mockRepo.MockReviewRepository
	maidRepo   *mockRepo.MockMaidRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	maidRepo := mockRepo.NewMockMaidRepository(t)

	service := NewReviewService(ReviewServiceParams{
		TxManager:  txManager,
		ReviewRepo: reviewRepo,
		MaidRepo:   maidRepo,
		Logger:     newDiscardLogger(),
	})

	return reviewServiceFixtures{
		service:    service,
		txManager:  txManager,
		reviewRepo: reviewRepo,
		maidRepo:   maidRepo,
	}
}

func expectReviewTx(t *testing.T, fx reviewServiceFixtures, ctx context.Context, setup func(*mockRepo.MockReviewRepository), result error) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			reviewRepo := mockRepo.NewMockReviewRepository(t)

			factory.EXPECT().ReviewRepo().Return(reviewRepo)
			setup(reviewRepo)

			fn := args.Get(1).(func(repository.RepositoryFactory) error)
			_ = fn(factory)
		}).
		Return(result)
}

func TestReviewService_Create_MaidReview(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID := uuid.New()
	maidID := uuid.New()

	fx.maidRepo.EXPECT().FindByID(ctx, maidID).Return(&entity.Maid{ID: maidID}, nil)
	expectReviewTx(t, fx, ctx, func(reviewRepo *mockRepo.MockReviewRepository) {
		reviewRepo.EXPECT().
			FindByUserAndMaid(ctx, userID, &maidID).
			Return(nil, repository.ErrReviewNotFound)
		reviewRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Review")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*entity.Review).ID = uuid.New()
			}).
			Return(nil)
	}, nil)

	review, err := fx.service.Create(ctx, usecase.CreateReviewInput{
		UserID:  userID,
		MaidID:  &maidID,
		Rating:  5,
		Comment: "  great service  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "great service", review.Comment)
	assert.Equal(t, &maidID, review.MaidID)
}

func TestReviewService_Create_DuplicatePerMaid(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID := uuid.New()
	maidID := uuid.New()

	fx.maidRepo.EXPECT().FindByID(ctx, maidID).Return(&entity.Maid{ID: maidID}, nil)
	expectReviewTx(t, fx, ctx, func(reviewRepo *mockRepo.MockReviewRepository) {
		reviewRepo.EXPECT().
			FindByUserAndMaid(ctx, userID, &maidID).
			Return(&entity.Review{ID: uuid.New()}, nil)
	}, domainerrors.ErrDuplicateReview)

	_, err := fx.service.Create(ctx, usecase.CreateReviewInput{
		UserID: userID,
		MaidID: &maidID,
		Rating: 4,
	})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateReview)
}

func TestReviewService_Create_DuplicateGeneral(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID := uuid.New()

	expectReviewTx(t, fx, ctx, func(reviewRepo *mockRepo.MockReviewRepository) {
		reviewRepo.EXPECT().
			FindByUserAndMaid(ctx, userID, (*uuid.UUID)(nil)).
			Return(&entity.Review{ID: uuid.New()}, nil)
	}, domainerrors.ErrDuplicateGeneralReview)

	_, err := fx.service.Create(ctx, usecase.CreateReviewInput{
		UserID: userID,
		Rating: 4,
	})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateGeneralReview)
}

func TestReviewService_Create_RatingOutOfRange(t *testing.T) {
	fx := createTestReviewService(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := fx.service.Create(context.Background(), usecase.CreateReviewInput{
			UserID: uuid.New(),
			Rating: rating,
		})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "rating %d", rating)
	}
}

func TestReviewService_Create_CommentTooLong(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.Create(context.Background(), usecase.CreateReviewInput{
		UserID:  uuid.New(),
		Rating:  3,
		Comment: strings.Repeat("x", 501),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_Create_UnknownMaid(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	maidID := uuid.New()

	fx.maidRepo.EXPECT().FindByID(ctx, maidID).Return(nil, repository.ErrMaidNotFound)

	_, err := fx.service.Create(ctx, usecase.CreateReviewInput{
		UserID: uuid.New(),
		MaidID: &maidID,
		Rating: 3,
	})

	assert.ErrorIs(t, err, repository.ErrMaidNotFound)
}

func TestReviewService_ToggleVisibility(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	reviewID := uuid.New()

	fx.reviewRepo.EXPECT().
		FindByID(ctx, reviewID).
		Return(&entity.Review{ID: reviewID, Hidden: false}, nil)
	fx.reviewRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	review, err := fx.service.ToggleVisibility(ctx, reviewID)

	require.NoError(t, err)
	assert.True(t, review.Hidden)
}
