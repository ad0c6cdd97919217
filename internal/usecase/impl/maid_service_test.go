package impl

import (
	"context"
	"testing"

	"sayma/internal/domain/entity"
	domainerrors "sayma/internal/domain/errors"
	"sayma/internal/domain/repository"
	mockRepo "sayma/internal/mocks/repository"
	mockSvc "sayma/internal/mocks/service"
	"sayma/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type maidServiceFixtures struct {
	service  usecase.MaidUsecase
	maidRepo *mockRepo.MockMaidRepository
	photos   *mockSvc.MockPhotoStore
}

func createTestMaidService(t *testing.T) maidServiceFixtures {
	maidRepo := mockRepo.NewMockMaidRepository(t)
	photos := mockSvc.NewMockPhotoStore(t)

	service := NewMaidService(MaidServiceParams{
		MaidRepo: maidRepo,
		Photos:   photos,
		Logger:   newDiscardLogger(),
	})

	return maidServiceFixtures{service: service, maidRepo: maidRepo, photos: photos}
}

func TestMaidService_Create_Success(t *testing.T) {
	fx := createTestMaidService(t)
	ctx := context.Background()

	fx.maidRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Maid")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Maid).ID = uuid.New()
		}).
		Return(nil)

	maid, err := fx.service.Create(ctx, usecase.MaidInput{
		Name:        "  Amina  ",
		Nationality: "Ethiopia",
		Role:        "Housemaid",
		Experience:  3,
		Salary:      120,
		Age:         28,
		Skills:      []string{"cooking", "childcare"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Amina", maid.Name)
	assert.NotEqual(t, uuid.Nil, maid.ID)
}

func TestMaidService_Create_Invalid(t *testing.T) {
	fx := createTestMaidService(t)

	_, err := fx.service.Create(context.Background(), usecase.MaidInput{Name: "   "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Create(context.Background(), usecase.MaidInput{Name: "Amina", Salary: -1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMaidService_Delete_RemovesPhotos(t *testing.T) {
	fx := createTestMaidService(t)
	ctx := context.Background()
	maidID := uuid.New()

	fx.maidRepo.EXPECT().
		FindByID(ctx, maidID).
		Return(&entity.Maid{
			ID:     maidID,
			Name:   "Amina",
			Images: []string{"/uploads/a.jpg", "/uploads/b.jpg"},
		}, nil)
	fx.maidRepo.EXPECT().Delete(ctx, maidID).Return(nil)
	fx.photos.EXPECT().Delete(ctx, "/uploads/a.jpg").Return(nil)
	// A photo cleanup failure does not fail the delete.
	fx.photos.EXPECT().Delete(ctx, "/uploads/b.jpg").Return(assert.AnError)

	require.NoError(t, fx.service.Delete(ctx, maidID))
}

func TestMaidService_Delete_Unknown(t *testing.T) {
	fx := createTestMaidService(t)
	ctx := context.Background()
	maidID := uuid.New()

	fx.maidRepo.EXPECT().FindByID(ctx, maidID).Return(nil, repository.ErrMaidNotFound)

	assert.ErrorIs(t, fx.service.Delete(ctx, maidID), repository.ErrMaidNotFound)
}

func TestMaidService_ToggleVisibility(t *testing.T) {
	fx := createTestMaidService(t)
	ctx := context.Background()
	maidID := uuid.New()

	fx.maidRepo.EXPECT().
		FindByID(ctx, maidID).
		Return(&entity.Maid{ID: maidID, Name: "Amina", Hidden: true}, nil)
	fx.maidRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Maid")).Return(nil)

	maid, err := fx.service.ToggleVisibility(ctx, maidID)

	require.NoError(t, err)
	assert.False(t, maid.Hidden)
}

func TestMaidService_AddPhotos_Success(t *testing.T) {
	fx := createTestMaidService(t)
	ctx := context.Background()
	maidID := uuid.New()

	fx.maidRepo.EXPECT().
		FindByID(ctx, maidID).
		Return(&entity.Maid{ID: maidID, Name: "Amina", Images: []string{"/uploads/a.jpg"}}, nil)
	fx.photos.EXPECT().
		Save(ctx, "new.png", "image/png", []byte("png-bytes")).
		Return("/uploads/new.png", nil)
	fx.maidRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Maid")).
		Return(nil)

	maid, err := fx.service.AddPhotos(ctx, maidID, []usecase.PhotoUpload{
		{Filename: "new.png", ContentType: "image/png", Data: []byte("png-bytes")},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/a.jpg", "/uploads/new.png"}, maid.Images)
}

func TestMaidService_AddPhotos_RejectsNonImage(t *testing.T) {
	fx := createTestMaidService(t)
	ctx := context.Background()
	maidID := uuid.New()

	fx.maidRepo.EXPECT().
		FindByID(ctx, maidID).
		Return(&entity.Maid{ID: maidID, Name: "Amina"}, nil)

	_, err := fx.service.AddPhotos(ctx, maidID, []usecase.PhotoUpload{
		{Filename: "evil.sh", ContentType: "application/x-sh", Data: []byte("#!/bin/sh")},
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMaidService_AddPhotos_Empty(t *testing.T) {
	fx := createTestMaidService(t)

	_, err := fx.service.AddPhotos(context.Background(), uuid.New(), nil)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
