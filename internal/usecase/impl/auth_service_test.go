package impl

import (
	"context"
	"testing"
	"time"

	"sayma/config"
	"sayma/internal/domain/entity"
	domainerrors "sayma/internal/domain/errors"
	"sayma/internal/domain/repository"
	"sayma/internal/domain/service"
	mockRepo "sayma/internal/mocks/repository"
	mockSvc "sayma/internal/mocks/service"
	"sayma/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubAllowlist satisfies AllowlistChecker with a fixed answer.
type stubAllowlist struct {
	allowed bool
	err     error
}

func (s stubAllowlist) IsEmailAuthorized(context.Context, string) (bool, error) {
	return s.allowed, s.err
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service   usecase.AuthUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	adminRepo *mockRepo.MockAdminRepository
	sessions  *mockSvc.MockSessionStrategy
	hasher    *mockSvc.MockPasswordHasher
	oauth     *mockSvc.MockOAuthService
}

func createTestAuthService(t *testing.T, allowlist AllowlistChecker) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	adminRepo := mockRepo.NewMockAdminRepository(t)
	sessions := mockSvc.NewMockSessionStrategy(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	oauth := mockSvc.NewMockOAuthService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:         txManager,
		UserRepo:          userRepo,
		AdminRepo:         adminRepo,
		Sessions:          sessions,
		Hasher:            hasher,
		GoogleAuthService: oauth,
		Allowlist:         allowlist,
		Config:            &config.Config{Auth: &config.AuthConfig{}},
		Logger:            newDiscardLogger(),
	})

	return authServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		adminRepo: adminRepo,
		sessions:  sessions,
		hasher:    hasher,
		oauth:     oauth,
	}
}

func expectEstablish(fx authServiceFixtures, token string) {
	fx.sessions.EXPECT().
		Establish(mock.Anything, mock.AnythingOfType("service.Principal")).
		Return(token, time.Now().Add(30*24*time.Hour), nil)
}

func TestAuthService_RegisterAndLogin_Success(t *testing.T) {
	fx := createTestAuthService(t, stubAllowlist{})
	ctx := context.Background()

	input := usecase.RegisterAndLoginInput{
		Name:     "Test Customer",
		Email:    "Customer@Example.com",
		Phone:    "91234567",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)

			userRepo.EXPECT().
				FindByEmail(ctx, "customer@example.com").
				Return(nil, repository.ErrUserNotFound)
			userRepo.EXPECT().
				FindByPhone(ctx, "91234567").
				Return(nil, repository.ErrUserNotFound)
			userRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(args mock.Arguments) {
					user := args.Get(1).(*entity.User)
					user.ID = uuid.New()

					require.Len(t, user.Accounts, 1)
					assert.Equal(t, entity.ProviderTypeCredentials, user.Accounts[0].Provider)
					assert.Equal(t, "hashed_password", user.Accounts[0].PasswordHash)
				}).
				Return(nil)

			fn := args.Get(1).(func(repository.RepositoryFactory) error)
			_ = fn(factory)
		}).
		Return(nil)
	expectEstablish(fx, "session-token")

	output, err := fx.service.RegisterAndLogin(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	assert.Equal(t, "customer@example.com", output.User.Email)
	assert.True(t, output.User.HasPhone)
}

func TestAuthService_RegisterAndLogin_InvalidPhone(t *testing.T) {
	fx := createTestAuthService(t, stubAllowlist{})

	cases := []string{"81234567", "9123456", "912345678", "9123456a", "+96891234567"}
	for _, phone := range cases {
		_, err := fx.service.RegisterAndLogin(context.Background(), usecase.RegisterAndLoginInput{
			Name:     "Test",
			Email:    "test@example.com",
			Phone:    phone,
			Password: "Password123!",
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidPhone, "phone %q", phone)
	}
}

func TestAuthService_RegisterAndLogin_PasswordTooShort(t *testing.T) {
	fx := createTestAuthService(t, stubAllowlist{})

	_, err := fx.service.RegisterAndLogin(context.Background(), usecase.RegisterAndLoginInput{
		Name:     "Test",
		Email:    "test@example.com",
		Phone:    "91234567",
		Password: "short",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordTooShort)
}

func TestAuthService_RegisterAndLogin_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t, stubAllowlist{})
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			userRepo.EXPECT().
				FindByEmail(ctx, "taken@example.com").
				Return(&entity.User{ID: uuid.New()}, nil)

			fn := args.Get(1).(func(repository.RepositoryFactory) error)
			_ = fn(factory)
		}).
		Return(domainerrors.ErrEmailAlreadyRegistered)

	_, err := fx.service.RegisterAndLogin(ctx, usecase.RegisterAndLoginInput{
		Name:     "Test",
		Email:    "taken@example.com",
		Phone:    "91234567",
		Password: "Password123!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t, stubAllowlist{})
	ctx := context.Background()

	user := &entity.User{
		ID:    uuid.New(),
		Email: "customer@example.com",
		Accounts: []*entity.Account{{
			Provider:     entity.ProviderTypeCredentials,
			PasswordHash: "hashed_password",
		}},
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "customer@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	expectEstablish(fx, "session-token")

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "Customer@Example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	fx := createTestAuthService(t, stubAllowlist{})
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, unknownErr := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	user := &entity.User{
		ID:    uuid.New(),
		Email: "customer@example.com",
		Accounts: []*entity.Account{{
			Provider:     entity.ProviderTypeCredentials,
			PasswordHash: "hashed_password",
		}},
	}
	fx.userRepo.EXPECT().FindByEmail(ctx, "customer@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	_, wrongErr := fx.service.Login(ctx, usecase.LoginInput{Email: "customer@example.com", Password: "wrong"})

	// Probes cannot distinguish a missing account from a bad password.
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_OAuthOnlyAccount(t *testing.T) {
	fx := createTestAuthService(t, stubAllowlist{})
	ctx := context.Background()

	user := &entity.User{
		ID:       uuid.New(),
		Email:    "google-only@example.com",
		Accounts: []*entity.Account{{Provider: entity.ProviderTypeGoogle}},
	}
	fx.userRepo.EXPECT().FindByEmail(ctx, "google-only@example.com").Return(user, nil)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "google-only@example.com", Password: "Password123!"})

	assert.ErrorIs(t, err, domainerrors.ErrOAuthOnlyAccount)
}

func TestAuthService_GoogleSignIn_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t, stubAllowlist{})
	ctx := context.Background()

	fx.oauth.EXPECT().VerifyIDToken(ctx, "bogus").Return(nil, assert.AnError)

	_, err := fx.service.GoogleSignIn(ctx, usecase.GoogleSignInInput{IDToken: "bogus"})

	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestAuthService_GoogleSignIn_NewUser(t *testing.T) {
	fx := createTestAuthService(t, stubAllowlist{})
	ctx := context.Background()

	oauthUser := &service.OAuthUser{
		ProviderUserID: "google-sub-1",
		Email:          "New@Example.com",
		Name:           "New Customer",
		Picture:        "https://example.com/p.jpg",
	}
	fx.oauth.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			factory.EXPECT().AccountRepo().Return(accountRepo)

			accountRepo.EXPECT().
				FindByProviderUserID(ctx, entity.ProviderTypeGoogle, "google-sub-1").
				Return(nil, repository.ErrAccountNotFound)
			userRepo.EXPECT().
				FindByEmail(ctx, "new@example.com").
				Return(nil, repository.ErrUserNotFound)
			userRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(args mock.Arguments) {
					user := args.Get(1).(*entity.User)
					user.ID = uuid.New()

					assert.Equal(t, "new@example.com", user.Email)
					require.Len(t, user.Accounts, 1)
					assert.Equal(t, entity.ProviderTypeGoogle, user.Accounts[0].Provider)
				}).
				Return(nil)

			fn := args.Get(1).(func(repository.RepositoryFactory) error)
			_ = fn(factory)
		}).
		Return(nil)
	expectEstablish(fx, "session-token")

	output, err := fx.service.GoogleSignIn(ctx, usecase.GoogleSignInInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", output.User.Email)
}

func TestAuthService_GoogleSignIn_AllowlistedUpsertsAdmin(t *testing.T) {
	fx := createTestAuthService(t, stubAllowlist{allowed: true})
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	pinClock(t, now)

	oauthUser := &service.OAuthUser{
		ProviderUserID: "google-sub-2",
		Email:          "boss@example.com",
		Name:           "Boss",
		Picture:        "https://example.com/boss.jpg",
	}
	existing := &entity.User{ID: uuid.New(), Email: "boss@example.com", Image: "set"}

	fx.oauth.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)
			accountRepo := mockRepo.NewMockAccountRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			factory.EXPECT().AccountRepo().Return(accountRepo)

			accountRepo.EXPECT().
				FindByProviderUserID(ctx, entity.ProviderTypeGoogle, "google-sub-2").
				Return(&entity.Account{UserID: existing.ID}, nil)
			userRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)

			fn := args.Get(1).(func(repository.RepositoryFactory) error)
			_ = fn(factory)
		}).
		Return(nil)
	fx.adminRepo.EXPECT().
		UpsertProfile(ctx, "boss@example.com", "Boss", "https://example.com/boss.jpg", "google-sub-2", now).
		Return(&entity.Admin{Email: "boss@example.com"}, nil)
	expectEstablish(fx, "session-token")

	output, err := fx.service.GoogleSignIn(ctx, usecase.GoogleSignInInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.True(t, output.User.IsAdmin)
}

func TestAuthService_CheckEmail(t *testing.T) {
	fx := createTestAuthService(t, stubAllowlist{})
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "unknown@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "google-only@example.com").
		Return(&entity.User{Accounts: []*entity.Account{{Provider: entity.ProviderTypeGoogle}}}, nil)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "full@example.com").
		Return(&entity.User{Accounts: []*entity.Account{{Provider: entity.ProviderTypeCredentials, PasswordHash: "h"}}}, nil)

	unknown, err := fx.service.CheckEmail(ctx, "unknown@example.com")
	require.NoError(t, err)
	assert.False(t, unknown.Exists)
	assert.False(t, unknown.HasPassword)

	googleOnly, err := fx.service.CheckEmail(ctx, "google-only@example.com")
	require.NoError(t, err)
	assert.True(t, googleOnly.Exists)
	assert.False(t, googleOnly.HasPassword)

	full, err := fx.service.CheckEmail(ctx, "Full@Example.com")
	require.NoError(t, err)
	assert.True(t, full.Exists)
	assert.True(t, full.HasPassword)
}

func TestAuthService_UpdateProfile_PhoneConflict(t *testing.T) {
	fx := createTestAuthService(t, stubAllowlist{})
	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(args mock.Arguments) {
			factory := mockRepo.NewMockRepositoryFactory(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(userRepo)
			userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
			userRepo.EXPECT().
				FindByPhone(ctx, "91234567").
				Return(&entity.User{ID: uuid.New()}, nil)

			fn := args.Get(1).(func(repository.RepositoryFactory) error)
			_ = fn(factory)
		}).
		Return(domainerrors.ErrPhoneAlreadyRegistered)

	_, err := fx.service.UpdateProfile(ctx, usecase.UpdateProfileInput{
		UserID: userID,
		Name:   "Test",
		Phone:  "91234567",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPhoneAlreadyRegistered)
}

func TestAuthService_UpdateProfile_InvalidPhone(t *testing.T) {
	fx := createTestAuthService(t, stubAllowlist{})

	_, err := fx.service.UpdateProfile(context.Background(), usecase.UpdateProfileInput{
		UserID: uuid.New(),
		Phone:  "12345678",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPhone)
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t, stubAllowlist{})
	ctx := context.Background()

	fx.sessions.EXPECT().Revoke(ctx, "credential").Return(nil)

	require.NoError(t, fx.service.Logout(ctx, "credential"))
}

func TestAuthService_Me_UnknownUser(t *testing.T) {
	fx := createTestAuthService(t, stubAllowlist{})
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Me(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}
