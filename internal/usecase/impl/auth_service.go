// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"sayma/config"
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

// phonePattern matches 8-digit Oman mobile numbers starting with 9 or 7.
var phonePattern = regexp.MustCompile(`^(9|7)\d{7}$`)

const minPasswordLength = 8

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	adminRepo         repository.AdminRepository
	sessions          service.SessionStrategy
	hasher            service.PasswordHasher
	googleAuthService service.OAuthService
	allowlist         AllowlistChecker
	logger            *slog.Logger
}

// AllowlistChecker reports admin allow-list membership. It is satisfied
// by the admin usecase.
type AllowlistChecker interface {
	IsEmailAuthorized(ctx context.Context, email string) (bool, error)
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	AdminRepo         repository.AdminRepository
	Sessions          service.SessionStrategy `name:"customerSessions"`
	Hasher            service.PasswordHasher
	GoogleAuthService service.OAuthService
	Allowlist         AllowlistChecker
	Config            *config.Config
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		adminRepo:         params.AdminRepo,
		sessions:          params.Sessions,
		hasher:            params.Hasher,
		googleAuthService: params.GoogleAuthService,
		allowlist:         params.Allowlist,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterAndLogin creates the user and their credentials account
// atomically, then establishes a session.
func (srv *authService) RegisterAndLogin(ctx context.Context, input usecase.RegisterAndLoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	phone := strings.TrimSpace(input.Phone)
	name := strings.TrimSpace(input.Name)

	if name == "" || email == "" {
		return nil, domainerrors.ErrValidationFailed
	}
	if !phonePattern.MatchString(phone) {
		return nil, domainerrors.ErrInvalidPhone
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrPasswordTooShort
	}

	// bcrypt is CPU-bound, hash outside the transaction.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, findErr := userRepo.FindByEmail(ctx, email); findErr == nil {
			return domainerrors.ErrEmailAlreadyRegistered
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		if _, findErr := userRepo.FindByPhone(ctx, phone); findErr == nil {
			return domainerrors.ErrPhoneAlreadyRegistered
		} else if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check phone availability")
		}

		newUser := &entity.User{
			Name:  name,
			Email: email,
			Phone: &phone,
			Accounts: []*entity.Account{{
				Provider:       entity.ProviderTypeCredentials,
				ProviderUserID: email,
				PasswordHash:   passwordHash,
			}},
		}
		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return createErr
		}
		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Customer registered", slog.Any("userID", registeredUser.ID))

	return srv.establishSession(ctx, registeredUser)
}

// Login verifies email/password and establishes a session.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same answer as a wrong password, so probes can't tell
			// registered emails apart.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	account := user.CredentialsAccount()
	if account == nil {
		return nil, domainerrors.ErrOAuthOnlyAccount
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.log(ctx).Debug("Customer logged in", slog.Any("userID", user.ID))

	return srv.establishSession(ctx, user)
}

// GoogleSignIn verifies the ID token, finds or creates the user, links
// the provider account and establishes a session.
func (srv *authService) GoogleSignIn(ctx context.Context, input usecase.GoogleSignInInput) (*usecase.LoginOutput, error) {
	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google sign-in rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("google sign-in")
	}

	var loggedInUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, txErr := srv.findOrCreateGoogleUser(ctx, repoFactory, oauthUser)
		if txErr != nil {
			return txErr
		}
		loggedInUser = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute Google sign-in transaction")
	}

	// Admin hook: an allow-listed email signing in with Google keeps its
	// admin profile fresh. Failures here never block the customer login.
	srv.upsertAdminProfile(ctx, oauthUser)

	return srv.establishSession(ctx, loggedInUser)
}

// findOrCreateGoogleUser resolves the Google identity to a local user,
// creating and linking records as needed.
func (srv *authService) findOrCreateGoogleUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.User, error) {
	userRepo := repoFactory.UserRepo()
	accountRepo := repoFactory.AccountRepo()

	account, err := accountRepo.FindByProviderUserID(ctx, entity.ProviderTypeGoogle, oauthUser.ProviderUserID)
	if err == nil {
		return userRepo.FindByID(ctx, account.UserID)
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find google account")
	}

	email := normalizeEmail(oauthUser.Email)

	// Existing email: link the Google account to it.
	user, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		newAccount := &entity.Account{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeGoogle,
			ProviderUserID: oauthUser.ProviderUserID,
		}
		if createErr := accountRepo.Create(ctx, newAccount); createErr != nil {
			return nil, errors.Wrap(createErr, "failed to link google account")
		}
		if user.Image == "" && oauthUser.Picture != "" {
			user.Image = oauthUser.Picture
			if updateErr := userRepo.Update(ctx, user); updateErr != nil {
				return nil, errors.Wrap(updateErr, "failed to refresh user image")
			}
		}

		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	srv.log(ctx).Info("Creating customer from Google sign-in", slog.String("email", email))

	newUser := &entity.User{
		Name:  oauthUser.Name,
		Email: email,
		Image: oauthUser.Picture,
		Accounts: []*entity.Account{{
			Provider:       entity.ProviderTypeGoogle,
			ProviderUserID: oauthUser.ProviderUserID,
		}},
	}
	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user for google sign-in")
	}

	return newUser, nil
}

// upsertAdminProfile refreshes the admin record for allow-listed emails.
func (srv *authService) upsertAdminProfile(ctx context.Context, oauthUser *service.OAuthUser) {
	email := normalizeEmail(oauthUser.Email)

	allowed, err := srv.allowlist.IsEmailAuthorized(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Allow-list check failed during Google sign-in", slog.Any("error", err))

		return
	}
	if !allowed {
		return
	}

	if _, err := srv.adminRepo.UpsertProfile(ctx, email, oauthUser.Name, oauthUser.Picture, oauthUser.ProviderUserID, timeNow()); err != nil {
		srv.log(ctx).Warn("Failed to upsert admin profile", slog.String("email", email), slog.Any("error", err))
	}
}

// Me resolves the current user with session enrichment flags.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*usecase.SessionUser, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrSessionInvalid
		}

		return nil, errors.Wrap(err, "failed to load session user")
	}

	return srv.buildSessionUser(ctx, user), nil
}

// Logout revokes the session behind the given credential.
func (srv *authService) Logout(ctx context.Context, credential string) error {
	if err := srv.sessions.Revoke(ctx, credential); err != nil {
		srv.log(ctx).Warn("Logout failed to revoke session", slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke session")
	}

	return nil
}

// CheckEmail reports whether an email is registered and whether it can
// log in with a password.
func (srv *authService) CheckEmail(ctx context.Context, email string) (*usecase.CheckEmailOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return &usecase.CheckEmailOutput{}, nil
		}

		return nil, errors.Wrap(err, "failed to check email")
	}

	return &usecase.CheckEmailOutput{
		Exists:      true,
		HasPassword: user.CredentialsAccount() != nil,
	}, nil
}

// UpdateProfile updates name and phone for the logged-in user.
func (srv *authService) UpdateProfile(ctx context.Context, input usecase.UpdateProfileInput) (*usecase.SessionUser, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)

	if phone != "" && !phonePattern.MatchString(phone) {
		return nil, domainerrors.ErrInvalidPhone
	}

	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, txErr := userRepo.FindByID(ctx, input.UserID)
		if txErr != nil {
			return txErr
		}

		if phone != "" {
			other, findErr := userRepo.FindByPhone(ctx, phone)
			if findErr == nil && other.ID != user.ID {
				return domainerrors.ErrPhoneAlreadyRegistered
			}
			if findErr != nil && !errors.Is(findErr, repository.ErrUserNotFound) {
				return errors.Wrap(findErr, "failed to check phone availability")
			}
			user.Phone = &phone
		}
		if name != "" {
			user.Name = name
		}

		if updateErr := userRepo.Update(ctx, user); updateErr != nil {
			return updateErr
		}
		updatedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	return srv.buildSessionUser(ctx, updatedUser), nil
}

// establishSession wraps session creation plus output assembly.
func (srv *authService) establishSession(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	token, expiresAt, err := srv.sessions.Establish(ctx, service.Principal{
		UserID: user.ID,
		Email:  user.Email,
		Role:   entity.RoleUser.String(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to establish session")
	}

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      srv.buildSessionUser(ctx, user),
	}, nil
}

// buildSessionUser enriches the user with the flags the frontend keys on.
func (srv *authService) buildSessionUser(ctx context.Context, user *entity.User) *usecase.SessionUser {
	isAdmin, err := srv.allowlist.IsEmailAuthorized(ctx, user.Email)
	if err != nil {
		srv.log(ctx).Warn("Allow-list check failed while building session", slog.Any("error", err))
		isAdmin = false
	}

	phone := ""
	if user.Phone != nil {
		phone = *user.Phone
	}

	return &usecase.SessionUser{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Phone:    phone,
		Image:    user.Image,
		HasPhone: user.HasPhone(),
		IsAdmin:  isAdmin,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
