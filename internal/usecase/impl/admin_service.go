package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

// adminService implements the AdminUsecase interface.
type adminService struct {
	adminRepo repository.AdminRepository
	allowRepo repository.AuthorizedEmailRepository
	userRepo  repository.UserRepository
	sessions  service.SessionStrategy
	otpGen    service.OTPGenerator
	mailer    service.Mailer
	cache     service.AllowlistCache
	otpTTL    time.Duration
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	AdminRepo repository.AdminRepository
	AllowRepo repository.AuthorizedEmailRepository
	UserRepo  repository.UserRepository
	Sessions  service.SessionStrategy `name:"adminSessions"`
	OTPGen    service.OTPGenerator
	Mailer    service.Mailer
	Cache     service.AllowlistCache
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		adminRepo: params.AdminRepo,
		allowRepo: params.AllowRepo,
		userRepo:  params.UserRepo,
		sessions:  params.Sessions,
		otpGen:    params.OTPGen,
		mailer:    params.Mailer,
		cache:     params.Cache,
		otpTTL:    params.Config.Auth.OTPTTL,
		logger:    params.Logger,
	}
}

// NewAllowlistChecker exposes the admin usecase as the allow-list
// dependency of the customer auth service.
func NewAllowlistChecker(admin usecase.AdminUsecase) AllowlistChecker {
	return admin
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestOTP gates on the allow-list, then generates, stores and emails
// a login code. A non-allow-listed email is rejected before any side
// effect: no admin row, no code, no mail.
func (srv *adminService) RequestOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return domainerrors.ErrOTPInvalidRequest
	}

	allowed, err := srv.IsEmailAuthorized(ctx, email)
	if err != nil {
		return errors.Wrap(err, "failed to check allow-list")
	}
	if !allowed {
		srv.log(ctx).Warn("Admin login rejected, email not authorized", slog.String("email", email))

		return domainerrors.ErrAccessDenied
	}

	code, err := srv.otpGen.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate login code")
	}

	if _, err := srv.adminRepo.UpsertOTP(ctx, email, code, timeNow().Add(srv.otpTTL)); err != nil {
		return errors.Wrap(err, "failed to store login code")
	}

	if err := srv.mailer.SendOTP(ctx, email, code); err != nil {
		srv.log(ctx).Error("Failed to deliver login code", slog.String("email", email), slog.Any("error", err))

		return domainerrors.ErrOTPDispatchFailed
	}

	srv.log(ctx).Info("Admin login code sent", slog.String("email", email))

	return nil
}

// VerifyOTP checks the pending code and on success clears it and issues
// a signed admin token. Each code is usable at most once.
func (srv *adminService) VerifyOTP(ctx context.Context, email, otp string) (*usecase.AdminLoginOutput, error) {
	// The submitted code is compared verbatim, no trimming or padding.
	email = normalizeEmail(email)
	if email == "" || otp == "" {
		return nil, domainerrors.ErrOTPInvalidRequest
	}

	// Re-check the allow-list: a removal between request and verify
	// must still lock the email out.
	allowed, err := srv.IsEmailAuthorized(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check allow-list")
	}
	if !allowed {
		return nil, domainerrors.ErrAccessDenied
	}

	admin, err := srv.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrOTPInvalidRequest
		}

		return nil, errors.Wrap(err, "failed to load admin")
	}

	if !admin.HasPendingOTP() {
		return nil, domainerrors.ErrOTPInvalidRequest
	}
	// Mismatch is reported before expiry: a wrong code stays a wrong
	// code even after the window has closed.
	if *admin.OTP != otp {
		srv.log(ctx).Warn("Admin login code mismatch", slog.String("email", email))

		return nil, domainerrors.ErrOTPMismatch
	}
	if timeNow().After(*admin.OTPExpiresAt) {
		return nil, domainerrors.ErrOTPExpired
	}

	// Consume the code before issuing the token.
	if err := srv.adminRepo.ClearOTP(ctx, email); err != nil {
		return nil, errors.Wrap(err, "failed to consume login code")
	}

	token, expiresAt, err := srv.sessions.Establish(ctx, service.Principal{
		UserID: admin.ID,
		Email:  admin.Email,
		Role:   entity.RoleAdmin.String(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to establish admin session")
	}

	srv.log(ctx).Info("Admin logged in", slog.String("email", email))

	return &usecase.AdminLoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     toAdminInfo(admin),
	}, nil
}

// Me resolves the current admin identity.
func (srv *adminService) Me(ctx context.Context, email string) (*usecase.AdminInfo, error) {
	admin, err := srv.adminRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to load admin")
	}

	return toAdminInfo(admin), nil
}

// IsEmailAuthorized reports allow-list membership, consulting the cache
// before the database.
func (srv *adminService) IsEmailAuthorized(ctx context.Context, email string) (bool, error) {
	email = normalizeEmail(email)

	if allowed, ok := srv.cache.Get(ctx, email); ok {
		return allowed, nil
	}

	allowed, err := srv.allowRepo.Exists(ctx, email)
	if err != nil {
		return false, errors.Wrap(err, "failed to check authorized email")
	}
	srv.cache.Set(ctx, email, allowed, 0)

	return allowed, nil
}

// ListAuthorizedEmails returns the allow-list, newest first.
func (srv *adminService) ListAuthorizedEmails(ctx context.Context) ([]*entity.AuthorizedEmail, error) {
	return srv.allowRepo.List(ctx)
}

// AddAuthorizedEmail adds an email to the allow-list.
func (srv *adminService) AddAuthorizedEmail(ctx context.Context, email, addedBy string) (*entity.AuthorizedEmail, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid email")
	}

	entry := &entity.AuthorizedEmail{
		Email:   email,
		AddedBy: normalizeEmail(addedBy),
	}
	if err := srv.allowRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	srv.cache.Invalidate(ctx, email)
	srv.log(ctx).Info("Authorized email added", slog.String("email", email), slog.String("addedBy", addedBy))

	return entry, nil
}

// RemoveAuthorizedEmail removes an allow-list entry. Admins cannot
// remove their own email, which would lock them out mid-session.
func (srv *adminService) RemoveAuthorizedEmail(ctx context.Context, id uuid.UUID, requesterEmail string) error {
	entry, err := srv.allowRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAuthorizedEmailNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to load authorized email")
	}

	if entry.Email == normalizeEmail(requesterEmail) {
		return domainerrors.ErrSelfDeletionForbidden
	}

	if err := srv.allowRepo.Delete(ctx, id); err != nil {
		return err
	}

	srv.cache.Invalidate(ctx, entry.Email)
	srv.log(ctx).Info("Authorized email removed", slog.String("email", entry.Email), slog.String("removedBy", requesterEmail))

	return nil
}

// ListCustomers returns all registered customers for the back office.
func (srv *adminService) ListCustomers(ctx context.Context) ([]*usecase.CustomerSummary, error) {
	users, err := srv.userRepo.ListWithReviews(ctx)
	if err != nil {
		return nil, err
	}

	customers := make([]*usecase.CustomerSummary, 0, len(users))
	for _, user := range users {
		providers := make([]string, 0, len(user.Accounts))
		for _, account := range user.Accounts {
			providers = append(providers, string(account.Provider))
		}

		phone := ""
		if user.Phone != nil {
			phone = *user.Phone
		}

		customers = append(customers, &usecase.CustomerSummary{
			ID:        user.ID,
			Email:     user.Email,
			Name:      user.Name,
			Phone:     phone,
			Providers: providers,
			CreatedAt: user.CreatedAt,
		})
	}

	return customers, nil
}

func toAdminInfo(admin *entity.Admin) *usecase.AdminInfo {
	return &usecase.AdminInfo{
		ID:          admin.ID,
		Email:       admin.Email,
		Name:        admin.Name,
		Picture:     admin.Picture,
		LastLoginAt: admin.LastLoginAt,
	}
}
