package main

import (
	"context"
	"log/slog"
	"os"

	"sayma/config"
	"sayma/internal/delivery"
	"sayma/internal/delivery/http"
	"sayma/internal/delivery/http/middleware"
	"sayma/internal/delivery/http/router/handler"
	"sayma/internal/domain/repository"
	"sayma/internal/domain/service"
	"sayma/internal/infra/auth"
	"sayma/internal/infra/auth/google"
	"sayma/internal/infra/cache"
	logs "sayma/internal/infra/log"
	"sayma/internal/infra/mail"
	"sayma/internal/infra/persistence/postgres"
	"sayma/internal/infra/storage"
	"sayma/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewRedisClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAccountRepository,
			postgres.NewSessionRepository,
			postgres.NewAdminRepository,
			postgres.NewAuthorizedEmailRepository,
			postgres.NewMaidRepository,
			postgres.NewReviewRepository,
			postgres.NewContactRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewOTPGenerator,
			google.NewAuthService,
			cache.NewAllowlistCache,
			mail.NewSMTPMailer,
			newPasswordHasher,
			newPhotoStore,
			fx.Annotate(
				newCustomerSessionStrategy,
				fx.ResultTags(`name:"customerSessions"`),
			),
			fx.Annotate(
				auth.NewSignedTokenStrategy,
				fx.ResultTags(`name:"adminSessions"`),
			),
		),
	)
}

// newPasswordHasher creates the bcrypt hasher with the configured cost.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
}

// newCustomerSessionStrategy creates the persisted session strategy used
// for customer logins.
func newCustomerSessionStrategy(
	sessions repository.SessionRepository,
	users repository.UserRepository,
	cfg *config.Config,
) service.SessionStrategy {
	return auth.NewPersistedSessionStrategy(sessions, users, cfg.Auth.SessionTTL)
}

// newPhotoStore opens the blob bucket and closes it on shutdown.
func newPhotoStore(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (service.PhotoStore, error) {
	store, closeBucket, err := storage.NewBlobPhotoStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return closeBucket()
		},
	})

	return store, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewAdminService,
			impl.NewAllowlistChecker,
			impl.NewMaidService,
			impl.NewReviewService,
			impl.NewContactService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAdminHandler,
			handler.NewMaidHandler,
			handler.NewReviewHandler,
			handler.NewContactHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
