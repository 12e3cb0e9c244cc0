package router

import (
	"context"
	"errors"
	"fmt"

	"sopets-web/internal/adapters/auth/google"
	"sopets-web/internal/adapters/capabilities/allowlist"
	mongostore "sopets-web/internal/adapters/storage/mongo"
	pg "sopets-web/internal/adapters/storage/postgres"
	"sopets-web/internal/domain/registrations"
	"sopets-web/internal/platform/config"
	"sopets-web/internal/platform/logger"
	"sopets-web/internal/platform/retry"
)

// FromConfig arma Options a partir del env: Postgres si DB_DSN, Mongo si MONGO_URI,
// Google + sesiones JWT si hay credenciales. closeFn libera las conexiones abiertas.
func FromConfig(ctx context.Context, cfg config.API, log logger.Logger) (opts Options, closeFn func(context.Context) error, err error) {
	if log == nil {
		log = logger.Nop()
	}

	var closers []func(context.Context) error
	closeFn = func(ctx context.Context) error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i](ctx))
		}
		return errors.Join(errs...)
	}
	defer func() {
		if err != nil {
			_ = closeFn(context.Background())
		}
	}()

	opts = Options{
		Logger:              log,
		RegistrationsRetry:  retry.Exponential(cfg.RetryBaseDelay, registrations.DefaultRetryMultiplier, cfg.RetryMaxAttempts),
		BetaEmailsRetry:     retry.Linear(cfg.RetryBaseDelay, cfg.RetryMaxAttempts),
		SubmitRatePerMinute: cfg.SubmitRatePerMinute,
		PetImageCount:       cfg.PetImageCount,
	}

	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return Options{}, closeFn, fmt.Errorf("open postgres: %w", err)
		}
		closers = append(closers, func(context.Context) error { return db.Close() })
		opts.Registrations = pg.NewRegistrationsRepo(db)
		opts.Users = pg.NewUsersRepo(db)
		log.Info("using postgres stores", nil)
	} else {
		log.Warn("DB_DSN not set, using in-memory registrations and users", nil)
	}

	if cfg.MongoURI != "" {
		client, err := mongostore.Open(ctx, cfg.MongoURI)
		if err != nil {
			return Options{}, closeFn, fmt.Errorf("open mongo: %w", err)
		}
		closers = append(closers, client.Disconnect)

		repo := mongostore.NewBetaEmailsRepo(client.Database(cfg.MongoDatabase))
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn("creating beta_emails indexes failed", map[string]any{"err": err})
		}
		opts.BetaEmails = repo
		log.Info("using mongo beta_emails store", map[string]any{"database": cfg.MongoDatabase})
	} else {
		log.Warn("MONGO_URI not set, using in-memory beta_emails", nil)
	}

	if cfg.SessionSecret != "" {
		sessions, err := google.NewSessions(cfg.SessionSecret, cfg.SessionTTL)
		if err != nil {
			return Options{}, closeFn, err
		}
		opts.AuthVerifier = sessions
		opts.Sessions = sessions

		if cfg.GoogleConfigured() {
			opts.Authenticator = google.NewClient(google.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				RedirectURL:  cfg.GoogleRedirectURL,
			})
		} else {
			log.Warn("google oauth not configured, sign-in disabled", nil)
		}
	} else {
		log.Warn("SESSION_SECRET not set, auth in dev mode (X-Debug-User-ID)", nil)
	}

	if cfg.AllowAllCapabilities {
		log.Warn("ALLOW_ALL_CAPABILITIES enabled", nil)
		opts.Capabilities = allowlist.AllowAll()
	} else {
		opts.Capabilities = allowlist.NewResolver(cfg.AdminEmails, registrations.FeatureReview)
	}

	return opts, closeFn, nil
}
