package router

import (
	"net/http"

	mem "sopets-web/internal/adapters/storage/memory"
	"sopets-web/internal/domain/betaemails"
	"sopets-web/internal/domain/pets"
	"sopets-web/internal/domain/registrations"
	"sopets-web/internal/domain/users"
	"sopets-web/internal/middleware"
	"sopets-web/internal/notify"
	"sopets-web/internal/platform/logger"
	"sopets-web/internal/platform/retry"
	"sopets-web/internal/ports/auth"
	"sopets-web/internal/ports/capabilities"

	_ "sopets-web/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger

	AuthVerifier auth.AuthVerifier                 // puede ser nil (modo dev: X-Debug-User-ID)
	Capabilities capabilities.CapabilitiesResolver // nil => nadie tiene beta:review

	// Stores: nil => in-memory.
	Registrations registrations.Repository
	BetaEmails    betaemails.Repository
	Users         users.Repository

	Notifier registrations.Notifier // nil => mails logueados

	Authenticator users.Authenticator // nil => login con Google deshabilitado
	Sessions      users.SessionIssuer

	RegistrationsRetry retry.Policy // zero => x1.5, 3 reintentos
	BetaEmailsRetry    retry.Policy // zero => lineal, 3 intentos

	SubmitRatePerMinute int // <= 0 sin límite
	PetImageCount       int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	regRepo := opts.Registrations
	if regRepo == nil {
		regRepo = mem.NewRegistrationsRepo()
	}
	emailsRepo := opts.BetaEmails
	if emailsRepo == nil {
		emailsRepo = mem.NewBetaEmailsRepo()
	}
	usersRepo := opts.Users
	if usersRepo == nil {
		usersRepo = mem.NewUsersRepo()
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.NewMailer(notify.NewLogSender(log))
	}

	// Services por módulo
	regSvc := registrations.NewService(regRepo, notifier, registrations.Options{
		Logger: log,
		Retry:  opts.RegistrationsRetry,
	})
	emailsSvc := betaemails.NewService(emailsRepo, betaemails.Options{
		Logger: log,
		Retry:  opts.BetaEmailsRetry,
	})
	usersSvc := users.NewService(usersRepo, log)
	petGen := pets.NewGenerator(pets.DefaultCatalog(), opts.PetImageCount, nil)

	limiter := middleware.NewRateLimiter(opts.SubmitRatePerMinute)

	// Rutas por módulo
	registrations.RegisterRoutes(r, regSvc, opts.Capabilities, limiter.Middleware)
	betaemails.RegisterRoutes(r, emailsSvc, limiter.Middleware)
	users.RegisterRoutes(r, usersSvc, opts.Authenticator, opts.Sessions)
	pets.RegisterRoutes(r, petGen)

	return r
}
