package registrations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sopets-web/internal/platform/logger"
	"sopets-web/internal/platform/retry"
	"sopets-web/internal/platform/telemetry"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("registration not found")
	ErrAlreadyExists = errors.New("this email has already been registered for the beta program")

	// ErrStore envuelve cualquier falla del backing store que sobrevivió a los reintentos.
	// Si la causa fue transitoria el error también cumple errors.Is(err, ErrUnavailable).
	ErrStore = errors.New("registration store error")

	// ErrUnavailable lo devuelven los adapters ante fallas transitorias (red, timeouts).
	ErrUnavailable = errors.New("registration store unavailable")
)

const (
	DefaultRetryBase       = time.Second
	DefaultRetryMultiplier = 1.5
	DefaultRetries         = 3
)

type Options struct {
	Logger logger.Logger

	// Retry aplica a lecturas (y a Create solo ante ErrUnavailable).
	// Zero value => base 1s, x1.5, 3 reintentos.
	Retry retry.Policy
}

type Service struct {
	repo     Repository
	notifier Notifier
	log      logger.Logger
	policy   retry.Policy
	now      func() time.Time
	newID    func() string
}

func NewService(repo Repository, notifier Notifier, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	policy := opts.Retry
	if policy.Attempts == 0 {
		policy = retry.Exponential(DefaultRetryBase, DefaultRetryMultiplier, DefaultRetries)
	}
	log = log.With(map[string]any{"component": "registrations"})

	return &Service{
		repo:     repo,
		notifier: notifier,
		log:      log,
		policy: policy.WithOnRetry(func(attempt uint, err error, wait time.Duration) {
			log.Warn("store operation failed, retrying", map[string]any{
				"attempt": attempt,
				"wait":    wait.String(),
				"err":     err,
			})
		}),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Register valida, deduplica por email, persiste y notifica (best-effort).
func (s *Service) Register(ctx context.Context, in Input) (Result, error) {
	reg, err := Validate(in)
	if err != nil {
		return Result{}, err
	}

	ctx, span := telemetry.Tracer("registrations").Start(ctx, "registrations.Register")
	defer span.End()

	log := s.log.With(map[string]any{"email": reg.Email})

	exists, err := retry.Do(ctx, s.readPolicy(), func(ctx context.Context) (bool, error) {
		return s.repo.ExistsByEmail(ctx, reg.Email)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "exists check failed")
		log.Error("checking existing registration failed", map[string]any{"err": err})
		return Result{}, storeErr(err)
	}
	if exists {
		span.SetAttributes(attribute.String("outcome", string(OutcomeAlreadyExists)))
		log.Info("registration already exists", nil)
		return Result{Outcome: OutcomeAlreadyExists}, nil
	}

	reg.ID = s.newID()
	reg.CreatedAt = s.now().UTC()
	reg.Status = StatusPending
	reg.WelcomeEmailSent = false

	// Create solo se reintenta ante ErrUnavailable; el check de arriba no es atómico
	// así que un conflicto del unique constraint también cuenta como duplicado.
	writePolicy := s.policy.WithRetryable(func(err error) bool {
		return errors.Is(err, ErrUnavailable)
	})
	_, err = retry.Do(ctx, writePolicy, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.repo.Create(ctx, reg)
	})
	if errors.Is(err, ErrAlreadyExists) {
		span.SetAttributes(attribute.String("outcome", string(OutcomeAlreadyExists)))
		log.Warn("duplicate registration resolved by store constraint", nil)
		return Result{Outcome: OutcomeAlreadyExists}, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "create failed")
		log.Error("creating registration failed", map[string]any{"err": err})
		return Result{}, storeErr(err)
	}

	log.Info("registration created", map[string]any{"id": reg.ID})

	if nerr := s.notify(ctx, &reg); nerr != nil {
		span.SetAttributes(attribute.String("outcome", string(OutcomeRegisteredNotifyFailed)))
		log.Warn("thank-you email failed", map[string]any{"err": nerr})
		return Result{Outcome: OutcomeRegisteredNotifyFailed, Registration: reg, NotifyErr: nerr}, nil
	}

	span.SetAttributes(attribute.String("outcome", string(OutcomeRegistered)))
	return Result{Outcome: OutcomeRegistered, Registration: reg}, nil
}

// notify manda el thank-you y marca welcome_email_sent. Nunca afecta la registración.
func (s *Service) notify(ctx context.Context, reg *Registration) error {
	if s.notifier == nil {
		return errors.New("no notifier configured")
	}
	if err := s.notifier.SendThankYou(ctx, reg.Email, reg.DiscordUsername); err != nil {
		return err
	}
	if err := s.repo.MarkWelcomeEmailSent(ctx, reg.ID); err != nil {
		return fmt.Errorf("mark welcome email sent: %w", err)
	}
	reg.WelcomeEmailSent = true
	return nil
}

// Get lee una registración por email (vista descifrada en Postgres).
func (s *Service) Get(ctx context.Context, email string) (Registration, error) {
	email = strings.TrimSpace(email)
	if !ValidEmail(email) {
		return Registration{}, invalid("email", "must contain @")
	}

	reg, err := retry.Do(ctx, s.readPolicy(), func(ctx context.Context) (Registration, error) {
		return s.repo.GetByEmail(ctx, email)
	})
	if err != nil {
		return Registration{}, storeErr(err)
	}
	return reg, nil
}

// UpdateStatus cambia el estado de review (pending/approved/rejected).
func (s *Service) UpdateStatus(ctx context.Context, id, status string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalid("id", "required")
	}
	st, ok := ParseStatus(strings.TrimSpace(status))
	if !ok {
		return invalid("status", "must be pending, approved or rejected")
	}

	if err := s.repo.UpdateStatus(ctx, id, st); err != nil {
		return storeErr(err)
	}
	s.log.Info("registration status updated", map[string]any{"id": id, "status": string(st)})
	return nil
}

func (s *Service) MarkWelcomeEmailSent(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalid("id", "required")
	}
	return storeErr(s.repo.MarkWelcomeEmailSent(ctx, id))
}

func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := retry.Do(ctx, s.readPolicy(), s.repo.Count)
	if err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

func (s *Service) readPolicy() retry.Policy {
	return s.policy.WithRetryable(func(err error) bool {
		return !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrInvalidInput)
	})
}

// storeErr deja pasar los sentinels del dominio y envuelve el resto en ErrStore.
func storeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrInvalidInput), errors.Is(err, ErrStore):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
}
