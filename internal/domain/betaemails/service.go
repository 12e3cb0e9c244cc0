package betaemails

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
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPermissionDenied = errors.New("database permission denied")
	ErrUnavailable      = errors.New("service temporarily unavailable")
)

const (
	DefaultRetryBase = time.Second
	DefaultAttempts  = 3
)

type Options struct {
	Logger logger.Logger

	// Zero value => 3 intentos, espera base*(i+1) con base 1s.
	Retry retry.Policy
}

type Service struct {
	repo   Repository
	log    logger.Logger
	policy retry.Policy
	now    func() time.Time
	newID  func() string
}

func NewService(repo Repository, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"component": "betaemails"})

	policy := opts.Retry
	if policy.Attempts == 0 {
		policy = retry.Linear(DefaultRetryBase, DefaultAttempts)
	}
	policy = policy.WithRetryable(func(err error) bool {
		return !errors.Is(err, ErrPermissionDenied)
	}).WithOnRetry(func(attempt uint, err error, wait time.Duration) {
		log.Warn("beta_emails operation failed, retrying", map[string]any{
			"attempt": attempt,
			"wait":    wait.String(),
			"err":     err,
		})
	})

	return &Service{
		repo:   repo,
		log:    log,
		policy: policy,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Submit guarda el email si no existe. Cada operación del store se reintenta por separado.
func (s *Service) Submit(ctx context.Context, email string) (Outcome, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return "", ErrInvalidEmail
	}

	ctx, span := telemetry.Tracer("betaemails").Start(ctx, "betaemails.Submit")
	defer span.End()

	log := s.log.With(map[string]any{"email": email})

	exists, err := retry.Do(ctx, s.policy, func(ctx context.Context) (bool, error) {
		return s.repo.ExistsByEmail(ctx, email)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "exists check failed")
		log.Error("checking beta email failed", map[string]any{"err": err})
		return "", classify(err)
	}
	if exists {
		span.SetAttributes(attribute.String("outcome", string(OutcomeAlreadyExists)))
		log.Info("beta email already registered", nil)
		return OutcomeAlreadyExists, nil
	}

	rec := Email{
		ID:        s.newID(),
		Email:     email,
		CreatedAt: s.now().UTC(),
		Source:    SourceWebsiteDownload,
	}
	_, err = retry.Do(ctx, s.policy, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.repo.Create(ctx, rec)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		log.Error("storing beta email failed", map[string]any{"err": err})
		return "", classify(err)
	}

	span.SetAttributes(attribute.String("outcome", string(OutcomeSubmitted)))
	log.Info("beta email stored", map[string]any{"id": rec.ID})
	return OutcomeSubmitted, nil
}

// classify deja los sentinels conocidos y trata cancelaciones como no disponibles.
func classify(err error) error {
	switch {
	case errors.Is(err, ErrPermissionDenied), errors.Is(err, ErrUnavailable):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		return err
	}
}
