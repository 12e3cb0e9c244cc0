package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"sopets-web/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrNoEmail  = errors.New("identity has no email")
	ErrNotFound = errors.New("user not found")
)

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"component": "users"}),
		now:  time.Now,
	}
}

// SignIn aplica la regla del callback de sign-in: sin email se rechaza;
// el upsert es best-effort y su falla no bloquea el login.
func (s *Service) SignIn(ctx context.Context, id Identity) (Profile, error) {
	email := strings.ToLower(strings.TrimSpace(id.Email))
	if email == "" {
		return Profile{}, ErrNoEmail
	}

	p := Profile{
		ID:         uuid.NewString(),
		Email:      email,
		Name:       strings.TrimSpace(id.Name),
		AvatarURL:  strings.TrimSpace(id.AvatarURL),
		LastSignIn: s.now().UTC(),
	}

	stored, err := s.repo.Upsert(ctx, p)
	if err != nil {
		s.log.Error("user upsert failed, continuing sign-in", map[string]any{"email": email, "err": err})
		return p, nil
	}

	s.log.Info("user signed in", map[string]any{"email": email, "id": stored.ID})
	return stored, nil
}

func (s *Service) Get(ctx context.Context, email string) (Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return Profile{}, ErrNotFound
	}
	return s.repo.GetByEmail(ctx, email)
}
