package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"sopets-web/internal/domain/registrations"
)

type registrationsRepo struct {
	mu      sync.RWMutex
	byID    map[string]registrations.Registration
	byEmail map[string]string // email (lower) -> id
}

func NewRegistrationsRepo() registrations.Repository {
	return &registrationsRepo{
		byID:    make(map[string]registrations.Registration),
		byEmail: make(map[string]string),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *registrationsRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[emailKey(email)]
	return ok, nil
}

// Create emula el unique constraint de email.
func (r *registrationsRepo) Create(ctx context.Context, reg registrations.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(reg.ID) == "" {
		return errors.New("registration id required")
	}
	k := emailKey(reg.Email)
	if _, exists := r.byEmail[k]; exists {
		return registrations.ErrAlreadyExists
	}
	reg.GameGenres = append([]registrations.GameGenre(nil), reg.GameGenres...)
	r.byID[reg.ID] = reg
	r.byEmail[k] = reg.ID
	return nil
}

func (r *registrationsRepo) GetByEmail(ctx context.Context, email string) (registrations.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[emailKey(email)]
	if !ok {
		return registrations.Registration{}, registrations.ErrNotFound
	}
	reg := r.byID[id]
	reg.GameGenres = append([]registrations.GameGenre(nil), reg.GameGenres...)
	return reg, nil
}

func (r *registrationsRepo) UpdateStatus(ctx context.Context, id string, status registrations.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.byID[id]
	if !ok {
		return registrations.ErrNotFound
	}
	reg.Status = status
	r.byID[id] = reg
	return nil
}

func (r *registrationsRepo) MarkWelcomeEmailSent(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.byID[id]
	if !ok {
		return registrations.ErrNotFound
	}
	reg.WelcomeEmailSent = true
	r.byID[id] = reg
	return nil
}

func (r *registrationsRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}
