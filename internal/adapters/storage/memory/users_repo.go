package memory

import (
	"context"
	"sync"

	"sopets-web/internal/domain/users"
)

type usersRepo struct {
	mu      sync.RWMutex
	byEmail map[string]users.Profile
}

func NewUsersRepo() users.Repository {
	return &usersRepo{byEmail: make(map[string]users.Profile)}
}

// Upsert conserva el ID ya asignado al usuario.
func (r *usersRepo) Upsert(ctx context.Context, p users.Profile) (users.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := emailKey(p.Email)
	if old, ok := r.byEmail[k]; ok {
		p.ID = old.ID
	}
	r.byEmail[k] = p
	return p, nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (users.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byEmail[emailKey(email)]
	if !ok {
		return users.Profile{}, users.ErrNotFound
	}
	return p, nil
}
