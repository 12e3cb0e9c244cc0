package memory

import (
	"context"
	"sync"

	"sopets-web/internal/domain/betaemails"
)

type betaEmailsRepo struct {
	mu      sync.RWMutex
	byEmail map[string]betaemails.Email
}

func NewBetaEmailsRepo() betaemails.Repository {
	return &betaEmailsRepo{byEmail: make(map[string]betaemails.Email)}
}

// ExistsByEmail compara exacto, igual que la query where('email', '==', email).
func (r *betaEmailsRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *betaEmailsRepo) Create(ctx context.Context, e betaemails.Email) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byEmail[e.Email] = e
	return nil
}
