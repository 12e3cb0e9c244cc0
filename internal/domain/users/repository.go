package users

import "context"

// Repository persiste perfiles por email (upsert).
type Repository interface {
	Upsert(ctx context.Context, p Profile) (Profile, error)
	GetByEmail(ctx context.Context, email string) (Profile, error)
}
