package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"sopets-web/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

// Upsert por email; devuelve el id existente si ya había fila.
func (r *UsersRepo) Upsert(ctx context.Context, p users.Profile) (users.Profile, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, email, name, avatar_url, last_sign_in)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (email) DO UPDATE SET
			name = EXCLUDED.name,
			avatar_url = EXCLUDED.avatar_url,
			last_sign_in = EXCLUDED.last_sign_in
		RETURNING id
	`,
		p.ID,
		p.Email,
		nullString(p.Name),
		nullString(p.AvatarURL),
		p.LastSignIn,
	).Scan(&p.ID)
	if err != nil {
		return users.Profile{}, err
	}
	return p, nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.Profile, error) {
	var (
		p         users.Profile
		name, url sql.NullString
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, avatar_url, last_sign_in
		FROM users
		WHERE email = $1
	`, strings.TrimSpace(email)).Scan(&p.ID, &p.Email, &name, &url, &p.LastSignIn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.Profile{}, users.ErrNotFound
		}
		return users.Profile{}, err
	}
	p.Name = name.String
	p.AvatarURL = url.String
	return p, nil
}
