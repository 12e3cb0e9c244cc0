package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"sopets-web/internal/domain/registrations"

	"github.com/jackc/pgx/v5/pgtype"
)

type RegistrationsRepo struct {
	db *sql.DB
	tm *pgtype.Map
}

func NewRegistrationsRepo(db *sql.DB) *RegistrationsRepo {
	return &RegistrationsRepo{db: db, tm: pgtype.NewMap()}
}

func (r *RegistrationsRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM beta_registrations WHERE lower(email) = lower($1)
		)
	`, strings.TrimSpace(email)).Scan(&exists)
	if err != nil {
		return false, mapErr(err)
	}
	return exists, nil
}

func (r *RegistrationsRepo) Create(ctx context.Context, reg registrations.Registration) error {
	genres := make([]string, 0, len(reg.GameGenres))
	for _, g := range reg.GameGenres {
		genres = append(genres, string(g))
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO beta_registrations (
			id, email, discord_username, telegram_handle,
			playstyle, playstyle_other,
			discovery_source, discovery_source_other,
			game_genres, game_genres_other,
			created_at, status, welcome_email_sent
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		reg.ID,
		reg.Email,
		reg.DiscordUsername,
		reg.TelegramHandle,
		string(reg.PlayStyle),
		nullString(reg.PlayStyleOther),
		string(reg.DiscoverySource),
		nullString(reg.DiscoverySourceOther),
		genres,
		nullString(reg.GameGenresOther),
		reg.CreatedAt,
		string(reg.Status),
		reg.WelcomeEmailSent,
	)
	return mapErr(err)
}

// GetByEmail lee de la vista descifrada.
func (r *RegistrationsRepo) GetByEmail(ctx context.Context, email string) (registrations.Registration, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, email, discord_username, telegram_handle,
			playstyle, playstyle_other,
			discovery_source, discovery_source_other,
			game_genres, game_genres_other,
			created_at, status, welcome_email_sent
		FROM decrypted_beta_registrations
		WHERE lower(email) = lower($1)
	`, strings.TrimSpace(email))

	var (
		reg                                  registrations.Registration
		style, source, status                string
		styleOther, sourceOther, genresOther sql.NullString
		genres                               []string
	)
	if err := row.Scan(
		&reg.ID,
		&reg.Email,
		&reg.DiscordUsername,
		&reg.TelegramHandle,
		&style,
		&styleOther,
		&source,
		&sourceOther,
		r.tm.SQLScanner(&genres),
		&genresOther,
		&reg.CreatedAt,
		&status,
		&reg.WelcomeEmailSent,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return registrations.Registration{}, registrations.ErrNotFound
		}
		return registrations.Registration{}, mapErr(err)
	}

	reg.PlayStyle = registrations.PlayStyle(style)
	reg.PlayStyleOther = styleOther.String
	reg.DiscoverySource = registrations.DiscoverySource(source)
	reg.DiscoverySourceOther = sourceOther.String
	reg.GameGenresOther = genresOther.String
	reg.Status = registrations.Status(status)
	reg.GameGenres = make([]registrations.GameGenre, 0, len(genres))
	for _, g := range genres {
		reg.GameGenres = append(reg.GameGenres, registrations.GameGenre(g))
	}
	return reg, nil
}

func (r *RegistrationsRepo) UpdateStatus(ctx context.Context, id string, status registrations.Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE beta_registrations SET status = $2 WHERE id = $1
	`, id, string(status))
	return affectedOne(res, err)
}

func (r *RegistrationsRepo) MarkWelcomeEmailSent(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE beta_registrations SET welcome_email_sent = true WHERE id = $1
	`, id)
	return affectedOne(res, err)
}

func (r *RegistrationsRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM beta_registrations`).Scan(&n); err != nil {
		return 0, mapErr(err)
	}
	return n, nil
}

func affectedOne(res sql.Result, err error) error {
	if err != nil {
		return mapErr(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return registrations.ErrNotFound
	}
	return nil
}

// mapErr traduce errores de pgx a los sentinels del dominio.
func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return registrations.ErrAlreadyExists
	case isUnavailable(err):
		return fmt.Errorf("%w: %v", registrations.ErrUnavailable, err)
	default:
		return err
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
