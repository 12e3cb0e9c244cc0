package google

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sopets-web/internal/domain/users"
	"sopets-web/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "sopets-web"

var (
	ErrTokenEmpty    = errors.New("token is empty")
	ErrSecretMissing = errors.New("session secret is empty")
)

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Sessions firma y verifica tokens de sesión HS256.
// Implementa users.SessionIssuer y auth.AuthVerifier.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessions(secret string, ttl time.Duration) (*Sessions, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrSecretMissing
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Sessions{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *Sessions) Issue(p users.Profile) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.ttl)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Email: p.Email,
		Name:  p.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   p.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session: %w", err)
	}
	return signed, exp, nil
}

func (s *Sessions) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	var c sessionClaims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("verify session: %w", err)
	}

	uid := strings.TrimSpace(c.Subject)
	if uid == "" {
		return auth.Claims{}, errors.New("session missing subject")
	}

	out := auth.Claims{UserID: uid, Email: c.Email, Name: c.Name}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out, nil
}
