package auth

import "time"

// Claims representa la sesión del usuario (emitida tras Google sign-in).
type Claims struct {
	UserID    string
	Email     string
	Name      string
	ExpiresAt time.Time
}
