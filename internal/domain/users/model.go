package users

import "time"

// Profile es la fila de users que se actualiza en cada sign-in con Google.
type Profile struct {
	ID         string
	Email      string
	Name       string
	AvatarURL  string
	LastSignIn time.Time
}

// Identity es lo que devuelve el proveedor OAuth (userinfo).
type Identity struct {
	Subject   string
	Email     string
	Name      string
	AvatarURL string
}
