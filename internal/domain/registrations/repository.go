package registrations

import "context"

// Repository es el backing store de beta_registrations.
// Create debe devolver ErrAlreadyExists si el email ya existe (unique constraint);
// los errores de red/disponibilidad deben envolver ErrUnavailable.
type Repository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, r Registration) error
	GetByEmail(ctx context.Context, email string) (Registration, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	MarkWelcomeEmailSent(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// Notifier envía el email de agradecimiento. Sus fallas nunca deshacen la registración.
type Notifier interface {
	SendThankYou(ctx context.Context, email, userName string) error
}
