package betaemails

import "context"

// Repository es el store de beta_emails.
// Los adapters traducen errores del driver a ErrPermissionDenied / ErrUnavailable.
type Repository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, e Email) error
}
