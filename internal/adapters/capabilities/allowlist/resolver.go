package allowlist

import (
	"context"
	"errors"
	"strings"

	"sopets-web/internal/ports/capabilities"
)

var ErrFeatureRequired = errors.New("feature required")

// Resolver otorga features a los emails de ADMIN_EMAILS.
// allowAll (modo dev) responde true para cualquier usuario autenticado.
type Resolver struct {
	admins   map[string]struct{}
	features map[string]struct{}
	allowAll bool
}

// NewResolver: admins reciben todas las features listadas.
func NewResolver(adminEmails []string, features ...string) *Resolver {
	r := &Resolver{
		admins:   map[string]struct{}{},
		features: map[string]struct{}{},
	}
	for _, e := range adminEmails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			r.admins[e] = struct{}{}
		}
	}
	for _, f := range features {
		f = strings.TrimSpace(f)
		if f != "" {
			r.features[f] = struct{}{}
		}
	}
	return r
}

// AllowAll devuelve un resolver que permite todo (solo dev, sin DB).
func AllowAll() *Resolver {
	return &Resolver{allowAll: true}
}

func (r *Resolver) HasFeature(ctx context.Context, in capabilities.CapabilityCheck) (bool, error) {
	feature := strings.TrimSpace(in.Feature)
	if feature == "" {
		return false, ErrFeatureRequired
	}
	if strings.TrimSpace(in.UserID) == "" {
		return false, nil
	}
	if r.allowAll {
		return true, nil
	}
	if _, ok := r.features[feature]; !ok {
		return false, nil
	}
	_, ok := r.admins[strings.ToLower(strings.TrimSpace(in.Email))]
	return ok, nil
}
