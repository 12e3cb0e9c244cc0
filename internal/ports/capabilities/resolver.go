package capabilities

import "context"

// CapabilityCheck identifica al usuario y la feature a consultar.
type CapabilityCheck struct {
	UserID  string
	Email   string
	Feature string
}

type CapabilitiesResolver interface {
	HasFeature(ctx context.Context, in CapabilityCheck) (bool, error)
}
