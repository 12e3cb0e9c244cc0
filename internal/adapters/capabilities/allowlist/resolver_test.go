package allowlist

import (
	"context"
	"testing"

	"sopets-web/internal/ports/capabilities"
)

func TestResolver_HasFeature(t *testing.T) {
	r := NewResolver([]string{" Admin@SoPets.io ", ""}, "beta:review")
	ctx := context.Background()

	cases := []struct {
		name string
		in   capabilities.CapabilityCheck
		want bool
	}{
		{"admin", capabilities.CapabilityCheck{UserID: "u-1", Email: "admin@sopets.io", Feature: "beta:review"}, true},
		{"admin other feature", capabilities.CapabilityCheck{UserID: "u-1", Email: "admin@sopets.io", Feature: "beta:delete"}, false},
		{"not admin", capabilities.CapabilityCheck{UserID: "u-2", Email: "fan@sopets.io", Feature: "beta:review"}, false},
		{"anonymous", capabilities.CapabilityCheck{Email: "admin@sopets.io", Feature: "beta:review"}, false},
	}
	for _, tc := range cases {
		got, err := r.HasFeature(ctx, tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}

	if _, err := r.HasFeature(ctx, capabilities.CapabilityCheck{UserID: "u-1"}); err != ErrFeatureRequired {
		t.Fatalf("expected ErrFeatureRequired, got %v", err)
	}
}

func TestResolver_AllowAll(t *testing.T) {
	r := AllowAll()
	ok, err := r.HasFeature(context.Background(), capabilities.CapabilityCheck{UserID: "dev", Feature: "beta:review"})
	if err != nil || !ok {
		t.Fatalf("expected allowed, got %v %v", ok, err)
	}
}
