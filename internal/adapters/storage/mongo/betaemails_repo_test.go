package mongo

import (
	"context"
	"errors"
	"testing"

	"sopets-web/internal/domain/betaemails"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestMapErr(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"unauthorized", mongo.CommandError{Code: 13, Message: "not authorized on sopets"}, betaemails.ErrPermissionDenied},
		{"auth failed", mongo.CommandError{Code: 18, Message: "auth failed"}, betaemails.ErrPermissionDenied},
		{"network", mongo.CommandError{Code: 6, Labels: []string{"NetworkError"}}, betaemails.ErrUnavailable},
		{"cancelled", context.Canceled, betaemails.ErrUnavailable},
		{"disconnected", mongo.ErrClientDisconnected, betaemails.ErrUnavailable},
	}
	for _, tc := range cases {
		if got := mapErr(tc.in); !errors.Is(got, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}

	other := errors.New("boom")
	if got := mapErr(other); got != other {
		t.Fatalf("expected passthrough, got %v", got)
	}
	if mapErr(nil) != nil {
		t.Fatalf("expected nil")
	}
}
