package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDoJSON_BearerAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"email": "a@b.com"})
	}))
	defer srv.Close()

	c, err := NewWithBaseURL(srv.URL, time.Second)
	if err != nil {
		t.Fatalf("NewWithBaseURL: %v", err)
	}

	var out struct {
		Email string `json:"email"`
	}
	if err := c.DoJSON(context.Background(), Request{URL: "/userinfo", BearerToken: "tok-1", Out: &out}); err != nil {
		t.Fatalf("DoJSON: %v", err)
	}
	if out.Email != "a@b.com" {
		t.Fatalf("expected email decoded, got %q", out.Email)
	}
}

func TestDoJSON_Non2xxIsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	err := New(time.Second).DoJSON(context.Background(), Request{URL: srv.URL})
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusForbidden || httpErr.Body != "nope" {
		t.Fatalf("unexpected error %#v", httpErr)
	}
}

func TestDoJSON_RelativeWithoutBase(t *testing.T) {
	if err := New(0).DoJSON(context.Background(), Request{URL: "/x"}); err == nil {
		t.Fatalf("expected error for relative url without base")
	}
}
