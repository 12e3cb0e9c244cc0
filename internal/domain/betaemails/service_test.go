package betaemails

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"sopets-web/internal/platform/retry"
)

type testRepo struct {
	byEmail map[string]Email

	existsCalls int
	createCalls int

	existsErrs []error
	createErrs []error
}

func newTestRepo() *testRepo {
	return &testRepo{byEmail: map[string]Email{}}
}

func (r *testRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.existsCalls++
	if len(r.existsErrs) > 0 {
		err := r.existsErrs[0]
		r.existsErrs = r.existsErrs[1:]
		return false, err
	}
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *testRepo) Create(ctx context.Context, e Email) error {
	r.createCalls++
	if len(r.createErrs) > 0 {
		err := r.createErrs[0]
		r.createErrs = r.createErrs[1:]
		return err
	}
	r.byEmail[e.Email] = e
	return nil
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo, Options{Retry: retry.Linear(time.Millisecond, DefaultAttempts)})
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC) }
	svc.newID = func() string { return "email-1" }
	return svc
}

func TestService_Submit_StoresNewEmail(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	out, err := svc.Submit(context.Background(), " fan@sopets.io ")
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if out != OutcomeSubmitted {
		t.Fatalf("expected submitted, got %s", out)
	}
	got, ok := repo.byEmail["fan@sopets.io"]
	if !ok {
		t.Fatalf("expected email stored trimmed, got %#v", repo.byEmail)
	}
	if got.Source != SourceWebsiteDownload {
		t.Fatalf("expected source website_download, got %q", got.Source)
	}
	if !got.CreatedAt.Equal(time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected created_at %v", got.CreatedAt)
	}
}

func TestService_Submit_InvalidEmail_NoStoreCall(t *testing.T) {
	for _, email := range []string{"", "   ", "no-at-sign"} {
		repo := newTestRepo()
		svc := newTestService(repo)

		_, err := svc.Submit(context.Background(), email)
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("email %q: expected ErrInvalidEmail, got %v", email, err)
		}
		if repo.existsCalls != 0 || repo.createCalls != 0 {
			t.Fatalf("email %q: expected no store calls", email)
		}
	}
}

func TestService_Submit_Existing(t *testing.T) {
	repo := newTestRepo()
	repo.byEmail["fan@sopets.io"] = Email{Email: "fan@sopets.io"}
	svc := newTestService(repo)

	out, err := svc.Submit(context.Background(), "fan@sopets.io")
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if out != OutcomeAlreadyExists {
		t.Fatalf("expected already_exists, got %s", out)
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected no insert for existing email")
	}
}

func TestService_Submit_RetriesUpToThreeAttempts(t *testing.T) {
	repo := newTestRepo()
	unavailable := fmt.Errorf("%w: network", ErrUnavailable)
	repo.existsErrs = []error{unavailable, unavailable}
	svc := newTestService(repo)

	out, err := svc.Submit(context.Background(), "fan@sopets.io")
	if err != nil || out != OutcomeSubmitted {
		t.Fatalf("expected submitted after retries, got %s %v", out, err)
	}
	if repo.existsCalls != 3 {
		t.Fatalf("expected 3 exists attempts, got %d", repo.existsCalls)
	}

	repo = newTestRepo()
	repo.createErrs = []error{unavailable, unavailable, unavailable, unavailable}
	svc = newTestService(repo)

	_, err = svc.Submit(context.Background(), "fan@sopets.io")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if repo.createCalls != 3 {
		t.Fatalf("expected 3 create attempts, got %d", repo.createCalls)
	}
}

func TestService_Submit_PermissionDenied_NotRetried(t *testing.T) {
	repo := newTestRepo()
	repo.existsErrs = []error{fmt.Errorf("%w: unauthorized", ErrPermissionDenied)}
	svc := newTestService(repo)

	_, err := svc.Submit(context.Background(), "fan@sopets.io")
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if repo.existsCalls != 1 {
		t.Fatalf("expected a single attempt, got %d", repo.existsCalls)
	}
}

func TestService_Submit_CancelledContext_IsUnavailable(t *testing.T) {
	repo := newTestRepo()
	repo.existsErrs = []error{context.Canceled}
	svc := newTestService(repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Submit(ctx, "fan@sopets.io")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
