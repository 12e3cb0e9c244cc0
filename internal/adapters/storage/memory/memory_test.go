package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"sopets-web/internal/domain/betaemails"
	"sopets-web/internal/domain/registrations"
	"sopets-web/internal/domain/users"
)

func TestRegistrationsRepo_UniqueEmail_Concurrent(t *testing.T) {
	repo := NewRegistrationsRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	created, dup := 0, 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.Create(ctx, registrations.Registration{
				ID:    "reg-" + string(rune('a'+i)),
				Email: "A@b.com",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, registrations.ErrAlreadyExists):
				dup++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if created != 1 || dup != 19 {
		t.Fatalf("expected 1 created / 19 dup, got %d / %d", created, dup)
	}
	if ok, _ := repo.ExistsByEmail(ctx, "a@b.com"); !ok {
		t.Fatalf("expected case-insensitive exists")
	}
}

func TestRegistrationsRepo_StatusAndWelcome(t *testing.T) {
	repo := NewRegistrationsRepo()
	ctx := context.Background()

	reg := registrations.Registration{ID: "reg-1", Email: "a@b.com", Status: registrations.StatusPending}
	if err := repo.Create(ctx, reg); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.UpdateStatus(ctx, "reg-1", registrations.StatusRejected); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if err := repo.MarkWelcomeEmailSent(ctx, "reg-1"); err != nil {
		t.Fatalf("MarkWelcomeEmailSent: %v", err)
	}
	got, err := repo.GetByEmail(ctx, "a@b.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.Status != registrations.StatusRejected || !got.WelcomeEmailSent {
		t.Fatalf("unexpected record: %#v", got)
	}
	if err := repo.UpdateStatus(ctx, "missing", registrations.StatusApproved); !errors.Is(err, registrations.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Fatalf("expected count 1, got %d", n)
	}
}

func TestBetaEmailsRepo(t *testing.T) {
	repo := NewBetaEmailsRepo()
	ctx := context.Background()

	if ok, _ := repo.ExistsByEmail(ctx, "fan@sopets.io"); ok {
		t.Fatalf("expected empty repo")
	}
	_ = repo.Create(ctx, betaemails.Email{ID: "e-1", Email: "fan@sopets.io", Source: betaemails.SourceWebsiteDownload})
	if ok, _ := repo.ExistsByEmail(ctx, "fan@sopets.io"); !ok {
		t.Fatalf("expected stored email")
	}
}

func TestUsersRepo_UpsertKeepsID(t *testing.T) {
	repo := NewUsersRepo()
	ctx := context.Background()

	p1, _ := repo.Upsert(ctx, users.Profile{ID: "u-1", Email: "ann@example.com", Name: "Ann"})
	p2, _ := repo.Upsert(ctx, users.Profile{ID: "u-2", Email: "ann@example.com", Name: "Ann B", LastSignIn: time.Now()})
	if p1.ID != "u-1" || p2.ID != "u-1" {
		t.Fatalf("expected stable id, got %s / %s", p1.ID, p2.ID)
	}
	got, err := repo.GetByEmail(ctx, "ANN@example.com")
	if err != nil || got.Name != "Ann B" {
		t.Fatalf("unexpected get: %#v %v", got, err)
	}
	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
