package wizard

import (
	"context"
	"errors"
	"testing"

	"meishimail/models"
)

func TestMemoryStoreCreateAndGet(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	sess, err := store.Create(ctx)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("Create produced an empty session id")
	}
	if sess.MyProgress != models.SingleFront || sess.PartnerProgress != models.SingleFront {
		t.Errorf("progress = %q/%q, expected both %q", sess.MyProgress, sess.PartnerProgress, models.SingleFront)
	}
	if sess.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.ID != sess.ID {
		t.Errorf("Get returned id %q, want %q", got.ID, sess.ID)
	}
}

func TestMemoryStoreGetUnknownID(t *testing.T) {
	store := NewMemorySessionStore()
	if _, err := store.Get(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("error = %v, expected ErrSessionNotFound", err)
	}
}

func TestMemoryStoreSaveRoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	sess, err := store.Create(ctx)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	sess.EmailSubject = "件名"
	sess.MyCompany = &models.CompanyInfo{CompanyName: "株式会社サンプル", Services: []string{"A"}}
	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.EmailSubject != "件名" {
		t.Errorf("EmailSubject = %q", got.EmailSubject)
	}
	if got.MyCompany == nil || got.MyCompany.CompanyName != "株式会社サンプル" {
		t.Errorf("MyCompany = %+v", got.MyCompany)
	}
}

func TestMemoryStoreIsolatesSnapshots(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	sess, err := store.Create(ctx)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	sess.MyCompany = &models.CompanyInfo{CompanyName: "before", Services: []string{"A"}}
	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	// Mutating a returned snapshot must not leak into the store.
	got.MyCompany.CompanyName = "after"
	got.MyCompany.Services[0] = "Z"

	again, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if again.MyCompany.CompanyName != "before" || again.MyCompany.Services[0] != "A" {
		t.Errorf("stored session mutated through a snapshot: %+v", again.MyCompany)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	sess, err := store.Create(ctx)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("error after delete = %v, expected ErrSessionNotFound", err)
	}
	// Deleting twice is a no-op, matching the TTL store's DEL semantics.
	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("second Delete returned error: %v", err)
	}
}
