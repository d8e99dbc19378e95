package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ocallan/figureshelf/internal/domain"
	"github.com/ocallan/figureshelf/internal/repository/sqlite"
	"github.com/ocallan/figureshelf/internal/service"
)

func newTestWishlistService(t *testing.T) (*service.WishlistService, *sqlite.DB) {
	t.Helper()
	db := newTestDB(t)
	return service.NewWishlistService(db.Wishlists(), db.Items()), db
}

func TestWishlistService_AddAndList(t *testing.T) {
	svc, db := newTestWishlistService(t)
	ctx := context.Background()
	userID := seedUserForTest(t, db, "wisher@example.com")
	seedItemForTest(t, db, "02000000", "Zelda Figure", "Zelda")

	entry, err := svc.Add(ctx, userID, "02000000", service.WishOptions{Note: "birthday idea"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if entry.Priority != domain.DefaultWishlistPriority {
		t.Fatalf("expected default priority %d, got %d", domain.DefaultWishlistPriority, entry.Priority)
	}

	entries, err := svc.List(ctx, userID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Item.Name != "Zelda Figure" {
		t.Fatalf("expected joined catalog data, got %q", entries[0].Item.Name)
	}
	if entries[0].Note != "birthday idea" {
		t.Fatalf("expected note to round-trip, got %q", entries[0].Note)
	}
}

func TestWishlistService_Add_UnknownItem(t *testing.T) {
	svc, db := newTestWishlistService(t)
	userID := seedUserForTest(t, db, "wisher@example.com")

	_, err := svc.Add(context.Background(), userID, "ffffffff", service.WishOptions{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWishlistService_Add_Duplicate(t *testing.T) {
	svc, db := newTestWishlistService(t)
	ctx := context.Background()
	userID := seedUserForTest(t, db, "wisher@example.com")
	seedItemForTest(t, db, "02000000", "Zelda Figure", "Zelda")

	if _, err := svc.Add(ctx, userID, "02000000", service.WishOptions{}); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	_, err := svc.Add(ctx, userID, "02000000", service.WishOptions{})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestWishlistService_Add_InvalidPriority(t *testing.T) {
	svc, db := newTestWishlistService(t)
	ctx := context.Background()
	userID := seedUserForTest(t, db, "wisher@example.com")
	seedItemForTest(t, db, "02000000", "Zelda Figure", "Zelda")

	for _, priority := range []int{-1, 6, 99} {
		_, err := svc.Add(ctx, userID, "02000000", service.WishOptions{Priority: priority})
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("priority %d: expected ErrInvalidInput, got %v", priority, err)
		}
	}
}

func TestWishlistService_Remove(t *testing.T) {
	svc, db := newTestWishlistService(t)
	ctx := context.Background()
	userID := seedUserForTest(t, db, "wisher@example.com")
	seedItemForTest(t, db, "02000000", "Zelda Figure", "Zelda")

	if _, err := svc.Add(ctx, userID, "02000000", service.WishOptions{}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := svc.Remove(ctx, userID, "02000000"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := svc.Remove(ctx, userID, "02000000"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}
}

func TestWishlistService_ScopedToUser(t *testing.T) {
	svc, db := newTestWishlistService(t)
	ctx := context.Background()
	alice := seedUserForTest(t, db, "alice@example.com")
	bob := seedUserForTest(t, db, "bob@example.com")
	seedItemForTest(t, db, "02000000", "Zelda Figure", "Zelda")

	if _, err := svc.Add(ctx, alice, "02000000", service.WishOptions{}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	entries, err := svc.List(ctx, bob)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected other user's wishlist to be empty, got %d entries", len(entries))
	}
}
