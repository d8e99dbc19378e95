package domain

import (
	"context"
	"time"
)

// DefaultWishlistPriority is the mid-rank assigned when a caller does not
// pick one (1 = highest, 5 = lowest).
const DefaultWishlistPriority = 3

// WishlistRecord marks one catalog item as wanted by one user. An item a
// user owns should not also sit on their wishlist; CollectionService
// enforces that by deleting the wishlist record when ownership is created.
type WishlistRecord struct {
	UserID    int64
	ItemID    string
	CreatedAt time.Time
	Priority  int
	Note      string
}

// WishlistEntry is a wishlist record joined with its catalog item.
type WishlistEntry struct {
	Item     Item
	AddedAt  time.Time
	Priority int
	Note     string
}

// WishlistRepository defines persistence operations for wishlist records.
type WishlistRepository interface {
	// Create inserts the record. Returns ErrAlreadyExists when a record for
	// the same (user, item) pair is present.
	Create(ctx context.Context, rec *WishlistRecord) error
	// Delete removes the record. Returns ErrNotFound when no row was deleted.
	Delete(ctx context.Context, userID int64, itemID string) error
	// ListByUser returns entries newest-added first, ties broken by item id.
	ListByUser(ctx context.Context, userID int64) ([]WishlistEntry, error)
	Count(ctx context.Context, userID int64) (int64, error)
}
