package domain

import (
	"context"
	"time"
)

// CollectionRecord marks one catalog item as owned by one user.
// At most one record exists per (user, item) pair; the unique index in the
// store is the arbiter when concurrent adds race.
type CollectionRecord struct {
	UserID     int64
	ItemID     string
	AcquiredAt time.Time
	Condition  string
	Note       string
	IsFavorite bool
}

// CollectionEntry is a collection record joined with its catalog item, the
// shape list endpoints and public share views return.
type CollectionEntry struct {
	Item       Item
	AcquiredAt time.Time
	Condition  string
	Note       string
	IsFavorite bool
}

// CollectionRepository defines persistence operations for collection records.
type CollectionRepository interface {
	// Create inserts the record. Returns ErrAlreadyExists when a record for
	// the same (user, item) pair is present.
	Create(ctx context.Context, rec *CollectionRecord) error
	// Delete removes the record. Returns ErrNotFound when no row was deleted.
	Delete(ctx context.Context, userID int64, itemID string) error
	// ListByUser returns entries newest-acquired first, ties broken by item id.
	ListByUser(ctx context.Context, userID int64) ([]CollectionEntry, error)
	Count(ctx context.Context, userID int64) (int64, error)
	Exists(ctx context.Context, userID int64, itemID string) (bool, error)
	SetFavorite(ctx context.Context, userID int64, itemID string, favorite bool) error
}
