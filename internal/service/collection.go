package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ocallan/figureshelf/internal/domain"
)

// DefaultCondition is assigned when an add request carries no condition tag.
const DefaultCondition = "mint"

// CollectionService handles ownership records and enforces the policy that
// an owned item leaves the owner's wishlist.
type CollectionService struct {
	collection domain.CollectionRepository
	wishlist   domain.WishlistRepository
	items      domain.ItemRepository
}

// NewCollectionService creates a new CollectionService.
func NewCollectionService(collection domain.CollectionRepository, wishlist domain.WishlistRepository, items domain.ItemRepository) *CollectionService {
	return &CollectionService{collection: collection, wishlist: wishlist, items: items}
}

// AddOptions carries the optional metadata for a collection add.
type AddOptions struct {
	Condition  string
	Note       string
	IsFavorite bool
	AcquiredAt time.Time // zero value means now
}

// Add records ownership of an item. Returns ErrAlreadyExists when the user
// already owns it (the store's unique constraint arbitrates concurrent adds)
// and ErrNotFound when the item is not in the catalog.
//
// On success any wishlist record for the same item is deleted as a
// best-effort compensating write. The two writes are not wrapped in a
// transaction: if the delete fails the item is briefly both owned and
// wishlisted, which reads tolerate and the next wishlist removal heals.
func (s *CollectionService) Add(ctx context.Context, userID int64, itemID string, opts AddOptions) (*domain.CollectionEntry, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	rec := &domain.CollectionRecord{
		UserID:     userID,
		ItemID:     itemID,
		AcquiredAt: opts.AcquiredAt,
		Condition:  opts.Condition,
		Note:       opts.Note,
		IsFavorite: opts.IsFavorite,
	}
	if rec.AcquiredAt.IsZero() {
		rec.AcquiredAt = time.Now().UTC()
	}
	if rec.Condition == "" {
		rec.Condition = DefaultCondition
	}

	if err := s.collection.Create(ctx, rec); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create collection record: %w", err)
	}

	if err := s.wishlist.Delete(ctx, userID, itemID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		slog.Warn("remove wishlist record after collection add",
			"user_id", userID, "item_id", itemID, "error", err)
	}

	return &domain.CollectionEntry{
		Item:       *item,
		AcquiredAt: rec.AcquiredAt,
		Condition:  rec.Condition,
		Note:       rec.Note,
		IsFavorite: rec.IsFavorite,
	}, nil
}

// Remove deletes the ownership record. ErrNotFound reports that nothing was
// deleted; callers may treat that as success.
func (s *CollectionService) Remove(ctx context.Context, userID int64, itemID string) error {
	return s.collection.Delete(ctx, userID, itemID)
}

// List returns the user's collection joined with catalog data, newest
// acquisitions first.
func (s *CollectionService) List(ctx context.Context, userID int64) ([]domain.CollectionEntry, error) {
	return s.collection.ListByUser(ctx, userID)
}

// Owns reports whether the user has an ownership record for the item.
func (s *CollectionService) Owns(ctx context.Context, userID int64, itemID string) (bool, error) {
	return s.collection.Exists(ctx, userID, itemID)
}

// SetFavorite flips the favorite flag on an owned item.
func (s *CollectionService) SetFavorite(ctx context.Context, userID int64, itemID string, favorite bool) error {
	return s.collection.SetFavorite(ctx, userID, itemID, favorite)
}
