package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ocallan/figureshelf/internal/domain"
)

// WishlistService handles desire records.
type WishlistService struct {
	wishlist domain.WishlistRepository
	items    domain.ItemRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(wishlist domain.WishlistRepository, items domain.ItemRepository) *WishlistService {
	return &WishlistService{wishlist: wishlist, items: items}
}

// WishOptions carries the optional metadata for a wishlist add.
type WishOptions struct {
	Priority int // 1 (highest) to 5; zero means the default
	Note     string
}

// Add records desire for an item. Returns ErrAlreadyExists when the item is
// already wishlisted and ErrNotFound when it is not in the catalog.
func (s *WishlistService) Add(ctx context.Context, userID int64, itemID string, opts WishOptions) (*domain.WishlistEntry, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	priority := opts.Priority
	if priority == 0 {
		priority = domain.DefaultWishlistPriority
	}
	if priority < 1 || priority > 5 {
		return nil, fmt.Errorf("%w: priority must be between 1 and 5", domain.ErrInvalidInput)
	}

	rec := &domain.WishlistRecord{
		UserID:    userID,
		ItemID:    itemID,
		CreatedAt: time.Now().UTC(),
		Priority:  priority,
		Note:      opts.Note,
	}

	if err := s.wishlist.Create(ctx, rec); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create wishlist record: %w", err)
	}

	return &domain.WishlistEntry{
		Item:     *item,
		AddedAt:  rec.CreatedAt,
		Priority: rec.Priority,
		Note:     rec.Note,
	}, nil
}

// Remove deletes the wishlist record. ErrNotFound reports that nothing was
// deleted; callers may treat that as success.
func (s *WishlistService) Remove(ctx context.Context, userID int64, itemID string) error {
	return s.wishlist.Delete(ctx, userID, itemID)
}

// List returns the user's wishlist joined with catalog data, newest first.
func (s *WishlistService) List(ctx context.Context, userID int64) ([]domain.WishlistEntry, error) {
	return s.wishlist.ListByUser(ctx, userID)
}
