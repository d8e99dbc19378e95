package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/ocallan/figureshelf/internal/domain"
)

// StatsService derives completion metrics for the dashboard.
type StatsService struct {
	items      domain.ItemRepository
	collection domain.CollectionRepository
	wishlist   domain.WishlistRepository
	shares     domain.ShareLinkRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(items domain.ItemRepository, collection domain.CollectionRepository, wishlist domain.WishlistRepository, shares domain.ShareLinkRepository) *StatsService {
	return &StatsService{items: items, collection: collection, wishlist: wishlist, shares: shares}
}

// ComputeStats returns catalog size, owned and wishlist counts, the rounded
// completion percentage, and the view counts of the user's active share
// links. Each count comes from one query; counts of different resources may
// skew against each other under concurrent writes, which reads tolerate.
func (s *StatsService) ComputeStats(ctx context.Context, userID int64) (*domain.Stats, error) {
	total, err := s.items.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count catalog: %w", err)
	}
	owned, err := s.collection.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count collection: %w", err)
	}
	wanted, err := s.wishlist.Count(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count wishlist: %w", err)
	}

	stats := &domain.Stats{
		TotalItems:    total,
		OwnedCount:    owned,
		WishlistCount: wanted,
	}
	// An empty catalog is 0% complete, never a division fault.
	if total > 0 {
		stats.CompletionPercentage = int(math.Round(float64(owned) / float64(total) * 100))
	}

	collectionViews, err := s.activeShareViews(ctx, userID, domain.ShareKindCollection)
	if err != nil {
		return nil, err
	}
	stats.CollectionShareViews = collectionViews

	wishlistViews, err := s.activeShareViews(ctx, userID, domain.ShareKindWishlist)
	if err != nil {
		return nil, err
	}
	stats.WishlistShareViews = wishlistViews

	return stats, nil
}

func (s *StatsService) activeShareViews(ctx context.Context, userID int64, kind domain.ShareKind) (*int64, error) {
	link, err := s.shares.GetByUserAndKind(ctx, userID, kind)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s share link: %w", kind, err)
	}
	if !link.Active {
		return nil, nil
	}
	views := link.ViewCount
	return &views, nil
}
