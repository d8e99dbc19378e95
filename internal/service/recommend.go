package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/ocallan/figureshelf/internal/domain"
)

// oversampleFactor sizes the candidate window fetched before shuffling, so
// results stay unpredictable without scanning the whole catalog.
const oversampleFactor = 3

// RecommendationService samples unowned catalog items for the dashboard.
type RecommendationService struct {
	items domain.ItemRepository
}

// NewRecommendationService creates a new RecommendationService.
func NewRecommendationService(items domain.ItemRepository) *RecommendationService {
	return &RecommendationService{items: items}
}

// Sample returns up to limit items the user does not own, chosen uniformly
// within an oversampled candidate window. Fewer unowned items than limit
// returns all of them; none returns an empty slice. A fully collected
// catalog is a terminal state, not an error.
func (s *RecommendationService) Sample(ctx context.Context, userID int64, limit int) ([]domain.Item, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrInvalidInput)
	}

	window, err := s.items.ListUnowned(ctx, userID, limit*oversampleFactor)
	if err != nil {
		return nil, fmt.Errorf("list unowned items: %w", err)
	}

	rand.Shuffle(len(window), func(i, j int) {
		window[i], window[j] = window[j], window[i]
	})

	if len(window) > limit {
		window = window[:limit]
	}
	return window, nil
}
