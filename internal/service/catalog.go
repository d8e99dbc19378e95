package service

import (
	"context"
	"fmt"

	"github.com/ocallan/figureshelf/internal/domain"
)

// CatalogService provides read access to the reference item catalog.
type CatalogService struct {
	items domain.ItemRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(items domain.ItemRepository) *CatalogService {
	return &CatalogService{items: items}
}

// List returns the full catalog ordered by character.
func (s *CatalogService) List(ctx context.Context) ([]domain.Item, error) {
	return s.items.List(ctx)
}

// GetByID returns a single catalog item.
func (s *CatalogService) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	return s.items.GetByID(ctx, id)
}

// Search performs a case-insensitive substring match against one of the
// allow-listed item fields. An empty field defaults to character; an
// unrecognized field is a contract violation, never a silent no-op.
func (s *CatalogService) Search(ctx context.Context, term, field string) ([]domain.Item, error) {
	if field == "" {
		field = string(domain.SearchFieldCharacter)
	}

	switch f := domain.SearchField(field); f {
	case domain.SearchFieldCharacter, domain.SearchFieldSeries, domain.SearchFieldSubSeries, domain.SearchFieldName:
		return s.items.Search(ctx, term, f)
	default:
		return nil, fmt.Errorf("%w: search field must be one of character, series, sub_series, name", domain.ErrInvalidInput)
	}
}
