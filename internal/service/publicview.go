package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ocallan/figureshelf/internal/domain"
)

// maxTokenLength rejects obviously malformed tokens before hitting the store.
const maxTokenLength = 128

// PublicView is the read-only projection returned for a share token. It
// carries the owner's display name only, never their identity, and exactly
// one of Collection or Wishlist is populated depending on the link's kind.
type PublicView struct {
	OwnerName   string
	Title       string
	Description string
	Kind        domain.ShareKind
	ViewCount   int64 // includes the view being served
	Collection  []domain.CollectionEntry
	Wishlist    []domain.WishlistEntry
}

// PublicViewService resolves share tokens into read-only projections for
// anonymous viewers.
type PublicViewService struct {
	shares     domain.ShareLinkRepository
	users      domain.UserRepository
	collection domain.CollectionRepository
	wishlist   domain.WishlistRepository
}

// NewPublicViewService creates a new PublicViewService.
func NewPublicViewService(shares domain.ShareLinkRepository, users domain.UserRepository, collection domain.CollectionRepository, wishlist domain.WishlistRepository) *PublicViewService {
	return &PublicViewService{shares: shares, users: users, collection: collection, wishlist: wishlist}
}

// ViewByToken resolves a token to the owner's current set of the requested
// kind. A missing, inactive, or wrong-kind token uniformly yields
// ErrNotAvailable so viewers cannot probe which tokens once existed.
func (s *PublicViewService) ViewByToken(ctx context.Context, kind domain.ShareKind, token string) (*PublicView, error) {
	if token == "" || len(token) > maxTokenLength {
		return nil, fmt.Errorf("%w: malformed share token", domain.ErrInvalidInput)
	}

	link, err := s.shares.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotAvailable
		}
		return nil, fmt.Errorf("resolve share token: %w", err)
	}
	if !link.Active || link.Kind != kind {
		return nil, domain.ErrNotAvailable
	}

	// A failed increment never blocks or fails the read.
	if err := s.shares.IncrementViewCount(ctx, link.ID); err != nil {
		slog.Warn("increment share view count", "share_id", link.ID, "error", err)
	}

	ownerName := "A collector"
	if owner, err := s.users.GetByID(ctx, link.UserID); err == nil {
		ownerName = owner.DisplayName
	}

	view := &PublicView{
		OwnerName:   ownerName,
		Title:       link.Title,
		Description: link.Description,
		Kind:        link.Kind,
		ViewCount:   link.ViewCount + 1,
	}

	switch link.Kind {
	case domain.ShareKindCollection:
		entries, err := s.collection.ListByUser(ctx, link.UserID)
		if err != nil {
			return nil, fmt.Errorf("list shared collection: %w", err)
		}
		view.Collection = entries
	case domain.ShareKindWishlist:
		entries, err := s.wishlist.ListByUser(ctx, link.UserID)
		if err != nil {
			return nil, fmt.Errorf("list shared wishlist: %w", err)
		}
		view.Wishlist = entries
	}

	return view, nil
}
