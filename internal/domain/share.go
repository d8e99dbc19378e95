package domain

import (
	"context"
	"time"
)

// ShareKind selects which of a user's sets a share link exposes.
type ShareKind string

const (
	ShareKindCollection ShareKind = "collection"
	ShareKindWishlist   ShareKind = "wishlist"
)

// ParseShareKind converts a URL path segment to a ShareKind.
func ParseShareKind(s string) (ShareKind, bool) {
	switch s {
	case "collection":
		return ShareKindCollection, true
	case "wishlist":
		return ShareKindWishlist, true
	default:
		return "", false
	}
}

// ShareLink is a token-addressed, read-only public view of one user's
// collection or wishlist. A user holds at most one link per kind; toggling
// Active off disables access but keeps the row, its token, and its
// accumulated view count.
type ShareLink struct {
	ID          int64
	UserID      int64
	Kind        ShareKind
	Token       string
	Title       string
	Description string
	Active      bool
	ViewCount   int64
	CreatedAt   time.Time
}

// ShareLinkRepository defines persistence operations for share links.
type ShareLinkRepository interface {
	Create(ctx context.Context, link *ShareLink) error
	GetByUserAndKind(ctx context.Context, userID int64, kind ShareKind) (*ShareLink, error)
	GetByToken(ctx context.Context, token string) (*ShareLink, error)
	// UpdateDetails replaces title, description, and the active flag in place.
	// The token and view count are never touched.
	UpdateDetails(ctx context.Context, id int64, title, description string, active bool) error
	SetActive(ctx context.Context, id int64, active bool) error
	// IncrementViewCount adds exactly one to the stored counter. The add
	// happens in the store so concurrent viewers never lose updates.
	IncrementViewCount(ctx context.Context, id int64) error
}
