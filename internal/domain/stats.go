package domain

// Stats summarizes one user's collecting progress for the dashboard.
// The share-view counters are only set when the user has an active share
// link of the matching kind.
type Stats struct {
	TotalItems           int64
	OwnedCount           int64
	WishlistCount        int64
	CompletionPercentage int
	CollectionShareViews *int64
	WishlistShareViews   *int64
}
