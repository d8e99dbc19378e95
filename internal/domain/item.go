package domain

import (
	"context"
	"time"
)

// Item is one entry in the reference figure catalog. The catalog is written
// by cmd/loadcatalog and read-only for the rest of the application.
type Item struct {
	ID          string // stable catalog id from the source data
	Name        string
	Character   string
	Series      string
	SubSeries   string
	Kind        string
	ImageURL    string
	ReleaseDate *time.Time
}

// SearchField names an item column exposed to catalog search.
type SearchField string

const (
	SearchFieldCharacter SearchField = "character"
	SearchFieldSeries    SearchField = "series"
	SearchFieldSubSeries SearchField = "sub_series"
	SearchFieldName      SearchField = "name"
)

// ItemRepository defines read access to the catalog plus the upsert used by
// the bulk loader.
type ItemRepository interface {
	GetByID(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context) ([]Item, error)
	Search(ctx context.Context, term string, field SearchField) ([]Item, error)
	Count(ctx context.Context) (int64, error)
	// ListUnowned returns up to limit catalog items that have no collection
	// record for the given user, in storage order.
	ListUnowned(ctx context.Context, userID int64, limit int) ([]Item, error)
	Upsert(ctx context.Context, item *Item) error
}
