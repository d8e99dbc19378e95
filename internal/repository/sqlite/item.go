package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ocallan/figureshelf/internal/domain"
)

// ItemRepository implements domain.ItemRepository using SQLite.
type ItemRepository struct {
	db *sql.DB
}

const itemColumns = "id, name, character, series, sub_series, kind, image_url, release_date"

func (r *ItemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+itemColumns+" FROM items WHERE id = ?", id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storeErr("query item by id", err)
	}
	return item, nil
}

func (r *ItemRepository) List(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+itemColumns+" FROM items ORDER BY character, id")
	if err != nil {
		return nil, storeErr("list items", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *ItemRepository) Search(ctx context.Context, term string, field domain.SearchField) ([]domain.Item, error) {
	column, ok := searchColumn(field)
	if !ok {
		return nil, fmt.Errorf("%w: unknown search field %q", domain.ErrInvalidInput, field)
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+itemColumns+" FROM items WHERE "+column+" LIKE ? COLLATE NOCASE ORDER BY character, id",
		"%"+term+"%")
	if err != nil {
		return nil, storeErr("search items", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *ItemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM items").Scan(&count); err != nil {
		return 0, storeErr("count items", err)
	}
	return count, nil
}

func (r *ItemRepository) ListUnowned(ctx context.Context, userID int64, limit int) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+itemColumns+` FROM items
		 WHERE id NOT IN (SELECT item_id FROM collection_records WHERE user_id = ?)
		 LIMIT ?`,
		userID, limit)
	if err != nil {
		return nil, storeErr("list unowned items", err)
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *ItemRepository) Upsert(ctx context.Context, item *domain.Item) error {
	var releaseDate any
	if item.ReleaseDate != nil {
		releaseDate = item.ReleaseDate.UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO items (id, name, character, series, sub_series, kind, image_url, release_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   name = excluded.name,
		   character = excluded.character,
		   series = excluded.series,
		   sub_series = excluded.sub_series,
		   kind = excluded.kind,
		   image_url = excluded.image_url,
		   release_date = excluded.release_date`,
		item.ID, item.Name, item.Character, item.Series, item.SubSeries, item.Kind, item.ImageURL, releaseDate)
	if err != nil {
		return storeErr("upsert item", err)
	}
	return nil
}

func searchColumn(field domain.SearchField) (string, bool) {
	switch field {
	case domain.SearchFieldCharacter:
		return "character", true
	case domain.SearchFieldSeries:
		return "series", true
	case domain.SearchFieldSubSeries:
		return "sub_series", true
	case domain.SearchFieldName:
		return "name", true
	default:
		return "", false
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	item := &domain.Item{}
	var releaseDate sql.NullTime
	err := row.Scan(&item.ID, &item.Name, &item.Character, &item.Series,
		&item.SubSeries, &item.Kind, &item.ImageURL, &releaseDate)
	if err != nil {
		return nil, err
	}
	if releaseDate.Valid {
		t := releaseDate.Time
		item.ReleaseDate = &t
	}
	return item, nil
}

func collectItems(rows *sql.Rows) ([]domain.Item, error) {
	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, storeErr("scan item", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate items", err)
	}
	return items, nil
}
