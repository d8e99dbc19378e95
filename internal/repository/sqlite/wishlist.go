package sqlite

import (
	"context"
	"database/sql"

	"github.com/ocallan/figureshelf/internal/domain"
)

// WishlistRepository implements domain.WishlistRepository using SQLite.
type WishlistRepository struct {
	db *sql.DB
}

func (r *WishlistRepository) Create(ctx context.Context, rec *domain.WishlistRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO wishlist_records (user_id, item_id, created_at, priority, note)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.UserID, rec.ItemID, rec.CreatedAt.UTC(), rec.Priority, rec.Note)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrAlreadyExists
		}
		return storeErr("insert wishlist record", err)
	}
	return nil
}

func (r *WishlistRepository) Delete(ctx context.Context, userID int64, itemID string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM wishlist_records WHERE user_id = ? AND item_id = ?",
		userID, itemID)
	if err != nil {
		return storeErr("delete wishlist record", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return storeErr("rows affected", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *WishlistRepository) ListByUser(ctx context.Context, userID int64) ([]domain.WishlistEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT i.id, i.name, i.character, i.series, i.sub_series, i.kind, i.image_url, i.release_date,
		        w.created_at, w.priority, w.note
		 FROM wishlist_records w
		 JOIN items i ON i.id = w.item_id
		 WHERE w.user_id = ?
		 ORDER BY w.created_at DESC, i.id`,
		userID)
	if err != nil {
		return nil, storeErr("list wishlist", err)
	}
	defer rows.Close()

	var entries []domain.WishlistEntry
	for rows.Next() {
		var e domain.WishlistEntry
		var releaseDate sql.NullTime
		err := rows.Scan(&e.Item.ID, &e.Item.Name, &e.Item.Character, &e.Item.Series,
			&e.Item.SubSeries, &e.Item.Kind, &e.Item.ImageURL, &releaseDate,
			&e.AddedAt, &e.Priority, &e.Note)
		if err != nil {
			return nil, storeErr("scan wishlist entry", err)
		}
		if releaseDate.Valid {
			t := releaseDate.Time
			e.Item.ReleaseDate = &t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate wishlist", err)
	}
	return entries, nil
}

func (r *WishlistRepository) Count(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM wishlist_records WHERE user_id = ?", userID).Scan(&count)
	if err != nil {
		return 0, storeErr("count wishlist", err)
	}
	return count, nil
}
