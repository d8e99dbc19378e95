package sqlite

import (
	"context"
	"database/sql"

	"github.com/ocallan/figureshelf/internal/domain"
)

// CollectionRepository implements domain.CollectionRepository using SQLite.
type CollectionRepository struct {
	db *sql.DB
}

func (r *CollectionRepository) Create(ctx context.Context, rec *domain.CollectionRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO collection_records (user_id, item_id, acquired_at, condition, note, is_favorite)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.UserID, rec.ItemID, rec.AcquiredAt.UTC(), rec.Condition, rec.Note, rec.IsFavorite)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrAlreadyExists
		}
		return storeErr("insert collection record", err)
	}
	return nil
}

func (r *CollectionRepository) Delete(ctx context.Context, userID int64, itemID string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM collection_records WHERE user_id = ? AND item_id = ?",
		userID, itemID)
	if err != nil {
		return storeErr("delete collection record", err)
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

func (r *CollectionRepository) ListByUser(ctx context.Context, userID int64) ([]domain.CollectionEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT i.id, i.name, i.character, i.series, i.sub_series, i.kind, i.image_url, i.release_date,
		        c.acquired_at, c.condition, c.note, c.is_favorite
		 FROM collection_records c
		 JOIN items i ON i.id = c.item_id
		 WHERE c.user_id = ?
		 ORDER BY c.acquired_at DESC, i.id`,
		userID)
	if err != nil {
		return nil, storeErr("list collection", err)
	}
	defer rows.Close()

	var entries []domain.CollectionEntry
	for rows.Next() {
		var e domain.CollectionEntry
		var releaseDate sql.NullTime
		err := rows.Scan(&e.Item.ID, &e.Item.Name, &e.Item.Character, &e.Item.Series,
			&e.Item.SubSeries, &e.Item.Kind, &e.Item.ImageURL, &releaseDate,
			&e.AcquiredAt, &e.Condition, &e.Note, &e.IsFavorite)
		if err != nil {
			return nil, storeErr("scan collection entry", err)
		}
		if releaseDate.Valid {
			t := releaseDate.Time
			e.Item.ReleaseDate = &t
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate collection", err)
	}
	return entries, nil
}

func (r *CollectionRepository) Count(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM collection_records WHERE user_id = ?", userID).Scan(&count)
	if err != nil {
		return 0, storeErr("count collection", err)
	}
	return count, nil
}

func (r *CollectionRepository) Exists(ctx context.Context, userID int64, itemID string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM collection_records WHERE user_id = ? AND item_id = ?",
		userID, itemID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, storeErr("check ownership", err)
	}
	return true, nil
}

func (r *CollectionRepository) SetFavorite(ctx context.Context, userID int64, itemID string, favorite bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE collection_records SET is_favorite = ? WHERE user_id = ? AND item_id = ?",
		favorite, userID, itemID)
	if err != nil {
		return storeErr("set favorite", err)
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
