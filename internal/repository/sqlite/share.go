package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ocallan/figureshelf/internal/domain"
)

// ShareLinkRepository implements domain.ShareLinkRepository using SQLite.
type ShareLinkRepository struct {
	db *sql.DB
}

const shareColumns = "id, user_id, kind, token, title, description, active, view_count, created_at"

func (r *ShareLinkRepository) Create(ctx context.Context, link *domain.ShareLink) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO share_links (user_id, kind, token, title, description, active, view_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, 0, ?)`,
		link.UserID, link.Kind, link.Token, link.Title, link.Description, link.Active, now)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrAlreadyExists
		}
		return storeErr("insert share link", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storeErr("get share link id", err)
	}
	link.ID = id
	link.ViewCount = 0
	link.CreatedAt = now
	return nil
}

func (r *ShareLinkRepository) GetByUserAndKind(ctx context.Context, userID int64, kind domain.ShareKind) (*domain.ShareLink, error) {
	return r.getOne(ctx,
		"SELECT "+shareColumns+" FROM share_links WHERE user_id = ? AND kind = ?",
		userID, kind)
}

func (r *ShareLinkRepository) GetByToken(ctx context.Context, token string) (*domain.ShareLink, error) {
	return r.getOne(ctx,
		"SELECT "+shareColumns+" FROM share_links WHERE token = ?", token)
}

func (r *ShareLinkRepository) UpdateDetails(ctx context.Context, id int64, title, description string, active bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE share_links SET title = ?, description = ?, active = ? WHERE id = ?",
		title, description, active, id)
	if err != nil {
		return storeErr("update share link", err)
	}
	return requireRow(result)
}

func (r *ShareLinkRepository) SetActive(ctx context.Context, id int64, active bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE share_links SET active = ? WHERE id = ?", active, id)
	if err != nil {
		return storeErr("set share link active", err)
	}
	return requireRow(result)
}

func (r *ShareLinkRepository) IncrementViewCount(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE share_links SET view_count = view_count + 1 WHERE id = ?", id)
	if err != nil {
		return storeErr("increment view count", err)
	}
	return requireRow(result)
}

func (r *ShareLinkRepository) getOne(ctx context.Context, query string, args ...any) (*domain.ShareLink, error) {
	link := &domain.ShareLink{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&link.ID, &link.UserID, &link.Kind, &link.Token, &link.Title,
		&link.Description, &link.Active, &link.ViewCount, &link.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storeErr("query share link", err)
	}
	return link, nil
}

func requireRow(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return storeErr("rows affected", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
