package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// FindOrCreatePost resolves a post by url, inserting it if absent. The
// insert uses ON CONFLICT DO NOTHING so two requests racing on the same
// new url both end up with the single row the unique constraint kept.
func (r *Repository) FindOrCreatePost(ctx context.Context, url string) (*Post, error) {
	var id int
	err := r.db.QueryRow(ctx,
		`INSERT INTO posts (url) VALUES ($1) ON CONFLICT (url) DO NOTHING RETURNING id`,
		url).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		// Row already existed, re-fetch it.
		err = r.db.QueryRow(ctx, `SELECT id FROM posts WHERE url = $1`, url).Scan(&id)
	}
	if err != nil {
		return nil, err
	}
	return &Post{ID: id, URL: url}, nil
}

// CreateItemWithInitialPrice inserts a tracked item and its first price
// observation in one transaction. The item id feeds the history row's
// foreign key via RETURNING, so no intermediate commit is needed.
func (r *Repository) CreateItemWithInitialPrice(ctx context.Context, postID int, name string, price float64) (*TrackedItem, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	item := &TrackedItem{ItemName: name, CurrentPrice: price, PostID: postID}
	err = tx.QueryRow(ctx,
		`INSERT INTO tracked_items (item_name, current_price, post_id) VALUES ($1, $2, $3) RETURNING id, created_at`,
		name, price, postID).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO price_history (item_id, price) VALUES ($1, $2)`,
		item.ID, price)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *Repository) GetItem(ctx context.Context, id int) (*TrackedItem, error) {
	var item TrackedItem
	err := r.db.QueryRow(ctx,
		`SELECT id, item_name, current_price, post_id, created_at FROM tracked_items WHERE id = $1`,
		id).Scan(&item.ID, &item.ItemName, &item.CurrentPrice, &item.PostID, &item.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListItems returns every tracked item with its post url, newest first.
func (r *Repository) ListItems(ctx context.Context) ([]ItemWithPost, error) {
	rows, err := r.db.Query(ctx, `
SELECT i.id, i.item_name, i.current_price, p.url, i.created_at
FROM tracked_items i
JOIN posts p ON p.id = i.post_id
ORDER BY i.created_at DESC, i.id DESC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ItemWithPost{}
	for rows.Next() {
		var it ItemWithPost
		if err := rows.Scan(&it.ID, &it.ItemName, &it.CurrentPrice, &it.PostURL, &it.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// ListHistory returns an item's observations oldest first.
func (r *Repository) ListHistory(ctx context.Context, itemID int) ([]PricePoint, error) {
	rows, err := r.db.Query(ctx, `
SELECT price, recorded_at
FROM price_history
WHERE item_id = $1
ORDER BY recorded_at ASC, id ASC
`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []PricePoint{}
	for rows.Next() {
		var p PricePoint
		if err := rows.Scan(&p.Price, &p.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// DeleteItem removes a tracked item; the schema's ON DELETE CASCADE
// takes its history rows with it. Returns false when the id is unknown.
// The owning post row stays, even if this was its last item.
func (r *Repository) DeleteItem(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM tracked_items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// CreateItem inserts a tracked item without an initial observation.
// Only the out-of-band seeder uses this; the ingest path always goes
// through CreateItemWithInitialPrice.
func (r *Repository) CreateItem(ctx context.Context, postID int, name string, price float64) (*TrackedItem, error) {
	item := &TrackedItem{ItemName: name, CurrentPrice: price, PostID: postID}
	err := r.db.QueryRow(ctx,
		`INSERT INTO tracked_items (item_name, current_price, post_id) VALUES ($1, $2, $3) RETURNING id, created_at`,
		name, price, postID).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// InsertPriceEntry records an observation at an explicit time. Used by
// the seeder to backfill history.
func (r *Repository) InsertPriceEntry(ctx context.Context, itemID int, price float64, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO price_history (item_id, price, recorded_at) VALUES ($1, $2, $3)`,
		itemID, price, at)
	return err
}
