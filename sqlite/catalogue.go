package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/archwiki"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ archwiki.CatalogueStore = (*CatalogueStore)(nil)

// CatalogueStore implements archwiki.CatalogueStore using SQLite. Every
// Save is recorded as a sync run and replaces all categories and titles.
type CatalogueStore struct {
	db  *DB
	now func() time.Time
}

// NewCatalogueStore creates a new CatalogueStore.
func NewCatalogueStore(db *DB) *CatalogueStore {
	return &CatalogueStore{db: db, now: time.Now}
}

// Load reads every category with its titles in stored order.
func (s *CatalogueStore) Load(ctx context.Context) (archwiki.Catalogue, error) {
	catalogue := archwiki.Catalogue{}

	rows, err := s.db.QueryContext(ctx, `SELECT name FROM categories`)
	if err != nil {
		return nil, archwiki.Errorf(archwiki.EIO, "query categories: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, archwiki.Errorf(archwiki.EIO, "scan category: %w", err)
		}
		catalogue[name] = []string{}
	}
	if err := rows.Err(); err != nil {
		return nil, archwiki.Errorf(archwiki.EIO, "query categories: %w", err)
	}

	titleRows, err := s.db.QueryContext(ctx, `
		SELECT category, title
		FROM titles
		ORDER BY category, position
	`)
	if err != nil {
		return nil, archwiki.Errorf(archwiki.EIO, "query titles: %w", err)
	}
	defer titleRows.Close()
	for titleRows.Next() {
		var category, title string
		if err := titleRows.Scan(&category, &title); err != nil {
			return nil, archwiki.Errorf(archwiki.EIO, "scan title: %w", err)
		}
		catalogue[category] = append(catalogue[category], title)
	}
	if err := titleRows.Err(); err != nil {
		return nil, archwiki.Errorf(archwiki.EIO, "query titles: %w", err)
	}

	return catalogue, nil
}

// Save replaces the stored catalogue in a single transaction.
func (s *CatalogueStore) Save(ctx context.Context, catalogue archwiki.Catalogue) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return archwiki.Errorf(archwiki.EIO, "begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM titles`); err != nil {
		return archwiki.Errorf(archwiki.EIO, "clear titles: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return archwiki.Errorf(archwiki.EIO, "clear categories: %w", err)
	}

	syncID := uuid.New().String()
	titles := 0
	for _, list := range catalogue {
		titles += len(list)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO syncs (id, synced_at, categories, titles)
		VALUES (?, ?, ?, ?)
	`, syncID, s.now().UTC().Format(time.RFC3339), len(catalogue), titles); err != nil {
		return archwiki.Errorf(archwiki.EIO, "record sync: %w", err)
	}

	for _, name := range catalogue.Categories() {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO categories (name, sync_id) VALUES (?, ?)
		`, name, syncID); err != nil {
			return archwiki.Errorf(archwiki.EIO, "insert category %q: %w", name, err)
		}
		for i, title := range catalogue[name] {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO titles (category, position, title) VALUES (?, ?, ?)
			`, name, i, title); err != nil {
				return archwiki.Errorf(archwiki.EIO, "insert title %q: %w", title, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return archwiki.Errorf(archwiki.EIO, "commit catalogue: %w", err)
	}
	return nil
}

// SyncedAt returns the time of the latest Save.
func (s *CatalogueStore) SyncedAt(ctx context.Context) (time.Time, error) {
	var syncedAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT synced_at FROM syncs ORDER BY rowid DESC LIMIT 1
	`).Scan(&syncedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, archwiki.Errorf(archwiki.EIO, "query last sync: %w", err)
	}

	t, err := parseRFC3339(syncedAt, "synced_at")
	if err != nil {
		return time.Time{}, archwiki.Errorf(archwiki.ESERIALIZE, "%v", err)
	}
	return t, nil
}
