package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/archwiki"
)

// Ensure LoggingCatalogueStore implements archwiki.CatalogueStore.
var _ archwiki.CatalogueStore = (*LoggingCatalogueStore)(nil)

// LoggingCatalogueStore wraps a CatalogueStore with logging.
type LoggingCatalogueStore struct {
	next   archwiki.CatalogueStore
	logger *slog.Logger
}

// NewLoggingCatalogueStore creates a new LoggingCatalogueStore.
func NewLoggingCatalogueStore(next archwiki.CatalogueStore, logger *slog.Logger) *LoggingCatalogueStore {
	return &LoggingCatalogueStore{next: next, logger: logger}
}

// Load delegates to the wrapped store and logs the catalogue size.
func (s *LoggingCatalogueStore) Load(ctx context.Context) (catalogue archwiki.Catalogue, err error) {
	defer func(begin time.Time) {
		s.logger.Info("catalogue load",
			"categories", len(catalogue),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx)
}

// Save delegates to the wrapped store and logs the catalogue size.
func (s *LoggingCatalogueStore) Save(ctx context.Context, catalogue archwiki.Catalogue) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("catalogue save",
			"categories", len(catalogue),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, catalogue)
}

// SyncedAt delegates to the wrapped store.
func (s *LoggingCatalogueStore) SyncedAt(ctx context.Context) (time.Time, error) {
	return s.next.SyncedAt(ctx)
}
