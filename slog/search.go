package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/archwiki"
)

// Ensure LoggingSearchService implements archwiki.SearchService.
var _ archwiki.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with query logging.
type LoggingSearchService struct {
	next   archwiki.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next archwiki.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// OpenSearch delegates to the wrapped service and logs the query.
func (s *LoggingSearchService) OpenSearch(ctx context.Context, query, lang string, limit int) (resp []archwiki.OpenSearchItem, err error) {
	defer func(begin time.Time) {
		s.logger.Info("open search",
			"query", query,
			"lang", lang,
			"limit", limit,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.OpenSearch(ctx, query, lang, limit)
}

// TextSearch delegates to the wrapped service and logs the query.
func (s *LoggingSearchService) TextSearch(ctx context.Context, query, lang string, limit int) (items []archwiki.TextSearchItem, err error) {
	defer func(begin time.Time) {
		s.logger.Info("text search",
			"query", query,
			"lang", lang,
			"limit", limit,
			"count", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.TextSearch(ctx, query, lang, limit)
}
