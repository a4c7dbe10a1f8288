package mock

import (
	"context"

	"github.com/fwojciec/archwiki"
)

var _ archwiki.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of archwiki.SearchService.
type SearchService struct {
	OpenSearchFn func(ctx context.Context, query, lang string, limit int) ([]archwiki.OpenSearchItem, error)
	TextSearchFn func(ctx context.Context, query, lang string, limit int) ([]archwiki.TextSearchItem, error)
}

func (s *SearchService) OpenSearch(ctx context.Context, query, lang string, limit int) ([]archwiki.OpenSearchItem, error) {
	return s.OpenSearchFn(ctx, query, lang, limit)
}

func (s *SearchService) TextSearch(ctx context.Context, query, lang string, limit int) ([]archwiki.TextSearchItem, error) {
	return s.TextSearchFn(ctx, query, lang, limit)
}

var _ archwiki.LanguageService = (*LanguageService)(nil)

// LanguageService is a mock implementation of archwiki.LanguageService.
type LanguageService struct {
	LanguagesFn func(ctx context.Context) ([]archwiki.Language, error)
}

func (s *LanguageService) Languages(ctx context.Context) ([]archwiki.Language, error) {
	return s.LanguagesFn(ctx)
}
