package mock

import (
	"context"
	"time"

	"github.com/fwojciec/archwiki"
)

var _ archwiki.CatalogueStore = (*CatalogueStore)(nil)

// CatalogueStore is a mock implementation of archwiki.CatalogueStore.
type CatalogueStore struct {
	LoadFn     func(ctx context.Context) (archwiki.Catalogue, error)
	SaveFn     func(ctx context.Context, catalogue archwiki.Catalogue) error
	SyncedAtFn func(ctx context.Context) (time.Time, error)
}

func (s *CatalogueStore) Load(ctx context.Context) (archwiki.Catalogue, error) {
	return s.LoadFn(ctx)
}

func (s *CatalogueStore) Save(ctx context.Context, catalogue archwiki.Catalogue) error {
	return s.SaveFn(ctx, catalogue)
}

func (s *CatalogueStore) SyncedAt(ctx context.Context) (time.Time, error) {
	return s.SyncedAtFn(ctx)
}

var _ archwiki.CatalogueParser = (*CatalogueParser)(nil)

// CatalogueParser is a mock implementation of archwiki.CatalogueParser.
type CatalogueParser struct {
	CategoryLinksFn func(html string) ([]string, error)
	MemberTitlesFn  func(html string) ([]string, error)
}

func (p *CatalogueParser) CategoryLinks(html string) ([]string, error) {
	return p.CategoryLinksFn(html)
}

func (p *CatalogueParser) MemberTitles(html string) ([]string, error) {
	return p.MemberTitlesFn(html)
}
