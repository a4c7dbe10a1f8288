// Package reader resolves a page request to its converted content, going
// through the page cache, the wiki and the catalogue for suggestions.
package reader

import (
	"context"
	"strings"

	"github.com/fwojciec/archwiki"
)

// DefaultLang is the language used for the open search precheck.
const DefaultLang = "en"

// Reader reads wiki pages.
type Reader struct {
	Fetcher   archwiki.Fetcher
	Converter archwiki.Converter

	// Cache is optional. Without it every read fetches.
	Cache archwiki.PageCache

	// Searcher is optional. When set, titles missing from the catalogue
	// are checked against open search before fetching.
	Searcher archwiki.SearchService

	// Suggester ranks Catalogue titles for pages that were not found.
	Suggester archwiki.Suggester
	Catalogue archwiki.Catalogue

	BaseURL         string
	Lang            string
	NoCacheWrite    bool
	SuggestionLimit int
}

// Request describes a page read.
type Request struct {
	// Page is a title or a full URL.
	Page        string
	Format      archwiki.PageFormat
	Options     archwiki.ConvertOptions
	IgnoreCache bool
}

// CacheIdentity returns the cache key of a request. Renderings with link
// targets are cached separately from those without, and styled targets
// separately from unstyled ones.
func CacheIdentity(req Request) string {
	switch {
	case req.Options.ShowURLs && req.Options.StyleURL != nil:
		return req.Page + ".urls.styled"
	case req.Options.ShowURLs:
		return req.Page + ".urls"
	default:
		return req.Page
	}
}

// ReadPage returns the converted content of the requested page.
//
// A page that does not exist or has no content container yields a
// *archwiki.NoPageFoundError carrying suggestions. If the content was produced but could not be
// cached, both the content and an EIO error are returned.
func (r *Reader) ReadPage(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Page) == "" {
		return "", archwiki.Errorf(archwiki.EINVALID, "page name required")
	}

	identity := CacheIdentity(req)
	if r.Cache != nil && !req.IgnoreCache && r.Cache.Fresh(identity, req.Format) {
		// A failed read falls through to a refetch.
		if content, err := r.Cache.Read(identity, req.Format); err == nil {
			return content, nil
		}
	}

	if err := r.checkExists(ctx, req.Page); err != nil {
		return "", err
	}

	baseURL := r.BaseURL
	if baseURL == "" {
		baseURL = archwiki.DefaultBaseURL
	}
	html, err := r.Fetcher.Fetch(ctx, archwiki.PageURL(baseURL, req.Page))
	if archwiki.ErrorCode(err) == archwiki.ENOTFOUND {
		return "", &archwiki.NoPageFoundError{Page: req.Page, Suggestions: r.suggest(req.Page)}
	}
	if err != nil {
		return "", err
	}

	content, err := r.Converter.ConvertPage(html, req.Format, req.Options)
	if archwiki.ErrorCode(err) == archwiki.ENOTFOUND {
		return "", &archwiki.NoPageFoundError{Page: req.Page, Suggestions: r.suggest(req.Page)}
	}
	if err != nil {
		return "", err
	}

	if r.Cache != nil && !r.NoCacheWrite {
		if err := r.Cache.Write(identity, req.Format, content); err != nil {
			return content, err
		}
	}
	return content, nil
}

// checkExists rejects titles that are neither in the catalogue nor the
// exact top open search hit.
func (r *Reader) checkExists(ctx context.Context, page string) error {
	if r.Searcher == nil || archwiki.IsURL(page) || r.Catalogue.Contains(page) {
		return nil
	}

	lang := r.Lang
	if lang == "" {
		lang = DefaultLang
	}
	resp, err := r.Searcher.OpenSearch(ctx, page, lang, r.limit())
	if err != nil {
		return err
	}
	exact, err := archwiki.IsExactMatch(page, resp)
	if err != nil {
		return err
	}
	if exact {
		return nil
	}

	suggestions := r.suggest(page)
	if len(suggestions) == 0 {
		if suggestions, err = archwiki.OpenSearchTitles(resp); err != nil {
			return err
		}
	}
	return &archwiki.NoPageFoundError{Page: page, Suggestions: suggestions}
}

func (r *Reader) suggest(page string) []string {
	if r.Suggester == nil || len(r.Catalogue) == 0 {
		return nil
	}
	return r.Suggester.Suggest(page, r.Catalogue.Titles(), r.limit())
}

func (r *Reader) limit() int {
	if r.SuggestionLimit > 0 {
		return r.SuggestionLimit
	}
	return archwiki.DefaultSuggestionLimit
}
