// Package crawl builds the page catalogue by crawling the wiki's category
// index and every category page it links to.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"runtime"

	"github.com/fwojciec/archwiki"
	"github.com/fwojciec/archwiki/bloom"
	"golang.org/x/sync/errgroup"
)

// Syncer crawls the category index and fetches the member titles of every
// category it lists.
type Syncer struct {
	Fetcher     archwiki.Fetcher
	Parser      archwiki.CatalogueParser
	RateLimiter archwiki.DomainLimiter

	// BaseURL defaults to archwiki.DefaultBaseURL.
	BaseURL string

	// IndexPage defaults to archwiki.DefaultIndexPage.
	IndexPage string

	// Concurrency bounds in-flight category fetches. Defaults to the number
	// of CPUs.
	Concurrency int
}

// SyncResult holds the outcome of a sync.
type SyncResult struct {
	Catalogue archwiki.Catalogue

	// Categories is the number of category links that were fetched.
	Categories int

	// Failed lists the categories whose page listing could not be fetched,
	// in index order. They are present in Catalogue with no titles. A
	// category that a later link fetched successfully is not listed.
	Failed []string

	// Titles counts every title in Catalogue, duplicates included.
	Titles int

	// Unique approximates the number of distinct titles.
	Unique int

	// Duplicates approximates how many titles appear more than once.
	Duplicates int
}

// ProgressEvent reports progress during a sync.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Category  string
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting sync progress.
type ProgressFunc func(event ProgressEvent)

// duplicateFalsePositiveRate is the Bloom filter error rate used to count
// duplicate titles.
const duplicateFalsePositiveRate = 0.001

// categoryResult holds the outcome of fetching a single category.
type categoryResult struct {
	position int
	name     string
	url      string
	titles   []string
	err      error
}

// Sync fetches the category index and then every category, merging the
// listings into one catalogue. Failing to fetch or parse the index aborts
// the sync; a failed category is recorded with no titles and does not
// affect the others.
func (s *Syncer) Sync(ctx context.Context, progress ProgressFunc) (*SyncResult, error) {
	baseURL := s.BaseURL
	if baseURL == "" {
		baseURL = archwiki.DefaultBaseURL
	}
	indexPage := s.IndexPage
	if indexPage == "" {
		indexPage = archwiki.DefaultIndexPage
	}

	indexURL := archwiki.PageURL(baseURL, indexPage)
	html, err := s.fetch(ctx, indexURL)
	if err != nil {
		return nil, fmt.Errorf("fetch category index: %w", err)
	}
	links, err := s.Parser.CategoryLinks(html)
	if err != nil {
		return nil, fmt.Errorf("parse category index: %w", err)
	}

	// The first link points back at the index itself.
	if len(links) > 0 {
		links = links[1:]
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	total := len(links)
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	resultCh := make(chan categoryResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, href := range links {
			g.Go(func() error {
				resultCh <- s.fetchCategory(gctx, i, baseURL, href)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results by position; workers share nothing.
	results := make([]categoryResult, total)
	completed := 0
	for result := range resultCh {
		completed++
		results[result.position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			Category:  result.name,
			URL:       result.url,
		}
		if result.err != nil {
			event.Type = ProgressFailed
			event.Error = result.err
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := merge(results)

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return res, nil
}

// merge combines category results in index order. When two links name the
// same category the later one wins, including its failure state.
func merge(results []categoryResult) *SyncResult {
	res := &SyncResult{
		Catalogue:  make(archwiki.Catalogue, len(results)),
		Categories: len(results),
	}
	winner := make(map[string]int, len(results))
	for _, r := range results {
		winner[r.name] = r.position
		if r.err != nil {
			res.Catalogue[r.name] = []string{}
			continue
		}
		res.Catalogue[r.name] = r.titles
	}
	for _, r := range results {
		if r.err != nil && winner[r.name] == r.position {
			res.Failed = append(res.Failed, r.name)
		}
	}

	for _, titles := range res.Catalogue {
		res.Titles += len(titles)
	}

	seen := bloom.NewFilter(uint(res.Titles), duplicateFalsePositiveRate)
	for _, title := range res.Catalogue.Titles() {
		if seen.Test(title) {
			res.Duplicates++
			continue
		}
		seen.Add(title)
	}
	res.Unique = int(seen.EstimatedCount())

	return res
}

func (s *Syncer) fetchCategory(ctx context.Context, position int, baseURL, href string) categoryResult {
	result := categoryResult{
		position: position,
		name:     archwiki.CategoryName(href),
		url:      archwiki.CategoryURL(baseURL, href),
	}

	html, err := s.fetch(ctx, result.url)
	if err != nil {
		result.err = err
		return result
	}

	titles, err := s.Parser.MemberTitles(html)
	if err != nil {
		result.err = err
		return result
	}

	result.titles = titles
	return result
}

func (s *Syncer) fetch(ctx context.Context, rawURL string) (string, error) {
	if s.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", archwiki.Errorf(archwiki.EINVALID, "invalid url %q: %v", rawURL, err)
		}
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}
	return s.Fetcher.Fetch(ctx, rawURL)
}
