// Package strutil ranks page titles by fuzzy similarity using
// github.com/adrg/strutil.
package strutil

import (
	"sort"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/fwojciec/archwiki"
)

// Ensure Suggester implements archwiki.Suggester at compile time.
var _ archwiki.Suggester = (*Suggester)(nil)

// Suggester scores titles with the Smith-Waterman-Gotoh local alignment,
// which rewards shared substrings regardless of where they occur.
type Suggester struct {
	metric strutil.StringMetric
}

// NewSuggester creates a case-insensitive Suggester.
func NewSuggester() *Suggester {
	swg := metrics.NewSmithWatermanGotoh()
	swg.CaseSensitive = false
	return &Suggester{metric: swg}
}

// Suggest returns the limit titles most similar to query.
func (s *Suggester) Suggest(query string, titles []string, limit int) []string {
	if limit <= 0 || len(titles) == 0 {
		return []string{}
	}

	type scored struct {
		title string
		score float64
	}
	ranked := make([]scored, len(titles))
	for i, title := range titles {
		ranked[i] = scored{title: title, score: strutil.Similarity(query, title, s.metric)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	n := min(limit, len(ranked))
	out := make([]string, n)
	for i := range out {
		out[i] = ranked[i].title
	}
	return out
}
