package mock

import "github.com/fwojciec/archwiki"

var _ archwiki.Suggester = (*Suggester)(nil)

// Suggester is a mock implementation of archwiki.Suggester.
type Suggester struct {
	SuggestFn func(query string, titles []string, limit int) []string
}

func (s *Suggester) Suggest(query string, titles []string, limit int) []string {
	return s.SuggestFn(query, titles, limit)
}
