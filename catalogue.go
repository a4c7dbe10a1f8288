package archwiki

import (
	"context"
	"sort"
	"time"
)

// Catalogue maps a category name to the page titles listed in it.
// Title order within a category follows the wiki's listing. A title may
// appear in several categories.
type Catalogue map[string][]string

// Categories returns the category names in sorted order.
func (c Catalogue) Categories() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Titles flattens the catalogue into a single title list. Categories are
// visited in sorted order so the result is stable across runs.
func (c Catalogue) Titles() []string {
	var titles []string
	for _, name := range c.Categories() {
		titles = append(titles, c[name]...)
	}
	return titles
}

// Contains reports whether any category lists title.
func (c Catalogue) Contains(title string) bool {
	for _, titles := range c {
		for _, t := range titles {
			if t == title {
				return true
			}
		}
	}
	return false
}

// Filter returns a catalogue holding only the named categories.
// Unknown names are ignored.
func (c Catalogue) Filter(categories []string) Catalogue {
	out := make(Catalogue, len(categories))
	for _, name := range categories {
		if titles, ok := c[name]; ok {
			out[name] = titles
		}
	}
	return out
}

// CatalogueStore persists the catalogue as a whole.
type CatalogueStore interface {
	// Load reads the stored catalogue. A store that was never written
	// returns an empty catalogue.
	// Returns ESERIALIZE if the stored document does not parse.
	Load(ctx context.Context) (Catalogue, error)

	// Save replaces the stored catalogue.
	Save(ctx context.Context, catalogue Catalogue) error

	// SyncedAt returns when the catalogue was last saved.
	// Returns the zero time if it was never saved.
	SyncedAt(ctx context.Context) (time.Time, error)
}

// CatalogueParser extracts catalogue data from wiki HTML.
type CatalogueParser interface {
	// CategoryLinks returns the href of every link in the category index
	// content, in document order.
	CategoryLinks(html string) ([]string, error)

	// MemberTitles returns the titles of the pages listed on a category page,
	// in document order.
	MemberTitles(html string) ([]string, error)
}
