package archwiki

// DefaultSuggestionLimit is the number of suggestions offered for a page
// that was not found.
const DefaultSuggestionLimit = 5

// Suggester ranks known titles by similarity to a query.
type Suggester interface {
	// Suggest returns at most limit titles, most similar first. Titles with
	// equal scores keep their input order.
	Suggest(query string, titles []string, limit int) []string
}
