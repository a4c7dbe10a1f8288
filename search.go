package archwiki

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// OpenSearchItem is one positional element of an open search response:
// either a single string or a list of strings.
type OpenSearchItem struct {
	Scalar  string
	List    []string
	IsArray bool
}

// UnmarshalJSON decodes a JSON string or array of strings.
func (i *OpenSearchItem) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		list := []string{}
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return Errorf(EMALFORMED, "open search element is not a string array: %w", err)
		}
		*i = OpenSearchItem{List: list, IsArray: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return Errorf(EMALFORMED, "open search element is neither a string nor a string array: %s", data)
	}
	*i = OpenSearchItem{Scalar: s}
	return nil
}

// MarshalJSON encodes the item in its original shape.
func (i OpenSearchItem) MarshalJSON() ([]byte, error) {
	if i.IsArray {
		if i.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(i.List)
	}
	return json.Marshal(i.Scalar)
}

// Single returns a scalar open search element.
func Single(s string) OpenSearchItem {
	return OpenSearchItem{Scalar: s}
}

// Array returns a list open search element.
func Array(items ...string) OpenSearchItem {
	if items == nil {
		items = []string{}
	}
	return OpenSearchItem{List: items, IsArray: true}
}

// OpenSearchResult is a matched page title and its canonical URL.
type OpenSearchResult struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// TextSearchItem is a full-text search hit. Snippet is an HTML fragment
// as returned by the API until it is prettified.
type TextSearchItem struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// SearchService queries the wiki search APIs.
type SearchService interface {
	// OpenSearch returns the raw positional open search response.
	OpenSearch(ctx context.Context, query, lang string, limit int) ([]OpenSearchItem, error)

	// TextSearch returns full-text hits with HTML snippets.
	TextSearch(ctx context.Context, query, lang string, limit int) ([]TextSearchItem, error)
}

// ParseOpenSearch pairs the titles (element 1) with the URLs (element 3) of
// an open search response.
func ParseOpenSearch(resp []OpenSearchItem) ([]OpenSearchResult, error) {
	for _, n := range []int{1, 3} {
		if len(resp) <= n {
			return nil, &ResponseError{Kind: MissingNthElement, Index: n}
		}
	}
	titles, err := openSearchArray(resp, 1)
	if err != nil {
		return nil, err
	}
	urls, err := openSearchArray(resp, 3)
	if err != nil {
		return nil, err
	}
	if len(titles) != len(urls) {
		return nil, &ResponseError{Kind: ArraysLengthMismatch}
	}

	results := make([]OpenSearchResult, 0, len(titles))
	for i, title := range titles {
		results = append(results, OpenSearchResult{Title: title, URL: urls[i]})
	}
	return results, nil
}

// OpenSearchTitles returns the matched titles of an open search response.
func OpenSearchTitles(resp []OpenSearchItem) ([]string, error) {
	return openSearchArray(resp, 1)
}

// IsExactMatch reports whether the top open search hit equals page verbatim.
func IsExactMatch(page string, resp []OpenSearchItem) (bool, error) {
	titles, err := openSearchArray(resp, 1)
	if err != nil {
		return false, err
	}
	return len(titles) > 0 && titles[0] == page, nil
}

func openSearchArray(resp []OpenSearchItem, n int) ([]string, error) {
	if len(resp) <= n {
		return nil, &ResponseError{Kind: MissingNthElement, Index: n}
	}
	if !resp[n].IsArray {
		return nil, &ResponseError{Kind: NthElementNotArray, Index: n}
	}
	return resp[n].List, nil
}

// Column widths of the plain search tables.
const (
	titleColumnWidth = 20
	valueColumnWidth = 90
)

// FormatOpenSearchTable renders results as a PAGE | URL table.
func FormatOpenSearchTable(results []OpenSearchResult) string {
	rows := make([]string, 0, len(results)+1)
	rows = append(rows, tableRow("PAGE", "URL"))
	for _, r := range results {
		rows = append(rows, tableRow(r.Title, r.URL))
	}
	return strings.Join(rows, "\n")
}

// FormatTextSearchTable renders hits as a PAGE | SNIPPET table.
func FormatTextSearchTable(items []TextSearchItem) string {
	rows := make([]string, 0, len(items)+1)
	rows = append(rows, tableRow("PAGE", "SNIPPET"))
	for _, item := range items {
		rows = append(rows, tableRow(item.Title, item.Snippet))
	}
	return strings.Join(rows, "\n")
}

func tableRow(title, value string) string {
	return fmt.Sprintf("%-*s | %-*s", titleColumnWidth, title, valueColumnWidth, value)
}

// HighlightMatches wraps every case-insensitive occurrence of query in text
// with style. The query is matched literally.
func HighlightMatches(text, query string, style func(string) string) string {
	if query == "" || style == nil {
		return text
	}
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))
	return re.ReplaceAllStringFunc(text, style)
}

// Language is a wiki interface language.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// LanguageService lists the languages the wiki supports.
type LanguageService interface {
	Languages(ctx context.Context) ([]Language, error)
}

// FormatLanguageTable renders languages as a CODE | NAME table.
func FormatLanguageTable(langs []Language) string {
	rows := make([]string, 0, len(langs)+1)
	rows = append(rows, fmt.Sprintf("%-10s | %s", "CODE", "NAME"))
	for _, l := range langs {
		rows = append(rows, fmt.Sprintf("%-10s | %s", l.Code, l.Name))
	}
	return strings.Join(rows, "\n")
}
