// Package goquery provides goquery-based implementations of the archwiki
// HTML services: locating the page body, converting it to text formats and
// extracting catalogue data.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/archwiki"
)

// ContentSelector matches the element holding the rendered page body.
const ContentSelector = ".mw-parser-output"

// LocateContent returns the first content container of doc.
// The boolean is false if the document has none.
func LocateContent(doc *goquery.Document) (*goquery.Selection, bool) {
	sel := doc.Find(ContentSelector).First()
	return sel, sel.Length() > 0
}

func parseDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, archwiki.Errorf(archwiki.EMALFORMED, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
