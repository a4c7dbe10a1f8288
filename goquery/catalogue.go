package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/archwiki"
)

// Ensure CatalogueParser implements archwiki.CatalogueParser at compile time.
var _ archwiki.CatalogueParser = (*CatalogueParser)(nil)

// MembersSelector matches the page listing of a category page.
const MembersSelector = "#mw-pages"

// CatalogueParser extracts category links and member titles from wiki HTML.
type CatalogueParser struct{}

// NewCatalogueParser creates a new CatalogueParser.
func NewCatalogueParser() *CatalogueParser {
	return &CatalogueParser{}
}

// CategoryLinks returns the href of every anchor inside the content
// container, in document order. Returns ENOTFOUND if the page has no
// content container.
func (p *CatalogueParser) CategoryLinks(html string) ([]string, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	content, ok := LocateContent(doc)
	if !ok {
		return nil, archwiki.Errorf(archwiki.ENOTFOUND, "category index has no %s element", ContentSelector)
	}

	var links []string
	content.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		links = append(links, href)
	})
	return links, nil
}

// MemberTitles returns the title attribute of every anchor in the page
// listing of a category page. Duplicates are kept. Returns ENOTFOUND if the
// page has no listing.
func (p *CatalogueParser) MemberTitles(html string) ([]string, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return nil, err
	}

	members := doc.Find(MembersSelector).First()
	if members.Length() == 0 {
		return nil, archwiki.Errorf(archwiki.ENOTFOUND, "category page has no %s element", MembersSelector)
	}

	titles := []string{}
	members.Find("a[title]").Each(func(_ int, sel *goquery.Selection) {
		title, _ := sel.Attr("title")
		titles = append(titles, title)
	})
	return titles, nil
}
