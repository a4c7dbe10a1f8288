// Package htmltomarkdown provides a CommonMark rendering of wiki pages
// built on html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/archwiki"
	"github.com/fwojciec/archwiki/goquery"
)

// Ensure Converter implements archwiki.Converter at compile time.
var _ archwiki.Converter = (*Converter)(nil)

// Converter renders the markdown format with html-to-markdown and hands
// every other format to a fallback converter.
type Converter struct {
	conv     *converter.Converter
	fallback archwiki.Converter
}

// NewConverter creates a new Converter. Non-markdown formats are converted
// by fallback.
func NewConverter(fallback archwiki.Converter) *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv, fallback: fallback}
}

// ConvertPage converts the content container of html.
func (c *Converter) ConvertPage(html string, format archwiki.PageFormat, opts archwiki.ConvertOptions) (string, error) {
	if format != archwiki.Markdown {
		if c.fallback == nil {
			return "", archwiki.Errorf(archwiki.EINVALID, "format %s is not supported", format)
		}
		return c.fallback.ConvertPage(html, format, opts)
	}

	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", archwiki.Errorf(archwiki.EMALFORMED, "failed to parse HTML: %v", err)
	}

	content, ok := goquery.LocateContent(doc)
	if !ok {
		return "", archwiki.Errorf(archwiki.ENOTFOUND, "page has no %s element", goquery.ContentSelector)
	}

	if !opts.ShowURLs {
		content.Find("a").Each(func(_ int, a *gq.Selection) {
			a.ReplaceWithSelection(a.Contents())
		})
	}

	body, err := content.Html()
	if err != nil {
		return "", archwiki.Errorf(archwiki.EMALFORMED, "failed to render content: %v", err)
	}
	if strings.TrimSpace(body) == "" {
		return "", nil
	}

	result, err := c.conv.ConvertString(body)
	if err != nil {
		return "", archwiki.Errorf(archwiki.EINTERNAL, "markdown conversion: %v", err)
	}
	return result, nil
}
