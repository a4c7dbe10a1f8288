package goquery

import (
	"fmt"
	"strings"

	"github.com/fwojciec/archwiki"
	"golang.org/x/net/html"
)

// Table layout of the text formats.
const (
	cellWidth     = 25
	cellSeparator = " | "
)

// tableChildren converts the children of a table section or cell with the
// table rules.
func (w *walker) tableChildren(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(w.tableNode(c))
	}
	return b.String()
}

func (w *walker) tableNode(n *html.Node) string {
	switch {
	case n.Type == html.TextNode:
		return trimEnd(w.text(n.Data))
	case n.Type == html.ElementNode && n.Data == "tr":
		return w.row(n)
	default:
		return w.node(n)
	}
}

// row renders one table row as a single line of padded, non-empty cells.
// The first markdown row with content is followed by a header divider.
func (w *walker) row(n *html.Node) string {
	var cells []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		cell := w.tableNode(c)
		if cell == "" {
			continue
		}
		cells = append(cells, fmt.Sprintf("%-*s", cellWidth, cell))
	}

	line := strings.Join(cells, cellSeparator) + "\n"
	if len(cells) == 0 {
		return line
	}
	if w.format == archwiki.Markdown && w.rows == 0 {
		line += divider(len(cells))
	}
	w.rows++
	return line
}

func divider(columns int) string {
	if columns == 0 {
		return ""
	}
	dashes := make([]string, columns)
	for i := range dashes {
		dashes[i] = strings.Repeat("-", cellWidth)
	}
	return strings.Join(dashes, cellSeparator) + "\n"
}
