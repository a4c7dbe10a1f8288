package goquery

import (
	"strings"

	"github.com/fwojciec/archwiki"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// SnippetText converts a search snippet HTML fragment to a single line of
// plain text.
func SnippetText(snippet string) (string, error) {
	parent := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(snippet), parent)
	if err != nil {
		return "", archwiki.Errorf(archwiki.EMALFORMED, "failed to parse snippet: %v", err)
	}

	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}

	text := Convert(root, archwiki.PlainText, archwiki.ConvertOptions{})
	return strings.ReplaceAll(text, "\n", " "), nil
}

// PrettifySnippets replaces the HTML snippet of every item with its plain
// text. When style is non-nil, occurrences of query are highlighted with it.
func PrettifySnippets(items []archwiki.TextSearchItem, query string, style func(string) string) ([]archwiki.TextSearchItem, error) {
	out := make([]archwiki.TextSearchItem, len(items))
	for i, item := range items {
		text, err := SnippetText(item.Snippet)
		if err != nil {
			return nil, err
		}
		out[i] = archwiki.TextSearchItem{
			Title:   item.Title,
			Snippet: archwiki.HighlightMatches(text, query, style),
		}
	}
	return out, nil
}
