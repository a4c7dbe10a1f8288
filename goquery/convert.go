package goquery

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fwojciec/archwiki"
	"golang.org/x/net/html"
)

// Ensure Converter implements archwiki.Converter at compile time.
var _ archwiki.Converter = (*Converter)(nil)

// Converter converts wiki pages by walking the DOM of their content container.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// ConvertPage locates the content container of html and converts it.
func (c *Converter) ConvertPage(html string, format archwiki.PageFormat, opts archwiki.ConvertOptions) (string, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return "", err
	}

	content, ok := LocateContent(doc)
	if !ok {
		return "", archwiki.Errorf(archwiki.ENOTFOUND, "page has no %s element", ContentSelector)
	}

	return Convert(content.Get(0), format, opts), nil
}

// Convert linearizes the children of root into format. It never fails;
// unknown nodes are passed through by converting their children.
func Convert(root *html.Node, format archwiki.PageFormat, opts archwiki.ConvertOptions) string {
	w := &walker{format: format, opts: opts}
	return w.children(root)
}

// markdownEscaper escapes characters that would otherwise start markdown
// emphasis, code spans or links.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
)

// voidElements have no closing tag when rendered as HTML.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// walker holds the state of a single conversion.
type walker struct {
	format archwiki.PageFormat
	opts   archwiki.ConvertOptions

	// raw is positive inside elements whose text must not be escaped.
	raw int

	// rows counts the rows emitted for the innermost table.
	rows int
}

func (w *walker) children(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(w.node(c))
	}
	return b.String()
}

func (w *walker) node(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		return w.text(n.Data)
	case html.ElementNode:
		return w.element(n)
	default:
		return w.children(n)
	}
}

func (w *walker) text(s string) string {
	if w.raw > 0 {
		return s
	}
	switch w.format {
	case archwiki.Markdown:
		return markdownEscaper.Replace(s)
	case archwiki.HTML:
		return html.EscapeString(s)
	default:
		return s
	}
}

func (w *walker) element(n *html.Node) string {
	switch n.Data {
	case "a":
		return w.anchor(n)
	case "table":
		if w.format == archwiki.HTML {
			return w.render(n)
		}
		rows := w.rows
		w.rows = 0
		out := w.children(n)
		w.rows = rows
		return out
	case "tbody", "thead", "tr", "td", "th":
		if w.format == archwiki.HTML {
			return w.render(n)
		}
		return w.tableChildren(n)
	}

	switch w.format {
	case archwiki.Markdown:
		return w.markdown(n)
	case archwiki.HTML:
		return w.render(n)
	default:
		return w.children(n)
	}
}

func (w *walker) anchor(n *html.Node) string {
	if w.opts.ShowURLs && w.format == archwiki.HTML {
		return w.render(n)
	}

	label := w.children(n)
	if !w.opts.ShowURLs {
		return label
	}

	href := attr(n, "href")
	if w.format == archwiki.Markdown {
		return "[" + label + "](" + href + ")"
	}
	if w.opts.StyleURL != nil {
		href = w.opts.StyleURL(href)
	}
	return label + "[" + href + "]"
}

// markdown converts the elements that have a markdown counterpart and
// passes everything else through.
func (w *walker) markdown(n *html.Node) string {
	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(n.Data[1] - '0')
		return strings.Repeat("#", level) + " " + strings.TrimSpace(w.children(n))
	case "li":
		return "- " + w.children(n)
	case "strong", "b":
		return wrap(w.children(n), "**")
	case "em", "i":
		return wrap(w.children(n), "*")
	case "br":
		return "\n"
	case "code":
		w.raw++
		defer func() { w.raw-- }()
		return wrap(w.children(n), "`")
	case "pre":
		w.raw++
		defer func() { w.raw-- }()
		return "```\n" + strings.TrimSuffix(w.children(n), "\n") + "\n```"
	default:
		return w.children(n)
	}
}

// render re-emits n as HTML with its attributes.
func (w *walker) render(n *html.Node) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(n.Data)
	for _, a := range n.Attr {
		b.WriteByte(' ')
		if a.Namespace != "" {
			b.WriteString(a.Namespace)
			b.WriteByte(':')
		}
		fmt.Fprintf(&b, "%s=\"%s\"", a.Key, html.EscapeString(a.Val))
	}
	b.WriteByte('>')

	if voidElements[n.Data] {
		return b.String()
	}

	if n.Data == "script" || n.Data == "style" {
		w.raw++
		defer func() { w.raw-- }()
	}
	b.WriteString(w.children(n))
	b.WriteString("</" + n.Data + ">")
	return b.String()
}

func wrap(s, marker string) string {
	if s == "" {
		return ""
	}
	return marker + s + marker
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

// trimEnd removes trailing unicode whitespace.
func trimEnd(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
