package archwiki

import "strings"

// PageFormat selects the textual rendering of a page body.
type PageFormat int

// Supported page formats.
const (
	PlainText PageFormat = iota
	Markdown
	HTML
)

// String returns the format name as accepted by ParsePageFormat.
func (f PageFormat) String() string {
	switch f {
	case PlainText:
		return "plain-text"
	case Markdown:
		return "markdown"
	case HTML:
		return "html"
	default:
		return "unknown"
	}
}

// Extension returns the cache file extension for the format.
func (f PageFormat) Extension() string {
	switch f {
	case Markdown:
		return "md"
	case HTML:
		return "html"
	default:
		return "txt"
	}
}

// ParsePageFormat parses a format name. Returns EINVALID for unknown names.
func ParsePageFormat(s string) (PageFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain-text", "plain", "text", "txt":
		return PlainText, nil
	case "markdown", "md":
		return Markdown, nil
	case "html":
		return HTML, nil
	}
	return PlainText, Errorf(EINVALID, "unknown page format %q", s)
}
