package archwiki

// ConvertOptions tunes a page conversion.
type ConvertOptions struct {
	// ShowURLs renders link targets next to their labels.
	ShowURLs bool

	// StyleURL decorates a link target in plain text output, e.g. with
	// terminal colors. Nil leaves the target unchanged.
	StyleURL func(url string) string
}

// Converter turns the HTML of a wiki page into the requested format.
type Converter interface {
	// ConvertPage locates the page body in html and converts it.
	// Returns ENOTFOUND if the page has no content container.
	ConvertPage(html string, format PageFormat, opts ConvertOptions) (string, error)
}
