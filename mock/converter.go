package mock

import "github.com/fwojciec/archwiki"

var _ archwiki.Converter = (*Converter)(nil)

// Converter is a mock implementation of archwiki.Converter.
type Converter struct {
	ConvertPageFn func(html string, format archwiki.PageFormat, opts archwiki.ConvertOptions) (string, error)
}

func (c *Converter) ConvertPage(html string, format archwiki.PageFormat, opts archwiki.ConvertOptions) (string, error) {
	return c.ConvertPageFn(html, format, opts)
}
