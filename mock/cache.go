package mock

import "github.com/fwojciec/archwiki"

var _ archwiki.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of archwiki.PageCache.
type PageCache struct {
	FreshFn func(identity string, format archwiki.PageFormat) bool
	ReadFn  func(identity string, format archwiki.PageFormat) (string, error)
	WriteFn func(identity string, format archwiki.PageFormat, content string) error
}

func (c *PageCache) Fresh(identity string, format archwiki.PageFormat) bool {
	return c.FreshFn(identity, format)
}

func (c *PageCache) Read(identity string, format archwiki.PageFormat) (string, error) {
	return c.ReadFn(identity, format)
}

func (c *PageCache) Write(identity string, format archwiki.PageFormat, content string) error {
	return c.WriteFn(identity, format, content)
}
