package fs

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/archwiki"
)

// DefaultTTL is how long a cached page is reused before it is refetched.
const DefaultTTL = 14 * 24 * time.Hour

// Ensure PageCache implements archwiki.PageCache at compile time.
var _ archwiki.PageCache = (*PageCache)(nil)

// PageCache stores converted pages as files named
// {dir}/{sanitized identity}.{format extension}.
type PageCache struct {
	dir        string
	ttl        time.Duration
	invalidate bool
	now        func() time.Time
}

// CacheOption configures a PageCache.
type CacheOption func(*PageCache)

// WithoutInvalidation makes every existing artifact fresh regardless of age.
func WithoutInvalidation() CacheOption {
	return func(c *PageCache) {
		c.invalidate = false
	}
}

// WithClock sets the time source used to compute artifact age.
func WithClock(now func() time.Time) CacheOption {
	return func(c *PageCache) {
		c.now = now
	}
}

// NewPageCache creates a PageCache rooted at dir. A ttl of zero or less
// uses DefaultTTL.
func NewPageCache(dir string, ttl time.Duration, opts ...CacheOption) *PageCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &PageCache{
		dir:        dir,
		ttl:        ttl,
		invalidate: true,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Path returns the file backing the artifact.
func (c *PageCache) Path(identity string, format archwiki.PageFormat) string {
	return filepath.Join(c.dir, SanitizeIdentity(identity)+"."+format.Extension())
}

// Fresh reports whether the artifact exists and, with invalidation
// enabled, is no older than the TTL.
func (c *PageCache) Fresh(identity string, format archwiki.PageFormat) bool {
	info, err := os.Stat(c.Path(identity, format))
	if err != nil || info.IsDir() {
		return false
	}
	if !c.invalidate {
		return true
	}
	return c.now().Sub(info.ModTime()) <= c.ttl
}

// Read returns the artifact content.
func (c *PageCache) Read(identity string, format archwiki.PageFormat) (string, error) {
	data, err := os.ReadFile(c.Path(identity, format))
	if err != nil {
		return "", archwiki.Errorf(archwiki.EIO, "read cached page %q: %w", identity, err)
	}
	return string(data), nil
}

// Write stores content, creating the cache directory if needed.
func (c *PageCache) Write(identity string, format archwiki.PageFormat, content string) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return archwiki.Errorf(archwiki.EIO, "create cache directory: %w", err)
	}
	if err := os.WriteFile(c.Path(identity, format), []byte(content), 0644); err != nil {
		return archwiki.Errorf(archwiki.EIO, "write cached page %q: %w", identity, err)
	}
	return nil
}
