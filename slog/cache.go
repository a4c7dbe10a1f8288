package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/archwiki"
)

// Ensure LoggingPageCache implements archwiki.PageCache.
var _ archwiki.PageCache = (*LoggingPageCache)(nil)

// LoggingPageCache wraps a PageCache with hit/miss logging.
type LoggingPageCache struct {
	next   archwiki.PageCache
	logger *slog.Logger
}

// NewLoggingPageCache creates a new LoggingPageCache.
func NewLoggingPageCache(next archwiki.PageCache, logger *slog.Logger) *LoggingPageCache {
	return &LoggingPageCache{next: next, logger: logger}
}

// Fresh delegates to the wrapped cache and logs whether it hit.
func (c *LoggingPageCache) Fresh(identity string, format archwiki.PageFormat) bool {
	fresh := c.next.Fresh(identity, format)
	c.logger.Info("cache lookup",
		"page", identity,
		"format", format.String(),
		"fresh", fresh,
	)
	return fresh
}

// Read delegates to the wrapped cache.
func (c *LoggingPageCache) Read(identity string, format archwiki.PageFormat) (content string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache read",
			"page", identity,
			"format", format.String(),
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Read(identity, format)
}

// Write delegates to the wrapped cache.
func (c *LoggingPageCache) Write(identity string, format archwiki.PageFormat, content string) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache write",
			"page", identity,
			"format", format.String(),
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Write(identity, format, content)
}
