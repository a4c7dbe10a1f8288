package archwiki

import "context"

// Fetcher retrieves HTML from wiki URLs.
type Fetcher interface {
	// Fetch issues a GET request and returns the response body.
	// Returns ENOTFOUND for 404 responses and ENETWORK on transport
	// failures and other non-200 responses.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
