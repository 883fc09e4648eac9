package siteqa

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations retry transient failures (timeouts, 5xx, 429) internally
// and surface permanent failures (other 4xx, non-HTML responses) immediately.
type Fetcher interface {
	// Fetch returns the raw HTML at url.
	// The context controls timeout and cancellation of a single call;
	// the retry budget is the implementation's own.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
