package siteqa

import "context"

// Crawler discovers and fetches the pages of a single site.
type Crawler interface {
	// Crawl returns up to maxPages same-host pages reachable from
	// seedURL. It fails only when the seed itself cannot be fetched.
	Crawl(ctx context.Context, seedURL string, maxPages int) ([]Page, error)
}
