package siteqa

import "context"

// SitemapService discovers URLs from a site's sitemap.
type SitemapService interface {
	// DiscoverURLs returns the URLs listed in the site's sitemap, if any.
	// A missing sitemap is not an error; implementations return an empty
	// slice.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
