package mock

import (
	"context"

	"github.com/fwojciec/siteqa"
)

var _ siteqa.Crawler = (*Crawler)(nil)

// Crawler is a mock implementation of siteqa.Crawler.
type Crawler struct {
	CrawlFn func(ctx context.Context, seedURL string, maxPages int) ([]siteqa.Page, error)
}

func (c *Crawler) Crawl(ctx context.Context, seedURL string, maxPages int) ([]siteqa.Page, error) {
	return c.CrawlFn(ctx, seedURL, maxPages)
}
