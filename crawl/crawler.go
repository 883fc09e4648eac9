// Package crawl implements bounded breadth-first crawling of a single site.
// It coordinates fetching, link discovery, robots.txt gating, and politeness
// rate limiting across a pool of concurrent workers.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"sync"

	"github.com/fwojciec/siteqa"
)

// Frontier sizing for Bloom filter deduplication.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// DefaultConcurrency is the worker pool size when none is configured.
const DefaultConcurrency = 5

// Ensure Crawler implements siteqa.Crawler.
var _ siteqa.Crawler = (*Crawler)(nil)

// Crawler performs a breadth-first traversal starting at a seed URL, bounded
// by page count and restricted to the seed's host. Fetcher and Links are
// required; Sitemaps, Robots, and Limiter are optional.
type Crawler struct {
	Fetcher     siteqa.Fetcher
	Links       siteqa.LinkExtractor
	Sitemaps    siteqa.SitemapService
	Robots      *Robots
	Limiter     *HostLimiter
	Concurrency int
	Logger      *slog.Logger
}

// fetchResult holds the outcome of processing a single URL.
type fetchResult struct {
	url        string
	html       string
	discovered []string
	err        error
	skipped    bool // robots.txt disallowed
}

// Crawl fetches up to maxPages same-host pages reachable from seedURL.
// Individual page failures are logged and skipped; the crawl as a whole
// fails only when the seed itself cannot be fetched.
//
// Page order in the result is completion order, which is not deterministic
// across concurrent fetches. Downstream indexing keys by URL, so nothing
// may depend on this ordering.
func (c *Crawler) Crawl(ctx context.Context, seedURL string, maxPages int) ([]siteqa.Page, error) {
	if maxPages <= 0 {
		return nil, siteqa.Errorf(siteqa.EINVALID, "maxPages must be positive, got %d", maxPages)
	}

	seed, err := siteqa.NormalizeURL(seedURL)
	if err != nil {
		return nil, err
	}

	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(seed)
	c.seedFromSitemap(ctx, frontier, seed, logger)

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	workCh := make(chan string, concurrency)
	resultCh := make(chan fetchResult)

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for u := range workCh {
				select {
				case resultCh <- c.process(ctx, u):
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	var (
		pages      []siteqa.Page
		seedErr    error
		dispatched int
		pending    int
	)

	handle := func(res fetchResult) {
		pending--
		switch {
		case res.skipped:
			logger.Info("robots.txt disallows", "url", res.url)
		case res.err != nil:
			if res.url == seed {
				seedErr = res.err
			}
			logger.Warn("page fetch failed", "url", res.url, "err", res.err)
		default:
			pages = append(pages, siteqa.Page{URL: res.url, HTML: res.html})
			for _, link := range res.discovered {
				// Normalize before the uniqueness check so aliases of
				// the same logical page collapse to one frontier entry.
				normalized, err := siteqa.NormalizeURL(link)
				if err != nil || !siteqa.SameHost(normalized, seed) {
					continue
				}
				frontier.Push(normalized)
			}
		}
	}

	var next string
	haveNext := false
	if u, ok := frontier.Pop(); ok {
		next, haveNext = u, true
	}

	for {
		if ctx.Err() != nil {
			break
		}
		canDispatch := haveNext && dispatched < maxPages
		if !canDispatch && pending == 0 {
			break
		}

		if canDispatch {
			select {
			case <-ctx.Done():
			case workCh <- next:
				dispatched++
				pending++
				haveNext = false
			case res := <-resultCh:
				handle(res)
			}
		} else {
			select {
			case <-ctx.Done():
			case res, ok := <-resultCh:
				if ok {
					handle(res)
				}
			}
		}

		if !haveNext && dispatched < maxPages {
			if u, ok := frontier.Pop(); ok {
				next, haveNext = u, true
			}
		}
	}

	close(workCh)
	for res := range resultCh {
		handle(res)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seedErr != nil {
		return nil, siteqa.Errorf(siteqa.ErrorCode(seedErr), "crawl seed %s unreachable: %s", seed, siteqa.ErrorMessage(seedErr))
	}

	logger.Info("crawl finished", "seed", seed, "pages", len(pages), "dispatched", dispatched)
	return pages, nil
}

// seedFromSitemap pre-populates the frontier from the site's sitemap, when a
// SitemapService is configured. Sitemap failures never fail the crawl.
func (c *Crawler) seedFromSitemap(ctx context.Context, frontier *Frontier, seed string, logger *slog.Logger) {
	if c.Sitemaps == nil {
		return
	}

	urls, err := c.Sitemaps.DiscoverURLs(ctx, seed)
	if err != nil {
		logger.Warn("sitemap discovery failed", "seed", seed, "err", err)
		return
	}

	added := 0
	for _, u := range urls {
		normalized, err := siteqa.NormalizeURL(u)
		if err != nil || !siteqa.SameHost(normalized, seed) {
			continue
		}
		if frontier.Push(normalized) {
			added++
		}
	}
	if added > 0 {
		logger.Info("frontier seeded from sitemap", "seed", seed, "urls", added)
	}
}

// process fetches a single URL and extracts its links.
func (c *Crawler) process(ctx context.Context, pageURL string) fetchResult {
	result := fetchResult{url: pageURL}

	if c.Robots != nil && !c.Robots.Allowed(ctx, pageURL) {
		result.skipped = true
		return result
	}

	if c.Limiter != nil {
		u, err := url.Parse(pageURL)
		if err != nil {
			result.err = siteqa.Errorf(siteqa.EINVALID, "invalid URL %q: %v", pageURL, err)
			return result
		}
		if err := c.Limiter.Wait(ctx, u.Host); err != nil {
			result.err = err
			return result
		}
	}

	html, err := c.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		result.err = err
		return result
	}
	result.html = html

	// Link extraction failures are not fatal: the page still counts, it
	// just contributes no new frontier entries.
	if links, err := c.Links.ExtractLinks(html, pageURL); err == nil {
		result.discovered = links
	}

	return result
}
