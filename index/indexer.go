// Package index builds the in-memory question-answering index for a site:
// crawl, clean, summarize, store.
package index

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/siteqa"
	"golang.org/x/sync/errgroup"
)

// DefaultMinTextLen is the minimum cleaned-text length for a page to be
// indexed. Shorter pages carry too little content to summarize usefully.
const DefaultMinTextLen = 100

// DefaultConcurrency is the summarization fan-out when none is configured.
const DefaultConcurrency = 5

// Indexer runs the one-shot indexing pipeline for a site. Crawler, Cleaner,
// and Summarizer are required.
type Indexer struct {
	Crawler     siteqa.Crawler
	Cleaner     siteqa.Cleaner
	Summarizer  siteqa.Summarizer
	Concurrency int
	MinTextLen  int
	Logger      *slog.Logger
}

// Index crawls the site at seedURL and summarizes every usable page into a
// frozen IndexState. Pages whose cleaned text is too short, duplicates
// another page's text, or fails summarization are dropped whole, so the
// returned state never holds a summary without its content or vice versa.
// It fails when the crawl fails or when no page survives the pipeline.
func (ix *Indexer) Index(ctx context.Context, seedURL string, maxPages int) (*siteqa.IndexState, error) {
	logger := ix.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	pages, err := ix.Crawler.Crawl(ctx, seedURL, maxPages)
	if err != nil {
		return nil, err
	}

	candidates := ix.cleanPages(pages, logger)
	if len(candidates) == 0 {
		return nil, siteqa.Errorf(siteqa.EINTERNAL, "indexing %s produced no usable pages", seedURL)
	}

	summaries, contents := ix.summarizePages(ctx, candidates, logger)
	if len(summaries) == 0 {
		return nil, siteqa.Errorf(siteqa.EINTERNAL, "indexing %s produced no usable pages", seedURL)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Info("index built", "seed", seedURL, "crawled", len(pages), "indexed", len(summaries))
	return siteqa.NewIndexState(summaries, contents)
}

// candidate is a page that survived cleaning and deduplication.
type candidate struct {
	url  string
	text string
}

// cleanPages extracts text from each crawled page and drops pages that are
// too short or textually identical to an earlier page. Duplicate detection
// hashes the cleaned text, so boilerplate-only variants of the same content
// collapse to one entry.
func (ix *Indexer) cleanPages(pages []siteqa.Page, logger *slog.Logger) []candidate {
	minLen := ix.MinTextLen
	if minLen <= 0 {
		minLen = DefaultMinTextLen
	}

	var candidates []candidate
	seen := make(map[uint64]string, len(pages))
	for _, page := range pages {
		text := ix.Cleaner.Clean(page.HTML)
		if len(text) < minLen {
			logger.Info("page skipped", "url", page.URL, "reason", "too short", "chars", len(text))
			continue
		}
		sum := xxhash.Sum64String(text)
		if first, ok := seen[sum]; ok {
			logger.Info("page skipped", "url", page.URL, "reason", "duplicate content", "duplicates", first)
			continue
		}
		seen[sum] = page.URL
		candidates = append(candidates, candidate{url: page.URL, text: text})
	}
	return candidates
}

// summarizePages fans summarization out across the candidates. A failed
// summary drops its page and nothing else.
func (ix *Indexer) summarizePages(ctx context.Context, candidates []candidate, logger *slog.Logger) (map[string]*siteqa.PageSummary, map[string]string) {
	concurrency := ix.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	summaries := make(map[string]*siteqa.PageSummary, len(candidates))
	contents := make(map[string]string, len(candidates))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, c := range candidates {
		g.Go(func() error {
			summary, err := ix.Summarizer.Summarize(ctx, c.url, c.text)
			if err != nil {
				logger.Warn("page dropped", "url", c.url, "err", err)
				return nil
			}
			mu.Lock()
			summaries[c.url] = summary
			contents[c.url] = c.text
			mu.Unlock()
			return nil
		})
	}
	// Workers never return errors; failures drop their page.
	_ = g.Wait()
	return summaries, contents
}
