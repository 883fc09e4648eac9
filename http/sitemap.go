package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/siteqa"
)

// Ensure SitemapService implements siteqa.SitemapService.
var _ siteqa.SitemapService = (*SitemapService)(nil)

// SitemapService discovers page URLs from a site's sitemap. It checks
// robots.txt for Sitemap: directives and falls back to /sitemap.xml,
// following sitemap index files recursively.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs returns the deduplicated URLs listed in the site's sitemaps.
// A site without a sitemap yields an empty slice, not an error.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, siteqa.Errorf(siteqa.EINVALID, "invalid base URL %q: %v", baseURL, err)
	}

	root := &url.URL{Scheme: base.Scheme, Host: base.Host}

	sitemapURLs := s.sitemapsFromRobots(ctx, root)
	if len(sitemapURLs) == 0 {
		sitemapURLs = []string{root.JoinPath("sitemap.xml").String()}
	}

	urls := []string{}
	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)

	for _, sitemapURL := range sitemapURLs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// A broken or missing individual sitemap is not fatal to discovery.
		found, err := s.walkSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			continue
		}
		for _, u := range found {
			if !seenURLs[u] {
				seenURLs[u] = true
				urls = append(urls, u)
			}
		}
	}

	return urls, nil
}

// sitemapsFromRobots extracts Sitemap: directives from the site's robots.txt.
func (s *SitemapService) sitemapsFromRobots(ctx context.Context, root *url.URL) []string {
	body, err := s.get(ctx, root.JoinPath("robots.txt").String())
	if err != nil {
		return nil
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			continue
		}
		if sitemapURL := strings.TrimSpace(line[len("sitemap:"):]); sitemapURL != "" {
			sitemaps = append(sitemaps, sitemapURL)
		}
	}
	return sitemaps
}

// walkSitemap fetches and parses a sitemap, recursing into sitemap indexes.
func (s *SitemapService) walkSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, siteqa.Errorf(siteqa.EINVALID, "parsing sitemap %s: %v", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, siteqa.Errorf(siteqa.EINVALID, "empty sitemap at %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		var urls []string
		for _, child := range locValues(root, "sitemap") {
			found, err := s.walkSitemap(ctx, child, seen)
			if err != nil {
				continue
			}
			urls = append(urls, found...)
		}
		return urls, nil
	}

	return locValues(root, "url"), nil
}

// locValues returns the trimmed <loc> text of every <tag> child of root.
func locValues(root *etree.Element, tag string) []string {
	var values []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if v := strings.TrimSpace(loc.Text()); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// get fetches a URL and returns the response body for 200 responses.
func (s *SitemapService) get(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, siteqa.Errorf(siteqa.EINVALID, "invalid URL %q: %v", targetURL, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, siteqa.Errorf(siteqa.EUNAVAILABLE, "fetching %s: %v", targetURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, siteqa.Errorf(siteqa.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}
