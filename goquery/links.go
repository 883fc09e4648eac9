// Package goquery provides an HTML link extractor built on goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/siteqa"
)

// skipExtensions are file types a crawl never follows: they are not HTML
// pages and would only waste the page budget.
var skipExtensions = []string{".pdf", ".jpg", ".jpeg", ".png", ".gif", ".svg", ".zip", ".mp3", ".mp4", ".webm", ".css", ".js"}

// Ensure LinkExtractor implements siteqa.LinkExtractor at compile time.
var _ siteqa.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor finds same-host links in HTML pages.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks parses rawHTML and returns normalized same-host links in
// document order, deduplicated. Relative hrefs are resolved against pageURL.
func (e *LinkExtractor) ExtractLinks(rawHTML, pageURL string) ([]string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, siteqa.Errorf(siteqa.EINVALID, "invalid page URL %q: %v", pageURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, siteqa.Errorf(siteqa.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" || isNonHTTPLink(href) {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}
		if !strings.EqualFold(resolved.Host, base.Host) {
			return
		}
		if hasSkippedExtension(resolved.Path) {
			return
		}

		normalized, err := siteqa.NormalizeURL(resolved.String())
		if err != nil {
			return
		}
		if seen[normalized] {
			return
		}
		seen[normalized] = true
		links = append(links, normalized)
	})

	return links, nil
}

// isNonHTTPLink reports whether href uses a scheme a crawler cannot follow.
func isNonHTTPLink(href string) bool {
	for _, prefix := range []string{"javascript:", "mailto:", "tel:", "data:", "#"} {
		if strings.HasPrefix(href, prefix) {
			return true
		}
	}
	return false
}

// hasSkippedExtension reports whether path names a non-HTML resource.
func hasSkippedExtension(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range skipExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
