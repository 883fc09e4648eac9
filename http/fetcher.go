// Package http provides HTTP-based implementations of siteqa.Fetcher and
// siteqa.SitemapService.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/siteqa"
)

// DefaultFetchTimeout bounds a single fetch attempt. The retry budget is
// separate: each attempt gets its own timeout.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements siteqa.Fetcher at compile time.
var _ siteqa.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs over plain HTTP with bounded
// retries. Transient failures (network errors, timeouts, 5xx, 429) are
// retried with backoff; permanent ones (other 4xx, non-HTML responses)
// are surfaced immediately.
type Fetcher struct {
	client  *http.Client
	policy  siteqa.RetryPolicy
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-attempt timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRetryPolicy sets the retry policy.
// Defaults to siteqa.DefaultRetryPolicy if not specified.
func WithRetryPolicy(p siteqa.RetryPolicy) Option {
	return func(f *Fetcher) {
		f.policy = p
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		policy:  siteqa.DefaultRetryPolicy(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{}

	return f
}

// Fetch retrieves the HTML content from the given URL, retrying transient
// failures per the fetcher's retry policy.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	var html string
	err := f.policy.Do(ctx, func(ctx context.Context) error {
		var attemptErr error
		html, attemptErr = f.fetchOnce(ctx, url)
		return attemptErr
	})
	if err != nil {
		return "", err
	}
	return html, nil
}

// fetchOnce performs a single fetch attempt with its own timeout.
func (f *Fetcher) fetchOnce(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", siteqa.Errorf(siteqa.EINVALID, "invalid URL %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", siteqa.Errorf(siteqa.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode, url); err != nil {
		return "", err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "text/html") {
		return "", siteqa.Errorf(siteqa.EINVALID, "non-HTML content type %q for %s", contentType, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", siteqa.Errorf(siteqa.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return string(body), nil
}

// classifyStatus maps an HTTP status to the retry taxonomy: 5xx and 429 are
// transient, any other non-2xx is permanent.
func classifyStatus(status int, url string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status >= 500 || status == http.StatusTooManyRequests:
		return siteqa.Errorf(siteqa.EUNAVAILABLE, "HTTP %d for %s", status, url)
	case status == http.StatusNotFound || status == http.StatusGone:
		return siteqa.Errorf(siteqa.ENOTFOUND, "HTTP %d for %s", status, url)
	default:
		return siteqa.Errorf(siteqa.EINVALID, "HTTP %d for %s", status, url)
	}
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
