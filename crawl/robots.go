package crawl

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/temoto/robotstxt"
)

// robotsUserAgent is the product token matched against robots.txt groups.
const robotsUserAgent = "siteqa"

// Robots gates crawling on each host's robots.txt rules. Rules are fetched
// lazily, once per host, and cached for the crawl's lifetime. A missing or
// unreadable robots.txt means allow-all.
type Robots struct {
	client *http.Client

	mu     sync.Mutex
	groups map[string]*robotstxt.Group // nil entry = allow all
}

// NewRobots creates a Robots gate using the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewRobots(client *http.Client) *Robots {
	if client == nil {
		client = http.DefaultClient
	}
	return &Robots{
		client: client,
		groups: make(map[string]*robotstxt.Group),
	}
}

// Allowed reports whether the host's robots.txt permits fetching rawURL.
// Unparsable URLs are allowed through; the fetcher will reject them with a
// better error.
func (r *Robots) Allowed(ctx context.Context, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return true
	}

	group := r.groupFor(ctx, u)
	if group == nil {
		return true
	}
	return group.Test(u.EscapedPath())
}

// groupFor returns the cached rule group for the URL's host, fetching
// robots.txt on first use.
func (r *Robots) groupFor(ctx context.Context, u *url.URL) *robotstxt.Group {
	r.mu.Lock()
	group, ok := r.groups[u.Host]
	r.mu.Unlock()
	if ok {
		return group
	}

	group = r.fetchGroup(ctx, u)

	r.mu.Lock()
	r.groups[u.Host] = group
	r.mu.Unlock()
	return group
}

// fetchGroup retrieves and parses a host's robots.txt.
// Any failure yields nil, which callers treat as allow-all.
func (r *Robots) fetchGroup(ctx context.Context, u *url.URL) *robotstxt.Group {
	robotsURL := &url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/robots.txt"}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL.String(), nil)
	if err != nil {
		return nil
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}

	data, err := robotstxt.FromBytes(body)
	if err != nil {
		return nil
	}
	return data.FindGroup(robotsUserAgent)
}
