package siteqa

import (
	"net/url"
	"strings"
)

// trackingParams are query parameters stripped during URL normalization so
// that links differing only in campaign tracking dedupe to the same page.
var trackingParams = map[string]bool{
	"utm_source":   true,
	"utm_medium":   true,
	"utm_campaign": true,
	"utm_content":  true,
	"utm_term":     true,
}

// NormalizeURL canonicalizes a URL for visited-set deduplication: the
// fragment is dropped, tracking query parameters are removed, scheme and
// host are lowercased, and a trailing slash on a non-root path is trimmed.
// Returns EINVALID if rawURL cannot be parsed or is not absolute.
func NormalizeURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", Errorf(EINVALID, "URL %q is not absolute", rawURL)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	if u.RawQuery != "" {
		q := u.Query()
		for param := range q {
			if trackingParams[param] {
				q.Del(param)
			}
		}
		u.RawQuery = q.Encode()
	}

	if len(u.Path) > 1 {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}

	return u.String(), nil
}

// SameHost reports whether two absolute URLs share a host.
func SameHost(a, b string) bool {
	ua, err := url.Parse(a)
	if err != nil {
		return false
	}
	ub, err := url.Parse(b)
	if err != nil {
		return false
	}
	return ua.Host != "" && strings.EqualFold(ua.Host, ub.Host)
}
