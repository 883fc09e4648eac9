package siteqa

// LinkExtractor finds same-host links in a page.
type LinkExtractor interface {
	// ExtractLinks parses rawHTML and returns the normalized URLs of
	// links that share pageURL's host. Relative links are resolved
	// against pageURL.
	ExtractLinks(rawHTML, pageURL string) ([]string, error)
}
