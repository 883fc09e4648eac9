package mock

import "github.com/fwojciec/siteqa"

var _ siteqa.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of siteqa.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(rawHTML, pageURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(rawHTML, pageURL string) ([]string, error) {
	return e.ExtractLinksFn(rawHTML, pageURL)
}
