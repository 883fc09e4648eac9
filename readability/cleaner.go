// Package readability provides a siteqa.Cleaner built on the readability
// content extraction algorithm.
package readability

import (
	"strings"

	"github.com/fwojciec/siteqa"
	"github.com/go-shiori/go-readability"
)

// Ensure Cleaner implements siteqa.Cleaner at compile time.
var _ siteqa.Cleaner = (*Cleaner)(nil)

// Cleaner extracts readable plain text from raw HTML using go-readability.
// It serves as a fallback for markup other extractors reject.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean returns the whitespace-normalized article text of the page, or an
// empty string when no article can be extracted.
func (c *Cleaner) Clean(rawHTML string) string {
	if strings.TrimSpace(rawHTML) == "" {
		return ""
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return ""
	}
	return normalizeWhitespace(article.TextContent)
}

// normalizeWhitespace trims every line, drops empty ones, and collapses
// internal runs of spaces.
func normalizeWhitespace(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
