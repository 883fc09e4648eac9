// Package trafilatura provides a siteqa.Cleaner built on go-trafilatura's
// main-content extraction.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/siteqa"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Cleaner implements siteqa.Cleaner at compile time.
var _ siteqa.Cleaner = (*Cleaner)(nil)

// Cleaner extracts readable plain text from raw HTML. Trafilatura's
// boilerplate removal is used when it succeeds; for markup it rejects
// (or input that is already plain text) a tolerant node walk recovers
// whatever visible text is present, so Clean never fails.
type Cleaner struct {
	fallback siteqa.Cleaner
}

// Option configures a Cleaner.
type Option func(*Cleaner)

// WithFallback sets a secondary cleaner consulted when trafilatura extracts
// nothing, before the last-resort node walk.
func WithFallback(fallback siteqa.Cleaner) Option {
	return func(c *Cleaner) {
		c.fallback = fallback
	}
}

// NewCleaner creates a new Cleaner.
func NewCleaner(opts ...Option) *Cleaner {
	c := &Cleaner{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clean strips non-content markup and returns whitespace-normalized text.
// Empty input yields an empty string.
func (c *Cleaner) Clean(rawHTML string) string {
	if strings.TrimSpace(rawHTML) == "" {
		return ""
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err == nil && result != nil && strings.TrimSpace(result.ContentText) != "" {
		return normalizeWhitespace(result.ContentText)
	}

	if c.fallback != nil {
		if text := c.fallback.Clean(rawHTML); text != "" {
			return text
		}
	}

	return normalizeWhitespace(visibleText(rawHTML))
}

// skippedAtoms are element subtrees excluded from the fallback text walk:
// scripts, styles, and navigation-role chrome.
var skippedAtoms = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Nav:      true,
	atom.Header:   true,
	atom.Footer:   true,
	atom.Iframe:   true,
	atom.Noscript: true,
	atom.Button:   true,
	atom.Head:     true,
}

// visibleText recovers the visible text of arbitrary markup. html.Parse
// tolerates any input, so this path cannot fail.
func visibleText(rawHTML string) string {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return rawHTML
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedAtoms[n.DataAtom] {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString("\n")
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	return sb.String()
}

// normalizeWhitespace trims every line, drops empty ones, and collapses
// internal runs of spaces, which makes cleaning idempotent on its own output.
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
