package siteqa

// Cleaner extracts readable plain text from raw HTML.
type Cleaner interface {
	// Clean strips scripts, styles, navigation and other non-content
	// markup and returns whitespace-normalized visible text. It is
	// best-effort and never fails: malformed markup yields whatever
	// text can be recovered, empty input yields "".
	Clean(rawHTML string) string
}
