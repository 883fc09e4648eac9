package siteqa

import (
	"strings"
	"unicode/utf8"
)

// BuildContext concatenates the full text of the selected URLs, in selection
// order, into a single prompt context bounded by maxChars. Each source is
// introduced by a "[Source: url]" delimiter. When the budget runs out, the
// last source is truncated and any remaining URLs are dropped; sources that
// fit entirely are never truncated. URLs absent from state are skipped.
//
// It returns the context string and the URLs actually included, so callers
// can validate the citations a model later claims.
func BuildContext(urls []string, state *IndexState, maxChars int) (string, []string) {
	if len(urls) == 0 || maxChars <= 0 {
		return "", nil
	}

	var sb strings.Builder
	var included []string
	remaining := maxChars

	for _, url := range urls {
		content, ok := state.Content(url)
		if !ok {
			continue
		}

		header := "[Source: " + url + "]\n"
		block := header + content + "\n\n"

		if len(block) <= remaining {
			sb.WriteString(block)
			included = append(included, url)
			remaining -= len(block)
			continue
		}

		// Partial fit: include as much of the content as the budget
		// allows, then stop. Not worth it when only the header fits.
		cut := remaining - len(header)
		if cut <= 0 {
			break
		}
		if cut > len(content) {
			cut = len(content)
		}
		for cut > 0 && !utf8.RuneStart(content[cut-1]) {
			cut--
		}
		if cut == 0 {
			break
		}
		sb.WriteString(header)
		sb.WriteString(content[:cut])
		included = append(included, url)
		break
	}

	return sb.String(), included
}
