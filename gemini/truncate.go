package gemini

import (
	"strings"
	"unicode/utf8"
)

// truncationMarker separates the sampled sections of a truncated document.
const truncationMarker = "\n\n[...]\n\n"

// SmartTruncate reduces text to roughly maxChars by sampling its beginning,
// middle, and end, so a summary prompt still sees how a long page opens,
// what sits in its body, and how it closes. Text within budget is returned
// unchanged.
func SmartTruncate(text string, maxChars int) string {
	if len(text) <= maxChars || maxChars <= 0 {
		return text
	}

	part := maxChars / 3

	start := text[:runeFloor(text, part)]

	mid := len(text) / 2
	half := part / 2
	middleStart := runeFloor(text, mid-half)
	middleEnd := runeFloor(text, mid+half)
	middle := text[middleStart:middleEnd]

	end := text[runeFloor(text, len(text)-part):]

	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(start))
	sb.WriteString(truncationMarker)
	sb.WriteString(strings.TrimSpace(middle))
	sb.WriteString(truncationMarker)
	sb.WriteString(strings.TrimSpace(end))
	return sb.String()
}

// runeFloor clamps i into [0, len(text)] and moves it back to the nearest
// rune boundary.
func runeFloor(text string, i int) int {
	if i < 0 {
		return 0
	}
	if i > len(text) {
		return len(text)
	}
	for i > 0 && !utf8.RuneStart(text[i]) {
		i--
	}
	return i
}
