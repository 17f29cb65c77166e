package tex

import "strings"

// DefaultMaxChars is the default wrap width for figure labels.
const DefaultMaxChars = 25

// Wrap breaks s into lines of at most maxChars characters, splitting on
// whitespace only. Strings at or under the limit, or without whitespace,
// are returned unchanged. A single word longer than the limit is kept
// whole on its own line.
func Wrap(s string, maxChars int) string {
	parts := strings.Fields(s)
	if len(s) <= maxChars || len(parts) < 2 {
		return s
	}

	var b strings.Builder
	b.WriteString(parts[0])
	lineLen := len(parts[0])
	for _, word := range parts[1:] {
		if lineLen+1+len(word) > maxChars {
			b.WriteByte('\n')
			lineLen = len(word)
		} else {
			b.WriteByte(' ')
			lineLen += len(word) + 1
		}
		b.WriteString(word)
	}
	return b.String()
}
