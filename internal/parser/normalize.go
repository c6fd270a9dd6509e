package parser

import (
	"strings"
	"unicode"
)

// normaliseInput lower-cases and collapses separators. Hangul and other
// letters survive so bank names can be typed as written.
func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if unicode.IsSpace(r) || r == '-' || r == '_' || r == '/' || r == '\'' || r == '.' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func tokenise(normalised string) []string {
	return strings.Fields(normalised)
}
