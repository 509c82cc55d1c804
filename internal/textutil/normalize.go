package textutil

import (
	"strings"
	"unicode"
)

// NormalizeTitle converts a title to its canonical comparison key.
// The input is lowercased, characters that are neither alphanumeric nor
// whitespace are removed, whitespace runs collapse to a single space, and
// the result is trimmed. The function is idempotent.
func NormalizeTitle(title string) string {
	lowered := strings.ToLower(title)
	var b strings.Builder
	b.Grow(len(lowered))
	prevSpace := false
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r):
			if !prevSpace && b.Len() > 0 {
				b.WriteByte(' ')
				prevSpace = true
			}
		}
	}
	return strings.TrimSpace(b.String())
}
