// Package text folds free text into the canonical form all search
// comparisons run on.
package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize lowercases, folds diacritics, strips punctuation, and collapses
// whitespace. Diacritics are dropped via NFD decomposition: combining marks
// and modifier letters (the ʻokina in "Hawaiʻi") are deleted outright so the
// surrounding word stays intact, while every other non-alphanumeric rune
// becomes a single space.
//
// Total and idempotent: Normalize never fails on any input, and
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	decomposed := norm.NFD.String(strings.ToLower(s))

	var b strings.Builder
	b.Grow(len(decomposed))

	pendingSpace := false
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Lm, r):
			// dropped, not spaced: keeps the host word whole
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		default:
			pendingSpace = true
		}
	}
	return b.String()
}
