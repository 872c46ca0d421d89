// Package normalize canonicalizes raw name strings before they are formatted
// into name variants or usernames.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics decomposes s into base characters plus combining marks and
// drops the marks, e.g. "José" -> "Jose". Case and non-letter characters are
// left alone, and applying it twice gives the same result as once.
func StripDiacritics(s string) string {
	// transformers keep state, so the chain is built per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		// only reachable on invalid UTF-8 the chain cannot span
		return s
	}
	return out
}

// Title trims s and title-cases every word: "jAMES" -> "James".
func Title(s string) string {
	// a Caser is not safe for concurrent use
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}

// Identifier strips diacritics from s and then drops every rune outside
// [A-Za-z0-9]. "Zoë-Ann" -> "ZoeAnn". Case is preserved.
func Identifier(s string) string {
	s = StripDiacritics(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isASCIIAlnum(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
