package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeSubject builds the lookup form of a subject or class name:
// NFC-composed, lower-cased, with every whitespace rune removed.
func NormalizeSubject(s string) string {
	s = norm.NFC.String(strings.ToLower(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FoldLabel strips diacritics, lower-cases and collapses runs of whitespace,
// so "  Thứ   Hai " becomes "thu hai".
func FoldLabel(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.NewReplacer("đ", "d", "Đ", "d").Replace(folded)
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}
