// Package normalize implements the text normalization contract of
// spec.md §4.1/§6: Unicode-aware case folding and diacritic stripping, in
// either combination.
//
// Diacritic stripping follows the same transform.Chain idiom the teacher
// library uses to decode legacy code pages (internal/regtext/reg_parser.go
// chains golang.org/x/text/encoding/charmap with golang.org/x/text/transform);
// here the chain is unicode/norm.NFD followed by runes.Remove(runes.In(Mn))
// instead of a charmap decoder.
package normalize

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	foldCaser       = cases.Fold()
	diacriticStrip  = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Normalize applies case folding (unless caseSensitive) and diacritic
// stripping (when ignoreDiacritics), composing lowercase-then-strip when
// both are requested.
func Normalize(s string, caseSensitive, ignoreDiacritics bool) string {
	out := s
	if !caseSensitive {
		out = foldCaser.String(out)
	}
	if ignoreDiacritics {
		out = StripDiacritics(out)
	}
	return out
}

// StripDiacritics decomposes s (NFD), drops Unicode combining marks, and
// recomposes (NFC). Pure function; never mutates its argument.
func StripDiacritics(s string) string {
	result, _, err := transform.String(diacriticStrip, s)
	if err != nil {
		// transform.String only errors on malformed input it can't make
		// progress on; fall back to the original text rather than losing it.
		return s
	}
	return result
}
