// Package normtext canonicalizes strings for accent- and case-insensitive
// comparison. Catalog names, required standard ids and document text all pass
// through the same transform before any substring test, so "Estação Rádio
// Base" and "ESTACAO RADIO BASE" compare equal.
package normtext

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks and recomposes,
// leaving base Latin letters.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize trims surrounding whitespace, lower-cases and removes diacritics.
// It is total: if the transform fails on malformed UTF-8 the trimmed,
// lower-cased input is returned as-is.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

// ContainsNormalized reports whether needle occurs as a substring of haystack
// once both are normalized.
func ContainsNormalized(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}
