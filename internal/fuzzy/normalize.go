// Package fuzzy implements the Fuzzy Scorer (§4.2): per-pair, per-field
// similarity scoring between a source person and a destination person, with
// no dependence on any mapping already made. Name normalization here
// follows the teacher's own gedcom-go validator (`validator/duplicates.go`
// normalizeName) — lowercase, diacritic-stripped via golang.org/x/text's
// NFD-decompose / remove-combining-marks / NFC-recompose chain — extended
// per spec with hyphen/apostrophe/period/whitespace stripping, gendered-
// surname base-forming, and name-variant/transliteration folding.
package fuzzy

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// stripDiacritics removes combining marks from s, e.g. "Ñoño" -> "Nono".
// Falls back to s unchanged if the transform fails.
func stripDiacritics(s string) string {
	result, _, err := transform.String(diacriticStripper, s)
	if err != nil {
		return s
	}
	return result
}

// NormalizeName lowercases s, strips diacritics, and removes hyphens,
// apostrophes, periods, and internal whitespace, per §4.2's "Normalization"
// rule. It is the base normalization every name field goes through before
// variant/transliteration/Jaro-Winkler comparison.
func NormalizeName(s string) string {
	if s == "" {
		return ""
	}
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = stripDiacritics(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '-', '\'', '.', ' ', '\t', '\n':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
