package fuzzy

import "strings"

// genderedSuffix pairs a feminine surname suffix with the masculine base
// suffix it normalizes to. Ordered longest-first so e.g. "-ova" is tried
// before "-a" and never partially shadowed by a shorter entry.
type genderedSuffix struct {
	feminine  string
	masculine string
}

// genderedSuffixTable covers the common Slavic feminine/masculine surname
// suffix pairs plus their transliterated Latin forms, per §4.2's
// "Gendered-surname normalization" rule. Longest-first so "-evskaya"
// matches before the shorter "-skaya".
var genderedSuffixTable = []genderedSuffix{
	{"овская", "овский"},
	{"евская", "евский"},
	{"inskaya", "insky"},
	{"ovskaya", "ovsky"},
	{"evskaya", "evsky"},
	{"ская", "ский"},
	{"skaya", "sky"},
	{"ова", "ов"},
	{"ева", "ев"},
	{"ina", "in"},
	{"ova", "ov"},
	{"eva", "ev"},
	{"а", ""},
	{"a", ""},
}

// surnameNormalizationExceptions lists normalized surnames whose trailing
// "-a"/"-ova"-like termination is not a gendered suffix and must be left
// untouched: Ukrainian "-enko" surnames are gender-invariant, and a handful
// of Romance-language surnames happen to end in "-a"/"-ova" for reasons
// unrelated to Slavic gender marking.
var surnameNormalizationExceptions = map[string]bool{
	"shevchenko": true,
	"petrenko":   true,
	"moldova":    true,
	"garcia":     true,
	"pereira":    true,
	"silva":      true,
	"costa":      true,
}

// NormalizeSurname applies base name normalization and then strips a known
// feminine suffix down to its masculine base, unless the surname is listed
// as an exception where the coincidental termination is not gendered.
func NormalizeSurname(s string) string {
	n := NormalizeName(s)
	if n == "" {
		return n
	}
	if surnameNormalizationExceptions[n] {
		return n
	}
	for _, pair := range genderedSuffixTable {
		if strings.HasSuffix(n, pair.feminine) && len(n) > len(pair.feminine) {
			return n[:len(n)-len(pair.feminine)] + pair.masculine
		}
	}
	return n
}
