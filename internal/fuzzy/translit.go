package fuzzy

import "strings"

// translitPair maps one Cyrillic letter to its Latin spelling, which may be
// several letters long (e.g. "щ" -> "shch").
type translitPair struct {
	cyrillic string
	latin    string
}

// cyrillicToLatinTable holds one entry per Cyrillic letter. It is
// intentionally lossy and one-directional in granularity (several Cyrillic
// letters can map to the same Latin digraph); round-tripping is not
// required, only that the same source string always normalizes to the same
// Latin form so two transliterated names can be compared for equality.
var cyrillicToLatinTable = []translitPair{
	{"щ", "shch"},
	{"ж", "zh"},
	{"х", "kh"},
	{"ц", "ts"},
	{"ю", "yu"},
	{"я", "ya"},
	{"ё", "yo"},
	{"й", "y"},
	{"ш", "sh"},
	{"а", "a"},
	{"б", "b"},
	{"в", "v"},
	{"г", "g"},
	{"д", "d"},
	{"е", "e"},
	{"з", "z"},
	{"и", "i"},
	{"к", "k"},
	{"л", "l"},
	{"м", "m"},
	{"н", "n"},
	{"о", "o"},
	{"п", "p"},
	{"р", "r"},
	{"с", "s"},
	{"т", "t"},
	{"у", "u"},
	{"ф", "f"},
	{"ы", "y"},
	{"э", "e"},
	{"ь", ""},
	{"ъ", ""},
}

// TransliterateToLatin converts a normalized (lowercase, diacritic-stripped)
// name containing Cyrillic characters into its Latin transliteration,
// matching the longest table entry at each position. Latin-only input
// passes through unchanged.
func TransliterateToLatin(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(runes); {
		matched := false
		for _, pair := range cyrillicToLatinTable {
			cyr := []rune(pair.cyrillic)
			if isCyrillicFragment(pair.cyrillic) && i+len(cyr) <= len(runes) && string(runes[i:i+len(cyr)]) == pair.cyrillic {
				b.WriteString(pair.latin)
				i += len(cyr)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteRune(runes[i])
			i++
		}
	}
	return b.String()
}

func isCyrillicFragment(s string) bool {
	for _, r := range s {
		if r >= 0x0400 && r <= 0x04FF {
			return true
		}
	}
	return false
}

// IsTransliteratedEqual reports whether a and b (already NormalizeName'd)
// are equal once both are transliterated to a common Latin form, per
// §4.2's "comparison normalizes both inputs to a common script" rule.
func IsTransliteratedEqual(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return TransliterateToLatin(a) == TransliterateToLatin(b)
}
