package fuzzy

// CompareNames implements §4.2's per-field name similarity ladder, shared
// by first name and last name (the latter after gendered-surname
// normalization has already been applied by the caller):
//
//	1.00  normalized forms equal
//	0.95  known variants of each other (e.g. Ivan/John)
//	0.90  equal once both are transliterated to a common script
//	else  Jaro-Winkler similarity of the normalized forms
func CompareNames(normalizedA, normalizedB string) float64 {
	if normalizedA == "" || normalizedB == "" {
		return 0
	}
	if normalizedA == normalizedB {
		return 1.0
	}
	if AreNameVariants(normalizedA, normalizedB) {
		return 0.95
	}
	if IsTransliteratedEqual(normalizedA, normalizedB) {
		return 0.90
	}
	return JaroWinkler(normalizedA, normalizedB)
}
