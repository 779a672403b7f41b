package fuzzy

import "strings"

// placeSynonyms canonicalizes historic or translated place-name spellings
// to a single comparison form, per §4.2's place-compare synonym table.
var placeSynonyms = map[string]string{
	"saint petersburg": "st petersburg",
	"petrograd":        "st petersburg",
	"leningrad":        "st petersburg",
	"st. petersburg":   "st petersburg",
	"konigsberg":       "kaliningrad",
	"königsberg":       "kaliningrad",
	"lemberg":          "lviv",
	"lwow":             "lviv",
	"lvov":             "lviv",
	"danzig":           "gdansk",
	"breslau":          "wroclaw",
	"stettin":          "szczecin",
	"russian empire":   "russia",
	"soviet union":     "russia",
	"ussr":             "russia",
	"polish-lithuanian commonwealth": "poland",
}

// splitPlaceComponents parses a free-form place string on ',', ';', or '/'
// into ordered, normalized, non-empty components (locality first, country
// last, per the usual "City, Region, Country" convention).
func splitPlaceComponents(place string) []string {
	if place == "" {
		return nil
	}
	fields := strings.FieldsFunc(place, func(r rune) bool {
		return r == ',' || r == ';' || r == '/'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		n := normalizePlaceComponent(f)
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

func normalizePlaceComponent(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = stripDiacritics(s)
	if canon, ok := placeSynonyms[s]; ok {
		return canon
	}
	return s
}

// ComparePlaces implements §4.2's hierarchical place comparison: locality
// (first component) weight 50, region (middle components) weight 30,
// country (last component) weight 20, plus 10 if one component list is a
// subset of the other. Total clamped to 100 then scaled to [0,1].
func ComparePlaces(a, b string) float64 {
	ca := splitPlaceComponents(a)
	cb := splitPlaceComponents(b)
	if len(ca) == 0 || len(cb) == 0 {
		return 0
	}

	var points float64

	if ca[0] == cb[0] {
		points += 50
	}

	if componentMatches(regionOf(ca), regionOf(cb)) {
		points += 30
	}

	if countryOf(ca) != "" && countryOf(ca) == countryOf(cb) {
		points += 20
	}

	if isSubset(ca, cb) || isSubset(cb, ca) {
		points += 10
	}

	if points > 100 {
		points = 100
	}
	return points / 100
}

func regionOf(components []string) []string {
	if len(components) <= 2 {
		return nil
	}
	return components[1 : len(components)-1]
}

func countryOf(components []string) string {
	if len(components) == 0 {
		return ""
	}
	return components[len(components)-1]
}

func componentMatches(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func isSubset(small, large []string) bool {
	if len(small) == 0 {
		return false
	}
	set := make(map[string]bool, len(large))
	for _, c := range large {
		set[c] = true
	}
	for _, c := range small {
		if !set[c] {
			return false
		}
	}
	return true
}
