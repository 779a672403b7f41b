package fuzzy

// JaroWinkler computes the Jaro-Winkler similarity of s1 and s2, in [0,1].
// No third-party Go implementation of Jaro-Winkler was found anywhere in
// the reference corpus (only a Neo4j/APOC Cypher call turned up), so this
// is hand-rolled in the same spirit as the teacher's own hand-rolled
// Levenshtein distance in `gedcom-go/validator/duplicates.go` — a small,
// well-understood string algorithm the corpus shows is acceptable to
// implement directly rather than import.
func JaroWinkler(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}
	r1, r2 := []rune(s1), []rune(s2)
	if len(r1) == 0 || len(r2) == 0 {
		return 0.0
	}

	jaro := jaroSimilarity(r1, r2)
	if jaro == 0 {
		return 0
	}

	prefixLen := 0
	maxPrefix := 4
	for prefixLen < len(r1) && prefixLen < len(r2) && prefixLen < maxPrefix && r1[prefixLen] == r2[prefixLen] {
		prefixLen++
	}

	const scalingFactor = 0.1
	return jaro + float64(prefixLen)*scalingFactor*(1-jaro)
}

func jaroSimilarity(r1, r2 []rune) float64 {
	len1, len2 := len(r1), len(r2)
	if len1 == 0 && len2 == 0 {
		return 1.0
	}
	if len1 == 0 || len2 == 0 {
		return 0.0
	}

	matchDistance := maxOfTwoInt(len1, len2)/2 - 1
	if matchDistance < 0 {
		matchDistance = 0
	}

	r1Matches := make([]bool, len1)
	r2Matches := make([]bool, len2)

	matches := 0
	for i := 0; i < len1; i++ {
		start := maxOfTwoInt(0, i-matchDistance)
		end := minOfTwoInt(len2-1, i+matchDistance)
		for j := start; j <= end; j++ {
			if r2Matches[j] || r1[i] != r2[j] {
				continue
			}
			r1Matches[i] = true
			r2Matches[j] = true
			matches++
			break
		}
	}

	if matches == 0 {
		return 0.0
	}

	transpositions := 0
	k := 0
	for i := 0; i < len1; i++ {
		if !r1Matches[i] {
			continue
		}
		for !r2Matches[k] {
			k++
		}
		if r1[i] != r2[k] {
			transpositions++
		}
		k++
	}

	m := float64(matches)
	t := float64(transpositions) / 2

	return (m/float64(len1) + m/float64(len2) + (m-t)/m) / 3.0
}

func maxOfTwoInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minOfTwoInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
