package fuzzy

import (
	"fmt"

	"github.com/cacack/wavematch/internal/domain"
)

// FieldBreakdown is one line of a Score's structured breakdown: a field
// name, the points it contributed toward the 100-point total, and a short
// human-readable detail of how the similarity was derived.
type FieldBreakdown struct {
	Field          string
	WeightedPoints float64
	Detail         string
}

// Breakdown is the full per-pair scoring trace §4.2 and §6 call for.
type Breakdown struct {
	Score     int
	Breakdown []FieldBreakdown
}

const (
	weightFirstName  = 30
	weightLastName   = 25
	weightBirthDate  = 20
	weightBirthPlace = 15
	weightDeathDate  = 5
	weightGender     = 5
)

// Score computes the weighted similarity of source and destination per
// §4.2's six-field model and returns the rounded integer score alongside
// its field-by-field breakdown.
func Score(source, destination *domain.Person) Breakdown {
	var b Breakdown

	firstSim := CompareNames(NormalizeName(source.FirstName), NormalizeName(destination.FirstName))
	b.addField("first_name", weightFirstName, firstSim, fmt.Sprintf("%q vs %q", source.FirstName, destination.FirstName))

	lastSim := CompareNames(NormalizeSurname(sourceSurname(source)), NormalizeSurname(sourceSurname(destination)))
	b.addField("last_name", weightLastName, lastSim, fmt.Sprintf("%q vs %q", sourceSurname(source), sourceSurname(destination)))

	birthSim := CompareDates(source.BirthDate, destination.BirthDate)
	b.addField("birth_date", weightBirthDate, birthSim, dateDetail(source.BirthDate, destination.BirthDate))

	placeSim := ComparePlaces(source.BirthPlace, destination.BirthPlace)
	b.addField("birth_place", weightBirthPlace, placeSim, fmt.Sprintf("%q vs %q", source.BirthPlace, destination.BirthPlace))

	deathSim := CompareDates(source.DeathDate, destination.DeathDate)
	b.addField("death_date", weightDeathDate, deathSim, dateDetail(source.DeathDate, destination.DeathDate))

	genderSim := compareGender(source.Gender, destination.Gender)
	b.addField("gender", weightGender, genderSim, fmt.Sprintf("%s vs %s", source.Gender, destination.Gender))

	total := 0.0
	for _, f := range b.Breakdown {
		total += f.WeightedPoints
	}
	rounded := int(total + 0.5)
	if rounded > 100 {
		rounded = 100
	}
	if rounded < 0 {
		rounded = 0
	}
	b.Score = rounded

	return b
}

func (b *Breakdown) addField(field string, weight int, similarity float64, detail string) {
	b.Breakdown = append(b.Breakdown, FieldBreakdown{
		Field:          field,
		WeightedPoints: float64(weight) * similarity,
		Detail:         detail,
	})
}

// sourceSurname prefers LastName; falls back to MaidenName when LastName is
// unset, so an unmarried-name record can still compare against a married
// one that only carries MaidenName populated.
func sourceSurname(p *domain.Person) string {
	if p.LastName != "" {
		return p.LastName
	}
	return p.MaidenName
}

func compareGender(a, b domain.Gender) float64 {
	if a == domain.GenderUnknown || a == "" || b == domain.GenderUnknown || b == "" {
		return 1.0
	}
	if a == b {
		return 1.0
	}
	return 0
}

func dateDetail(a, b *domain.DateInfo) string {
	av, bv := "unknown", "unknown"
	if a != nil {
		av = a.String()
	}
	if b != nil {
		bv = b.String()
	}
	return fmt.Sprintf("%s vs %s", av, bv)
}
