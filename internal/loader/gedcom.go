package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/cacack/gedcom-go/decoder"
	"github.com/cacack/gedcom-go/gedcom"

	"github.com/cacack/wavematch/internal/domain"
)

// GedcomLoader loads a tree from a GEDCOM file via cacack/gedcom-go,
// following the XRef-keyed, two-pass shape of the teacher's own
// internal/gedcom importer: families first (so spouse/children XRefs are
// known), then persons, resolving FatherID/MotherID from each person's
// first ChildInFamilies entry.
type GedcomLoader struct{}

var _ Loader = GedcomLoader{}

// Load implements Loader.
func (GedcomLoader) Load(path string) (map[string]*domain.Person, map[string]*domain.Family, error) {
	f, err := os.Open(path) // #nosec G304 -- CLI accepts a user-provided path
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := decoder.Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", path, err)
	}

	families := make(map[string]*domain.Family)
	for _, gf := range doc.Families() {
		families[gf.XRef] = convertFamily(gf)
	}

	persons := make(map[string]*domain.Person)
	for _, gi := range doc.Individuals() {
		persons[gi.XRef] = convertPerson(gi, families)
	}

	return persons, families, nil
}

func convertFamily(gf *gedcom.Family) *domain.Family {
	fam := &domain.Family{
		ID:          gf.XRef,
		HusbandID:   gf.Husband,
		WifeID:      gf.Wife,
		ChildrenIDs: append([]string(nil), gf.Children...),
	}
	if ev := familyEvent(gf, gedcom.EventMarriage); ev != nil {
		fam.MarriageDate = convertDate(ev.ParsedDate)
		fam.MarriagePlace = ev.Place
	}
	if ev := familyEvent(gf, gedcom.EventDivorce); ev != nil {
		fam.DivorceDate = convertDate(ev.ParsedDate)
	}
	return fam
}

func familyEvent(gf *gedcom.Family, t gedcom.EventType) *gedcom.Event {
	for _, ev := range gf.Events {
		if ev.Type == t {
			return ev
		}
	}
	return nil
}

func convertPerson(gi *gedcom.Individual, families map[string]*domain.Family) *domain.Person {
	p := &domain.Person{
		ID:                gi.XRef,
		Gender:            convertGender(gi.Sex),
		ExternalProfileID: gi.FamilySearchID,
	}

	if len(gi.Names) > 0 {
		name := gi.Names[0]
		p.FirstName = name.Given
		p.LastName = name.Surname
		p.Nickname = name.Nickname
		p.Suffix = name.Suffix
	}
	if len(gi.Names) > 1 {
		for _, name := range gi.Names[1:] {
			if strings.EqualFold(name.Type, "maiden") || strings.EqualFold(name.Type, "birth") {
				if name.Surname != "" && name.Surname != p.LastName {
					p.MaidenName = name.Surname
				}
			}
		}
	}

	if ev := gi.BirthEvent(); ev != nil {
		p.BirthDate = convertDate(ev.ParsedDate)
		p.BirthPlace = ev.Place
	}
	if ev := gi.DeathEvent(); ev != nil {
		p.DeathDate = convertDate(ev.ParsedDate)
		p.DeathPlace = ev.Place
	}
	if ev := individualEvent(gi, gedcom.EventBurial); ev != nil {
		p.BurialDate = convertDate(ev.ParsedDate)
		p.BurialPlace = ev.Place
	}

	if len(gi.ChildInFamilies) > 0 {
		if fam, ok := families[gi.ChildInFamilies[0].FamilyXRef]; ok {
			p.FatherID = fam.HusbandID
			p.MotherID = fam.WifeID
		}
	}

	return p
}

func individualEvent(gi *gedcom.Individual, t gedcom.EventType) *gedcom.Event {
	for _, ev := range gi.Events {
		if ev.Type == t {
			return ev
		}
	}
	return nil
}

func convertGender(sex string) domain.Gender {
	switch strings.ToUpper(sex) {
	case "M":
		return domain.GenderMale
	case "F":
		return domain.GenderFemale
	default:
		return domain.GenderUnknown
	}
}

// convertDate translates a parsed gedcom.Date into a domain.DateInfo,
// carrying over precision (day/month/year-only), qualifier, and the
// between-range end year.
func convertDate(d *gedcom.Date) *domain.DateInfo {
	if d == nil || d.IsPhrase {
		return nil
	}

	di := &domain.DateInfo{Raw: d.Original, Qualifier: domain.DateExact}

	switch d.Modifier {
	case gedcom.ModifierAbout, gedcom.ModifierEstimated, gedcom.ModifierCalculated:
		di.Qualifier = domain.DateAbout
	case gedcom.ModifierBefore:
		di.Qualifier = domain.DateBefore
	case gedcom.ModifierAfter:
		di.Qualifier = domain.DateAfter
	case gedcom.ModifierBetween, gedcom.ModifierFrom, gedcom.ModifierFromTo, gedcom.ModifierTo:
		di.Qualifier = domain.DateBetween
	}

	if d.Year != 0 {
		y := d.Year
		di.Year = &y
	}
	if d.Month != 0 {
		m := d.Month
		di.Month = &m
	}
	if d.Day != 0 {
		dd := d.Day
		di.Day = &dd
	}
	di.Precision = precisionOf(di.Day, di.Month, di.Year)

	if d.EndDate != nil && d.EndDate.Year != 0 {
		y := d.EndDate.Year
		di.YearEnd = &y
	}

	if di.Year == nil {
		return nil
	}
	return di
}

func precisionOf(day, month, year *int) domain.DatePrecision {
	switch {
	case day != nil:
		return domain.PrecisionDay
	case month != nil:
		return domain.PrecisionMonth
	default:
		return domain.PrecisionYear
	}
}
