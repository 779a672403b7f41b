// Package treeindex builds and navigates the forward/reverse indexes over a
// loaded genealogical tree (§4.1). A Tree is built once per input tree and
// never mutated afterward; every navigation operation is total and
// read-only, following the "arena plus index" design note in §9 — persons
// and families are owned by their id-keyed maps, and navigation always goes
// through an id, never a direct pointer web.
package treeindex

import (
	"sort"
	"strings"

	"github.com/cacack/wavematch/internal/domain"
)

// Relative is one entry in immediate_relatives' result (§4.1).
type Relative struct {
	PersonID string
	Relation domain.RelationKind
}

// Tree holds a loaded tree's person/family maps plus the reverse indexes
// the rest of the core relies on for O(1) navigation.
type Tree struct {
	Persons  map[string]*domain.Person
	Families map[string]*domain.Family

	spouseFamilies map[string][]string // person id -> family ids, in family-id order
	childFamilies  map[string][]string // person id -> family ids (normally zero or one)
	byBirthYear    map[int][]string
	bySurname      map[string][]string
}

// Build constructs a Tree's reverse indexes in O(persons + family-role
// references) time, per §4.1's build contract. A family referencing a
// person id absent from the persons map has that edge omitted, and a
// medium-severity family_inconsistency issue is returned for later
// reporting — it does not fail the build.
func Build(persons map[string]*domain.Person, families map[string]*domain.Family) (*Tree, []domain.ValidationIssue) {
	t := &Tree{
		Persons:        persons,
		Families:       families,
		spouseFamilies: make(map[string][]string),
		childFamilies:  make(map[string][]string),
		byBirthYear:    make(map[int][]string),
		bySurname:      make(map[string][]string),
	}

	var issues []domain.ValidationIssue

	famIDs := make([]string, 0, len(families))
	for id := range families {
		famIDs = append(famIDs, id)
	}
	sort.Strings(famIDs)

	for _, fid := range famIDs {
		f := families[fid]

		if f.HusbandID != "" {
			if _, ok := persons[f.HusbandID]; ok {
				t.spouseFamilies[f.HusbandID] = append(t.spouseFamilies[f.HusbandID], fid)
			} else {
				issues = append(issues, danglingIssue(fid, f.HusbandID, "husband_id"))
			}
		}
		if f.WifeID != "" {
			if _, ok := persons[f.WifeID]; ok {
				t.spouseFamilies[f.WifeID] = append(t.spouseFamilies[f.WifeID], fid)
			} else {
				issues = append(issues, danglingIssue(fid, f.WifeID, "wife_id"))
			}
		}
		for _, cid := range f.ChildrenIDs {
			if _, ok := persons[cid]; ok {
				t.childFamilies[cid] = append(t.childFamilies[cid], fid)
			} else {
				issues = append(issues, danglingIssue(fid, cid, "children_ids"))
			}
		}
	}

	personIDs := make([]string, 0, len(persons))
	for id := range persons {
		personIDs = append(personIDs, id)
	}
	sort.Strings(personIDs)

	for _, pid := range personIDs {
		p := persons[pid]
		if p.BirthDate != nil && p.BirthDate.Year != nil {
			y := *p.BirthDate.Year
			t.byBirthYear[y] = append(t.byBirthYear[y], pid)
		}
		surname := normalizeSurnameBucket(p.LastName)
		if surname != "" {
			t.bySurname[surname] = append(t.bySurname[surname], pid)
		}
	}

	return t, issues
}

func danglingIssue(familyID, personID, field string) domain.ValidationIssue {
	return domain.ValidationIssue{
		Severity: domain.SeverityMedium,
		Kind:     domain.IssueFamilyInconsistency,
		Message:  "family " + familyID + " references missing person " + personID + " via " + field,
	}
}

// normalizeSurnameBucket is a coarse normalization for bucketing only —
// lowercase and trimmed. The Fuzzy Scorer's name normalization (diacritics,
// gendered-surname base forms) is a separate, much more detailed concern
// that lives in internal/fuzzy; the Tree Index's buckets are a cheap
// structural aid, not a scoring input.
func normalizeSurnameBucket(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FamiliesAsSpouse returns the ordered list of families where p appears as
// spouse (husband or wife).
func (t *Tree) FamiliesAsSpouse(personID string) []*domain.Family {
	ids := t.spouseFamilies[personID]
	out := make([]*domain.Family, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.Families[id])
	}
	return out
}

// FamiliesAsChild returns the ordered list of families where p appears as a child.
func (t *Tree) FamiliesAsChild(personID string) []*domain.Family {
	ids := t.childFamilies[personID]
	out := make([]*domain.Family, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.Families[id])
	}
	return out
}

// PersonsByBirthYear returns persons whose birth year matches y exactly.
func (t *Tree) PersonsByBirthYear(y int) []string {
	return t.byBirthYear[y]
}

// PersonsBySurnameBucket returns persons whose last name normalizes to the
// same bucket key as surname.
func (t *Tree) PersonsBySurnameBucket(surname string) []string {
	return t.bySurname[normalizeSurnameBucket(surname)]
}

// ImmediateRelatives returns every spouse, child, parent, and sibling of
// personID, de-duplicated, in the stable order §4.1 requires:
// (relation_rank, person_id).
func (t *Tree) ImmediateRelatives(personID string) []Relative {
	seen := make(map[string]domain.RelationKind)

	for _, f := range t.FamiliesAsSpouse(personID) {
		if f.HusbandID != "" && f.HusbandID != personID {
			addRelative(seen, f.HusbandID, domain.RelationSpouse)
		}
		if f.WifeID != "" && f.WifeID != personID {
			addRelative(seen, f.WifeID, domain.RelationSpouse)
		}
		for _, cid := range f.ChildrenIDs {
			addRelative(seen, cid, domain.RelationChild)
		}
	}

	for _, f := range t.FamiliesAsChild(personID) {
		if f.HusbandID != "" {
			addRelative(seen, f.HusbandID, domain.RelationParent)
		}
		if f.WifeID != "" {
			addRelative(seen, f.WifeID, domain.RelationParent)
		}
		for _, cid := range f.ChildrenIDs {
			if cid != personID {
				addRelative(seen, cid, domain.RelationSibling)
			}
		}
	}

	out := make([]Relative, 0, len(seen))
	for pid, rel := range seen {
		out = append(out, Relative{PersonID: pid, Relation: rel})
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := domain.RelationRank(out[i].Relation), domain.RelationRank(out[j].Relation)
		if ri != rj {
			return ri < rj
		}
		return out[i].PersonID < out[j].PersonID
	})
	return out
}

// addRelative keeps the first (highest-priority) relation recorded for a
// person id, matching relation_rank's precedence when the same person
// shows up via more than one path (e.g. a half-sibling who is also, through
// a different family, a step-relation).
func addRelative(seen map[string]domain.RelationKind, personID string, relation domain.RelationKind) {
	if existing, ok := seen[personID]; ok {
		if domain.RelationRank(existing) <= domain.RelationRank(relation) {
			return
		}
	}
	seen[personID] = relation
}
