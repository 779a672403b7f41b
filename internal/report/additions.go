package report

import (
	"github.com/cacack/wavematch/internal/domain"
	"github.com/cacack/wavematch/internal/treeindex"
)

// relativeCandidate is one immediate relative considered by FindRelatedNode,
// tagged with the priority bucket it was discovered under.
type relativeCandidate struct {
	personID string
	relation domain.RelationKind
	rank     int
}

// immediateCandidatesInPriorityOrder lists personID's immediate relatives in
// §4.8's fixed search order: spouses, father, mother, any child, any
// sibling. Father and mother are distinguished for search-order purposes
// even though both surface as domain.RelationParent, the only vocabulary
// the core has for a parent relation.
func immediateCandidatesInPriorityOrder(tree *treeindex.Tree, personID string) []relativeCandidate {
	var out []relativeCandidate

	for _, f := range tree.FamiliesAsSpouse(personID) {
		if f.HusbandID != "" && f.HusbandID != personID {
			out = append(out, relativeCandidate{f.HusbandID, domain.RelationSpouse, 0})
		}
		if f.WifeID != "" && f.WifeID != personID {
			out = append(out, relativeCandidate{f.WifeID, domain.RelationSpouse, 0})
		}
	}
	for _, f := range tree.FamiliesAsChild(personID) {
		if f.HusbandID != "" {
			out = append(out, relativeCandidate{f.HusbandID, domain.RelationParent, 1})
		}
	}
	for _, f := range tree.FamiliesAsChild(personID) {
		if f.WifeID != "" {
			out = append(out, relativeCandidate{f.WifeID, domain.RelationParent, 2})
		}
	}
	for _, f := range tree.FamiliesAsSpouse(personID) {
		for _, cid := range f.ChildrenIDs {
			out = append(out, relativeCandidate{cid, domain.RelationChild, 3})
		}
	}
	for _, f := range tree.FamiliesAsChild(personID) {
		for _, cid := range f.ChildrenIDs {
			if cid != personID {
				out = append(out, relativeCandidate{cid, domain.RelationSibling, 4})
			}
		}
	}

	return out
}

// FindRelatedNode implements §4.8's "Additions" search: the highest-priority
// immediate relative of personID that is mapped at score ≥ minScore,
// searched in fixed order (spouses, father, mother, any child, any
// sibling). Only immediate relatives are considered — the fixed order is a
// vocabulary of direct relations, and the spec gives no relation label for
// a graft point more than one hop away, so depth_from_existing is always 1
// when a relative is found this way.
func FindRelatedNode(tree *treeindex.Tree, personID string, mappings *domain.MappingSet, minScore int) (NodeToAdd, bool) {
	best := -1
	var bestCandidate relativeCandidate
	var bestMapping domain.PersonMapping

	for _, cand := range immediateCandidatesInPriorityOrder(tree, personID) {
		pm, ok := mappings.Get(cand.personID)
		if !ok || pm.MatchScore < minScore {
			continue
		}
		if best == -1 || cand.rank < best {
			best = cand.rank
			bestCandidate = cand
			bestMapping = pm
		}
	}

	if best == -1 {
		return NodeToAdd{}, false
	}

	return NodeToAdd{
		SourceID:          personID,
		PersonData:        tree.Persons[personID],
		RelatedToNodeID:   bestMapping.DestinationID,
		RelationType:      bestCandidate.relation,
		DepthFromExisting: 1,
	}, true
}
