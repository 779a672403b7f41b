// Package membermatch implements the Member Matcher (§4.4): given a
// matched source/destination family pair, it proposes new person mappings
// for the family's still-unmapped spouses and children.
package membermatch

import (
	"sort"

	"github.com/cacack/wavematch/internal/domain"
	"github.com/cacack/wavematch/internal/fuzzy"
	"github.com/cacack/wavematch/internal/threshold"
)

// Role is the family role a proposal was discovered in, relative to the
// matched family pair itself (not relative to whichever person the Wave
// Engine used to reach this family) — the engine translates Role into the
// right domain.FoundVia depending on whether it reached this family
// through one of its spouses or one of its children.
type Role int

const (
	RoleSpouse Role = iota
	RoleChild
)

// Proposal is one proposed person mapping, not yet committed to a
// MappingSet — the caller (the Wave Engine) decides whether and how to
// record it, since it alone knows the current BFS level and breadcrumb.
type Proposal struct {
	SourceID      string
	DestinationID string
	MatchScore    int
	Role          Role
}

// MatchSpouses proposes husband/wife mappings for srcFamily against
// dstFamily. A role is skipped when the source side is already mapped, the
// destination side is missing, or the destination side is already the
// target of some other mapping.
func MatchSpouses(srcFamily, dstFamily *domain.Family, srcPersons, dstPersons map[string]*domain.Person, mappings *domain.MappingSet, strategy domain.ThresholdStrategy, baseThreshold int) []Proposal {
	var proposals []Proposal

	if p := matchSpouseRole(srcFamily.HusbandID, dstFamily.HusbandID, srcPersons, dstPersons, mappings, strategy, baseThreshold); p != nil {
		proposals = append(proposals, *p)
	}
	if p := matchSpouseRole(srcFamily.WifeID, dstFamily.WifeID, srcPersons, dstPersons, mappings, strategy, baseThreshold); p != nil {
		proposals = append(proposals, *p)
	}

	return proposals
}

func matchSpouseRole(srcID, dstID string, srcPersons, dstPersons map[string]*domain.Person, mappings *domain.MappingSet, strategy domain.ThresholdStrategy, baseThreshold int) *Proposal {
	if srcID == "" || dstID == "" {
		return nil
	}
	if mappings.SourceMapped(srcID) {
		return nil
	}
	if mappings.DestinationMapped(dstID) {
		return nil
	}

	sp, ok := srcPersons[srcID]
	if !ok {
		return nil
	}
	dp, ok := dstPersons[dstID]
	if !ok {
		return nil
	}

	score := fuzzy.Score(sp, dp).Score
	threshold := threshold.Adaptive(domain.RelationSpouse, 1, strategy, baseThreshold)
	if score < threshold {
		return nil
	}

	return &Proposal{SourceID: srcID, DestinationID: dstID, MatchScore: score, Role: RoleSpouse}
}

// childScoreCell is one cell of the |S|x|D| children score matrix.
type childScoreCell struct {
	sourceIndex int
	destIndex   int
	score       int
}

// MatchChildren greedily assigns srcChildren to dstChildren (both already
// filtered by the caller to members not yet in the mapping set), per
// §4.4's family-context child scoring and greedy walk.
func MatchChildren(srcChildren, dstChildren []string, srcPersons, dstPersons map[string]*domain.Person, strategy domain.ThresholdStrategy, baseThreshold int) []Proposal {
	if len(srcChildren) == 0 || len(dstChildren) == 0 {
		return nil
	}

	cells := make([]childScoreCell, 0, len(srcChildren)*len(dstChildren))
	for i, sid := range srcChildren {
		for j, did := range dstChildren {
			sp, ok1 := srcPersons[sid]
			dp, ok2 := dstPersons[did]
			if !ok1 || !ok2 {
				continue
			}
			cells = append(cells, childScoreCell{
				sourceIndex: i,
				destIndex:   j,
				score:       familyContextChildScore(sp, dp, i, j),
			})
		}
	}

	sort.SliceStable(cells, func(a, b int) bool {
		if cells[a].score != cells[b].score {
			return cells[a].score > cells[b].score
		}
		if cells[a].sourceIndex != cells[b].sourceIndex {
			return cells[a].sourceIndex < cells[b].sourceIndex
		}
		return cells[a].destIndex < cells[b].destIndex
	})

	candidateCount := minInt(len(srcChildren), len(dstChildren))
	admissionThreshold := threshold.Adaptive(domain.RelationChild, candidateCount, strategy, baseThreshold)

	sourceTaken := make(map[int]bool)
	destTaken := make(map[int]bool)
	var proposals []Proposal

	for _, c := range cells {
		if sourceTaken[c.sourceIndex] || destTaken[c.destIndex] {
			continue
		}
		if c.score < admissionThreshold {
			continue
		}
		sourceTaken[c.sourceIndex] = true
		destTaken[c.destIndex] = true
		proposals = append(proposals, Proposal{
			SourceID:      srcChildren[c.sourceIndex],
			DestinationID: dstChildren[c.destIndex],
			MatchScore:    c.score,
			Role:          RoleChild,
		})
	}

	return proposals
}

// familyContextChildScore implements §4.4's family-context child score,
// distinct from (and not simply equal to) the general Fuzzy Scorer's
// person-level score: it substitutes a flat gender term, scales the name
// term, and adds birth-year and birth-order bonuses specific to sibling
// position within a family.
func familyContextChildScore(sp, dp *domain.Person, sourceIndex, destIndex int) int {
	if sp.Gender != domain.GenderUnknown && sp.Gender != "" &&
		dp.Gender != domain.GenderUnknown && dp.Gender != "" &&
		sp.Gender != dp.Gender {
		return 0
	}

	score := 15.0

	firstNameSim := fuzzy.CompareNames(fuzzy.NormalizeName(sp.FirstName), fuzzy.NormalizeName(dp.FirstName))
	score += 0.6 * (firstNameSim * 100)

	if sp.BirthDate != nil && sp.BirthDate.Year != nil && dp.BirthDate != nil && dp.BirthDate.Year != nil {
		delta := *sp.BirthDate.Year - *dp.BirthDate.Year
		if delta < 0 {
			delta = -delta
		}
		switch {
		case delta == 0:
			score += 15
		case delta <= 2:
			score += 10
		case delta <= 5:
			score += 5
		}
	}

	indexDelta := sourceIndex - destIndex
	if indexDelta < 0 {
		indexDelta = -indexDelta
	}
	switch indexDelta {
	case 0:
		score += 10
	case 1:
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return int(score + 0.5)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
