// Package familymatch implements the Family Matcher (§4.3): given a source
// family and its candidate destination families, it picks the single best
// corresponding destination family (or none), combining structural
// agreement with the current mapping set and, when spouses are still
// unmapped, personal (fuzzy) similarity of the spouses themselves.
package familymatch

import (
	"sort"

	"github.com/cacack/wavematch/internal/domain"
	"github.com/cacack/wavematch/internal/fuzzy"
	"github.com/cacack/wavematch/internal/treeindex"
)

const minimumStructuralFloor = 10

// CandidateResult is one considered destination family, with its
// sub-scores and, if eliminated, the reason why.
type CandidateResult struct {
	FamilyID       string
	StructuralScore float64
	PersonalScore   float64
	CombinedScore   float64
	Conflict        bool
	RejectReason    string
}

// Result is the Family Matcher's full output for one source family: the
// chosen destination family id (empty if none), and every candidate it
// weighed.
type Result struct {
	ChosenFamilyID string
	Matched        bool
	Candidates     []CandidateResult
}

// Match selects the best destination family for src among candidates,
// given the source and destination trees and the mapping set built so far.
func Match(src *domain.Family, candidates []*domain.Family, srcTree, dstTree *treeindex.Tree, mappings *domain.MappingSet) Result {
	var results []CandidateResult

	for _, dst := range candidates {
		cr := evaluateCandidate(src, dst, srcTree, dstTree, mappings)
		results = append(results, cr)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FamilyID < results[j].FamilyID
	})

	var best *CandidateResult
	for i := range results {
		c := &results[i]
		if c.Conflict {
			continue
		}
		if best == nil || c.CombinedScore > best.CombinedScore {
			best = c
		}
	}

	if best == nil || (best.CombinedScore < minimumStructuralFloor && best.PersonalScore <= 0) {
		return Result{Matched: false, Candidates: results}
	}

	return Result{ChosenFamilyID: best.FamilyID, Matched: true, Candidates: results}
}

func evaluateCandidate(src, dst *domain.Family, srcTree, dstTree *treeindex.Tree, mappings *domain.MappingSet) CandidateResult {
	cr := CandidateResult{FamilyID: dst.ID}

	structural := 0.0

	husbandUnmapped := true
	wifeUnmapped := true

	if src.HusbandID != "" {
		if dstID, ok := mappings.DestinationOf(src.HusbandID); ok {
			husbandUnmapped = false
			if dst.HusbandID != "" {
				if dstID == dst.HusbandID {
					structural += 50
				} else {
					cr.Conflict = true
					cr.RejectReason = "husband mapping conflict"
					return cr
				}
			}
		} else if dst.HusbandID != "" {
			structural += 10
		}
	}

	if src.WifeID != "" {
		if dstID, ok := mappings.DestinationOf(src.WifeID); ok {
			wifeUnmapped = false
			if dst.WifeID != "" {
				if dstID == dst.WifeID {
					structural += 50
				} else {
					cr.Conflict = true
					cr.RejectReason = "wife mapping conflict"
					return cr
				}
			}
		} else if dst.WifeID != "" {
			structural += 10
		}
	}

	for _, childID := range src.ChildrenIDs {
		dstChildID, ok := mappings.DestinationOf(childID)
		if !ok {
			continue
		}
		if dst.HasChild(dstChildID) {
			structural += 20
			continue
		}
		if destinationChildBelongsElsewhere(dstTree, dstChildID, dst.ID) {
			cr.Conflict = true
			cr.RejectReason = "child mapping conflict"
			return cr
		}
	}

	cr.StructuralScore = structural

	var hScore, wScore float64
	var hDefined, wDefined bool

	if husbandUnmapped && src.HusbandID != "" && dst.HusbandID != "" {
		if h, ok := srcTree.Persons[src.HusbandID]; ok {
			if dh, ok := dstTree.Persons[dst.HusbandID]; ok {
				hScore = float64(fuzzy.Score(h, dh).Score)
				hDefined = true
			}
		}
	}
	if wifeUnmapped && src.WifeID != "" && dst.WifeID != "" {
		if w, ok := srcTree.Persons[src.WifeID]; ok {
			if dw, ok := dstTree.Persons[dst.WifeID]; ok {
				wScore = float64(fuzzy.Score(w, dw).Score)
				wDefined = true
			}
		}
	}

	switch {
	case hDefined && wDefined:
		cr.PersonalScore = 0.3*hScore + 0.3*wScore
		cr.CombinedScore = 0.4*structural + 0.3*hScore + 0.3*wScore
	case hDefined:
		cr.PersonalScore = hScore
		cr.CombinedScore = 0.4*structural + 0.6*hScore
	case wDefined:
		cr.PersonalScore = wScore
		cr.CombinedScore = 0.4*structural + 0.6*wScore
	default:
		cr.CombinedScore = structural
	}

	return cr
}

// destinationChildBelongsElsewhere reports whether dstChildID is a child of
// some family other than exceptFamilyID in the destination tree.
func destinationChildBelongsElsewhere(dstTree *treeindex.Tree, dstChildID, exceptFamilyID string) bool {
	for _, f := range dstTree.FamiliesAsChild(dstChildID) {
		if f.ID != exceptFamilyID {
			return true
		}
	}
	return false
}
