package report

import (
	"sort"

	"github.com/cacack/wavematch/internal/domain"
	"github.com/cacack/wavematch/internal/treeindex"
)

// Build implements §6's build_report(): it walks every accepted mapping
// for update proposals, and every unmatched source person for addition
// proposals, against a single MappingSet built from a finished wave run.
func Build(mappings *domain.MappingSet, srcTree, dstTree *treeindex.Tree, highConfidenceThreshold int) Report {
	return Report{
		NodesToUpdate: buildUpdates(mappings, srcTree, dstTree, highConfidenceThreshold),
		NodesToAdd:    buildAdditions(mappings, srcTree, highConfidenceThreshold),
	}
}

func buildUpdates(mappings *domain.MappingSet, srcTree, dstTree *treeindex.Tree, highConfidenceThreshold int) []NodeToUpdate {
	out := []NodeToUpdate{}
	for _, pm := range mappings.All() {
		if pm.MatchScore < highConfidenceThreshold {
			continue
		}
		sp, ok := srcTree.Persons[pm.SourceID]
		if !ok {
			continue
		}
		dp, ok := dstTree.Persons[pm.DestinationID]
		if !ok {
			continue
		}
		diffs := CompareFields(sp, dp)
		if len(diffs) == 0 {
			continue
		}
		out = append(out, NodeToUpdate{
			SourceID:      pm.SourceID,
			DestinationID: pm.DestinationID,
			MatchScore:    pm.MatchScore,
			Diffs:         diffs,
		})
	}
	return out
}

func buildAdditions(mappings *domain.MappingSet, srcTree *treeindex.Tree, highConfidenceThreshold int) []NodeToAdd {
	unmatchedIDs := make([]string, 0)
	for id := range srcTree.Persons {
		if !mappings.SourceMapped(id) {
			unmatchedIDs = append(unmatchedIDs, id)
		}
	}
	sort.Strings(unmatchedIDs)

	var out []NodeToAdd
	for _, id := range unmatchedIDs {
		node, found := FindRelatedNode(srcTree, id, mappings, highConfidenceThreshold)
		if !found {
			continue
		}
		out = append(out, node)
	}
	return out
}
