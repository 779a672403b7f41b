package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cacack/wavematch/internal/domain"
	"github.com/cacack/wavematch/internal/treeindex"
)

func buildReportTestTrees(t *testing.T) (*treeindex.Tree, *treeindex.Tree) {
	t.Helper()

	srcPersons := map[string]*domain.Person{
		"sH": {ID: "sH", FirstName: "John"},
		"sW": {ID: "sW", FirstName: "Mary"},
		"sC": {ID: "sC", FirstName: "Peter"},
	}
	srcFamilies := map[string]*domain.Family{
		"sF": {ID: "sF", HusbandID: "sH", WifeID: "sW", ChildrenIDs: []string{"sC"}},
	}
	srcTree, _ := treeindex.Build(srcPersons, srcFamilies)

	dstPersons := map[string]*domain.Person{
		"dH": {ID: "dH", FirstName: "John"},
	}
	dstTree, _ := treeindex.Build(dstPersons, map[string]*domain.Family{})

	return srcTree, dstTree
}

func TestFindRelatedNode_FindsMappedSpouse(t *testing.T) {
	srcTree, _ := buildReportTestTrees(t)
	mappings := domain.NewMappingSet()
	require.NoError(t, mappings.Add(domain.PersonMapping{SourceID: "sH", DestinationID: "dH", MatchScore: 95}))

	node, found := FindRelatedNode(srcTree, "sW", mappings, HighConfidenceThreshold)
	require.True(t, found, "expected a related node for sW")
	assert.Equal(t, "dH", node.RelatedToNodeID)
	assert.Equal(t, domain.RelationSpouse, node.RelationType)
	assert.Equal(t, 1, node.DepthFromExisting)
}

func TestFindRelatedNode_OmittedWhenNoMappedRelative(t *testing.T) {
	srcTree, _ := buildReportTestTrees(t)
	mappings := domain.NewMappingSet()

	_, found := FindRelatedNode(srcTree, "sW", mappings, HighConfidenceThreshold)
	assert.False(t, found, "expected no related node when nothing is mapped")
}

func TestFindRelatedNode_IgnoresBelowThresholdMapping(t *testing.T) {
	srcTree, _ := buildReportTestTrees(t)
	mappings := domain.NewMappingSet()
	require.NoError(t, mappings.Add(domain.PersonMapping{SourceID: "sH", DestinationID: "dH", MatchScore: 60}))

	_, found := FindRelatedNode(srcTree, "sW", mappings, HighConfidenceThreshold)
	assert.False(t, found, "expected the low-score mapping to be ignored")
}

func TestFindRelatedNode_PrefersFatherOverChild(t *testing.T) {
	srcPersons := map[string]*domain.Person{
		"sH": {ID: "sH", FirstName: "John"},
		"sW": {ID: "sW", FirstName: "Mary"},
		"sC": {ID: "sC", FirstName: "Peter"},
		"sG": {ID: "sG", FirstName: "Grandchild"},
	}
	srcFamilies := map[string]*domain.Family{
		"sF1": {ID: "sF1", HusbandID: "sH", WifeID: "sW", ChildrenIDs: []string{"sC"}},
		"sF2": {ID: "sF2", HusbandID: "sC", ChildrenIDs: []string{"sG"}},
	}
	srcTree, _ := treeindex.Build(srcPersons, srcFamilies)

	mappings := domain.NewMappingSet()
	require.NoError(t, mappings.Add(domain.PersonMapping{SourceID: "sH", DestinationID: "dH", MatchScore: 95}))
	require.NoError(t, mappings.Add(domain.PersonMapping{SourceID: "sG", DestinationID: "dG", MatchScore: 95}))

	node, found := FindRelatedNode(srcTree, "sC", mappings, HighConfidenceThreshold)
	require.True(t, found, "expected a related node for sC")
	assert.Equal(t, "dH", node.RelatedToNodeID, "expected father to win over child")
	assert.Equal(t, domain.RelationParent, node.RelationType)
}
