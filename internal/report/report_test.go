package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cacack/wavematch/internal/domain"
	"github.com/cacack/wavematch/internal/treeindex"
)

func TestBuild_UpdateAndAdditionTogether(t *testing.T) {
	srcPersons := map[string]*domain.Person{
		"sH": {ID: "sH", FirstName: "John", BirthPlace: "Kyiv"},
		"sW": {ID: "sW", FirstName: "Mary"},
	}
	srcFamilies := map[string]*domain.Family{
		"sF": {ID: "sF", HusbandID: "sH", WifeID: "sW"},
	}
	srcTree, _ := treeindex.Build(srcPersons, srcFamilies)

	dstPersons := map[string]*domain.Person{
		"dH": {ID: "dH", FirstName: "John"},
	}
	dstTree, _ := treeindex.Build(dstPersons, map[string]*domain.Family{})

	mappings := domain.NewMappingSet()
	require.NoError(t, mappings.Add(domain.PersonMapping{SourceID: "sH", DestinationID: "dH", MatchScore: 95}))

	rep := Build(mappings, srcTree, dstTree, HighConfidenceThreshold)

	require.Len(t, rep.NodesToUpdate, 1)
	assert.Equal(t, "sH", rep.NodesToUpdate[0].SourceID)

	require.Len(t, rep.NodesToAdd, 1)
	assert.Equal(t, "sW", rep.NodesToAdd[0].SourceID)
	assert.Equal(t, domain.RelationSpouse, rep.NodesToAdd[0].RelationType)
}

func TestBuild_BelowThresholdMappingSkipsUpdate(t *testing.T) {
	srcPersons := map[string]*domain.Person{"sH": {ID: "sH", FirstName: "John", BirthPlace: "Kyiv"}}
	srcTree, _ := treeindex.Build(srcPersons, map[string]*domain.Family{})

	dstPersons := map[string]*domain.Person{"dH": {ID: "dH", FirstName: "John"}}
	dstTree, _ := treeindex.Build(dstPersons, map[string]*domain.Family{})

	mappings := domain.NewMappingSet()
	require.NoError(t, mappings.Add(domain.PersonMapping{SourceID: "sH", DestinationID: "dH", MatchScore: 50}))

	rep := Build(mappings, srcTree, dstTree, HighConfidenceThreshold)
	assert.Empty(t, rep.NodesToUpdate, "expected no update nodes below threshold")
}

func TestBuild_EmptyDiffListOmitsUpdate(t *testing.T) {
	srcPersons := map[string]*domain.Person{"sH": {ID: "sH", FirstName: "John"}}
	srcTree, _ := treeindex.Build(srcPersons, map[string]*domain.Family{})

	dstPersons := map[string]*domain.Person{"dH": {ID: "dH", FirstName: "John"}}
	dstTree, _ := treeindex.Build(dstPersons, map[string]*domain.Family{})

	mappings := domain.NewMappingSet()
	require.NoError(t, mappings.Add(domain.PersonMapping{SourceID: "sH", DestinationID: "dH", MatchScore: 95}))

	rep := Build(mappings, srcTree, dstTree, HighConfidenceThreshold)
	assert.Empty(t, rep.NodesToUpdate, "expected no update nodes when diff is empty")
}
