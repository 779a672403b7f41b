package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cacack/wavematch/internal/domain"
	"github.com/cacack/wavematch/internal/treeindex"
	"github.com/cacack/wavematch/internal/wave"
)

func buildEngineTestTrees(t *testing.T) (*treeindex.Tree, *treeindex.Tree) {
	t.Helper()

	srcPersons := map[string]*domain.Person{
		"sH": {ID: "sH", FirstName: "John", Gender: domain.GenderMale},
		"sW": {ID: "sW", FirstName: "Mary", Gender: domain.GenderFemale},
	}
	srcFamilies := map[string]*domain.Family{
		"sF": {ID: "sF", HusbandID: "sH", WifeID: "sW"},
	}
	srcTree, issues := treeindex.Build(srcPersons, srcFamilies)
	require.Empty(t, issues)

	dstPersons := map[string]*domain.Person{
		"dH": {ID: "dH", FirstName: "John", Gender: domain.GenderMale},
		"dW": {ID: "dW", FirstName: "Mary", Gender: domain.GenderFemale},
	}
	dstFamilies := map[string]*domain.Family{
		"dF": {ID: "dF", HusbandID: "dH", WifeID: "dW"},
	}
	dstTree, issues := treeindex.Build(dstPersons, dstFamilies)
	require.Empty(t, issues)

	return srcTree, dstTree
}

func TestCompare_StampsRunIDAndProducesMappings(t *testing.T) {
	srcTree, dstTree := buildEngineTestTrees(t)

	result, err := Compare(srcTree, dstTree, "sH", "dH", wave.Options{
		MaxLevel:          2,
		ThresholdStrategy: domain.StrategyAdaptive,
	})
	require.NoError(t, err)

	assert.NotEqual(t, result.RunID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Len(t, result.Mappings, 2)
}

func TestCompare_AnchorMissingReturnsError(t *testing.T) {
	srcTree, dstTree := buildEngineTestTrees(t)

	_, err := Compare(srcTree, dstTree, "nope", "dH", wave.Options{MaxLevel: 1})
	assert.ErrorIs(t, err, wave.ErrAnchorMissing)
}

func TestBuildReport_ProducesReportFromComparison(t *testing.T) {
	srcTree, dstTree := buildEngineTestTrees(t)

	result, err := Compare(srcTree, dstTree, "sH", "dH", wave.Options{
		MaxLevel:          2,
		ThresholdStrategy: domain.StrategyAdaptive,
	})
	require.NoError(t, err)

	rep := BuildReport(result, srcTree, dstTree, 90)
	assert.NotNil(t, rep.NodesToUpdate)
}

func TestSerialize_EnumsUseSymbolicNames(t *testing.T) {
	srcTree, dstTree := buildEngineTestTrees(t)

	result, err := Compare(srcTree, dstTree, "sH", "dH", wave.Options{
		MaxLevel:          2,
		ThresholdStrategy: domain.StrategyAdaptive,
	})
	require.NoError(t, err)

	rep := BuildReport(result, srcTree, dstTree, 90)
	serialized := Serialize(result, rep, "source.ged", "destination.ged", 90)

	require.NotEmpty(t, serialized.WaveResult.Mappings)
	for _, m := range serialized.WaveResult.Mappings {
		assert.NotContains(t, m.FoundVia, "_")
		assert.NotEmpty(t, m.FoundVia)
	}
	assert.Equal(t, "Adaptive", serialized.Report.Options.ThresholdStrategy)
}
