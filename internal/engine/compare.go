// Package engine exposes the two top-level entry points named in §6:
// Compare (wraps the Wave Engine with a run identifier) and BuildReport
// (wraps the Report Builder), plus the JSON serialization shape §6 calls
// the "Serialized result".
package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/cacack/wavematch/internal/domain"
	"github.com/cacack/wavematch/internal/report"
	"github.com/cacack/wavematch/internal/treeindex"
	"github.com/cacack/wavematch/internal/wave"
)

// CompareResult is §6's WaveCompareResult, plus a RunID — the same role
// uuid.New() plays for the teacher's freshly created records, here
// stamping one comparison invocation rather than one person.
type CompareResult struct {
	RunID      uuid.UUID
	ComparedAt time.Time
	*wave.Result
}

// Compare runs the Wave Engine from the anchor pair and stamps the result
// with a fresh run identifier and timestamp.
func Compare(srcTree, dstTree *treeindex.Tree, anchorSourceID, anchorDestinationID string, opts wave.Options) (*CompareResult, error) {
	result, err := wave.Run(srcTree, dstTree, anchorSourceID, anchorDestinationID, opts)
	if err != nil {
		return nil, err
	}
	return &CompareResult{
		RunID:      uuid.New(),
		ComparedAt: time.Now(),
		Result:     result,
	}, nil
}

// BuildReport runs the Report Builder over a finished comparison.
func BuildReport(result *CompareResult, srcTree, dstTree *treeindex.Tree, highConfidenceThreshold int) report.Report {
	mappings := domain.NewMappingSet()
	for _, pm := range result.Mappings {
		_ = mappings.Add(pm)
	}
	return report.Build(mappings, srcTree, dstTree, highConfidenceThreshold)
}
