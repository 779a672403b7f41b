package engine

import (
	"strings"
	"time"

	"github.com/cacack/wavematch/internal/domain"
	"github.com/cacack/wavematch/internal/report"
	"github.com/cacack/wavematch/internal/wave"
)

// SerializedResult is §6's "Serialized result" outermost JSON shape.
type SerializedResult struct {
	Summary    SummaryDTO    `json:"summary"`
	Report     ReportDTO     `json:"report"`
	WaveResult WaveResultDTO `json:"wave_result"`
}

type SummaryDTO struct {
	Source                  string `json:"source"`
	Destination             string `json:"destination"`
	HighConfidenceThreshold int    `json:"high_confidence_threshold"`
}

type AnchorsDTO struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

type OptionsDTO struct {
	MaxLevel          int    `json:"max_level"`
	ThresholdStrategy string `json:"threshold_strategy"`
	BaseThreshold     int    `json:"base_threshold"`
}

type ReportDTO struct {
	SourceFile      string         `json:"source_file"`
	DestinationFile string         `json:"destination_file"`
	Anchors         AnchorsDTO     `json:"anchors"`
	Options         OptionsDTO     `json:"options"`
	Individuals     IndividualsDTO `json:"individuals"`
}

type IndividualsDTO struct {
	NodesToUpdate []report.NodeToUpdate `json:"nodes_to_update"`
	NodesToAdd    []NodeToAddDTO        `json:"nodes_to_add"`
}

// NodeToAddDTO mirrors report.NodeToAdd with RelationType serialized as its
// symbolic name per §6 ("Enums serialize as their symbolic names").
type NodeToAddDTO struct {
	SourceID          string         `json:"source_id"`
	PersonData        *domain.Person `json:"person_data"`
	RelatedToNodeID   string         `json:"related_to_node_id"`
	RelationType      string         `json:"relation_type"`
	DepthFromExisting int            `json:"depth_from_existing"`
}

type MappingDTO struct {
	SourceID          string    `json:"source_id"`
	DestinationID     string    `json:"destination_id"`
	MatchScore        int       `json:"match_score"`
	Level             int       `json:"level"`
	FoundVia          string    `json:"found_via"`
	FoundInFamilyID   string    `json:"found_in_family_id,omitempty"`
	FoundFromPersonID string    `json:"found_from_person_id,omitempty"`
	FoundAt           time.Time `json:"found_at"`
}

type ValidationIssueDTO struct {
	Severity      string `json:"severity"`
	Kind          string `json:"kind"`
	SourceID      string `json:"source_id,omitempty"`
	DestinationID string `json:"destination_id,omitempty"`
	Message       string `json:"message"`
}

type WaveResultDTO struct {
	SourceFile           string                   `json:"source_file"`
	DestinationFile      string                   `json:"destination_file"`
	ComparedAt           time.Time                `json:"compared_at"`
	Anchors              AnchorsDTO               `json:"anchors"`
	Options              OptionsDTO               `json:"options"`
	Mappings             []MappingDTO             `json:"mappings"`
	UnmatchedSource      []string                 `json:"unmatched_source"`
	UnmatchedDestination []string                 `json:"unmatched_destination"`
	ValidationIssues     []ValidationIssueDTO     `json:"validation_issues"`
	StatisticsByLevel    []wave.LevelStatistics   `json:"statistics_by_level"`
	Statistics           wave.AggregateStatistics `json:"statistics"`
}

// Serialize assembles §6's "Serialized result" from a finished comparison
// plus report, following the field names and the symbolic-enum
// serialization the spec's literal JSON shape and enum example specify.
func Serialize(result *CompareResult, rep report.Report, sourceFile, destinationFile string, highConfidenceThreshold int) SerializedResult {
	anchors := AnchorsDTO{Source: result.AnchorSourceID, Destination: result.AnchorDestinationID}
	options := OptionsDTO{
		MaxLevel:          result.Options.MaxLevel,
		ThresholdStrategy: pascalCase(string(result.Options.ThresholdStrategy)),
		BaseThreshold:     result.Options.BaseThreshold,
	}

	return SerializedResult{
		Summary: SummaryDTO{
			Source:                  sourceFile,
			Destination:             destinationFile,
			HighConfidenceThreshold: highConfidenceThreshold,
		},
		Report: ReportDTO{
			SourceFile:      sourceFile,
			DestinationFile: destinationFile,
			Anchors:         anchors,
			Options:         options,
			Individuals: IndividualsDTO{
				NodesToUpdate: rep.NodesToUpdate,
				NodesToAdd:    toNodeToAddDTOs(rep.NodesToAdd),
			},
		},
		WaveResult: WaveResultDTO{
			SourceFile:           sourceFile,
			DestinationFile:      destinationFile,
			ComparedAt:           result.ComparedAt,
			Anchors:              anchors,
			Options:              options,
			Mappings:             toMappingDTOs(result.Mappings),
			UnmatchedSource:      orEmpty(result.UnmatchedSource),
			UnmatchedDestination: orEmpty(result.UnmatchedDestination),
			ValidationIssues:     toValidationIssueDTOs(result.ValidationIssues),
			StatisticsByLevel:    result.StatisticsByLevel,
			Statistics:           result.Statistics,
		},
	}
}

func toNodeToAddDTOs(nodes []report.NodeToAdd) []NodeToAddDTO {
	out := make([]NodeToAddDTO, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, NodeToAddDTO{
			SourceID:          n.SourceID,
			PersonData:        n.PersonData,
			RelatedToNodeID:   n.RelatedToNodeID,
			RelationType:      pascalCase(string(n.RelationType)),
			DepthFromExisting: n.DepthFromExisting,
		})
	}
	return out
}

func toMappingDTOs(mappings []domain.PersonMapping) []MappingDTO {
	out := make([]MappingDTO, 0, len(mappings))
	for _, m := range mappings {
		out = append(out, MappingDTO{
			SourceID:          m.SourceID,
			DestinationID:     m.DestinationID,
			MatchScore:        m.MatchScore,
			Level:             m.Level,
			FoundVia:          pascalCase(string(m.FoundVia)),
			FoundInFamilyID:   m.FoundInFamilyID,
			FoundFromPersonID: m.FoundFromPersonID,
			FoundAt:           m.FoundAt,
		})
	}
	return out
}

func toValidationIssueDTOs(issues []domain.ValidationIssue) []ValidationIssueDTO {
	out := make([]ValidationIssueDTO, 0, len(issues))
	for _, i := range issues {
		out = append(out, ValidationIssueDTO{
			Severity:      pascalCase(string(i.Severity)),
			Kind:          pascalCase(string(i.Kind)),
			SourceID:      i.SourceID,
			DestinationID: i.DestinationID,
			Message:       i.Message,
		})
	}
	return out
}

// pascalCase turns a snake_case enum value like "family_inconsistency" into
// its symbolic form "FamilyInconsistency", matching §6's example
// ("Spouse", "Adaptive") for single-word values.
func pascalCase(s string) string {
	parts := strings.Split(s, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "")
}

// orEmpty ensures a nil slice serializes as [] rather than null, matching
// the literal shape's array fields.
func orEmpty(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
