// Package report implements the Report Builder (§4.8): two derivations from
// a finished wave.Result plus both trees, a field-by-field update proposal
// per high-confidence mapping and a relation-anchored addition proposal per
// unmatched source person. The field-resolution shape (a table of named
// fields with a source/destination value pair, read from the matched
// source and destination records) follows the same pattern as the
// teacher's command.resolveFields, generalized from "pick a survivor value"
// to "propose a diff".
package report

import "github.com/cacack/wavematch/internal/domain"

// DiffAction is the action a FieldDiff recommends for one field.
type DiffAction string

const (
	ActionAdd      DiffAction = "add"
	ActionUpdate   DiffAction = "update"
	ActionAddPhoto DiffAction = "add_photo"
)

// FieldDiff is one proposed change to a single field of a destination
// person, produced by comparing it against its mapped source person.
type FieldDiff struct {
	FieldName        string     `json:"field_name"`
	SourceValue      string     `json:"source_value"`
	DestinationValue string     `json:"destination_value"`
	Action           DiffAction `json:"action"`
}

// NodeToUpdate is one mapping whose comparison yielded a non-empty diff
// list — omitted from the report entirely when the diff list is empty.
type NodeToUpdate struct {
	SourceID      string      `json:"source_id"`
	DestinationID string      `json:"destination_id"`
	MatchScore    int         `json:"match_score"`
	Diffs         []FieldDiff `json:"diffs"`
}

// NodeToAdd is one unmatched source person with a high-confidence mapped
// relative to graft onto in the destination tree.
type NodeToAdd struct {
	SourceID          string              `json:"source_id"`
	PersonData        *domain.Person      `json:"person_data"`
	RelatedToNodeID   string              `json:"related_to_node_id"`
	RelationType      domain.RelationKind `json:"relation_type"`
	DepthFromExisting int                 `json:"depth_from_existing"`
}

// Report is §4.8's and §6's build_report() return value.
type Report struct {
	NodesToUpdate []NodeToUpdate `json:"nodes_to_update"`
	NodesToAdd    []NodeToAdd    `json:"nodes_to_add"`
}

// HighConfidenceThreshold is §6's default for build_report's
// high_confidence_threshold parameter.
const HighConfidenceThreshold = 90
