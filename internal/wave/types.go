// Package wave implements the Wave Engine (§4.5): BFS-from-anchor
// propagation across both trees, orchestrating the Family Matcher, Member
// Matcher, and Validator, and accumulating provenance, statistics, and a
// structured detailed log.
package wave

import (
	"time"

	"github.com/google/uuid"

	"github.com/cacack/wavematch/internal/domain"
)

// Options mirrors §6's compare() options: {max_level, threshold_strategy,
// base_threshold}.
type Options struct {
	MaxLevel          int
	ThresholdStrategy domain.ThresholdStrategy
	BaseThreshold     int
}

// LevelStatistics is one row of §6's per-level statistics.
type LevelStatistics struct {
	Level             int
	PersonsProcessed  int
	NewMappings       int
	FamiliesProcessed int
	Duration          time.Duration
}

// AggregateStatistics summarizes a full run.
type AggregateStatistics struct {
	TotalPersonsProcessed  int
	TotalNewMappings       int
	TotalFamiliesProcessed int
	Duration               time.Duration
}

// DetailedLogEntry is one structured trace entry, covering everything
// §4.3's and §4.5's "log output" requirements ask an engine to be able to
// explain after the fact: which source family was evaluated, how many
// candidates it had, which destination family was chosen, whether it
// matched, and why candidates were rejected. RunID stamps every entry
// produced by one compare() invocation with a shared identifier, the way
// the teacher's uuid.New() stamps a freshly created record.
type DetailedLogEntry struct {
	RunID           uuid.UUID
	Level           int
	SourceFamilyID  string
	ChosenFamilyID  string
	Matched         bool
	CandidateCount  int
	RejectedReasons []string
}

// Result is §6's WaveCompareResult.
type Result struct {
	AnchorSourceID      string
	AnchorDestinationID string
	Options             Options

	Mappings             []domain.PersonMapping
	UnmatchedSource      []string
	UnmatchedDestination []string
	ValidationIssues     []domain.ValidationIssue
	StatisticsByLevel    []LevelStatistics
	Statistics           AggregateStatistics
	DetailedLog          []DetailedLogEntry
}
