package domain

import (
	"fmt"
	"sort"
	"time"
)

// PersonMapping is an accepted correspondence between one source person and
// one destination person (§3, GLOSSARY "Mapping").
type PersonMapping struct {
	SourceID           string    `json:"source_id"`
	DestinationID      string    `json:"destination_id"`
	MatchScore         int       `json:"match_score"`
	Level              int       `json:"level"`
	FoundVia           FoundVia  `json:"found_via"`
	FoundInFamilyID    string    `json:"found_in_family_id,omitempty"`
	FoundFromPersonID  string    `json:"found_from_person_id,omitempty"`
	FoundAt            time.Time `json:"found_at"`
}

// ValidationIssue records a non-fatal problem found while validating a
// proposed mapping (§3, §4.6).
type ValidationIssue struct {
	Severity      IssueSeverity `json:"severity"`
	Kind          IssueKind     `json:"kind"`
	SourceID      string        `json:"source_id,omitempty"`
	DestinationID string        `json:"destination_id,omitempty"`
	Message       string        `json:"message"`
}

// MappingSet is an append-only, one-to-one correspondence between source and
// destination person ids, plus the side lists and issues the engine
// accumulates while running (§3).
type MappingSet struct {
	bySource map[string]*PersonMapping
	byDest   map[string]*PersonMapping
	order    []string // source ids, insertion order — determinism (§8 property 5)

	UnmatchedSource      map[string]bool
	UnmatchedDestination map[string]bool
	Issues               []ValidationIssue
}

// NewMappingSet creates an empty MappingSet.
func NewMappingSet() *MappingSet {
	return &MappingSet{
		bySource:              make(map[string]*PersonMapping),
		byDest:                make(map[string]*PersonMapping),
		UnmatchedSource:       make(map[string]bool),
		UnmatchedDestination:  make(map[string]bool),
	}
}

// ErrDuplicateMapping is returned by Add when the one-to-one invariant (§3,
// §8 property 1) would be violated.
type ErrDuplicateMapping struct {
	SourceID      string
	DestinationID string
}

func (e ErrDuplicateMapping) Error() string {
	return fmt.Sprintf("duplicate mapping: source=%s destination=%s already mapped", e.SourceID, e.DestinationID)
}

// Add inserts a new mapping, enforcing the one-to-one invariant. The caller
// (the Wave Engine) is responsible for having already run it past the
// Validator; Add itself only guards the structural invariant that cannot be
// waived by any validator severity level.
func (m *MappingSet) Add(pm PersonMapping) error {
	if _, exists := m.bySource[pm.SourceID]; exists {
		return ErrDuplicateMapping{SourceID: pm.SourceID, DestinationID: pm.DestinationID}
	}
	if _, exists := m.byDest[pm.DestinationID]; exists {
		return ErrDuplicateMapping{SourceID: pm.SourceID, DestinationID: pm.DestinationID}
	}
	cp := pm
	m.bySource[pm.SourceID] = &cp
	m.byDest[pm.DestinationID] = &cp
	m.order = append(m.order, pm.SourceID)
	delete(m.UnmatchedSource, pm.SourceID)
	delete(m.UnmatchedDestination, pm.DestinationID)
	return nil
}

// Get returns the mapping for a source id, if any.
func (m *MappingSet) Get(sourceID string) (PersonMapping, bool) {
	pm, ok := m.bySource[sourceID]
	if !ok {
		return PersonMapping{}, false
	}
	return *pm, true
}

// DestinationMapped reports whether a destination id is already targeted by
// some source id.
func (m *MappingSet) DestinationMapped(destinationID string) bool {
	_, ok := m.byDest[destinationID]
	return ok
}

// SourceMapped reports whether a source id already has a mapping.
func (m *MappingSet) SourceMapped(sourceID string) bool {
	_, ok := m.bySource[sourceID]
	return ok
}

// DestinationOf returns the destination id mapped from sourceID, if any.
func (m *MappingSet) DestinationOf(sourceID string) (string, bool) {
	pm, ok := m.bySource[sourceID]
	if !ok {
		return "", false
	}
	return pm.DestinationID, true
}

// All returns every mapping in insertion order — the order the engine
// produced them in, which determinism (§8 property 5) depends on.
func (m *MappingSet) All() []PersonMapping {
	out := make([]PersonMapping, 0, len(m.order))
	for _, sid := range m.order {
		out = append(out, *m.bySource[sid])
	}
	return out
}

// Len returns the number of mappings.
func (m *MappingSet) Len() int {
	return len(m.order)
}

// AddIssue appends a validation issue to the set's side list in arrival
// order; SortIssues puts the list into its deterministic order.
func (m *MappingSet) AddIssue(issue ValidationIssue) {
	m.Issues = append(m.Issues, issue)
}

// SortIssues orders issues deterministically: high severity first, then by
// source id, matching §5's "identical order of entries" guarantee.
func (m *MappingSet) SortIssues() {
	rank := func(s IssueSeverity) int {
		switch s {
		case SeverityHigh:
			return 0
		case SeverityMedium:
			return 1
		default:
			return 2
		}
	}
	sort.SliceStable(m.Issues, func(i, j int) bool {
		ri, rj := rank(m.Issues[i].Severity), rank(m.Issues[j].Severity)
		if ri != rj {
			return ri < rj
		}
		return m.Issues[i].SourceID < m.Issues[j].SourceID
	})
}
