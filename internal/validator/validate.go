// Package validator implements the Validator (§4.6): it decides whether a
// proposed mapping may join the mapping set, and collects the non-fatal
// issues that ride along with an accepted mapping into the final result.
package validator

import (
	"github.com/cacack/wavematch/internal/domain"
)

// CandidateMapping is the input the Validator checks: a proposed
// source/destination pairing plus the fuzzy match score that produced it
// and, when known, the source's already-mapped father (for the family
// consistency check).
type CandidateMapping struct {
	Source                *domain.Person
	Destination           *domain.Person
	MatchScore            int
	SourceMappedFatherDest string // destination id of src's already-mapped father, if any
}

// Decision is the Validator's verdict: whether the mapping is accepted,
// and every issue raised along the way (rejecting or not).
type Decision struct {
	Accepted bool
	Issues   []domain.ValidationIssue
}

const (
	birthYearRejectDelta = 15
	birthYearWarnDelta   = 5
	lowScoreFloor        = 40
)

// Validate runs every §4.6 check against cm and returns whether the
// mapping is accepted, plus the full set of issues raised (both rejecting
// and non-rejecting).
func Validate(cm CandidateMapping, mappings *domain.MappingSet) Decision {
	var issues []domain.ValidationIssue
	accepted := true

	if genderMismatch(cm.Source.Gender, cm.Destination.Gender) {
		issues = append(issues, issue(domain.SeverityHigh, domain.IssueGenderMismatch, cm, "gender mismatch"))
		accepted = false
	}

	if delta, ok := yearDelta(cm.Source.BirthDate, cm.Destination.BirthDate); ok {
		switch {
		case delta > birthYearRejectDelta:
			issues = append(issues, issue(domain.SeverityHigh, domain.IssueBirthYearMismatch, cm, "birth year mismatch"))
			accepted = false
		case delta > birthYearWarnDelta:
			issues = append(issues, issue(domain.SeverityMedium, domain.IssueBirthYearMismatch, cm, "birth year difference within tolerance"))
		}
	}

	if delta, ok := yearDelta(cm.Source.DeathDate, cm.Destination.DeathDate); ok {
		switch {
		case delta > birthYearRejectDelta:
			issues = append(issues, issue(domain.SeverityHigh, domain.IssueDeathYearMismatch, cm, "death year mismatch"))
			accepted = false
		case delta > birthYearWarnDelta:
			issues = append(issues, issue(domain.SeverityMedium, domain.IssueDeathYearMismatch, cm, "death year difference within tolerance"))
		}
	}

	if mappings.DestinationMapped(cm.Destination.ID) {
		issues = append(issues, issue(domain.SeverityHigh, domain.IssueDuplicateMapping, cm, "destination already targeted by another source"))
		accepted = false
	}

	if cm.SourceMappedFatherDest != "" && cm.Destination.FatherID != "" && cm.Destination.FatherID != cm.SourceMappedFatherDest {
		issues = append(issues, issue(domain.SeverityMedium, domain.IssueFamilyInconsistency, cm, "father mapping disagrees with destination's recorded father"))
	}

	if cm.MatchScore < lowScoreFloor {
		issues = append(issues, issue(domain.SeverityMedium, domain.IssueLowScore, cm, "match score below confidence floor"))
	}

	return Decision{Accepted: accepted, Issues: issues}
}

func genderMismatch(a, b domain.Gender) bool {
	if a == "" || a == domain.GenderUnknown || b == "" || b == domain.GenderUnknown {
		return false
	}
	return a != b
}

func yearDelta(a, b *domain.DateInfo) (int, bool) {
	if a == nil || b == nil || a.Year == nil || b.Year == nil {
		return 0, false
	}
	d := *a.Year - *b.Year
	if d < 0 {
		d = -d
	}
	return d, true
}

func issue(severity domain.IssueSeverity, kind domain.IssueKind, cm CandidateMapping, message string) domain.ValidationIssue {
	return domain.ValidationIssue{
		Severity:      severity,
		Kind:          kind,
		SourceID:      cm.Source.ID,
		DestinationID: cm.Destination.ID,
		Message:       message,
	}
}
