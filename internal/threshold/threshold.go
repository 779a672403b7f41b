// Package threshold computes the adaptive admission threshold the Member
// Matcher and Wave Engine use to decide whether a fuzzy score is good
// enough to propose a mapping (§4.7).
package threshold

import "github.com/cacack/wavematch/internal/domain"

func relationBase(relation domain.RelationKind) int {
	switch relation {
	case domain.RelationSpouse:
		return 40
	case domain.RelationParent:
		return 45
	case domain.RelationChild:
		return 50
	case domain.RelationSibling:
		return 55
	default:
		return 50
	}
}

func cardinalityAdjustment(candidateCount int) int {
	switch {
	case candidateCount <= 1:
		return -5
	case candidateCount == 2:
		return 0
	case candidateCount <= 4:
		return 5
	case candidateCount <= 8:
		return 10
	default:
		return 15
	}
}

func strategyModifier(strategy domain.ThresholdStrategy) int {
	switch strategy {
	case domain.StrategyAggressive:
		return -10
	case domain.StrategyConservative:
		return 15
	default: // adaptive, fixed (fixed is handled separately in Adaptive)
		return 0
	}
}

// Adaptive computes the admission threshold for relation given
// candidateCount admissible candidates, clamped to [30, 85]. Under the
// "fixed" strategy, baseThreshold (from configuration) is used verbatim
// instead of the relation/cardinality table, per §4.7.
func Adaptive(relation domain.RelationKind, candidateCount int, strategy domain.ThresholdStrategy, baseThreshold int) int {
	var result int
	if strategy == domain.StrategyFixed {
		result = baseThreshold
	} else {
		result = relationBase(relation) + cardinalityAdjustment(candidateCount) + strategyModifier(strategy)
	}
	return clamp(result, 30, 85)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
