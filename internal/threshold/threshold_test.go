package threshold

import (
	"testing"

	"github.com/cacack/wavematch/internal/domain"
)

func TestAdaptive_RelationBaseAndCardinality(t *testing.T) {
	tests := []struct {
		name      string
		relation  domain.RelationKind
		count     int
		strategy  domain.ThresholdStrategy
		baseConf  int
		want      int
	}{
		{"spouse single candidate", domain.RelationSpouse, 1, domain.StrategyAdaptive, 0, 35},
		{"spouse two candidates", domain.RelationSpouse, 2, domain.StrategyAdaptive, 0, 40},
		{"child many candidates", domain.RelationChild, 9, domain.StrategyAdaptive, 0, 65},
		{"sibling aggressive", domain.RelationSibling, 2, domain.StrategyAggressive, 0, 45},
		{"parent conservative", domain.RelationParent, 2, domain.StrategyConservative, 0, 60},
		{"fixed uses base verbatim", domain.RelationSpouse, 9, domain.StrategyFixed, 50, 50},
		{"clamped to floor", domain.RelationSpouse, 1, domain.StrategyAggressive, 0, 30},
		{"clamped to ceiling", domain.RelationSibling, 20, domain.StrategyConservative, 0, 85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Adaptive(tt.relation, tt.count, tt.strategy, tt.baseConf)
			if got != tt.want {
				t.Errorf("Adaptive() = %d, want %d", got, tt.want)
			}
		})
	}
}
