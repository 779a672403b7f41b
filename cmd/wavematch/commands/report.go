package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/cacack/wavematch/internal/domain"
	"github.com/cacack/wavematch/internal/report"
)

// savedMapping mirrors engine.MappingDTO well enough to read back a
// previously serialized wave_result without re-running the Wave Engine.
type savedMapping struct {
	SourceID          string    `json:"source_id"`
	DestinationID     string    `json:"destination_id"`
	MatchScore        int       `json:"match_score"`
	Level             int       `json:"level"`
	FoundVia          string    `json:"found_via"`
	FoundInFamilyID   string    `json:"found_in_family_id,omitempty"`
	FoundFromPersonID string    `json:"found_from_person_id,omitempty"`
	FoundAt           time.Time `json:"found_at"`
}

type savedWaveResult struct {
	Mappings []savedMapping `json:"mappings"`
}

// NewReportCommand builds the "report" subcommand: rebuilds the Report
// Builder's output from a previously saved wave_result without re-running
// the Wave Engine, so a reviewer can re-derive updates/additions under a
// different high-confidence threshold.
func NewReportCommand(configPath *string) *cobra.Command {
	var (
		waveResultFile string
		highConfidence int
		outputFile     string
	)

	cmd := &cobra.Command{
		Use:   "report <source.ged> <destination.ged>",
		Short: "Rebuild the report from a previously saved wave_result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := resolveConfig(*configPath)
			if cmd.Flags().Changed("high-confidence-threshold") {
				cfg.HighConfidenceThreshold = highConfidence
			}

			sourceFile, destinationFile := args[0], args[1]

			srcTree, err := loadTree(sourceFile)
			if err != nil {
				return fmt.Errorf("source tree: %w", err)
			}
			dstTree, err := loadTree(destinationFile)
			if err != nil {
				return fmt.Errorf("destination tree: %w", err)
			}

			data, err := os.ReadFile(waveResultFile) // #nosec G304 -- CLI accepts a user-provided path
			if err != nil {
				return fmt.Errorf("read wave result %s: %w", waveResultFile, err)
			}
			var saved savedWaveResult
			if err := json.Unmarshal(data, &saved); err != nil {
				return fmt.Errorf("parse wave result %s: %w", waveResultFile, err)
			}

			mappings := domain.NewMappingSet()
			for _, sm := range saved.Mappings {
				pm := domain.PersonMapping{
					SourceID:          sm.SourceID,
					DestinationID:     sm.DestinationID,
					MatchScore:        sm.MatchScore,
					Level:             sm.Level,
					FoundVia:          domain.FoundVia(snakeCase(sm.FoundVia)),
					FoundInFamilyID:   sm.FoundInFamilyID,
					FoundFromPersonID: sm.FoundFromPersonID,
					FoundAt:           sm.FoundAt,
				}
				if err := mappings.Add(pm); err != nil {
					return fmt.Errorf("rebuild mapping set: %w", err)
				}
			}

			rep := report.Build(mappings, srcTree, dstTree, cfg.HighConfidenceThreshold)
			return writeJSON(rep, outputFile)
		},
	}

	cmd.Flags().StringVar(&waveResultFile, "wave-result", "", "path to a previously saved wave_result JSON (required)")
	cmd.Flags().IntVar(&highConfidence, "high-confidence-threshold", 0, "minimum match score a mapping needs to appear in nodes_to_update")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	_ = cmd.MarkFlagRequired("wave-result")

	return cmd
}

// snakeCase reverses pascalCase's symbolic-name serialization, turning
// "FamilyInconsistency" back into "family_inconsistency".
func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
