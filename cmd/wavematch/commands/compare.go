package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cacack/wavematch/internal/config"
	"github.com/cacack/wavematch/internal/domain"
	"github.com/cacack/wavematch/internal/engine"
	"github.com/cacack/wavematch/internal/loader"
	"github.com/cacack/wavematch/internal/treeindex"
	"github.com/cacack/wavematch/internal/wave"
)

// NewCompareCommand builds the "compare" subcommand: the full pipeline from
// two GEDCOM files and an anchor pair down to a serialized result.
func NewCompareCommand(configPath *string) *cobra.Command {
	var (
		anchorSource      string
		anchorDestination string
		maxLevel          int
		thresholdStrategy string
		baseThreshold     int
		highConfidence    int
		outputFile        string
	)

	cmd := &cobra.Command{
		Use:   "compare <source.ged> <destination.ged>",
		Short: "Compare two GEDCOM trees from a shared anchor pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := resolveConfig(*configPath)
			if cmd.Flags().Changed("max-level") {
				cfg.MaxLevel = maxLevel
			}
			if cmd.Flags().Changed("threshold-strategy") {
				cfg.ThresholdStrategy = domain.ThresholdStrategy(thresholdStrategy)
			}
			if cmd.Flags().Changed("base-threshold") {
				cfg.BaseThreshold = baseThreshold
			}
			if cmd.Flags().Changed("high-confidence-threshold") {
				cfg.HighConfidenceThreshold = highConfidence
			}
			if outputFile != "" {
				cfg.OutputFile = outputFile
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

			opts := wave.Options{
				MaxLevel:          cfg.MaxLevel,
				ThresholdStrategy: cfg.ThresholdStrategy,
				BaseThreshold:     cfg.BaseThreshold,
			}

			result, err := engine.Compare(srcTree, dstTree, anchorSource, anchorDestination, opts)
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}

			rep := engine.BuildReport(result, srcTree, dstTree, cfg.HighConfidenceThreshold)
			serialized := engine.Serialize(result, rep, sourceFile, destinationFile, cfg.HighConfidenceThreshold)

			return writeJSON(serialized, cfg.OutputFile)
		},
	}

	cmd.Flags().StringVar(&anchorSource, "anchor-source", "", "source tree person id to anchor the comparison on (required)")
	cmd.Flags().StringVar(&anchorDestination, "anchor-destination", "", "destination tree person id to anchor the comparison on (required)")
	cmd.Flags().IntVar(&maxLevel, "max-level", 0, "maximum BFS depth from the anchor")
	cmd.Flags().StringVar(&thresholdStrategy, "threshold-strategy", "", "fixed, adaptive, aggressive, or conservative")
	cmd.Flags().IntVar(&baseThreshold, "base-threshold", 0, "score floor used verbatim when threshold-strategy is fixed")
	cmd.Flags().IntVar(&highConfidence, "high-confidence-threshold", 0, "minimum match score a mapping needs to appear in nodes_to_update")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	_ = cmd.MarkFlagRequired("anchor-source")
	_ = cmd.MarkFlagRequired("anchor-destination")

	return cmd
}

func resolveConfig(configPath string) *config.Config {
	if configPath == "" {
		return config.Load()
	}
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config file %s: %v\n", configPath, err)
		return config.Load()
	}
	return cfg
}

func loadTree(path string) (*treeindex.Tree, error) {
	var l loader.GedcomLoader
	persons, families, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	tree, issues := treeindex.Build(persons, families)
	for _, issue := range issues {
		fmt.Fprintf(os.Stderr, "Warning: %s: %s\n", issue.Kind, issue.Message)
	}
	return tree, nil
}

func writeJSON(v interface{}, outputFile string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if outputFile == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outputFile, data, 0o600); err != nil {
		return fmt.Errorf("write output file %s: %w", outputFile, err)
	}
	fmt.Printf("Result written to %s\n", outputFile)
	return nil
}
