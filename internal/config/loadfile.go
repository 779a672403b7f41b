package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cacack/wavematch/internal/domain"
)

// fileConfig mirrors the subset of Config that is reasonable to check into
// a repo alongside the trees being compared, as opposed to the per-host
// env vars Load reads.
type fileConfig struct {
	MaxLevel                *int   `yaml:"max_level,omitempty"`
	ThresholdStrategy       string `yaml:"threshold_strategy,omitempty"`
	BaseThreshold           *int   `yaml:"base_threshold,omitempty"`
	HighConfidenceThreshold *int   `yaml:"high_confidence_threshold,omitempty"`
	SourceFile              string `yaml:"source_file,omitempty"`
	DestinationFile         string `yaml:"destination_file,omitempty"`
	OutputFile              string `yaml:"output_file,omitempty"`
	LogLevel                string `yaml:"log_level,omitempty"`
}

// LoadFile reads a YAML config file and layers its values over the
// defaults from Load, so a run can be checked in as
// ".wavematch.yaml" instead of set via environment variables. Any field
// absent from the file keeps the value Load already gave it.
func LoadFile(path string) (*Config, error) {
	cfg := Load()

	data, err := os.ReadFile(path) // #nosec G304 -- CLI accepts a user-provided path
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.MaxLevel != nil {
		cfg.MaxLevel = *fc.MaxLevel
	}
	if fc.ThresholdStrategy != "" {
		cfg.ThresholdStrategy = domain.ThresholdStrategy(fc.ThresholdStrategy)
	}
	if fc.BaseThreshold != nil {
		cfg.BaseThreshold = *fc.BaseThreshold
	}
	if fc.HighConfidenceThreshold != nil {
		cfg.HighConfidenceThreshold = *fc.HighConfidenceThreshold
	}
	if fc.SourceFile != "" {
		cfg.SourceFile = fc.SourceFile
	}
	if fc.DestinationFile != "" {
		cfg.DestinationFile = fc.DestinationFile
	}
	if fc.OutputFile != "" {
		cfg.OutputFile = fc.OutputFile
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}

	return cfg, nil
}
