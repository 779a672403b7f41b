// Package config provides configuration loading and management for the
// wavematch CLI. It governs only CLI-facing concerns — default run
// options, file paths, and log verbosity — never the comparison core
// itself, which takes its options as plain function arguments.
package config

import (
	"os"
	"strconv"

	"github.com/cacack/wavematch/internal/domain"
)

// Config holds the CLI's default run options.
type Config struct {
	// Wave run defaults
	MaxLevel                int                      // default BFS depth cap (default: 6)
	ThresholdStrategy       domain.ThresholdStrategy // default: adaptive
	BaseThreshold           int                      // used verbatim only when ThresholdStrategy is fixed
	HighConfidenceThreshold int                      // report builder's update threshold (default: 90)

	// File paths
	SourceFile      string // path to the source GEDCOM file
	DestinationFile string // path to the destination GEDCOM file
	OutputFile      string // path to write the serialized result (default: stdout)

	LogLevel string // debug, info, warn, error (default: info)
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		MaxLevel:                getEnvIntOrDefault("WAVEMATCH_MAX_LEVEL", 6),
		ThresholdStrategy:       domain.ThresholdStrategy(getEnvOrDefault("WAVEMATCH_THRESHOLD_STRATEGY", string(domain.StrategyAdaptive))),
		BaseThreshold:           getEnvIntOrDefault("WAVEMATCH_BASE_THRESHOLD", 50),
		HighConfidenceThreshold: getEnvIntOrDefault("WAVEMATCH_HIGH_CONFIDENCE_THRESHOLD", 90),
		SourceFile:              getEnvOrDefault("WAVEMATCH_SOURCE_FILE", ""),
		DestinationFile:         getEnvOrDefault("WAVEMATCH_DESTINATION_FILE", ""),
		OutputFile:              getEnvOrDefault("WAVEMATCH_OUTPUT_FILE", ""),
		LogLevel:                getEnvOrDefault("WAVEMATCH_LOG_LEVEL", "info"),
	}
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns the environment variable as int or a default.
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
