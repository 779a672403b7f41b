package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cacack/wavematch/internal/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.MaxLevel != 6 {
		t.Errorf("expected MaxLevel to be 6, got %d", cfg.MaxLevel)
	}
	if cfg.ThresholdStrategy != domain.StrategyAdaptive {
		t.Errorf("expected ThresholdStrategy to be %q, got %q", domain.StrategyAdaptive, cfg.ThresholdStrategy)
	}
	if cfg.BaseThreshold != 50 {
		t.Errorf("expected BaseThreshold to be 50, got %d", cfg.BaseThreshold)
	}
	if cfg.HighConfidenceThreshold != 90 {
		t.Errorf("expected HighConfidenceThreshold to be 90, got %d", cfg.HighConfidenceThreshold)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected LogLevel to be 'info', got %q", cfg.LogLevel)
	}
	if cfg.SourceFile != "" || cfg.DestinationFile != "" || cfg.OutputFile != "" {
		t.Errorf("expected file paths to be empty by default, got %+v", cfg)
	}
}

func TestLoad_AllEnvVarsSet(t *testing.T) {
	t.Setenv("WAVEMATCH_MAX_LEVEL", "3")
	t.Setenv("WAVEMATCH_THRESHOLD_STRATEGY", "fixed")
	t.Setenv("WAVEMATCH_BASE_THRESHOLD", "70")
	t.Setenv("WAVEMATCH_HIGH_CONFIDENCE_THRESHOLD", "95")
	t.Setenv("WAVEMATCH_SOURCE_FILE", "src.ged")
	t.Setenv("WAVEMATCH_DESTINATION_FILE", "dst.ged")
	t.Setenv("WAVEMATCH_OUTPUT_FILE", "out.json")
	t.Setenv("WAVEMATCH_LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.MaxLevel != 3 {
		t.Errorf("expected MaxLevel to be 3, got %d", cfg.MaxLevel)
	}
	if cfg.ThresholdStrategy != domain.StrategyFixed {
		t.Errorf("expected ThresholdStrategy to be %q, got %q", domain.StrategyFixed, cfg.ThresholdStrategy)
	}
	if cfg.BaseThreshold != 70 {
		t.Errorf("expected BaseThreshold to be 70, got %d", cfg.BaseThreshold)
	}
	if cfg.HighConfidenceThreshold != 95 {
		t.Errorf("expected HighConfidenceThreshold to be 95, got %d", cfg.HighConfidenceThreshold)
	}
	if cfg.SourceFile != "src.ged" || cfg.DestinationFile != "dst.ged" || cfg.OutputFile != "out.json" {
		t.Errorf("unexpected file paths: %+v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel to be 'debug', got %q", cfg.LogLevel)
	}
}

func TestGetEnvOrDefault_EnvVarSet(t *testing.T) {
	t.Setenv("TEST_VAR", "custom_value")

	result := getEnvOrDefault("TEST_VAR", "default_value")

	if result != "custom_value" {
		t.Errorf("expected 'custom_value', got %q", result)
	}
}

func TestGetEnvOrDefault_EnvVarUnset(t *testing.T) {
	result := getEnvOrDefault("NONEXISTENT_VAR", "default_value")

	if result != "default_value" {
		t.Errorf("expected 'default_value', got %q", result)
	}
}

func TestGetEnvOrDefault_EnvVarEmpty(t *testing.T) {
	t.Setenv("EMPTY_VAR", "")

	result := getEnvOrDefault("EMPTY_VAR", "default_value")

	if result != "default_value" {
		t.Errorf("expected 'default_value', got %q", result)
	}
}

func TestGetEnvIntOrDefault_ValidInt(t *testing.T) {
	t.Setenv("TEST_INT", "9000")

	result := getEnvIntOrDefault("TEST_INT", 1234)

	if result != 9000 {
		t.Errorf("expected 9000, got %d", result)
	}
}

func TestGetEnvIntOrDefault_InvalidInt(t *testing.T) {
	t.Setenv("TEST_INVALID_INT", "not_a_number")

	result := getEnvIntOrDefault("TEST_INVALID_INT", 1234)

	if result != 1234 {
		t.Errorf("expected default value 1234, got %d", result)
	}
}

func TestGetEnvIntOrDefault_EnvVarUnset(t *testing.T) {
	result := getEnvIntOrDefault("NONEXISTENT_INT_VAR", 5678)

	if result != 5678 {
		t.Errorf("expected default value 5678, got %d", result)
	}
}

func TestGetEnvIntOrDefault_EmptyString(t *testing.T) {
	t.Setenv("EMPTY_INT_VAR", "")

	result := getEnvIntOrDefault("EMPTY_INT_VAR", 4321)

	if result != 4321 {
		t.Errorf("expected default value 4321, got %d", result)
	}
}

func TestLoadFile_OverridesOnlyFieldsPresent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wavematch.yaml")
	contents := "max_level: 4\nhigh_confidence_threshold: 85\nsource_file: tree-a.ged\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write test fixture: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}

	if cfg.MaxLevel != 4 {
		t.Errorf("expected MaxLevel to be 4, got %d", cfg.MaxLevel)
	}
	if cfg.HighConfidenceThreshold != 85 {
		t.Errorf("expected HighConfidenceThreshold to be 85, got %d", cfg.HighConfidenceThreshold)
	}
	if cfg.SourceFile != "tree-a.ged" {
		t.Errorf("expected SourceFile to be 'tree-a.ged', got %q", cfg.SourceFile)
	}
	// Fields absent from the file keep Load's defaults.
	if cfg.BaseThreshold != 50 {
		t.Errorf("expected BaseThreshold to keep its default of 50, got %d", cfg.BaseThreshold)
	}
	if cfg.ThresholdStrategy != domain.StrategyAdaptive {
		t.Errorf("expected ThresholdStrategy to keep its default, got %q", cfg.ThresholdStrategy)
	}
}

func TestLoadFile_MissingFileReturnsError(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoadFile_InvalidYAMLReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("max_level: [unterminated"), 0o600); err != nil {
		t.Fatalf("failed to write test fixture: %v", err)
	}

	_, err := LoadFile(path)
	if err == nil {
		t.Error("expected an error for malformed YAML")
	}
}
