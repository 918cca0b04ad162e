package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if cfg.Grid.Width != 64 || cfg.Grid.Height != 48 || cfg.Grid.UnitLength != 16 {
		t.Errorf("Unexpected default grid %+v", cfg.Grid)
	}
	if math.Abs(cfg.UnitDegree()-math.Pi/8) > 1e-12 {
		t.Errorf("Expected unit degree π/8, got %v", cfg.UnitDegree())
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Expected defaults, got error: %v", err)
	}
	if cfg.MaxSteps != DefaultConfig().MaxSteps {
		t.Errorf("Expected default max steps, got %d", cfg.MaxSteps)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	jsonData := `{
		"max_steps": 32,
		"grid": {"width": 128, "height": 96, "unit_length": 8}
	}`
	if err := os.WriteFile(path, []byte(jsonData), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.MaxSteps != 32 {
		t.Errorf("Expected max_steps 32, got %d", cfg.MaxSteps)
	}
	if cfg.Grid.Width != 128 || cfg.Grid.UnitLength != 8 {
		t.Errorf("Expected grid 128 wide with unit 8, got %+v", cfg.Grid)
	}
	if cfg.Precision != 1e-4 {
		t.Errorf("Expected default precision to survive, got %v", cfg.Precision)
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	if err := os.WriteFile(path, []byte(`{"max_steps": 0}`), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected error for max_steps 0")
	}

	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected error for malformed JSON")
	}
}
