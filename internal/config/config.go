// Package config provides the tunable constants of the optics engine.
// They are loaded from a data file so tests and tools can run engines with
// different settings side by side.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// Config holds all engine settings
type Config struct {
	// Tolerance for every geometric comparison
	Precision float64 `json:"precision"`

	// Length ray directions are normalized to before stepping
	VectorUnitLength float64 `json:"vector_unit_length"`

	// Upper bound on critical points per ray (guards bounce loops)
	MaxSteps int `json:"max_steps"`

	// Chords used to approximate each curved lens surface
	ArcSegments int `json:"arc_segments"`

	// Number of allowed orientations in a full turn
	RotationSteps int `json:"rotation_steps"`

	// Display units per second, for animation timing
	LightSpeed float64 `json:"light_speed"`

	Grid GridConfig `json:"grid"`
}

// GridConfig defines the playing field
type GridConfig struct {
	Width      int     `json:"width"`       // Cells across
	Height     int     `json:"height"`      // Cells down
	UnitLength float64 `json:"unit_length"` // Display pixels per cell
}

// DefaultConfig returns the settings the game ships with
func DefaultConfig() *Config {
	return &Config{
		Precision:        1e-4,
		VectorUnitLength: 1,
		MaxSteps:         256,
		ArcSegments:      13,
		RotationSteps:    16,
		LightSpeed:       500,
		Grid: GridConfig{
			Width:      64,
			Height:     48,
			UnitLength: 16,
		},
	}
}

// LoadConfig loads engine config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read engine config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse engine config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	if c.Precision <= 0 || c.Precision >= 1 {
		return fmt.Errorf("precision must be in (0, 1), got %v", c.Precision)
	}
	if c.VectorUnitLength <= 0 {
		return fmt.Errorf("vector unit length must be positive, got %v", c.VectorUnitLength)
	}
	if c.MaxSteps < 1 {
		return fmt.Errorf("max steps must be at least 1, got %d", c.MaxSteps)
	}
	if c.ArcSegments < 1 {
		return fmt.Errorf("arc segments must be at least 1, got %d", c.ArcSegments)
	}
	if c.RotationSteps < 1 {
		return fmt.Errorf("rotation steps must be at least 1, got %d", c.RotationSteps)
	}
	if c.LightSpeed <= 0 {
		return fmt.Errorf("light speed must be positive, got %v", c.LightSpeed)
	}
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("invalid grid dimensions: %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.UnitLength <= 0 {
		return fmt.Errorf("invalid grid unit length: %v", c.Grid.UnitLength)
	}
	return nil
}

// UnitDegree is the rotation quantum in radians.
func (c *Config) UnitDegree() float64 {
	return 2 * math.Pi / float64(c.RotationSteps)
}
