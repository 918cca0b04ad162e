package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrInvalidLevel is returned when a level file is inconsistent.
var ErrInvalidLevel = errors.New("level: invalid level")

// Load reads a level from a JSON file
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	var l Level
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse level file %s: %w", path, err)
	}

	if err := validateLevel(&l); err != nil {
		return nil, fmt.Errorf("invalid level data in %s: %w", path, err)
	}

	return &l, nil
}

// Save writes a level to a JSON file
func Save(path string, l *Level) error {
	if err := validateLevel(l); err != nil {
		return fmt.Errorf("refusing to save level %s: %w", l.Name, err)
	}

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode level %s: %w", l.Name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write level file %s: %w", path, err)
	}
	return nil
}

// LoadAll reads every *.json level in dir, ordered by index
func LoadAll(dir string) ([]*Level, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list levels in %s: %w", dir, err)
	}

	levels := make([]*Level, 0, len(paths))
	for _, p := range paths {
		l, err := Load(p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, l)
	}
	SortByIndex(levels)
	return levels, nil
}

// validateLevel checks that every node refers to a device of both grids
func validateLevel(l *Level) error {
	if l.Grid == nil || l.OriginalGrid == nil {
		return fmt.Errorf("%w: both grids are required", ErrInvalidLevel)
	}
	if l.Index < 0 {
		return fmt.Errorf("%w: negative index %d", ErrInvalidLevel, l.Index)
	}
	if l.Nodes == nil {
		l.Nodes = make(map[string]Node)
	}

	for id := range l.Nodes {
		if _, ok := l.Grid.Instrument(id); !ok {
			return fmt.Errorf("%w: node %s has no device in grid", ErrInvalidLevel, id)
		}
		if _, ok := l.OriginalGrid.Instrument(id); !ok {
			return fmt.Errorf("%w: node %s has no device in original grid", ErrInvalidLevel, id)
		}
	}
	return nil
}
