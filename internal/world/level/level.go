// Package level is the puzzle data around a grid: the layout the player
// edits, the designer's solution, and the per-device gameplay overlay.
package level

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/Echx/Planck/internal/core/grid"
	"github.com/Echx/Planck/internal/core/optics"
)

// Node is the gameplay overlay of one device.
type Node struct {
	IsFixed bool   `json:"is_fixed"`       // Player may not move it
	Note    string `json:"note,omitempty"` // Note played when a ray reaches it
}

// Level is one puzzle.
type Level struct {
	Name         string          `json:"name"`
	Index        int             `json:"index"`
	Grid         *grid.Grid      `json:"grid"`          // Layout the player edits
	OriginalGrid *grid.Grid      `json:"original_grid"` // Designer's solved layout
	Nodes        map[string]Node `json:"nodes"`
	BestScore    int             `json:"best_score"`
	IsUnlocked   bool            `json:"is_unlocked"`
}

// New creates a level whose player grid starts as a copy of the solution.
func New(name string, index int, solved *grid.Grid, nodes map[string]Node) *Level {
	if nodes == nil {
		nodes = make(map[string]Node)
	}
	return &Level{
		Name:         name,
		Index:        index,
		Grid:         solved.Clone(),
		OriginalGrid: solved,
		Nodes:        nodes,
	}
}

// NextIndex is the index of the level that follows this one.
func (l *Level) NextIndex() int {
	return l.Index + 1
}

// CurrentMovableDevices returns the devices the player may move in the
// current layout, ordered by id.
func (l *Level) CurrentMovableDevices() []*optics.Device {
	return l.movable(l.Grid)
}

// OriginalMovableDevices returns the movable devices in the solved layout.
func (l *Level) OriginalMovableDevices() []*optics.Device {
	return l.movable(l.OriginalGrid)
}

func (l *Level) movable(g *grid.Grid) []*optics.Device {
	var devices []*optics.Device
	for _, d := range g.Instruments() {
		if node, ok := l.Nodes[d.ID()]; ok && !node.IsFixed {
			devices = append(devices, d)
		}
	}
	return devices
}

// IsFixed reports whether the player may not move the device. Devices
// without a node are fixed.
func (l *Level) IsFixed(id string) bool {
	node, ok := l.Nodes[id]
	return !ok || node.IsFixed
}

// NoteFor returns the note bound to a device, if any.
func (l *Level) NoteFor(id string) (string, bool) {
	node, ok := l.Nodes[id]
	if !ok || node.Note == "" {
		return "", false
	}
	return node.Note, true
}

// Reset puts the player grid back to the solution layout.
func (l *Level) Reset() {
	l.Grid = l.OriginalGrid.Clone()
}

// DeepCopy returns a level that shares nothing with l.
func (l *Level) DeepCopy() (*Level, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to copy level %s: %w", l.Name, err)
	}
	var c Level
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to copy level %s: %w", l.Name, err)
	}
	return &c, nil
}

// Equal reports whether two levels name the same puzzle.
func (l *Level) Equal(other *Level) bool {
	return other != nil && l.Name == other.Name && l.Index == other.Index
}

// SortByIndex orders levels for the level picker.
func SortByIndex(levels []*Level) {
	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].Index < levels[j].Index
	})
}

// TotalScore sums the best scores of all levels.
func TotalScore(levels []*Level) int {
	total := 0
	for _, l := range levels {
		total += l.BestScore
	}
	return total
}
