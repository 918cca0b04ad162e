// Package grid owns the set of placed instruments and converts between grid
// space and display space.
package grid

import (
	"errors"
	"sort"

	"github.com/Echx/Planck/internal/config"
	"github.com/Echx/Planck/internal/core/geometry"
	"github.com/Echx/Planck/internal/core/optics"
)

var (
	// ErrNotFound is returned for an id that is not on the grid.
	ErrNotFound = errors.New("grid: instrument not found")
	// ErrOverlap is returned when a placement command would overlap another instrument.
	ErrOverlap = errors.New("grid: instrument overlaps another instrument")
	// ErrOutOfBounds is returned when a placement command leaves the grid.
	ErrOutOfBounds = errors.New("grid: coordinate outside the grid")
)

// DefaultRotationSteps is the number of allowed orientations in a full turn.
const DefaultRotationSteps = 16

// Grid holds instruments keyed by id.
//
// The grid never rejects an instrument on its own: callers check
// IsInstrumentOverlappedWithOthers before AddInstrument. MoveInstrument and
// RotateInstrument run that check for them and roll back on failure.
type Grid struct {
	width         int
	height        int
	unitLength    float64
	rotationSteps int
	precision     float64

	instruments map[string]*optics.Device
}

// New creates an empty grid of width x height cells, each unitLength display
// units across.
func New(width, height int, unitLength float64) *Grid {
	return &Grid{
		width:         width,
		height:        height,
		unitLength:    unitLength,
		rotationSteps: DefaultRotationSteps,
		precision:     geometry.DefaultPrecision,
		instruments:   make(map[string]*optics.Device),
	}
}

// FromConfig creates an empty grid using the engine configuration.
func FromConfig(cfg *config.Config) *Grid {
	g := New(cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.UnitLength)
	g.rotationSteps = cfg.RotationSteps
	g.precision = cfg.Precision
	return g
}

func (g *Grid) Width() int          { return g.width }
func (g *Grid) Height() int         { return g.height }
func (g *Grid) UnitLength() float64 { return g.unitLength }
func (g *Grid) Precision() float64  { return g.precision }
func (g *Grid) RotationSteps() int  { return g.rotationSteps }
func (g *Grid) Len() int            { return len(g.instruments) }

// AddInstrument inserts or replaces the instrument under its id. The caller
// must have verified that it does not overlap anything already placed.
func (g *Grid) AddInstrument(d *optics.Device) {
	if d == nil {
		return
	}
	g.instruments[d.ID()] = d
}

// RemoveInstrumentForID removes the instrument and reports whether it existed.
func (g *Grid) RemoveInstrumentForID(id string) bool {
	if _, ok := g.instruments[id]; !ok {
		return false
	}
	delete(g.instruments, id)
	return true
}

// ClearInstruments removes every instrument.
func (g *Grid) ClearInstruments() {
	g.instruments = make(map[string]*optics.Device)
}

// Instrument looks up an instrument by id. Ids may go stale after removal,
// so callers always check the second result.
func (g *Grid) Instrument(id string) (*optics.Device, bool) {
	d, ok := g.instruments[id]
	return d, ok
}

// Instruments returns all instruments ordered by id.
func (g *Grid) Instruments() []*optics.Device {
	return sortedDevices(g.instruments)
}

// Emitters returns the light sources ordered by id.
func (g *Grid) Emitters() []*optics.Device {
	var emitters []*optics.Device
	for _, d := range g.Instruments() {
		if d.Kind() == optics.KindEmitter {
			emitters = append(emitters, d)
		}
	}
	return emitters
}

// GetInstrumentAtPoint returns the instrument under a display point.
func (g *Grid) GetInstrumentAtPoint(display geometry.Point) (*optics.Device, bool) {
	return g.GetInstrumentAtGridPoint(g.GetGridPointForDisplayPoint(display))
}

// GetInstrumentAtGridPoint returns the instrument whose footprint contains p.
func (g *Grid) GetInstrumentAtGridPoint(p geometry.Point) (*optics.Device, bool) {
	return deviceAt(g.Instruments(), p, g.precision)
}

// IsInstrumentOverlappedWithOthers tests d against every other instrument on
// the grid. d itself does not need to be on the grid.
func (g *Grid) IsInstrumentOverlappedWithOthers(d *optics.Device) bool {
	for id, other := range g.instruments {
		if id == d.ID() {
			continue
		}
		if d.Overlaps(other, g.precision) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy whose instruments can be mutated independently.
func (g *Grid) Clone() *Grid {
	c := *g
	c.instruments = make(map[string]*optics.Device, len(g.instruments))
	for id, d := range g.instruments {
		c.instruments[id] = d.Clone()
	}
	return &c
}

func deviceAt(devices []*optics.Device, p geometry.Point, precision float64) (*optics.Device, bool) {
	for _, d := range devices {
		if d.ContainsPoint(p, precision) {
			return d, true
		}
	}
	return nil, false
}

func sortedDevices(m map[string]*optics.Device) []*optics.Device {
	devices := make([]*optics.Device, 0, len(m))
	for _, d := range m {
		devices = append(devices, d)
	}
	sort.Slice(devices, func(i, j int) bool {
		return devices[i].ID() < devices[j].ID()
	})
	return devices
}
