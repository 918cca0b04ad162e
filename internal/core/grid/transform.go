package grid

import (
	"math"

	"github.com/Echx/Planck/internal/core/geometry"
	"github.com/Echx/Planck/internal/core/optics"
)

// Cell c covers [c, c+1) in grid space; display space is grid space scaled
// by unitLength.

// GetCenterForGridCell returns the display point at the middle of cell c.
func (g *Grid) GetCenterForGridCell(c optics.Coordinate) geometry.Point {
	return geometry.Point{
		X: (float64(c.X) + 0.5) * g.unitLength,
		Y: (float64(c.Y) + 0.5) * g.unitLength,
	}
}

// GetGridCoordinateForPoint returns the cell under a display point, clamped
// into the grid.
func (g *Grid) GetGridCoordinateForPoint(display geometry.Point) optics.Coordinate {
	p := g.GetGridPointForDisplayPoint(display)
	return optics.Coordinate{
		X: clamp(int(math.Floor(p.X)), 0, g.width-1),
		Y: clamp(int(math.Floor(p.Y)), 0, g.height-1),
	}
}

// GetPointForGridCoordinate returns the display position of grid point c.
// Instrument centers sit on these points.
func (g *Grid) GetPointForGridCoordinate(c optics.Coordinate) geometry.Point {
	return g.GetDisplayPointForGridPoint(c.Point())
}

// GetGridPointForDisplayPoint converts a display point into grid space.
func (g *Grid) GetGridPointForDisplayPoint(display geometry.Point) geometry.Point {
	return display.Scale(1 / g.unitLength)
}

// GetDisplayPointForGridPoint converts a grid-space point into display space.
func (g *Grid) GetDisplayPointForGridPoint(p geometry.Point) geometry.Point {
	return p.Scale(g.unitLength)
}

// IsValidCoordinate reports whether c names a cell of the grid.
func (g *Grid) IsValidCoordinate(c optics.Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// GetInstrumentDisplayPathForID returns the instrument outline in display
// space, ready to be stroked or filled.
func (g *Grid) GetInstrumentDisplayPathForID(id string) ([]geometry.Point, bool) {
	d, ok := g.instruments[id]
	if !ok {
		return nil, false
	}
	outline := d.Outline()
	for i, p := range outline {
		outline[i] = g.GetDisplayPointForGridPoint(p)
	}
	return outline, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
