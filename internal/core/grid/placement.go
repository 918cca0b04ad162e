package grid

import (
	"fmt"
	"math"

	"github.com/Echx/Planck/internal/core/geometry"
	"github.com/Echx/Planck/internal/core/optics"
)

// UnitDegree is the rotation quantum in radians.
func (g *Grid) UnitDegree() float64 {
	return 2 * math.Pi / float64(g.rotationSteps)
}

// SnapDirection rounds v to the nearest allowed orientation. The zero vector
// is returned unchanged.
func (g *Grid) SnapDirection(v geometry.Vector) geometry.Vector {
	if v.IsZero() {
		return v
	}
	unit := g.UnitDegree()
	steps := math.Round(geometry.AngleFromXPlus(v) / unit)
	return cleanVector(geometry.VectorFromXPlusRadius(steps * unit))
}

// MoveInstrument moves an instrument to a new center. The move is undone when
// the center leaves the grid or the new footprint overlaps another instrument.
func (g *Grid) MoveInstrument(id string, to optics.Coordinate) error {
	d, ok := g.instruments[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if !g.IsValidCoordinate(to) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, to.X, to.Y)
	}

	previous := d.Center()
	d.SetCenter(to)
	if g.IsInstrumentOverlappedWithOthers(d) {
		d.SetCenter(previous)
		return fmt.Errorf("%w: %s at (%d,%d)", ErrOverlap, id, to.X, to.Y)
	}
	return nil
}

// RotateInstrument snaps the instrument direction to the rotation grid and
// then turns it by steps quanta counter-clockwise. Overlapping results are
// undone.
func (g *Grid) RotateInstrument(id string, steps int) error {
	d, ok := g.instruments[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	previous := d.Direction()
	angle := geometry.AngleFromXPlus(g.SnapDirection(previous)) + float64(steps)*g.UnitDegree()
	if err := d.SetDirection(cleanVector(geometry.VectorFromXPlusRadius(angle))); err != nil {
		return err
	}
	if g.IsInstrumentOverlappedWithOthers(d) {
		_ = d.SetDirection(previous)
		return fmt.Errorf("%w: %s after rotation", ErrOverlap, id)
	}
	return nil
}

// cleanVector flushes trig noise so axis-aligned directions stay exact.
func cleanVector(v geometry.Vector) geometry.Vector {
	const noise = 1e-12
	if math.Abs(v.DX) < noise {
		v.DX = 0
	}
	if math.Abs(v.DY) < noise {
		v.DY = 0
	}
	return v
}
