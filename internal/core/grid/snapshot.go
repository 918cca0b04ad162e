package grid

import (
	"github.com/Echx/Planck/internal/core/geometry"
	"github.com/Echx/Planck/internal/core/optics"
)

// Snapshot is a frozen copy of the grid's geometry. A tracer reads only from
// a snapshot, so later edits to the grid never leak into an in-flight trace.
type Snapshot struct {
	Width     int
	Height    int
	Precision float64

	devices []*optics.Device
	index   map[string]*optics.Device
}

// Snapshot copies every instrument as it is now.
func (g *Grid) Snapshot() *Snapshot {
	s := &Snapshot{
		Width:     g.width,
		Height:    g.height,
		Precision: g.precision,
		index:     make(map[string]*optics.Device, len(g.instruments)),
	}
	for _, d := range g.Instruments() {
		c := d.Clone()
		s.devices = append(s.devices, c)
		s.index[c.ID()] = c
	}
	return s
}

// Devices returns the frozen instruments ordered by id.
func (s *Snapshot) Devices() []*optics.Device {
	return s.devices
}

// Device looks up a frozen instrument.
func (s *Snapshot) Device(id string) (*optics.Device, bool) {
	d, ok := s.index[id]
	return d, ok
}

// DeviceAt returns the instrument whose footprint contains p.
func (s *Snapshot) DeviceAt(p geometry.Point) (*optics.Device, bool) {
	return deviceAt(s.devices, p, s.Precision)
}

// Contains reports whether p lies inside the grid rectangle.
func (s *Snapshot) Contains(p geometry.Point) bool {
	e := s.Precision
	return p.X >= -e && p.Y >= -e && p.X <= float64(s.Width)+e && p.Y <= float64(s.Height)+e
}

// Boundary returns the four sides of the grid rectangle. They carry no parent.
func (s *Snapshot) Boundary() []geometry.Segment {
	w, h := float64(s.Width), float64(s.Height)
	corners := []geometry.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
	return geometry.ClosedEdges(corners, "")
}
