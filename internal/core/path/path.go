// Package path turns the critical points of a traced ray into a drawable
// polyline with distances for animation timing.
package path

import (
	"time"

	"github.com/Echx/Planck/internal/core/geometry"
)

// CriticalPoint is a point where a ray turns or stops, in grid space.
// Segment is the device edge responsible for it; it is nil for the ray start
// and for the point where the ray leaves the grid.
type CriticalPoint struct {
	Point   geometry.Point
	Segment *geometry.Segment
}

// Parent returns the id of the device that produced the point, if any.
func (c CriticalPoint) Parent() string {
	if c.Segment == nil {
		return ""
	}
	return c.Segment.Parent
}

// Path is an immutable ray path. Build a new one for every trace.
type Path struct {
	critical  []CriticalPoint
	display   []geometry.Point
	distances []float64
}

// New builds a path from critical points, scaling grid space into display
// space by unitLength.
func New(points []CriticalPoint, unitLength float64) *Path {
	p := &Path{
		critical:  append([]CriticalPoint(nil), points...),
		display:   make([]geometry.Point, len(points)),
		distances: make([]float64, len(points)),
	}
	for i, cp := range points {
		p.display[i] = cp.Point.Scale(unitLength)
		if i > 0 {
			p.distances[i] = p.distances[i-1] + geometry.Distance(p.display[i-1], p.display[i])
		}
	}
	return p
}

// Len returns the number of critical points.
func (p *Path) Len() int {
	return len(p.critical)
}

// CriticalPoints returns the grid-space critical points in path order.
func (p *Path) CriticalPoints() []CriticalPoint {
	return append([]CriticalPoint(nil), p.critical...)
}

// DisplayPoints returns the polyline in display space.
func (p *Path) DisplayPoints() []geometry.Point {
	return append([]geometry.Point(nil), p.display...)
}

// PathLength is the total display distance along the polyline.
func (p *Path) PathLength() float64 {
	if len(p.distances) == 0 {
		return 0
	}
	return p.distances[len(p.distances)-1]
}

// DistanceTo returns the display distance travelled when critical point i is
// reached. Out of range indexes are clamped.
func (p *Path) DistanceTo(i int) float64 {
	if len(p.distances) == 0 || i <= 0 {
		return 0
	}
	if i >= len(p.distances) {
		i = len(p.distances) - 1
	}
	return p.distances[i]
}

// Parents returns the ids of the devices the ray touched, in the order they
// were first reached.
func (p *Path) Parents() []string {
	return VisitedParents(p.critical)
}

// Duration is the time light needs to travel the whole path at lightSpeed
// display units per second.
func (p *Path) Duration(lightSpeed float64) time.Duration {
	return travelTime(p.PathLength(), lightSpeed)
}

// SegmentDurations returns the travel time of each leg of the polyline.
func (p *Path) SegmentDurations(lightSpeed float64) []time.Duration {
	if len(p.distances) < 2 {
		return nil
	}
	durations := make([]time.Duration, len(p.distances)-1)
	for i := 1; i < len(p.distances); i++ {
		durations[i-1] = travelTime(p.distances[i]-p.distances[i-1], lightSpeed)
	}
	return durations
}

// VisitedParents lists the distinct device ids behind the points, first hit
// first.
func VisitedParents(points []CriticalPoint) []string {
	var parents []string
	seen := make(map[string]bool)
	for _, cp := range points {
		id := cp.Parent()
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		parents = append(parents, id)
	}
	return parents
}

func travelTime(distance, lightSpeed float64) time.Duration {
	if lightSpeed <= 0 {
		return 0
	}
	return time.Duration(distance / lightSpeed * float64(time.Second))
}
