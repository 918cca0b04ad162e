package tracer

import (
	"math"

	"github.com/Echx/Planck/internal/core/geometry"
	"github.com/Echx/Planck/internal/core/grid"
	"github.com/Echx/Planck/internal/core/optics"
	"github.com/Echx/Planck/internal/core/path"
)

// walker holds the state of one ray between steps. It only reads from its
// snapshot, so it can be dropped at any point without side effects.
type walker struct {
	snap      *grid.Snapshot
	precision float64
	unit      float64
	maxSteps  int

	source   string // device the ray was shot from, ignored on the first leg
	pos      geometry.Point
	dir      geometry.Vector
	departed *geometry.Segment
	emitted  int
	status   Status
}

func newWalker(snap *grid.Snapshot, ray optics.Ray, opts Options) *walker {
	if ray.Direction.IsZero() {
		panic(geometry.ErrZeroVector)
	}
	return &walker{
		snap:      snap,
		precision: opts.Precision,
		unit:      opts.VectorUnitLength,
		maxSteps:  opts.MaxSteps,
		source:    ray.Source,
		pos:       ray.Start,
		dir:       ray.Direction.Normalize(opts.VectorUnitLength),
		status:    tracing,
	}
}

// next computes the following critical point and the status after it.
func (w *walker) next() (path.CriticalPoint, Status) {
	if w.status.Done() {
		return path.CriticalPoint{}, w.status
	}

	var cp path.CriticalPoint
	if w.emitted == 0 {
		cp = w.start()
	} else {
		cp = w.advance()
	}

	w.emitted++
	if !w.status.Done() && w.emitted >= w.maxSteps {
		w.status = terminated(ReasonBoundExceeded)
	}
	return cp, w.status
}

// start emits the ray origin. A ray born inside a device other than its
// source, or outside the grid, stops right there.
func (w *walker) start() path.CriticalPoint {
	for _, d := range w.snap.Devices() {
		if d.ID() == w.source || !d.ContainsPoint(w.pos, w.precision) {
			continue
		}
		edge := nearestEdge(d, w.pos)
		w.status = terminated(ReasonEmbedded)
		return path.CriticalPoint{Point: w.pos, Segment: edge}
	}
	if !w.snap.Contains(w.pos) {
		w.status = terminated(ReasonBoundary)
	}
	return path.CriticalPoint{Point: w.pos}
}

// advance moves to the nearest edge ahead and applies the law of its device.
func (w *walker) advance() path.CriticalPoint {
	hit, at, ok := w.nearestHit()
	if !ok {
		w.status = terminated(ReasonBoundary)
		return path.CriticalPoint{Point: w.exitPoint()}
	}

	device, _ := w.snap.Device(hit.Parent)
	out, relayed := device.Interact(w.dir, hit, w.precision)
	if !relayed {
		w.status = terminated(ReasonWall)
	} else {
		w.pos = at
		w.dir = out.Normalize(w.unit)
		w.departed = &hit
	}
	return path.CriticalPoint{Point: at, Segment: &hit}
}

func (w *walker) nearestHit() (geometry.Segment, geometry.Point, bool) {
	var (
		best    geometry.Segment
		bestAt  geometry.Point
		bestT   = math.Inf(1)
		found   bool
		minimum = w.precision / w.unit
	)
	for _, d := range w.snap.Devices() {
		if w.departed == nil && d.ID() == w.source {
			continue
		}
		for _, e := range d.Edges() {
			if w.departed != nil && sameEdge(e, *w.departed) {
				continue
			}
			t, at, ok := geometry.RaySegmentIntersection(w.pos, w.dir, e)
			if !ok || t <= minimum || t >= bestT || !w.snap.Contains(at) {
				continue
			}
			best, bestAt, bestT, found = e, at, t, true
		}
	}
	return best, bestAt, found
}

// exitPoint is where the ray crosses the grid boundary.
func (w *walker) exitPoint() geometry.Point {
	bestT := math.Inf(1)
	exit := w.pos
	for _, side := range w.snap.Boundary() {
		t, at, ok := geometry.RaySegmentIntersection(w.pos, w.dir, side)
		if ok && t > w.precision/w.unit && t < bestT {
			bestT, exit = t, at
		}
	}
	return exit
}

func nearestEdge(d *optics.Device, p geometry.Point) *geometry.Segment {
	var nearest *geometry.Segment
	best := math.Inf(1)
	for _, e := range d.Edges() {
		if dist := geometry.DistanceToSegment(p, e); dist < best {
			e := e
			nearest, best = &e, dist
		}
	}
	return nearest
}

func sameEdge(a, b geometry.Segment) bool {
	return a.Parent == b.Parent && a.A == b.A && a.B == b.B
}
