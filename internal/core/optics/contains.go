package optics

import "github.com/Echx/Planck/internal/core/geometry"

// ContainsPoint reports whether p lies inside the footprint or within
// precision of one of its edges.
func (d *Device) ContainsPoint(p geometry.Point, precision float64) bool {
	if geometry.PointInPolygon(p, d.outline) {
		return true
	}
	for _, e := range d.edges {
		if geometry.DistanceToSegment(p, e) <= precision {
			return true
		}
	}
	return false
}

// Overlaps reports whether two footprints share any point. The test is
// symmetric: a.Overlaps(b) == b.Overlaps(a).
func (d *Device) Overlaps(other *Device, precision float64) bool {
	if other == nil || other.id == d.id {
		return false
	}
	if !boundsTouch(d.outline, other.outline, precision) {
		return false
	}
	for _, e1 := range d.edges {
		for _, e2 := range other.edges {
			if geometry.SegmentsIntersect(e1, e2, precision) {
				return true
			}
		}
	}
	// no crossing edges: overlap only if one footprint lies wholly inside the other
	return (len(other.outline) > 0 && d.ContainsPoint(other.outline[0], precision)) ||
		(len(d.outline) > 0 && other.ContainsPoint(d.outline[0], precision))
}

func boundsTouch(a, b []geometry.Point, precision float64) bool {
	aMin, aMax := geometry.Bounds(a)
	bMin, bMax := geometry.Bounds(b)
	return aMin.X <= bMax.X+precision && bMin.X <= aMax.X+precision &&
		aMin.Y <= bMax.Y+precision && bMin.Y <= aMax.Y+precision
}
