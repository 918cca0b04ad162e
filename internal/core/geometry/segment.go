package geometry

import "math"

// Segment is a straight piece of a device footprint. Curved surfaces are
// approximated by several chord segments.
type Segment struct {
	A, B   Point
	Parent string // id of the owning device
	Normal Vector // outward unit normal
}

// Direction returns B - A.
func (s Segment) Direction() Vector {
	return s.B.Sub(s.A)
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return Distance(s.A, s.B)
}

// Midpoint returns the middle of the segment.
func (s Segment) Midpoint() Point {
	return Point{X: (s.A.X + s.B.X) / 2, Y: (s.A.Y + s.B.Y) / 2}
}

// Translate moves both endpoints by v.
func (s Segment) Translate(v Vector) Segment {
	s.A = s.A.Add(v)
	s.B = s.B.Add(v)
	return s
}

// Scale multiplies both endpoints by f. The normal is unaffected for f > 0.
func (s Segment) Scale(f float64) Segment {
	s.A = s.A.Scale(f)
	s.B = s.B.Scale(f)
	return s
}

// RaySegmentIntersection checks if a ray intersects a line segment.
// Returns the ray parameter t (distance in units of |dir|), the intersection
// point and whether the intersection exists with t >= 0.
func RaySegmentIntersection(origin Point, dir Vector, seg Segment) (float64, Point, bool) {
	// Ray: P = origin + t * dir for t >= 0
	// Segment: Q = seg.A + u * (seg.B - seg.A) for 0 <= u <= 1
	segDir := seg.Direction()

	denominator := Cross(dir, segDir)
	if math.Abs(denominator) < 1e-12 {
		// Ray and segment are parallel
		return 0, Point{}, false
	}

	diff := seg.A.Sub(origin)
	u := Cross(diff, dir) / denominator
	t := Cross(diff, segDir) / denominator

	// Tolerate endpoint hits that rounding pushes slightly outside [0, 1]
	const slack = 1e-9
	if u < -slack || u > 1+slack || t < 0 {
		return 0, Point{}, false
	}
	return t, origin.Add(dir.Scale(t)), true
}

// SegmentsIntersect reports whether two segments touch or cross, with
// endpoints and collinear overlaps tested within precision.
func SegmentsIntersect(s1, s2 Segment, precision float64) bool {
	d1 := orientation(s2.A, s2.B, s1.A)
	d2 := orientation(s2.A, s2.B, s1.B)
	d3 := orientation(s1.A, s1.B, s2.A)
	d4 := orientation(s1.A, s1.B, s2.B)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Touching or collinear cases
	return DistanceToSegment(s1.A, s2) <= precision ||
		DistanceToSegment(s1.B, s2) <= precision ||
		DistanceToSegment(s2.A, s1) <= precision ||
		DistanceToSegment(s2.B, s1) <= precision
}

// DistanceToSegment returns the shortest distance from p to the segment.
func DistanceToSegment(p Point, seg Segment) float64 {
	d := seg.Direction()
	lengthSq := Dot(d, d)
	if lengthSq == 0 {
		return Distance(p, seg.A)
	}
	u := Dot(p.Sub(seg.A), d) / lengthSq
	u = math.Max(0, math.Min(1, u))
	return Distance(p, seg.A.Add(d.Scale(u)))
}

func orientation(a, b, c Point) float64 {
	return Cross(b.Sub(a), c.Sub(a))
}
