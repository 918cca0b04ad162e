package geometry

import "math"

// PointInPolygon tests if a point is inside a polygon using ray casting algorithm
func PointInPolygon(point Point, polygon []Point) bool {
	inside := false
	j := len(polygon) - 1

	for i := 0; i < len(polygon); i++ {
		xi, yi := polygon[i].X, polygon[i].Y
		xj, yj := polygon[j].X, polygon[j].Y

		if ((yi > point.Y) != (yj > point.Y)) &&
			(point.X < (xj-xi)*(point.Y-yi)/(yj-yi)+xi) {
			inside = !inside
		}
		j = i
	}

	return inside
}

// SignedArea returns the shoelace area; positive for counter-clockwise winding.
func SignedArea(polygon []Point) float64 {
	area := 0.0
	j := len(polygon) - 1
	for i := range polygon {
		area += polygon[j].X*polygon[i].Y - polygon[i].X*polygon[j].Y
		j = i
	}
	return area / 2
}

// ClosedEdges turns a polygon outline into segments owned by parent, each
// carrying its outward unit normal. Either winding is accepted.
func ClosedEdges(polygon []Point, parent string) []Segment {
	if len(polygon) < 2 {
		return nil
	}
	// For counter-clockwise winding the outward side of A->B is the clockwise turn
	sign := 1.0
	if SignedArea(polygon) < 0 {
		sign = -1.0
	}

	edges := make([]Segment, 0, len(polygon))
	for i := range polygon {
		a := polygon[i]
		b := polygon[(i+1)%len(polygon)]
		d := b.Sub(a)
		if d.IsZero() {
			continue
		}
		normal := Vector{DX: d.DY, DY: -d.DX}.Scale(sign).Unit()
		edges = append(edges, Segment{A: a, B: b, Parent: parent, Normal: normal})
	}
	return edges
}

// ArcPoints samples n+1 points along a circular arc from startAngle to endAngle
// (radians from +X, either direction), producing n chords.
func ArcPoints(center Point, radius, startAngle, endAngle float64, n int) []Point {
	if n < 1 {
		n = 1
	}
	points := make([]Point, 0, n+1)
	step := (endAngle - startAngle) / float64(n)
	for i := 0; i <= n; i++ {
		angle := startAngle + step*float64(i)
		points = append(points, Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	return points
}

// Bounds returns the axis-aligned bounding box of the points.
func Bounds(points []Point) (lo, hi Point) {
	if len(points) == 0 {
		return Point{}, Point{}
	}
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}
