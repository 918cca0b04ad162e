package geometry

import (
	"math"
	"testing"
)

func TestRaySegmentIntersection(t *testing.T) {
	seg := Segment{A: Point{5, -1}, B: Point{5, 1}}

	dist, p, ok := RaySegmentIntersection(Point{0, 0}, Vector{1, 0}, seg)
	if !ok {
		t.Fatal("Expected intersection")
	}
	if !nearly(dist, 5, tol) || !p.Equal(Point{5, 0}, tol) {
		t.Errorf("Expected hit at (5,0) distance 5, got %v at %v", p, dist)
	}

	if _, _, ok := RaySegmentIntersection(Point{0, 0}, Vector{-1, 0}, seg); ok {
		t.Error("Expected no intersection behind the ray")
	}
	if _, _, ok := RaySegmentIntersection(Point{0, 0}, Vector{0, 1}, seg); ok {
		t.Error("Expected no intersection for a parallel ray")
	}
	if _, _, ok := RaySegmentIntersection(Point{0, 3}, Vector{1, 0}, seg); ok {
		t.Error("Expected a miss above the segment")
	}
}

func TestRaySegmentIntersectionAwayFromOrigin(t *testing.T) {
	tests := []struct {
		origin Point
		dir    Vector
		seg    Segment
		wantT  float64
		want   Point
	}{
		{Point{10, 9.5}, Vector{1, 0}, Segment{A: Point{16, 9}, B: Point{16, 11}}, 6, Point{16, 9.5}},
		{Point{10, 9.5}, Vector{1, 0}, Segment{A: Point{16, 11}, B: Point{16, 9}}, 6, Point{16, 9.5}},
		{Point{10, 9.5}, Vector{2, 0}, Segment{A: Point{16, 9}, B: Point{16, 11}}, 3, Point{16, 9.5}},
		{Point{0, 0}, Vector{1, 1}, Segment{A: Point{4, 0}, B: Point{0, 4}}, 2, Point{2, 2}},
		{Point{3, 7}, Vector{0, -1}, Segment{A: Point{0, 2}, B: Point{6, 2}}, 5, Point{3, 2}},
	}
	for _, tt := range tests {
		dist, p, ok := RaySegmentIntersection(tt.origin, tt.dir, tt.seg)
		if !ok {
			t.Errorf("Expected ray from %v along %v to hit %v", tt.origin, tt.dir, tt.seg)
			continue
		}
		if !nearly(dist, tt.wantT, tol) || !p.Equal(tt.want, tol) {
			t.Errorf("Expected hit at %v with t=%v, got %v with t=%v", tt.want, tt.wantT, p, dist)
		}
	}
}

func TestSegmentsIntersect(t *testing.T) {
	a := Segment{A: Point{0, 0}, B: Point{2, 2}}
	b := Segment{A: Point{0, 2}, B: Point{2, 0}}
	c := Segment{A: Point{3, 3}, B: Point{4, 5}}
	touching := Segment{A: Point{2, 2}, B: Point{3, 0}}

	if !SegmentsIntersect(a, b, DefaultPrecision) || !SegmentsIntersect(b, a, DefaultPrecision) {
		t.Error("Expected crossing segments to intersect both ways")
	}
	if SegmentsIntersect(a, c, DefaultPrecision) || SegmentsIntersect(c, a, DefaultPrecision) {
		t.Error("Expected disjoint segments not to intersect")
	}
	if !SegmentsIntersect(a, touching, DefaultPrecision) {
		t.Error("Expected touching endpoints to count as intersecting")
	}
}

func TestClosedEdgesNormalsPointOutward(t *testing.T) {
	square := []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}} // clockwise
	edges := ClosedEdges(square, "sq")
	if len(edges) != 4 {
		t.Fatalf("Expected 4 edges, got %d", len(edges))
	}
	center := Point{0.5, 0.5}
	for _, e := range edges {
		if e.Parent != "sq" {
			t.Errorf("Expected parent sq, got %q", e.Parent)
		}
		if Dot(e.Normal, e.Midpoint().Sub(center)) <= 0 {
			t.Errorf("Normal %v of edge %v points inward", e.Normal, e)
		}
		if !nearly(e.Normal.Length(), 1, tol) {
			t.Errorf("Expected unit normal, got %v", e.Normal)
		}
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	if !PointInPolygon(Point{1, 1}, square) {
		t.Error("Expected center inside")
	}
	if PointInPolygon(Point{3, 1}, square) {
		t.Error("Expected outside point to be outside")
	}
}

func TestArcPoints(t *testing.T) {
	pts := ArcPoints(Point{0, 0}, 2, 0, math.Pi/2, 4)
	if len(pts) != 5 {
		t.Fatalf("Expected 5 points, got %d", len(pts))
	}
	for _, p := range pts {
		if !nearly(Distance(p, Point{}), 2, tol) {
			t.Errorf("Point %v not on the arc", p)
		}
	}
	if !pts[4].Equal(Point{0, 2}, tol) {
		t.Errorf("Expected arc to end at (0,2), got %v", pts[4])
	}
}
