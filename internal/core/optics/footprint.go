package optics

import (
	"fmt"
	"math"

	"github.com/Echx/Planck/internal/core/geometry"
)

// rebuild regenerates outline and edges from center, direction and params.
func (d *Device) rebuild() error {
	if d.direction.IsZero() {
		return fmt.Errorf("%w: zero direction for %s", ErrInvalidGeometry, d.kind)
	}

	// An odd chord count puts a chord, not a vertex, across the lens axis
	chords := d.arcSegments
	if chords%2 == 0 {
		chords++
	}

	var local []geometry.Point
	var err error
	switch d.kind {
	case KindEmitter, KindFlatMirror, KindFlatLens, KindFlatWall:
		local, err = flatOutline(d.params)
	case KindConvexLens:
		local, err = convexOutline(d.params, chords)
	case KindConcaveLens:
		local, err = concaveOutline(d.params, chords)
	default:
		err = fmt.Errorf("%w: unknown kind %d", ErrInvalidGeometry, int(d.kind))
	}
	if err != nil {
		return err
	}
	if d.kind.IsLens() && d.params.RefractionIndex <= 0 {
		return fmt.Errorf("%w: refraction index must be positive, got %v", ErrInvalidGeometry, d.params.RefractionIndex)
	}

	// Local frame: u runs along the device direction, v along its left normal
	u := d.direction.Unit()
	v := u.Perpendicular()
	origin := d.center.Point()

	outline := make([]geometry.Point, len(local))
	for i, p := range local {
		outline[i] = origin.Add(u.Scale(p.X)).Add(v.Scale(p.Y))
	}
	d.outline = outline
	d.edges = geometry.ClosedEdges(outline, d.id)
	return nil
}

// flatOutline is a length × thickness rectangle centered on the origin.
func flatOutline(p Params) ([]geometry.Point, error) {
	if p.Thickness <= 0 || p.Length <= 0 {
		return nil, fmt.Errorf("%w: thickness %v and length %v must be positive", ErrInvalidGeometry, p.Thickness, p.Length)
	}
	hl, ht := p.Length/2, p.Thickness/2
	return []geometry.Point{{X: -hl, Y: -ht}, {X: hl, Y: -ht}, {X: hl, Y: ht}, {X: -hl, Y: ht}}, nil
}

// convexOutline builds a symmetric biconvex lens: two arcs of the curvature
// radius whose sagitta is half the center thickness, meeting at a sharp rim.
func convexOutline(p Params, segments int) ([]geometry.Point, error) {
	r, sag := p.CurvatureRadius, p.Thickness/2
	if sag <= 0 || r <= 0 || sag > r {
		return nil, fmt.Errorf("%w: convex lens needs 0 < thickness/2 <= radius, got thickness %v radius %v", ErrInvalidGeometry, p.Thickness, r)
	}
	phi := math.Asin(aperture(r, sag) / r)

	// front surface (v > 0) from u = a to u = -a
	front := geometry.ArcPoints(geometry.Point{Y: -(r - sag)}, r, math.Pi/2-phi, math.Pi/2+phi, segments)
	// back surface (v < 0) from u = -a to u = a; its end points are the rims already present
	back := geometry.ArcPoints(geometry.Point{Y: r - sag}, r, 3*math.Pi/2-phi, 3*math.Pi/2+phi, segments)

	outline := append(front, back[1:len(back)-1]...)
	return outline, nil
}

// concaveOutline builds a symmetric biconcave lens: two inward arcs joined by
// flat caps of the edge thickness.
func concaveOutline(p Params, segments int) ([]geometry.Point, error) {
	r, tc, te := p.CurvatureRadius, p.ThicknessCenter, p.ThicknessEdge
	sag := (te - tc) / 2
	if tc <= 0 || sag <= 0 || r <= 0 || sag > r {
		return nil, fmt.Errorf("%w: concave lens needs 0 < center < edge thickness and sagitta <= radius, got center %v edge %v radius %v",
			ErrInvalidGeometry, tc, te, r)
	}
	phi := math.Asin(aperture(r, sag) / r)

	// front surface bulges towards the center: circle above the lens, lower arc
	front := geometry.ArcPoints(geometry.Point{Y: tc/2 + r}, r, 3*math.Pi/2+phi, 3*math.Pi/2-phi, segments)
	back := geometry.ArcPoints(geometry.Point{Y: -(tc/2 + r)}, r, math.Pi/2+phi, math.Pi/2-phi, segments)

	return append(front, back...), nil
}

// aperture is the half width of a lens surface of radius r and sagitta sag.
func aperture(r, sag float64) float64 {
	return math.Sqrt(r*r - (r-sag)*(r-sag))
}
