package optics

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/Echx/Planck/internal/core/geometry"
)

// Interact applies the device's physical law to a ray arriving with the given
// direction on the hit edge. It returns the outgoing unit direction, or false
// when the ray is absorbed.
func (d *Device) Interact(incoming geometry.Vector, hit geometry.Segment, precision float64) (geometry.Vector, bool) {
	if incoming.IsZero() {
		return geometry.Vector{}, false
	}
	switch d.kind {
	case KindFlatMirror:
		return reflectOffLine(incoming.Unit(), hit.Direction(), precision), true
	case KindFlatLens, KindConcaveLens, KindConvexLens:
		return refract(incoming.Unit(), hit.Normal, d.params.RefractionIndex, precision), true
	default:
		// walls absorb; emitters are sources, never relays
		return geometry.Vector{}, false
	}
}

// reflectOffLine mirrors in about the line of the hit edge using
// out = 2·mirrorAngle − inAngle. A ray travelling along the line or hitting it
// head-on is sent straight back.
func reflectOffLine(in, line geometry.Vector, precision float64) geometry.Vector {
	inLine := geometry.AngleFromXPlusScalar(in)
	mirrorLine := geometry.AngleFromXPlusScalar(line)
	normalLine := geometry.AngleFromXPlusScalar(line.Perpendicular())
	if sameLine(inLine, mirrorLine, precision) || sameLine(inLine, normalLine, precision) {
		return in.Neg()
	}

	out := 2*geometry.AngleFromXPlus(line) - geometry.AngleFromXPlus(in)
	return geometry.VectorFromXPlusRadius(out)
}

// sameLine compares two undirected orientations in [0, π), treating the ends of
// the range as adjacent.
func sameLine(a, b, precision float64) bool {
	return scalar.EqualWithinAbs(a, b, precision) || scalar.EqualWithinAbs(math.Abs(a-b), math.Pi, precision)
}

// refract bends in across an interface with outward unit normal n between air
// and a medium of index ior. The side is picked from the sign of in·n; past the
// critical angle the ray is reflected off the interface instead.
func refract(in, normal geometry.Vector, ior, precision float64) geometry.Vector {
	if normal.IsZero() {
		return in
	}
	normal = normal.Unit()
	tangent := normal.Perpendicular()

	// Rows are the interface-local axes, so the matrix maps world to local and
	// its transpose maps back.
	basis := mat.NewDense(2, 2, []float64{
		tangent.DX, tangent.DY,
		normal.DX, normal.DY,
	})
	var local mat.VecDense
	local.MulVec(basis, mat.NewVecDense(2, []float64{in.DX, in.DY}))
	lt, ln := local.AtVec(0), local.AtVec(1)

	// Grazing the surface: same degenerate handling as a mirror hit along its line
	if math.Abs(ln) <= precision {
		return in.Neg()
	}

	eta := 1 / ior // air -> medium, travelling against the outward normal
	if ln > 0 {
		eta = ior // medium -> air
	}

	var out *mat.VecDense
	sinOut := eta * lt
	if math.Abs(sinOut) > 1 {
		// total internal reflection
		out = mat.NewVecDense(2, []float64{lt, -ln})
	} else {
		cosOut := math.Sqrt(1 - sinOut*sinOut)
		out = mat.NewVecDense(2, []float64{sinOut, math.Copysign(cosOut, ln)})
	}

	var world mat.VecDense
	world.MulVec(basis.T(), out)
	return geometry.Vector{DX: world.AtVec(0), DY: world.AtVec(1)}.Unit()
}
