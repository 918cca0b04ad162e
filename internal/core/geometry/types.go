// Package geometry holds the 2D primitives shared by the optics engine: points,
// direction vectors, fixed angle conventions and line segments.
package geometry

import (
	"errors"
	"math"
)

// DefaultPrecision is the tolerance used when no engine configuration is at hand.
const DefaultPrecision = 1e-4

// ErrZeroVector is raised when an angle is requested for a zero-length vector.
var ErrZeroVector = errors.New("geometry: undefined angle for zero vector")

// Point represents a 2D point in space
type Point struct {
	X, Y float64
}

// Vector represents a 2D direction. It is unit-free unless normalized.
type Vector struct {
	DX, DY float64
}

// Add returns p translated by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{DX: p.X - q.X, DY: p.Y - q.Y}
}

// Scale multiplies both coordinates by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Equal compares two points component-wise within precision.
func (p Point) Equal(q Point, precision float64) bool {
	return EqualWithPrecision(p.X, q.X, precision) && EqualWithPrecision(p.Y, q.Y, precision)
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.DX, v.DY)
}

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

// Scale multiplies v by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{DX: v.DX * s, DY: v.DY * s}
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{DX: v.DX + w.DX, DY: v.DY + w.DY}
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{DX: v.DX - w.DX, DY: v.DY - w.DY}
}

// Neg reverses v exactly.
func (v Vector) Neg() Vector {
	return Vector{DX: -v.DX, DY: -v.DY}
}

// Dot returns the dot product.
func Dot(v, w Vector) float64 {
	return v.DX*w.DX + v.DY*w.DY
}

// Cross returns the z component of the 3D cross product v × w.
func Cross(v, w Vector) float64 {
	return v.DX*w.DY - v.DY*w.DX
}

// Perpendicular rotates v a quarter turn counter-clockwise.
func (v Vector) Perpendicular() Vector {
	return Vector{DX: -v.DY, DY: v.DX}
}

// Normalize rescales v to the given length. The zero vector is returned unchanged.
func (v Vector) Normalize(unitLength float64) Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector{DX: unitLength / l * v.DX, DY: unitLength / l * v.DY}
}

// Unit is Normalize(1).
func (v Vector) Unit() Vector {
	return v.Normalize(1)
}

// Equal compares two vectors component-wise within precision.
func (v Vector) Equal(w Vector, precision float64) bool {
	return EqualWithPrecision(v.DX, w.DX, precision) && EqualWithPrecision(v.DY, w.DY, precision)
}

// EqualWithPrecision reports whether a and b differ by less than precision.
// Every geometric comparison in the engine goes through here; chained
// reflections accumulate rounding error.
func EqualWithPrecision(a, b, precision float64) bool {
	return math.Abs(a-b) < precision
}
