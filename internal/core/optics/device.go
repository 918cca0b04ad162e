package optics

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Echx/Planck/internal/core/geometry"
)

// DefaultArcSegments is the number of chords used per curved lens surface.
// Even counts are rounded up to the next odd one.
const DefaultArcSegments = 13

// ErrInvalidGeometry is returned when device parameters cannot describe a footprint.
var ErrInvalidGeometry = errors.New("optics: invalid device geometry")

// Coordinate is an integer grid position. Device centers sit on grid points.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Point converts the coordinate into continuous grid space.
func (c Coordinate) Point() geometry.Point {
	return geometry.Point{X: float64(c.X), Y: float64(c.Y)}
}

// Params holds the type-specific geometry. Flat devices use Thickness and
// Length; curved lenses use the curvature fields; lenses use RefractionIndex.
type Params struct {
	Thickness       float64 `json:"thickness,omitempty"`
	Length          float64 `json:"length,omitempty"`
	CurvatureRadius float64 `json:"curvature_radius,omitempty"`
	ThicknessCenter float64 `json:"thickness_center,omitempty"`
	ThicknessEdge   float64 `json:"thickness_edge,omitempty"`
	RefractionIndex float64 `json:"refraction_index,omitempty"`
}

// Device is a placed optical instrument. Its edges are always rebuilt by the
// mutators, so queries never see a footprint that lags behind the parameters.
type Device struct {
	id          string
	kind        Kind
	center      Coordinate
	direction   geometry.Vector
	params      Params
	arcSegments int

	outline []geometry.Point
	edges   []geometry.Segment
}

// Option customizes a device at construction.
type Option func(*Device)

// WithID fixes the device id instead of generating one.
func WithID(id string) Option {
	return func(d *Device) {
		if id != "" {
			d.id = id
		}
	}
}

// WithArcSegments sets how many chords approximate each curved surface.
func WithArcSegments(n int) Option {
	return func(d *Device) {
		if n > 0 {
			d.arcSegments = n
		}
	}
}

// NewID returns a fresh opaque device identifier.
func NewID() string {
	return uuid.NewString()
}

// New creates a device of any kind and builds its footprint.
func New(kind Kind, center Coordinate, direction geometry.Vector, params Params, opts ...Option) (*Device, error) {
	if _, ok := kindNames[kind]; !ok {
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidGeometry, int(kind))
	}
	d := &Device{
		kind:        kind,
		center:      center,
		direction:   direction,
		params:      params,
		arcSegments: DefaultArcSegments,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.id == "" {
		d.id = NewID()
	}
	if err := d.rebuild(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewEmitter creates a light source.
func NewEmitter(center Coordinate, direction geometry.Vector, thickness, length float64, opts ...Option) (*Device, error) {
	return New(KindEmitter, center, direction, Params{Thickness: thickness, Length: length}, opts...)
}

// NewFlatMirror creates a two-sided flat mirror.
func NewFlatMirror(center Coordinate, direction geometry.Vector, thickness, length float64, opts ...Option) (*Device, error) {
	return New(KindFlatMirror, center, direction, Params{Thickness: thickness, Length: length}, opts...)
}

// NewFlatWall creates an absorbing wall.
func NewFlatWall(center Coordinate, direction geometry.Vector, thickness, length float64, opts ...Option) (*Device, error) {
	return New(KindFlatWall, center, direction, Params{Thickness: thickness, Length: length}, opts...)
}

// NewFlatLens creates a refracting slab.
func NewFlatLens(center Coordinate, direction geometry.Vector, thickness, length, refractionIndex float64, opts ...Option) (*Device, error) {
	return New(KindFlatLens, center, direction, Params{
		Thickness:       thickness,
		Length:          length,
		RefractionIndex: refractionIndex,
	}, opts...)
}

// NewConcaveLens creates a biconcave lens.
func NewConcaveLens(center Coordinate, direction geometry.Vector, thicknessCenter, thicknessEdge, curvatureRadius, refractionIndex float64, opts ...Option) (*Device, error) {
	return New(KindConcaveLens, center, direction, Params{
		ThicknessCenter: thicknessCenter,
		ThicknessEdge:   thicknessEdge,
		CurvatureRadius: curvatureRadius,
		RefractionIndex: refractionIndex,
	}, opts...)
}

// NewConvexLens creates a biconvex lens.
func NewConvexLens(center Coordinate, direction geometry.Vector, thickness, curvatureRadius, refractionIndex float64, opts ...Option) (*Device, error) {
	return New(KindConvexLens, center, direction, Params{
		Thickness:       thickness,
		CurvatureRadius: curvatureRadius,
		RefractionIndex: refractionIndex,
	}, opts...)
}

func (d *Device) ID() string                 { return d.id }
func (d *Device) Kind() Kind                 { return d.kind }
func (d *Device) Center() Coordinate         { return d.center }
func (d *Device) Direction() geometry.Vector { return d.direction }
func (d *Device) Params() Params             { return d.params }
func (d *Device) ArcSegments() int           { return d.arcSegments }

// Edges returns a copy of the current footprint segments.
func (d *Device) Edges() []geometry.Segment {
	return append([]geometry.Segment(nil), d.edges...)
}

// Outline returns the footprint polygon in grid space.
func (d *Device) Outline() []geometry.Point {
	return append([]geometry.Point(nil), d.outline...)
}

// SetCenter moves the device. Translation never invalidates the geometry.
func (d *Device) SetCenter(center Coordinate) {
	d.center = center
	if err := d.rebuild(); err != nil {
		panic(err)
	}
}

// SetDirection rotates the device. The previous direction is kept on error.
func (d *Device) SetDirection(direction geometry.Vector) error {
	previous := d.direction
	d.direction = direction
	if err := d.rebuild(); err != nil {
		d.direction = previous
		_ = d.rebuild()
		return err
	}
	return nil
}

// SetParams replaces the geometry parameters. The previous ones are kept on error.
func (d *Device) SetParams(params Params) error {
	previous := d.params
	d.params = params
	if err := d.rebuild(); err != nil {
		d.params = previous
		_ = d.rebuild()
		return err
	}
	return nil
}

// Clone returns an independent deep copy with the same id.
func (d *Device) Clone() *Device {
	c := *d
	c.outline = d.Outline()
	c.edges = d.Edges()
	return &c
}

// Ray returns the ray an emitter shoots: from its center along its direction.
// The emitter's own footprint is excluded from the first intersection search.
func (d *Device) Ray() (Ray, bool) {
	if d.kind != KindEmitter {
		return Ray{}, false
	}
	return Ray{
		Start:     d.center.Point(),
		Direction: d.direction,
		Source:    d.id,
	}, true
}

func (d *Device) String() string {
	return fmt.Sprintf("%s[%s] at (%d,%d)", d.kind, d.id, d.center.X, d.center.Y)
}

// Ray is a half-line in grid space. Source names the device it leaves, whose
// footprint is ignored when looking for the first hit.
type Ray struct {
	Start     geometry.Point
	Direction geometry.Vector
	Source    string
}
