package designer

import (
	"github.com/Echx/Planck/internal/core/geometry"
	"github.com/Echx/Planck/internal/core/optics"
)

// Default device shapes, in grid units.
const (
	DefaultEmitterSize     = 2.0
	DefaultFlatThickness   = 2.0
	DefaultFlatLength      = 8.0
	DefaultThicknessCenter = 1.0
	DefaultThicknessEdge   = 3.0
	DefaultCurvatureRadius = 10.0
	DefaultConvexThickness = 2.0
	DefaultRefractionIndex = 1.5
	DefaultPlanckSize      = 6.0
)

// defaultDirection is the facing of freshly placed devices.
var defaultDirection = geometry.Vector{DX: 0, DY: 1}

// NewDefaultDevice creates a device of the given kind with the designer's
// stock dimensions.
func NewDefaultDevice(kind optics.Kind, center optics.Coordinate, arcSegments int) (*optics.Device, error) {
	opt := optics.WithArcSegments(arcSegments)
	switch kind {
	case optics.KindEmitter:
		return optics.NewEmitter(center, defaultDirection, DefaultEmitterSize, DefaultEmitterSize, opt)
	case optics.KindFlatMirror:
		return optics.NewFlatMirror(center, defaultDirection, DefaultFlatThickness, DefaultFlatLength, opt)
	case optics.KindFlatLens:
		return optics.NewFlatLens(center, defaultDirection, DefaultFlatThickness, DefaultFlatLength, DefaultRefractionIndex, opt)
	case optics.KindConcaveLens:
		return optics.NewConcaveLens(center, defaultDirection, DefaultThicknessCenter, DefaultThicknessEdge,
			DefaultCurvatureRadius, DefaultRefractionIndex, opt)
	case optics.KindConvexLens:
		return optics.NewConvexLens(center, defaultDirection, DefaultConvexThickness, DefaultCurvatureRadius,
			DefaultRefractionIndex, opt)
	default:
		return optics.NewFlatWall(center, defaultDirection, DefaultFlatThickness, DefaultFlatLength, opt)
	}
}

// NewPlanck creates the square note target.
func NewPlanck(center optics.Coordinate) (*optics.Device, error) {
	return optics.NewFlatWall(center, defaultDirection, DefaultPlanckSize, DefaultPlanckSize)
}
