package render

import (
	"image/color"

	"github.com/Echx/Planck/internal/core/optics"
)

// Scene colors shared by every backend
var (
	BackgroundColor = color.NRGBA{20, 20, 28, 255}
	GridLineColor   = color.NRGBA{40, 40, 52, 255}
	RayColor        = color.NRGBA{255, 255, 255, 255}
	SelectionColor  = color.NRGBA{255, 120, 60, 255}
	TargetColor     = color.NRGBA{255, 255, 0, 255} // Note-bearing walls
)

// DeviceColor returns the stroke color for a device kind.
func DeviceColor(kind optics.Kind) color.NRGBA {
	switch kind {
	case optics.KindEmitter:
		return color.NRGBA{0, 255, 0, 255}
	case optics.KindFlatMirror:
		return color.NRGBA{255, 255, 255, 255}
	case optics.KindFlatLens, optics.KindConcaveLens, optics.KindConvexLens:
		return color.NRGBA{190, 255, 255, 255}
	default:
		return color.NRGBA{128, 128, 128, 255}
	}
}
