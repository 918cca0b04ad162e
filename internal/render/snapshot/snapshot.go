// Package snapshot renders a grid and its traced rays to a PNG without a
// window, for level previews and tests.
package snapshot

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/Echx/Planck/internal/core/geometry"
	"github.com/Echx/Planck/internal/core/grid"
	"github.com/Echx/Planck/internal/core/path"
	"github.com/Echx/Planck/internal/render"
)

// Options controls the output image.
type Options struct {
	Scale     float64 // Output pixels per display unit
	ShowGrid  bool
	LineWidth float64
}

// DefaultOptions draws at display resolution with grid lines.
func DefaultOptions() Options {
	return Options{Scale: 1, ShowGrid: true, LineWidth: 2}
}

// Render draws the instruments of g and the given ray paths.
func Render(g *grid.Grid, rays []*path.Path, opts Options) image.Image {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 2
	}

	width := int(float64(g.Width()) * g.UnitLength() * opts.Scale)
	height := int(float64(g.Height()) * g.UnitLength() * opts.Scale)
	dc := gg.NewContext(width, height)
	dc.Scale(opts.Scale, opts.Scale)

	dc.SetColor(render.BackgroundColor)
	dc.Clear()

	if opts.ShowGrid {
		drawGridLines(dc, g)
	}

	dc.SetLineWidth(opts.LineWidth)
	for _, d := range g.Instruments() {
		outline, ok := g.GetInstrumentDisplayPathForID(d.ID())
		if !ok {
			continue
		}
		tracePolygon(dc, outline)
		dc.SetColor(render.DeviceColor(d.Kind()))
		dc.Stroke()
	}

	dc.SetColor(render.RayColor)
	for _, p := range rays {
		points := p.DisplayPoints()
		if len(points) < 2 {
			continue
		}
		dc.MoveTo(points[0].X, points[0].Y)
		for _, q := range points[1:] {
			dc.LineTo(q.X, q.Y)
		}
		dc.Stroke()
	}

	return dc.Image()
}

// SavePNG renders to a PNG file.
func SavePNG(filename string, g *grid.Grid, rays []*path.Path, opts Options) error {
	img := Render(g, rays, opts)
	if err := gg.SavePNG(filename, img); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", filename, err)
	}
	return nil
}

func drawGridLines(dc *gg.Context, g *grid.Grid) {
	dc.SetColor(render.GridLineColor)
	dc.SetLineWidth(1)
	w := float64(g.Width()) * g.UnitLength()
	h := float64(g.Height()) * g.UnitLength()
	for x := 0; x <= g.Width(); x++ {
		px := float64(x) * g.UnitLength()
		dc.DrawLine(px, 0, px, h)
	}
	for y := 0; y <= g.Height(); y++ {
		py := float64(y) * g.UnitLength()
		dc.DrawLine(0, py, w, py)
	}
	dc.Stroke()
}

func tracePolygon(dc *gg.Context, outline []geometry.Point) {
	if len(outline) == 0 {
		return
	}
	dc.NewSubPath()
	dc.MoveTo(outline[0].X, outline[0].Y)
	for _, p := range outline[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
}
