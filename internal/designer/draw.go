package designer

import (
	"fmt"
	"image/color"

	"github.com/Echx/Planck/internal/core/geometry"
	"github.com/Echx/Planck/internal/render"
)

// Draw renders the scene to the screen.
func (d *Designer) Draw(screen render.Image) {
	screen.Fill(render.BackgroundColor)
	d.drawGridLines(screen)
	d.drawDevices(screen)
	d.drawRays(screen)
	d.Lights.Draw(d.Renderer, screen)
	d.drawStatus(screen)
}

// Layout returns the logical screen size.
func (d *Designer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.ScreenWidth, d.ScreenHeight
}

func (d *Designer) drawGridLines(screen render.Image) {
	g := d.Grid()
	unit := float32(g.UnitLength())
	w, h := float32(d.ScreenWidth), float32(d.ScreenHeight)
	for x := 0; x <= g.Width(); x += 4 {
		d.Renderer.StrokeLine(screen, float32(x)*unit, 0, float32(x)*unit, h, 1, render.GridLineColor)
	}
	for y := 0; y <= g.Height(); y += 4 {
		d.Renderer.StrokeLine(screen, 0, float32(y)*unit, w, float32(y)*unit, 1, render.GridLineColor)
	}
}

func (d *Designer) drawDevices(screen render.Image) {
	g := d.Grid()
	for _, dev := range g.Instruments() {
		outline, ok := g.GetInstrumentDisplayPathForID(dev.ID())
		if !ok {
			continue
		}
		points := toRenderPoints(outline)

		stroke := render.DeviceColor(dev.Kind())
		if _, ok := d.Level.NoteFor(dev.ID()); ok {
			stroke = render.TargetColor
		}
		fill := stroke
		fill.A = 48
		d.Renderer.FillPolygon(screen, points, fill)

		width := float32(2)
		if dev.ID() == d.selectedID {
			stroke = render.SelectionColor
			width = 3
		}
		d.Renderer.StrokePolygon(screen, points, width, stroke)
	}
}

// drawRays strokes each ray up to the distance light has travelled since
// it was shot.
func (d *Designer) drawRays(screen render.Image) {
	travelled := d.travelled()
	for _, r := range d.rays {
		p := d.Collector.Path(r.tag, d.Grid().UnitLength())
		points := p.DisplayPoints()
		for i := 1; i < len(points); i++ {
			start := p.DistanceTo(i - 1)
			if start >= travelled {
				break
			}
			a, b := points[i-1], points[i]
			if end := p.DistanceTo(i); end > travelled {
				b = a.Add(b.Sub(a).Scale((travelled - start) / (end - start)))
			}
			d.Renderer.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, render.RayColor)
		}
	}
}

func (d *Designer) drawStatus(screen render.Image) {
	status := fmt.Sprintf("%s | placing %s | %d devices", d.Level.Name, d.selectedKind, d.Grid().Len())
	if dev, ok := d.Selected(); ok {
		status += " | selected " + dev.String()
	}
	d.Renderer.DrawText(screen, status, 8, 8, color.White, 1)
}

func toRenderPoints(points []geometry.Point) []render.Point {
	out := make([]render.Point, len(points))
	for i, p := range points {
		out[i] = render.Point{X: float32(p.X), Y: float32(p.Y)}
	}
	return out
}
