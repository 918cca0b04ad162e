package designer

import (
	"fmt"
	"log"

	"github.com/Echx/Planck/internal/core/geometry"
	"github.com/Echx/Planck/internal/core/optics"
	"github.com/Echx/Planck/internal/render"
	"github.com/Echx/Planck/internal/render/lighting"
)

var kindKeys = map[render.Key]optics.Kind{
	render.Key1: optics.KindEmitter,
	render.Key2: optics.KindFlatMirror,
	render.Key3: optics.KindFlatLens,
	render.Key4: optics.KindFlatWall,
	render.Key5: optics.KindConcaveLens,
	render.Key6: optics.KindConvexLens,
}

// Update handles input and advances the ray animation.
func (d *Designer) Update() error {
	if d.InputMgr != nil {
		if err := d.handleInput(); err != nil {
			return err
		}
	}

	d.ticks++
	d.Lights.Update(1.0 / TicksPerSecond)
	d.flashReachedDevices()
	return nil
}

func (d *Designer) handleInput() error {
	in := d.InputMgr
	if in.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	for key, kind := range kindKeys {
		if in.IsKeyJustPressed(key) {
			d.SelectKind(kind)
		}
	}

	x, y := in.GetCursorPosition()
	cursor := geometry.Point{X: float64(x), Y: float64(y)}

	switch {
	case in.IsMouseButtonJustPressed(render.MouseButtonLeft):
		if d.SelectAt(cursor) {
			d.dragging = true
		} else if _, err := d.PlaceAt(cursor); err == nil {
			d.dragging = false
		}
	case in.IsMouseButtonJustReleased(render.MouseButtonLeft):
		d.dragging = false
	case d.dragging && in.IsMouseButtonPressed(render.MouseButtonLeft):
		_ = d.MoveSelectedTo(cursor)
	}

	if in.IsKeyJustPressed(render.KeyQ) {
		_ = d.RotateSelected(1)
	}
	if in.IsKeyJustPressed(render.KeyE) {
		_ = d.RotateSelected(-1)
	}
	if in.IsKeyJustPressed(render.KeyDelete) {
		d.RemoveSelected()
	}
	if in.IsKeyJustPressed(render.KeySpace) {
		d.Shoot()
	}
	if in.IsKeyJustPressed(render.KeyR) {
		d.ResetLayout()
	}
	if in.IsKeyJustPressed(render.KeyS) {
		if err := d.Save(); err != nil {
			log.Printf("designer: save failed: %v", err)
		}
	}
	return nil
}

// flashReachedDevices lights up each critical point once the animated ray
// has travelled to it.
func (d *Designer) flashReachedDevices() {
	g := d.Grid()
	travelled := d.travelled()
	for i := range d.rays {
		r := &d.rays[i]
		p := d.Collector.Path(r.tag, g.UnitLength())
		points := p.CriticalPoints()
		display := p.DisplayPoints()
		for r.flashed < len(points) && p.DistanceTo(r.flashed) <= travelled {
			cp := points[r.flashed]
			if id := cp.Parent(); id != "" {
				d.Lights.SetLight(fmt.Sprintf("hit:%s:%d", r.tag, r.flashed), lighting.LightSource{
					X:         display[r.flashed].X,
					Y:         display[r.flashed].Y,
					Radius:    g.UnitLength() * 2,
					Intensity: 1,
					Color:     render.DeviceColor(d.kindOf(id)),
					Decay:     1.5,
				})
				if note, ok := d.Level.NoteFor(id); ok {
					log.Printf("designer: ray from %s reached %s, note %s", r.emitter, id, note)
				}
			}
			r.flashed++
		}
	}
}

// refreshEmitterLights puts a steady glow on every emitter, and only on them.
func (d *Designer) refreshEmitterLights() {
	g := d.Grid()
	d.Lights.RemoveLightsWithPrefix(emitterLightKey(""))
	for _, e := range g.Emitters() {
		center := g.GetPointForGridCoordinate(e.Center())
		d.Lights.SetLight(emitterLightKey(e.ID()), lighting.LightSource{
			X:         center.X,
			Y:         center.Y,
			Radius:    g.UnitLength() * 1.5,
			Intensity: 0.6,
			Color:     render.DeviceColor(optics.KindEmitter),
		})
	}
}

func (d *Designer) kindOf(id string) optics.Kind {
	if dev, ok := d.Grid().Instrument(id); ok {
		return dev.Kind()
	}
	return optics.KindFlatWall
}
