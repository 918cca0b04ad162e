// Package designer is the level designer scene: place, move, rotate and
// remove devices, and watch the rays from every emitter redrawn as the
// layout changes.
package designer

import (
	"errors"
	"fmt"
	"log"

	"github.com/Echx/Planck/internal/config"
	"github.com/Echx/Planck/internal/core/geometry"
	"github.com/Echx/Planck/internal/core/grid"
	"github.com/Echx/Planck/internal/core/optics"
	"github.com/Echx/Planck/internal/core/tracer"
	"github.com/Echx/Planck/internal/render"
	"github.com/Echx/Planck/internal/render/lighting"
	"github.com/Echx/Planck/internal/world/level"
)

// TicksPerSecond is the update rate the ray animation is timed against.
const TicksPerSecond = 60

// Designer holds the scene state.
type Designer struct {
	ScreenWidth  int
	ScreenHeight int
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Lights       *lighting.Manager

	Config    *config.Config
	Level     *level.Level
	LevelPath string // Where S saves the level; empty disables saving

	Engine    *tracer.Engine
	Collector *tracer.Collector

	// RunSession drives a started trace. The default runs it on its own
	// goroutine; tests run it inline.
	RunSession func(s *tracer.Session)

	selectedKind optics.Kind
	selectedID   string
	dragging     bool

	rays  []rayState
	ticks int
}

// rayState tracks one emitter's ray for drawing.
type rayState struct {
	tag     string
	emitter string
	flashed int // critical points already given a glow
}

// New creates a designer editing lvl. A nil level starts an empty one.
func New(cfg *config.Config, lvl *level.Level, renderer render.Renderer, input render.InputManager) *Designer {
	if lvl == nil {
		lvl = level.New("Untitled", 0, grid.FromConfig(cfg), nil)
	}
	g := lvl.Grid
	d := &Designer{
		ScreenWidth:  int(float64(g.Width()) * g.UnitLength()),
		ScreenHeight: int(float64(g.Height()) * g.UnitLength()),
		Renderer:     renderer,
		InputMgr:     input,
		Lights:       lighting.NewManager(),
		Config:       cfg,
		Level:        lvl,
		Engine:       tracer.FromConfig(cfg, log.Default()),
		Collector:    tracer.NewCollector(),
		RunSession:   func(s *tracer.Session) { go s.Run() },
		selectedKind: optics.KindFlatMirror,
	}
	d.refreshEmitterLights()
	return d
}

// Grid is the layout being edited.
func (d *Designer) Grid() *grid.Grid {
	return d.Level.Grid
}

// SelectKind chooses what a click on empty space places.
func (d *Designer) SelectKind(kind optics.Kind) {
	d.selectedKind = kind
}

// SelectedKind returns the kind a click on empty space places.
func (d *Designer) SelectedKind() optics.Kind {
	return d.selectedKind
}

// Selected returns the device being edited, if any.
func (d *Designer) Selected() (*optics.Device, bool) {
	if d.selectedID == "" {
		return nil, false
	}
	return d.Grid().Instrument(d.selectedID)
}

// SelectAt selects the device under a display point.
func (d *Designer) SelectAt(display geometry.Point) bool {
	dev, ok := d.Grid().GetInstrumentAtPoint(display)
	if !ok {
		d.selectedID = ""
		return false
	}
	d.selectedID = dev.ID()
	return true
}

// PlaceAt adds a device of the selected kind at the cell under a display
// point. Placements that would overlap are rejected before touching the grid.
func (d *Designer) PlaceAt(display geometry.Point) (*optics.Device, error) {
	g := d.Grid()
	center := g.GetGridCoordinateForPoint(display)
	dev, err := NewDefaultDevice(d.selectedKind, center, d.Config.ArcSegments)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", d.selectedKind, err)
	}
	if g.IsInstrumentOverlappedWithOthers(dev) {
		log.Printf("designer: %s at (%d,%d) overlaps another device", d.selectedKind, center.X, center.Y)
		return nil, grid.ErrOverlap
	}

	d.edit(func() {
		g.AddInstrument(dev)
		d.Level.Nodes[dev.ID()] = level.Node{IsFixed: !isMovableKind(dev.Kind())}
	})
	d.selectedID = dev.ID()
	return dev, nil
}

// MoveSelectedTo moves the selected device to the cell under a display point.
func (d *Designer) MoveSelectedTo(display geometry.Point) error {
	dev, ok := d.Selected()
	if !ok {
		return grid.ErrNotFound
	}
	to := d.Grid().GetGridCoordinateForPoint(display)
	if to == dev.Center() {
		return nil
	}

	var err error
	d.edit(func() {
		err = d.Grid().MoveInstrument(dev.ID(), to)
	})
	if err != nil {
		log.Printf("designer: move rejected: %v", err)
	}
	return err
}

// RotateSelected turns the selected device by steps rotation quanta.
func (d *Designer) RotateSelected(steps int) error {
	dev, ok := d.Selected()
	if !ok {
		return grid.ErrNotFound
	}

	var err error
	d.edit(func() {
		err = d.Grid().RotateInstrument(dev.ID(), steps)
	})
	if err != nil {
		log.Printf("designer: rotation rejected: %v", err)
	}
	return err
}

// RemoveSelected deletes the selected device.
func (d *Designer) RemoveSelected() bool {
	dev, ok := d.Selected()
	if !ok {
		return false
	}
	d.edit(func() {
		d.Grid().RemoveInstrumentForID(dev.ID())
		delete(d.Level.Nodes, dev.ID())
		d.Lights.RemoveLight(emitterLightKey(dev.ID()))
	})
	d.selectedID = ""
	return true
}

// ResetLayout restores the last saved layout.
func (d *Designer) ResetLayout() {
	d.edit(func() {
		d.Level.Reset()
	})
	d.selectedID = ""
}

// Save stores the current layout as the level's solution and writes it to
// LevelPath.
func (d *Designer) Save() error {
	if d.LevelPath == "" {
		return errors.New("no level path to save to")
	}
	d.Level.OriginalGrid = d.Grid().Clone()
	if err := level.Save(d.LevelPath, d.Level); err != nil {
		return err
	}
	log.Printf("designer: saved level %q to %s", d.Level.Name, d.LevelPath)
	return nil
}

// edit applies a grid mutation. In-flight traces are cancelled first and the
// rays are shot again afterwards.
func (d *Designer) edit(mutate func()) {
	d.Engine.StopSubsequentCalculation()
	mutate()
	d.refreshEmitterLights()
	d.Shoot()
}

// Shoot cancels the current rays and traces a new one from every emitter.
func (d *Designer) Shoot() {
	d.Engine.StopSubsequentCalculation()
	d.Collector.Reset()
	d.rays = d.rays[:0]
	d.ticks = 0

	g := d.Grid()
	for _, e := range g.Emitters() {
		ray, ok := e.Ray()
		if !ok {
			continue
		}
		tag := tracer.NewTag()
		d.Collector.Expect(tag)
		d.rays = append(d.rays, rayState{tag: tag, emitter: e.ID()})
		d.RunSession(d.Engine.Start(g, ray, tag, d.Collector))
	}
}

// Tags returns the correlation tags of the current rays, one per emitter.
func (d *Designer) Tags() []string {
	tags := make([]string, len(d.rays))
	for i, r := range d.rays {
		tags[i] = r.tag
	}
	return tags
}

// travelled is how far the animated rays have got, in display units.
func (d *Designer) travelled() float64 {
	return float64(d.ticks) / TicksPerSecond * d.Config.LightSpeed
}

func isMovableKind(kind optics.Kind) bool {
	return kind != optics.KindEmitter && kind != optics.KindFlatWall
}

func emitterLightKey(id string) string {
	return "emitter:" + id
}
