package designer

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Echx/Planck/internal/config"
	"github.com/Echx/Planck/internal/core/geometry"
	"github.com/Echx/Planck/internal/core/grid"
	"github.com/Echx/Planck/internal/core/optics"
	"github.com/Echx/Planck/internal/core/tracer"
	"github.com/Echx/Planck/internal/render"
)

// fakeImage is a sized surface that ignores drawing.
type fakeImage struct{ w, h int }

func (i *fakeImage) Bounds() image.Rectangle                          { return image.Rect(0, 0, i.w, i.h) }
func (i *fakeImage) Size() (int, int)                                 { return i.w, i.h }
func (i *fakeImage) Fill(color.Color)                                 {}
func (i *fakeImage) Clear()                                           {}
func (i *fakeImage) DrawImage(render.Image, *render.DrawImageOptions) {}
func (i *fakeImage) Dispose()                                         {}

// fakeRenderer counts draw calls.
type fakeRenderer struct {
	lines, polygons, outlines, circles, texts int
	lastText                                  string
}

func (r *fakeRenderer) NewImage(w, h int) render.Image { return &fakeImage{w, h} }
func (r *fakeRenderer) FillCircle(render.Image, float32, float32, float32, color.Color) {
	r.circles++
}
func (r *fakeRenderer) StrokeCircle(render.Image, float32, float32, float32, float32, color.Color) {
	r.circles++
}
func (r *fakeRenderer) StrokeLine(render.Image, float32, float32, float32, float32, float32, color.Color) {
	r.lines++
}
func (r *fakeRenderer) FillPolygon(render.Image, []render.Point, color.Color) { r.polygons++ }
func (r *fakeRenderer) StrokePolygon(render.Image, []render.Point, float32, color.Color) {
	r.outlines++
}
func (r *fakeRenderer) DrawText(_ render.Image, text string, _, _ int, _ color.Color, _ float64) {
	r.texts++
	r.lastText = text
}
func (r *fakeRenderer) MeasureText(text string, _ float64) (int, int) { return 6 * len(text), 13 }

// fakeInput replays one frame of input.
type fakeInput struct {
	keys             map[render.Key]bool
	x, y             int
	pressed, clicked bool
	released         bool
}

func (f *fakeInput) IsKeyPressed(key render.Key) bool     { return f.keys[key] }
func (f *fakeInput) IsKeyJustPressed(key render.Key) bool { return f.keys[key] }
func (f *fakeInput) GetCursorPosition() (int, int)        { return f.x, f.y }
func (f *fakeInput) IsMouseButtonPressed(render.MouseButton) bool {
	return f.pressed
}
func (f *fakeInput) IsMouseButtonJustPressed(render.MouseButton) bool {
	return f.clicked
}
func (f *fakeInput) IsMouseButtonJustReleased(render.MouseButton) bool {
	return f.released
}

func newTestDesigner() (*Designer, *fakeRenderer) {
	r := &fakeRenderer{}
	d := New(config.DefaultConfig(), nil, r, nil)
	d.RunSession = func(s *tracer.Session) { s.Run() }
	return d, r
}

// cell returns the display point in the middle of grid cell (x, y).
func cell(d *Designer, x, y int) geometry.Point {
	return d.Grid().GetCenterForGridCell(optics.Coordinate{X: x, Y: y})
}

// emitterAndWall places an emitter at (10,10) shooting down and a wall at
// (10,20) across its path.
func emitterAndWall(t *testing.T, d *Designer) (*optics.Device, *optics.Device) {
	t.Helper()
	d.SelectKind(optics.KindEmitter)
	emitter, err := d.PlaceAt(cell(d, 10, 10))
	if err != nil {
		t.Fatalf("Failed to place emitter: %v", err)
	}
	d.SelectKind(optics.KindFlatWall)
	wall, err := d.PlaceAt(cell(d, 10, 20))
	if err != nil {
		t.Fatalf("Failed to place wall: %v", err)
	}
	return emitter, wall
}

func TestDefaultDevices(t *testing.T) {
	for _, kind := range optics.Kinds() {
		dev, err := NewDefaultDevice(kind, optics.Coordinate{X: 20, Y: 20}, 12)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if dev.Kind() != kind {
			t.Errorf("Expected %s, got %s", kind, dev.Kind())
		}
	}
	planck, err := NewPlanck(optics.Coordinate{X: 5, Y: 5})
	if err != nil {
		t.Fatalf("Failed to create planck: %v", err)
	}
	lo, hi := geometry.Bounds(planck.Outline())
	if hi.X-lo.X != 6 || hi.Y-lo.Y != 6 {
		t.Errorf("Expected a 6x6 target, got %v-%v", lo, hi)
	}
}

func TestPlaceRejectsOverlap(t *testing.T) {
	d, _ := newTestDesigner()
	if _, err := d.PlaceAt(cell(d, 20, 10)); err != nil {
		t.Fatalf("Failed to place mirror: %v", err)
	}
	if _, err := d.PlaceAt(cell(d, 21, 11)); !errors.Is(err, grid.ErrOverlap) {
		t.Fatalf("Expected ErrOverlap, got %v", err)
	}
	if d.Grid().Len() != 1 {
		t.Errorf("Expected 1 device, got %d", d.Grid().Len())
	}
}

func TestShootTracesEveryEmitter(t *testing.T) {
	d, _ := newTestDesigner()
	emitter, wall := emitterAndWall(t, d)

	tags := d.Tags()
	if len(tags) != 1 {
		t.Fatalf("Expected one ray, got %d", len(tags))
	}
	status, ok := d.Collector.Status(tags[0])
	if !ok || status.Reason != tracer.ReasonWall {
		t.Fatalf("Expected terminated(wall), got %v", status)
	}
	parents := d.Collector.VisitedParents(tags[0])
	if len(parents) != 1 || parents[0] != wall.ID() {
		t.Errorf("Expected ray to reach the wall only, got %v", parents)
	}
	if !d.Level.IsFixed(emitter.ID()) || !d.Level.IsFixed(wall.ID()) {
		t.Error("Expected emitters and walls to be fixed")
	}
}

func TestEditCancelsAndReshoots(t *testing.T) {
	d, _ := newTestDesigner()
	_, wall := emitterAndWall(t, d)
	oldTag := d.Tags()[0]

	if !d.SelectAt(cell(d, 10, 20)) {
		t.Fatal("Expected to select the wall")
	}
	if err := d.MoveSelectedTo(cell(d, 30, 20)); err != nil {
		t.Fatalf("Failed to move wall: %v", err)
	}
	if moved, _ := d.Grid().Instrument(wall.ID()); moved.Center() != (optics.Coordinate{X: 30, Y: 20}) {
		t.Errorf("Expected wall at (30,20), got %v", moved.Center())
	}

	if len(d.Collector.Points(oldTag)) != 0 {
		t.Error("Expected points of the old ray to be dropped")
	}
	newTag := d.Tags()[0]
	if newTag == oldTag {
		t.Fatal("Expected a fresh tag after the edit")
	}
	if status, _ := d.Collector.Status(newTag); status.Reason != tracer.ReasonBoundary {
		t.Errorf("Expected the new ray to leave the grid, got %v", status)
	}
}

func TestRotateAndRemoveSelected(t *testing.T) {
	d, _ := newTestDesigner()
	mirror, err := d.PlaceAt(cell(d, 20, 20))
	if err != nil {
		t.Fatalf("Failed to place mirror: %v", err)
	}
	if d.Level.IsFixed(mirror.ID()) {
		t.Error("Expected mirrors to be movable")
	}

	if err := d.RotateSelected(4); err != nil {
		t.Fatalf("Failed to rotate: %v", err)
	}
	if mirror.Direction() != (geometry.Vector{DX: -1, DY: 0}) {
		t.Errorf("Expected direction (-1,0), got %v", mirror.Direction())
	}

	if !d.RemoveSelected() {
		t.Fatal("Expected removal")
	}
	if d.Grid().Len() != 0 || len(d.Level.Nodes) != 0 {
		t.Errorf("Expected empty grid and overlay, got %d devices, %d nodes", d.Grid().Len(), len(d.Level.Nodes))
	}
	if err := d.RotateSelected(1); !errors.Is(err, grid.ErrNotFound) {
		t.Errorf("Expected ErrNotFound without selection, got %v", err)
	}
}

func TestSaveAndReset(t *testing.T) {
	d, _ := newTestDesigner()
	if err := d.Save(); err == nil {
		t.Error("Expected save without a path to fail")
	}

	_, wall := emitterAndWall(t, d)
	d.LevelPath = filepath.Join(t.TempDir(), "level.json")
	if err := d.Save(); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	d.SelectAt(cell(d, 10, 20))
	if err := d.MoveSelectedTo(cell(d, 40, 40)); err != nil {
		t.Fatalf("Failed to move: %v", err)
	}
	d.ResetLayout()

	restored, ok := d.Grid().Instrument(wall.ID())
	if !ok || restored.Center() != (optics.Coordinate{X: 10, Y: 20}) {
		t.Errorf("Expected wall back at (10,20), got %v", restored)
	}
}

func TestResetLayoutDropsStaleEmitterGlow(t *testing.T) {
	d, _ := newTestDesigner()
	emitterAndWall(t, d)
	d.LevelPath = filepath.Join(t.TempDir(), "level.json")
	if err := d.Save(); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	d.SelectKind(optics.KindEmitter)
	extra, err := d.PlaceAt(cell(d, 40, 10))
	if err != nil {
		t.Fatalf("Failed to place emitter: %v", err)
	}
	d.ResetLayout()

	if _, ok := d.Grid().Instrument(extra.ID()); ok {
		t.Fatal("Expected the unsaved emitter to be gone after reset")
	}
	var steady []float64
	for _, light := range d.Lights.GetAllLights() {
		if light.Decay == 0 {
			steady = append(steady, light.X)
		}
	}
	if len(steady) != 1 || steady[0] != 10*d.Grid().UnitLength() {
		t.Errorf("Expected one glow on the saved emitter, got lights at x=%v", steady)
	}
}

func TestUpdateHandlesInput(t *testing.T) {
	d, _ := newTestDesigner()
	in := &fakeInput{keys: map[render.Key]bool{render.Key3: true}}
	d.InputMgr = in

	if err := d.Update(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if d.SelectedKind() != optics.KindFlatLens {
		t.Errorf("Expected flat lens selected, got %s", d.SelectedKind())
	}

	p := cell(d, 30, 30)
	*in = fakeInput{x: int(p.X), y: int(p.Y), clicked: true, pressed: true}
	if err := d.Update(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	dev, ok := d.Selected()
	if !ok || dev.Kind() != optics.KindFlatLens {
		t.Fatalf("Expected a placed flat lens, got %v", dev)
	}

	*in = fakeInput{keys: map[render.Key]bool{render.KeyEscape: true}}
	if err := d.Update(); !errors.Is(err, render.ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
}

func TestRaysAnimateAndFlash(t *testing.T) {
	d, r := newTestDesigner()
	emitterAndWall(t, d)

	// light needs 96 display units at 500 per second to reach the wall
	for i := 0; i < 20; i++ {
		if err := d.Update(); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	lights := d.Lights.GetAllLights()
	if len(lights) != 2 {
		t.Fatalf("Expected emitter glow and wall flash, got %d lights", len(lights))
	}

	d.Draw(&fakeImage{d.ScreenWidth, d.ScreenHeight})
	if r.polygons != 2 || r.outlines != 2 {
		t.Errorf("Expected 2 filled and stroked devices, got %d/%d", r.polygons, r.outlines)
	}
	if r.lines == 0 || r.circles == 0 {
		t.Errorf("Expected ray lines and glows, got %d lines, %d circles", r.lines, r.circles)
	}
	if !strings.Contains(r.lastText, "2 devices") {
		t.Errorf("Unexpected status line %q", r.lastText)
	}
	if w, h := d.Layout(0, 0); w != 1024 || h != 768 {
		t.Errorf("Expected 1024x768 layout, got %dx%d", w, h)
	}
}
