// Package tracer follows a light ray across a grid of optical devices,
// producing the ordered critical points where it turns or stops.
//
// A trace either runs to completion in one call (Trace) or is driven one
// point at a time through a Session, which delivers each point to a Listener
// as soon as it is computed. Sessions never own a goroutine: the caller
// decides where Step or Run executes.
package tracer

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/Echx/Planck/internal/config"
	"github.com/Echx/Planck/internal/core/geometry"
	"github.com/Echx/Planck/internal/core/grid"
	"github.com/Echx/Planck/internal/core/optics"
	"github.com/Echx/Planck/internal/core/path"
)

// Options configures an engine.
type Options struct {
	Precision        float64
	VectorUnitLength float64
	MaxSteps         int
	Logger           *log.Logger
}

// DefaultOptions returns the settings used when a field is left zero.
func DefaultOptions() Options {
	return Options{
		Precision:        geometry.DefaultPrecision,
		VectorUnitLength: 1,
		MaxSteps:         256,
	}
}

// Listener receives the results of incremental traces. Both callbacks run on
// the goroutine that drives the session and must not call
// StopSubsequentCalculation themselves.
type Listener interface {
	// OnCriticalPoint delivers one point in grid space. segment is nil for
	// the ray start and the grid exit point.
	OnCriticalPoint(point geometry.Point, segment *geometry.Segment, tag string)
	// OnFinished signals that no more points will come for tag.
	OnFinished(tag string, status Status)
}

// Engine traces rays. Engines share no state, so tests and tools can run
// several with different settings.
type Engine struct {
	opts Options

	mu         sync.RWMutex
	generation uint64
}

// New creates an engine. Zero option fields take their defaults.
func New(opts Options) *Engine {
	defaults := DefaultOptions()
	if opts.Precision <= 0 {
		opts.Precision = defaults.Precision
	}
	if opts.VectorUnitLength <= 0 {
		opts.VectorUnitLength = defaults.VectorUnitLength
	}
	if opts.MaxSteps <= 0 {
		opts.MaxSteps = defaults.MaxSteps
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Engine{opts: opts}
}

// FromConfig creates an engine from the engine configuration.
func FromConfig(cfg *config.Config, logger *log.Logger) *Engine {
	return New(Options{
		Precision:        cfg.Precision,
		VectorUnitLength: cfg.VectorUnitLength,
		MaxSteps:         cfg.MaxSteps,
		Logger:           logger,
	})
}

// Options returns the effective settings.
func (e *Engine) Options() Options {
	return e.opts
}

// NewTag returns a fresh correlation tag for an incremental trace.
func NewTag() string {
	return uuid.NewString()
}

// Trace runs a ray to completion against the current grid and returns its
// path and final status.
func (e *Engine) Trace(g *grid.Grid, ray optics.Ray) (*path.Path, Status) {
	w := newWalker(g.Snapshot(), ray, e.opts)
	var points []path.CriticalPoint
	for {
		cp, status := w.next()
		points = append(points, cp)
		if status.Done() {
			e.report("sync", status)
			return path.New(points, g.UnitLength()), status
		}
	}
}

// TraceEmitter traces the ray shot by an emitter.
func (e *Engine) TraceEmitter(g *grid.Grid, emitter *optics.Device) (*path.Path, Status, bool) {
	ray, ok := emitter.Ray()
	if !ok {
		return nil, Status{}, false
	}
	p, status := e.Trace(g, ray)
	return p, status, true
}

// StopSubsequentCalculation cancels every session started so far. Once it
// returns, none of them will deliver another point. Call it before mutating
// a grid that has traces in flight.
func (e *Engine) StopSubsequentCalculation() {
	e.mu.Lock()
	e.generation++
	e.mu.Unlock()
}

func (e *Engine) report(tag string, status Status) {
	if status.Reason == ReasonBoundExceeded {
		e.opts.Logger.Printf("tracer: ray %s stopped after %d critical points", tag, e.opts.MaxSteps)
	}
}
