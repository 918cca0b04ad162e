package tracer

import (
	"github.com/Echx/Planck/internal/core/grid"
	"github.com/Echx/Planck/internal/core/optics"
)

// Session is one incremental trace. It works on a snapshot taken when it was
// started, and each Step delivers at most one point to the listener.
type Session struct {
	engine     *Engine
	tag        string
	listener   Listener
	generation uint64
	walker     *walker
	status     Status
}

// Start takes a snapshot of the grid and prepares an incremental trace of ray
// under tag. Nothing is delivered until the session is stepped.
func (e *Engine) Start(g *grid.Grid, ray optics.Ray, tag string, listener Listener) *Session {
	snap := g.Snapshot()
	e.mu.RLock()
	generation := e.generation
	e.mu.RUnlock()

	return &Session{
		engine:     e,
		tag:        tag,
		listener:   listener,
		generation: generation,
		walker:     newWalker(snap, ray, e.opts),
		status:     tracing,
	}
}

// Tag returns the correlation tag of the session.
func (s *Session) Tag() string {
	return s.tag
}

// Status returns the state after the last step.
func (s *Session) Status() Status {
	return s.status
}

// Step computes and delivers the next critical point. It returns false once
// the session is finished or cancelled.
func (s *Session) Step() bool {
	if s.status.Done() {
		return false
	}

	cp, status := s.walker.next()

	// Delivery happens under the read lock, so a concurrent stop either
	// waits for this point or suppresses it.
	s.engine.mu.RLock()
	defer s.engine.mu.RUnlock()
	if s.engine.generation != s.generation {
		s.status = cancelled
		s.listener.OnFinished(s.tag, s.status)
		return false
	}

	s.listener.OnCriticalPoint(cp.Point, cp.Segment, s.tag)
	s.status = status
	if status.Done() {
		s.engine.report(s.tag, status)
		s.listener.OnFinished(s.tag, status)
		return false
	}
	return true
}

// Run steps the session until it finishes or is cancelled, and returns the
// final status.
func (s *Session) Run() Status {
	for s.Step() {
	}
	return s.status
}
