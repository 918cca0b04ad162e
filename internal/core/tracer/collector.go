package tracer

import (
	"sort"
	"sync"

	"github.com/Echx/Planck/internal/core/geometry"
	"github.com/Echx/Planck/internal/core/path"
)

// Collector is a Listener that gathers points per tag. Only expected tags
// are recorded; points for any other tag, such as those of a trace cancelled
// before a Reset, are dropped.
type Collector struct {
	mu       sync.Mutex
	rays     map[string][]path.CriticalPoint
	finished map[string]Status
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		rays:     make(map[string][]path.CriticalPoint),
		finished: make(map[string]Status),
	}
}

// Expect registers interest in tag.
func (c *Collector) Expect(tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.rays[tag]; !ok {
		c.rays[tag] = nil
	}
	delete(c.finished, tag)
}

// Reset forgets every tag.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rays = make(map[string][]path.CriticalPoint)
	c.finished = make(map[string]Status)
}

// OnCriticalPoint implements Listener.
func (c *Collector) OnCriticalPoint(point geometry.Point, segment *geometry.Segment, tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	points, ok := c.rays[tag]
	if !ok {
		return
	}
	if _, done := c.finished[tag]; done {
		return
	}
	c.rays[tag] = append(points, path.CriticalPoint{Point: point, Segment: segment})
}

// OnFinished implements Listener.
func (c *Collector) OnFinished(tag string, status Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.rays[tag]; ok {
		c.finished[tag] = status
	}
}

// Tags returns the expected tags in sorted order.
func (c *Collector) Tags() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	tags := make([]string, 0, len(c.rays))
	for tag := range c.rays {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Points returns a copy of the points received so far for tag.
func (c *Collector) Points(tag string) []path.CriticalPoint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]path.CriticalPoint(nil), c.rays[tag]...)
}

// Status returns the final status for tag, if it has finished.
func (c *Collector) Status(tag string) (Status, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.finished[tag]
	return s, ok
}

// VisitedParents returns the ids of the devices the ray for tag has reached,
// first hit first.
func (c *Collector) VisitedParents(tag string) []string {
	return path.VisitedParents(c.Points(tag))
}

// Path builds the display path of the points received so far for tag.
func (c *Collector) Path(tag string, unitLength float64) *path.Path {
	return path.New(c.Points(tag), unitLength)
}
