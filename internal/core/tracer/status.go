package tracer

import "fmt"

// State is the lifecycle of one traced ray.
type State int

const (
	StateTracing State = iota
	StateTerminated
	StateCancelled
)

// Reason says why a ray stopped.
type Reason int

const (
	ReasonNone Reason = iota
	// ReasonBoundary: the ray left the grid.
	ReasonBoundary
	// ReasonWall: the ray was absorbed by a wall or an emitter.
	ReasonWall
	// ReasonBoundExceeded: the ray hit the configured step bound, usually
	// because it is caught between reflective surfaces.
	ReasonBoundExceeded
	// ReasonEmbedded: the ray started inside another device.
	ReasonEmbedded
)

var reasonNames = map[Reason]string{
	ReasonNone:          "",
	ReasonBoundary:      "boundary",
	ReasonWall:          "wall",
	ReasonBoundExceeded: "bound-exceeded",
	ReasonEmbedded:      "embedded",
}

func (r Reason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// Status is the outcome of a trace. Reason is only set when terminated.
type Status struct {
	State  State
	Reason Reason
}

var (
	tracing   = Status{State: StateTracing}
	cancelled = Status{State: StateCancelled}
)

func terminated(r Reason) Status {
	return Status{State: StateTerminated, Reason: r}
}

// Done reports whether no more points will follow.
func (s Status) Done() bool {
	return s.State != StateTracing
}

func (s Status) String() string {
	switch s.State {
	case StateTracing:
		return "tracing"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("terminated(%s)", s.Reason)
	}
}
