package reorder

// State is the lifecycle of a Coordinator. There is no terminal state.
type State int

const (
	Idle State = iota
	Fetching
	Ready
	Persisting
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Fetching:
		return "fetching"
	case Ready:
		return "ready"
	case Persisting:
		return "persisting"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// acceptsDrags reports whether a list is loaded that a drag can refer to.
func (s State) acceptsDrags() bool {
	return s == Ready || s == Persisting || s == Error
}
