package strip

// State is the engine's selection state.
type State int

const (
	// Idle is settled on a position.
	Idle State = iota
	// Dragging follows frames from an external pager.
	Dragging
	// Animating is transitioning to a discretely selected tab.
	Animating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Animating:
		return "animating"
	default:
		return "unknown"
	}
}
