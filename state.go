package chromanoise

// State is the externally observable lifecycle of the engine.
type State int32

const (
	// StateLoading holds from construction until the first successful
	// render-context initialization.
	StateLoading State = iota
	// StatePlaying means the animation driver is actively rendering.
	StatePlaying
	// StatePaused means rendering is stopped, either by Stop or because the
	// render context reported an unrecoverable error.
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	}
	return "unknown"
}
