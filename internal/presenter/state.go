package presenter

// State is a slot's position in the loading pipeline.
type State int

const (
	StateStart State = iota
	StateLoadingMetadata
	StateLoadingThumbnail
	StateDone
)

// next is the only transition function; Done wraps back to Start on rebind.
func (s State) next() State {
	switch s {
	case StateStart:
		return StateLoadingMetadata
	case StateLoadingMetadata:
		return StateLoadingThumbnail
	case StateLoadingThumbnail:
		return StateDone
	default:
		return StateStart
	}
}

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateLoadingMetadata:
		return "loading_metadata"
	case StateLoadingThumbnail:
		return "loading_thumbnail"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}
