package session

// Phase is the display state of a pane.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseError
	PhaseEmpty
	PhaseLoaded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseEmpty:
		return "empty"
	case PhaseLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// Settled reports whether the pane holds the result of a successful fetch.
func (p Phase) Settled() bool {
	return p == PhaseEmpty || p == PhaseLoaded
}

// Pane is a list of T together with its display phase. Items keeps the
// last fetched list even while Loading or Error so nothing is lost, but it
// is only meaningful to render when the phase is Loaded.
type Pane[T any] struct {
	Phase Phase
	Items []T
	Err   error
}

// Len returns the number of items.
func (p Pane[T]) Len() int {
	return len(p.Items)
}

func settled[T any](items []T) Pane[T] {
	if len(items) == 0 {
		return Pane[T]{Phase: PhaseEmpty, Items: items}
	}
	return Pane[T]{Phase: PhaseLoaded, Items: items}
}
