package core

// PointerID identifies one pointer (mouse or a single touch) for the
// lifetime of a press-move-release sequence.
type PointerID int

// MousePointer is the id drivers use for the mouse cursor.
const MousePointer PointerID = -1

// PointerPhase is the stage of a pointer sequence.
type PointerPhase int

const (
	PointerStart PointerPhase = iota
	PointerMove
	PointerEnd
	PointerCancel
)

// String returns a human-readable name for the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerStart:
		return "start"
	case PointerMove:
		return "move"
	case PointerEnd:
		return "end"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Ends reports whether the phase terminates the pointer sequence.
// A cancel is treated exactly like a normal release.
func (p PointerPhase) Ends() bool {
	return p == PointerEnd || p == PointerCancel
}

// PointerEvent is a normalized input event in arena coordinates.
type PointerEvent struct {
	ID    PointerID
	X, Y  float64
	Phase PointerPhase
}

// NewPointerEvent creates a pointer event.
func NewPointerEvent(id PointerID, x, y float64, phase PointerPhase) PointerEvent {
	return PointerEvent{ID: id, X: x, Y: y, Phase: phase}
}
