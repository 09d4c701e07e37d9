package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/slingpuck/internal/core"
)

// Arena units covered by one terminal cell. Cells are about twice as tall
// as wide, so this keeps pucks round.
const (
	CellWidth  = 8
	CellHeight = 16
)

// statusRows is the number of rows below the table used by the status line.
const statusRows = 1

// ArenaSize returns the arena dimensions for a terminal of cols by rows.
func ArenaSize(cols, rows int) (w, h float64) {
	cols = max(cols, 1)
	rows = max(rows-statusRows, 1)
	return float64(cols * CellWidth), float64(rows * CellHeight)
}

// PointerFromMouse converts a mouse message into a pointer event at the
// center of the clicked cell. Only the left button drags; wheel and other
// buttons report false.
func PointerFromMouse(msg tea.MouseMsg) (core.PointerEvent, bool) {
	var phase core.PointerPhase
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return core.PointerEvent{}, false
		}
		phase = core.PointerStart
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return core.PointerEvent{}, false
		}
		phase = core.PointerMove
	case tea.MouseActionRelease:
		phase = core.PointerEnd
	default:
		return core.PointerEvent{}, false
	}

	x := (float64(msg.X) + 0.5) * CellWidth
	y := (float64(msg.Y) + 0.5) * CellHeight
	return core.NewPointerEvent(core.MousePointer, x, y, phase), true
}
