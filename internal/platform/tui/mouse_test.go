package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/slingpuck/internal/core"
)

func TestPointerFromMouse(t *testing.T) {
	tests := []struct {
		name      string
		msg       tea.MouseMsg
		wantOK    bool
		wantPhase core.PointerPhase
	}{
		{"left press", tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true, core.PointerStart},
		{"left drag", tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, true, core.PointerMove},
		{"release", tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, true, core.PointerEnd},
		{"right press", tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, false, 0},
		{"wheel", tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, false, 0},
		{"hover", tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt, ok := PointerFromMouse(tt.msg)
			if ok != tt.wantOK {
				t.Fatalf("PointerFromMouse() ok = %v, expected %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if evt.Phase != tt.wantPhase {
				t.Errorf("phase = %s, expected %s", evt.Phase, tt.wantPhase)
			}
			if evt.ID != core.MousePointer {
				t.Errorf("ID = %d, expected the mouse pointer", evt.ID)
			}
			if evt.X != 28 || evt.Y != 40 {
				t.Errorf("position = (%v, %v), expected cell center (28, 40)", evt.X, evt.Y)
			}
		})
	}
}

func TestArenaSize(t *testing.T) {
	tests := []struct {
		cols, rows int
		wantW      float64
		wantH      float64
	}{
		{80, 25, 640, 384},
		{40, 13, 320, 192},
		{0, 0, 8, 16},
	}

	for _, tt := range tests {
		w, h := ArenaSize(tt.cols, tt.rows)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("ArenaSize(%d, %d) = (%v, %v), expected (%v, %v)", tt.cols, tt.rows, w, h, tt.wantW, tt.wantH)
		}
	}
}
