package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/slingpuck/internal/core"
	"github.com/vovakirdan/slingpuck/internal/games/slingpuck"
)

const (
	runeBand     = '┈'
	runeWall     = '█'
	runePuck     = '●'
	runeHeld     = '◉'
	runeObstacle = '▒'
	runeSling    = '·'
)

// Paint draws a frame onto s. The table fills all rows but the last, which
// holds the status line.
func Paint(s *core.Screen, f slingpuck.Frame) {
	s.Clear()

	for _, b := range f.Bands {
		if b.Taut {
			continue
		}
		row := cellRow(b.Y1)
		s.DrawHLine(0, row, s.Width(), runeBand, b.Color)
	}

	wallRow := cellRow(f.MidY)
	for _, seg := range f.Segments {
		from := int(math.Floor(seg.Start / CellWidth))
		to := int(math.Ceil(seg.End / CellWidth))
		s.DrawHLine(from, wallRow, to-from, runeWall, core.ColorWall)
	}

	for _, o := range f.Obstacles {
		fillDisc(s, o.X, o.Y, o.Radius, runeObstacle, core.ColorObstacle)
	}

	for _, b := range f.Bands {
		if b.Taut {
			drawLine(s, b.X1, b.Y1, b.X2, b.Y2, runeSling, b.Color)
		}
	}

	for _, p := range f.Pucks {
		r := runePuck
		if p.Held {
			r = runeHeld
		}
		fillDisc(s, p.X, p.Y, f.Radius, r, p.Color)
	}

	paintStatus(s, f)
	if f.Overlay != nil {
		paintOverlay(s, *f.Overlay)
	}
}

func cellCol(x float64) int {
	return int(math.Floor(x / CellWidth))
}

func cellRow(y float64) int {
	return int(math.Floor(y / CellHeight))
}

// fillDisc sets every cell whose center lies within radius of (x, y).
// The cell under the center is always set so small discs stay visible.
func fillDisc(s *core.Screen, x, y, radius float64, r rune, c core.Color) {
	for row := cellRow(y - radius); row <= cellRow(y+radius); row++ {
		for col := cellCol(x - radius); col <= cellCol(x+radius); col++ {
			cx := (float64(col) + 0.5) * CellWidth
			cy := (float64(row) + 0.5) * CellHeight
			if math.Hypot(cx-x, cy-y) <= radius {
				s.SetColored(col, row, r, c)
			}
		}
	}
	s.SetColored(cellCol(x), cellRow(y), r, c)
}

// drawLine steps across cells from (x1, y1) to (x2, y2).
func drawLine(s *core.Screen, x1, y1, x2, y2 float64, r rune, c core.Color) {
	c1, r1 := cellCol(x1), cellRow(y1)
	c2, r2 := cellCol(x2), cellRow(y2)
	steps := max(abs(c2-c1), abs(r2-r1))
	if steps == 0 {
		s.SetColored(c1, r1, r, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col := int(math.Round(core.Lerp(float64(c1), float64(c2), t)))
		row := int(math.Round(core.Lerp(float64(r1), float64(r2), t)))
		s.SetColored(col, row, r, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// paintStatus draws wins and pucks left per side, and the level name.
func paintStatus(s *core.Screen, f slingpuck.Frame) {
	y := s.Height() - 1
	level := slingpuck.LevelFor(f.Score.Level)

	top := fmt.Sprintf(" TOP %d  [%d]", f.Score.TopWins, f.Counts.Top)
	bottom := fmt.Sprintf("[%d]  %d BOTTOM ", f.Counts.Bottom, f.Score.BottomWins)
	s.DrawTextCentered(y, fmt.Sprintf("Level %d: %s", f.Score.Level, level.Name), core.ColorDim)
	s.DrawText(0, y, top, core.ColorTop)
	s.DrawText(s.Width()-len([]rune(bottom)), y, bottom, core.ColorBottom)
}

// paintOverlay draws a centered box with the overlay text.
func paintOverlay(s *core.Screen, o slingpuck.Overlay) {
	width := max(len([]rune(o.Title)), len([]rune(o.Subtitle))) + 6
	width = min(width, s.Width())
	height := 5
	playRows := s.Height() - statusRows
	x := (s.Width() - width) / 2
	y := max((playRows-height)/2, 0)

	box := core.NewRect(x, y, width, height)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, o.Color)
	s.DrawTextCentered(y+1, o.Title, o.Color)
	s.DrawTextCentered(y+3, o.Subtitle, core.ColorText)
}
