package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/slingpuck/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorTop:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorBottom:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	core.ColorWall:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorObstacle: lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
	core.ColorBand:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorHeld:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	core.ColorText:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorDim:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// styleFor returns the style of a color, falling back to the default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of cells with the same color share one style so the output carries
// as few escape sequences as possible.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
