package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/slingpuck/internal/games/slingpuck"
)

// RenderLevels renders the level table for printing to a terminal.
func RenderLevels(levels []slingpuck.LevelLayout) string {
	columns := []table.Column{
		{Title: "Level", Width: 6},
		{Title: "Name", Width: 12},
		{Title: "Gaps", Width: 5},
		{Title: "Moving", Width: 7},
		{Title: "Obstacles", Width: 10},
	}

	rows := make([]table.Row, len(levels))
	for i, l := range levels {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			l.Name,
			strconv.Itoa(l.Openings()),
			yesNo(l.Moving()),
			yesNo(l.Obstacles),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+3),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t.View()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
