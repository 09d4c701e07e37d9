package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slingpuck/internal/config"
	"github.com/vovakirdan/slingpuck/internal/core"
	"github.com/vovakirdan/slingpuck/internal/games/slingpuck"
)

var helpStyle = lipgloss.NewStyle().Padding(0, 1)

// Model is the Bubble Tea model for a sling puck table.
type Model struct {
	game     *slingpuck.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	lastTick time.Time
	showHelp bool
	quitting bool
}

// NewModel creates a model for a terminal of cols by rows cells and resets
// the table. A zero seed is replaced by the current time.
func NewModel(tuning config.SlingpuckConfig, cols, rows int, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.ArenaW, cfg.ArenaH = ArenaSize(cols, rows)

	game := slingpuck.New(tuning)
	game.SetLogger(logger)
	game.Reset(cfg)

	h := help.New()
	h.Width = cols

	return Model{
		game:   game,
		screen: core.NewScreen(max(cols, 1), max(rows, 1)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
	}
}

// Game returns the table driven by the model.
func (m Model) Game() *slingpuck.Game {
	return m.game
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if evt, ok := PointerFromMouse(msg); ok {
			m.game.HandlePointerEvent(evt)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		m.game.CancelPointers()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.logger.Debug("table reset", "seed", m.config.Seed)

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	}
	return m, nil
}

// handleResize keeps the match running on the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(max(msg.Width, 1), max(msg.Height, 1))
	m.help.Width = msg.Width
	m.config.ArenaW, m.config.ArenaH = ArenaSize(msg.Width, msg.Height)
	m.game.Resize(m.config.ArenaW, m.config.ArenaH)
	return m, nil
}

// handleTick advances the table by the wall time since the last frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.config.FrameMs()
	if !m.lastTick.IsZero() {
		elapsed = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	m.game.StepFrame(elapsed)
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	Paint(m.screen, m.game.Frame())

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".slingpuck", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("slingpuck_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Paint(m.screen, m.game.Frame())
	out := RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + helpStyle.Render(m.help.View(m.keys))
	}
	return out
}

// ProgramOptions returns the Bubble Tea options a table needs: the
// alternate screen and mouse events with motion while a button is held.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	}
}

// Run plays a table in the current terminal until the user quits.
func Run(tuning config.SlingpuckConfig, cols, rows int, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(tuning, cols, rows, cfg, logger)

	p := tea.NewProgram(model, ProgramOptions()...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
