package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/slingpuck/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a table in this terminal. Both players share the mouse.

Controls:
  Mouse drag - Grab a puck on your half, pull past the band line, release
  R          - New table (clears the score)
  ?          - Toggle help
  Ctrl+S     - Save a screenshot to ~/.slingpuck/screenshots
  Q/Ctrl+C   - Quit

Examples:
  slingpuck play
  slingpuck play --difficulty easy
  slingpuck play --config ./my-table.yaml --log-file ./slingpuck.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	tuning, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal is busy drawing the table; only log to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 25 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.Run(tuning, width, height, runtimeConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
