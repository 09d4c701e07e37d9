package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slingpuck/internal/platform/window"
)

var (
	flagScale  float64
	flagWidth  float64
	flagHeight float64
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a window with mouse or multi-touch",
	Long: `Open the table in a window. On a touch screen every finger is its
own pointer, so both players can sling at the same time.

Controls:
  Drag       - Grab a puck on your half, pull past the band line, release
  R          - New table (clears the score)
  Q/Esc      - Quit

Examples:
  slingpuck window
  slingpuck window --scale 2
  slingpuck window --width 480 --height 800`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1.5, "Window size as a multiple of the table")
	windowCmd.Flags().Float64Var(&flagWidth, "width", 640, "Table width in arena units")
	windowCmd.Flags().Float64Var(&flagHeight, "height", 384, "Table height in arena units")
}

func runWindow(_ *cobra.Command, _ []string) {
	tuning, err := loadTuning()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rt := runtimeConfig()
	rt.ArenaW = flagWidth
	rt.ArenaH = flagHeight

	err = window.Run(window.Options{
		Tuning:  tuning,
		Runtime: rt,
		Scale:   flagScale,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
