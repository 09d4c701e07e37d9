// slingpuck is a two-player sling puck table for the terminal, a desktop or
// touch window, and SSH.
//
// Usage:
//
//	slingpuck play           - Play in this terminal (mouse drag to sling)
//	slingpuck window         - Play in a window (mouse and multi-touch)
//	slingpuck serve          - Start SSH server, one table per connection
//	slingpuck levels         - Show the level table
//	slingpuck config         - Print the default tuning YAML
//
// Global flags:
//
//	--fps <rate>            - Set frame rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible spawns
//	--config <path>         - Load tuning from a YAML file
//	--difficulty <preset>   - easy, normal or hard
//	--log-file <path>       - Write match logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/slingpuck/internal/config"
	"github.com/vovakirdan/slingpuck/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slingpuck",
	Short: "Sling Puck - fling your pucks through the gap",
	Long: `Sling Puck is a two-player table game. Each player owns one half of
the table; grab a puck, pull it back past your band line and let go to
sling it through the gap in the center wall. Empty your half to win.

Available commands:
  play     - Play in this terminal
  window   - Play in a window with mouse or multi-touch
  serve    - Start SSH server for remote play
  levels   - Show the level table
  config   - Print the default tuning

Examples:
  slingpuck play
  slingpuck window --scale 2
  slingpuck play --difficulty hard
  slingpuck serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write match logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadTuning reads the tuning file and applies the difficulty preset.
func loadTuning() (config.SlingpuckConfig, error) {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return config.SlingpuckConfig{}, err
	}
	tuning, err := config.LoadSlingpuck(flagConfig)
	if err != nil {
		return config.SlingpuckConfig{}, err
	}
	config.ApplySlingpuckPreset(&tuning, preset)
	return tuning, nil
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// newLogger returns a logger writing to w, or to --log-file when set.
// The returned close function must be called when done.
func newLogger(w io.Writer) (*log.Logger, func(), error) {
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "slingpuck",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
