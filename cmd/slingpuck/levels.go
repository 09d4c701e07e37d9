package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slingpuck/internal/config"
	"github.com/vovakirdan/slingpuck/internal/games/slingpuck"
	"github.com/vovakirdan/slingpuck/internal/platform/tui"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long: `List the wall layouts in play order. Each win moves the table one
level on; after the last layout the table stays on it.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(tui.RenderLevels(slingpuck.Levels()))
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default tuning",
	Long: `Print the built-in tuning YAML. Save it to
~/.slingpuck/configs/slingpuck.yaml or ./configs/slingpuck.yaml and edit
the keys you want to change; missing keys keep their defaults.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}
