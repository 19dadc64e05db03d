// roadrace is a side-scrolling road race for the terminal.
//
// Usage:
//
//	roadrace play            - Race in the terminal
//	roadrace menu            - Pick a preset, race, repeat
//	roadrace sim             - Run a headless race and print the result
//	roadrace scores          - Print the best runs
//	roadrace board           - Browse runs in an interactive table
//	roadrace presets         - List the tuning presets
//	roadrace serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible obstacle placement
//	--db <path>         - Set database path (default: ~/.roadrace/runs.db)
//	--config <path>     - Load a custom race config YAML
//	--preset <name>     - Apply a preset: easy, normal, hard, classic
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roadrace",
	Short: "Road Race - jump the obstacles, keep your health",
	Long: `Road Race is a side-scrolling arcade race for the terminal.

Press SPACE to start, UP to jump over the obstacles. Every hit costs one
point of health; the score grows with every second you survive.

Available commands:
  play     - Race in the terminal
  menu     - Interactive preset picker
  sim      - Headless race with an optional autopilot
  scores   - Print the best runs
  board    - Interactive scoreboard
  presets  - List tuning presets
  serve    - Start SSH server for remote play

Examples:
  roadrace play
  roadrace play --preset hard
  roadrace sim --autopilot --duration 60s
  roadrace serve --ssh :2222
  roadrace scores --limit 5`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.roadrace/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom race config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Preset: easy, normal, hard, classic")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(serveCmd)
}
