package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/road-race/internal/config"
)

var flagPresetsYAML bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the tuning presets",
	Long: `Shows every preset with the values it changes.

With --yaml the built-in default config is printed instead, ready to be
saved as ~/.roadrace/configs/race.yaml and edited.`,
	Args: cobra.NoArgs,
	RunE: runPresets,
}

func init() {
	presetsCmd.Flags().BoolVar(&flagPresetsYAML, "yaml", false, "Print the default race config as YAML")
}

func runPresets(_ *cobra.Command, _ []string) error {
	if flagPresetsYAML {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	base, err := config.LoadRace(flagConfig)
	if err != nil {
		return err
	}

	fmt.Println("Available presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %-6s  %-6s  %-6s  %-6s  %-6s  %s\n", "Name", "Speed", "Jump", "Time", "Fall", "Health", "Score")
	fmt.Printf("  %-8s  %-6s  %-6s  %-6s  %-6s  %-6s  %s\n", "----", "-----", "----", "----", "----", "------", "-----")

	presets := []config.Preset{config.PresetEasy, config.PresetNormal, config.PresetHard, config.PresetClassic}
	for _, p := range presets {
		cfg := base
		config.ApplyRacePreset(&cfg, p)
		name := string(p)
		if cfg.Physics.ResetJumpEachTick {
			name += "*"
		}
		fmt.Printf("  %-8s  %-6g  %-6g  %-6g  %-6g  %-6d  %s\n",
			name, cfg.Physics.RoadSpeed, cfg.Physics.JumpHeight, cfg.Physics.JumpDuration,
			cfg.Physics.FallSpeed, cfg.Player.Health, cfg.Score.Mode)
	}

	fmt.Println()
	fmt.Println("* jump only advances while the key is held")
	fmt.Println()
	fmt.Println("Run 'roadrace play --preset <name>' to race with a preset.")
	return nil
}
