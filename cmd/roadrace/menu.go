package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/road-race/internal/config"
	"github.com/vovakirdan/road-race/internal/platform/tui"
	"github.com/vovakirdan/road-race/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a preset, race, and come back for another",
	Long: `Start the race in interactive menu mode.

Use arrow keys or j/k to pick a preset, Enter to race.
After a race ends, press Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Race with the selected preset
  Tab          - Scoreboard
  Q            - Quit

Examples:
  roadrace menu
  roadrace menu --fps 30
  roadrace menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	// --preset is chosen in the menu; the config file still applies
	base, err := config.LoadRace(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := fileLogger("roadrace")
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	player, stopAudio := startAudio(base, logger)
	defer stopAudio()

	rt := runtimeConfig()
	user := localUser()
	for {
		best := 0
		if store != nil {
			best, _ = store.PlayerBest(user)
		}

		menuResult, err := tui.RunMenu(rt, best)
		if err != nil {
			return err
		}
		rt = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		cfg := base
		config.ApplyRacePreset(&cfg, menuResult.Preset)

		// Fresh seed for each race unless --seed pins it
		if flagSeed == 0 {
			rt.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(tui.Options{
			Config:  cfg,
			Runtime: rt,
			Preset:  string(menuResult.Preset),
			Player:  user,
			Store:   store,
			Audio:   player,
			Logger:  logger,
		})
		if err != nil || !back {
			return err
		}
	}
}
