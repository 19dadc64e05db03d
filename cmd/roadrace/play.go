package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/road-race/internal/audio"
	"github.com/vovakirdan/road-race/internal/config"
	"github.com/vovakirdan/road-race/internal/core"
	"github.com/vovakirdan/road-race/internal/platform/tui"
	"github.com/vovakirdan/road-race/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Race in the terminal",
	Long: `Start a road race in the terminal.

Controls:
  Space/Enter  - Start the race
  Up/W         - Jump
  R            - Restart (after game over)
  Tab          - Scoreboard (after game over)
  Ctrl+S       - Save a screenshot to ~/.roadrace/screenshots
  Q/Ctrl+C     - Quit

Presets:
  easy     - Slower road and a longer, higher jump
  normal   - The default tuning
  hard     - Fast road, short jump, two health
  classic  - Jump only advances while Up is held

Logs go to ~/.roadrace/roadrace.log while the race owns the terminal.

Examples:
  roadrace play
  roadrace play --preset hard
  roadrace play --mute --seed 42
  roadrace play --config ./my-race.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadRaceConfig()
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
		// Continue without storage - race still works
		store = nil
	} else {
		defer store.Close()
	}

	player, stopAudio := startAudio(cfg, logger)
	defer stopAudio()

	_, err = tui.Run(tui.Options{
		Config:  cfg,
		Runtime: runtimeConfig(),
		Preset:  presetName(preset),
		Player:  localUser(),
		Store:   store,
		Audio:   player,
		Logger:  logger,
	})
	return err
}

// startAudio opens the speaker unless audio is muted or disabled.
// It falls back to silence when no audio device is available.
func startAudio(cfg config.RaceConfig, logger *log.Logger) (audio.Player, func()) {
	if flagMute || !cfg.Audio.Enabled {
		return audio.Silent{}, func() {}
	}

	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio disabled", "err", err)
		return audio.Silent{}, func() {}
	}
	return sm, sm.Cleanup
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	return rt
}

// localUser names the player recorded with local runs.
func localUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
