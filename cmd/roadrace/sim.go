package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/road-race/internal/engine"
	"github.com/vovakirdan/road-race/internal/storage"
)

var (
	flagSimDuration  time.Duration
	flagSimAutopilot bool
	flagSimLead      float64
	flagSimSave      bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless race and print the result",
	Long: `Run the race without a terminal UI at a fixed frame rate.

The race starts on the first frame. Without --autopilot the player never
jumps, so the run ends once health reaches zero. With --autopilot the
player jumps whenever the obstacle is within --lead world units.

The same --seed and --fps always produce the same result.

Examples:
  roadrace sim
  roadrace sim --autopilot --duration 5m
  roadrace sim --preset hard --autopilot --lead 260 --seed 7
  roadrace sim --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().DurationVar(&flagSimDuration, "duration", 2*time.Minute, "Simulated time limit")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Jump over obstacles automatically")
	simCmd.Flags().Float64Var(&flagSimLead, "lead", engine.DefaultLead, "Autopilot jump distance in world units")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store the result in the runs database")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, preset, err := loadRaceConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "sim")
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	start := time.Now()
	res, err := engine.Simulate(ctx, cfg, engine.SimOptions{
		Seed:        seed,
		FPS:         flagFPS,
		MaxDuration: flagSimDuration,
		Autopilot:   flagSimAutopilot,
		Lead:        flagSimLead,
		Logger:      logger,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Debug("simulation finished", "wall", time.Since(start))

	outcome := "survived"
	if res.Lost {
		outcome = "lost"
	}
	if errors.Is(err, context.Canceled) {
		outcome = "interrupted"
	}

	fmt.Printf("Outcome:   %s\n", outcome)
	fmt.Printf("Score:     %d\n", res.Score)
	fmt.Printf("Health:    %d\n", res.Health)
	fmt.Printf("Hits:      %d\n", res.Hits)
	if flagSimAutopilot {
		fmt.Printf("Jumps:     %d\n", res.Jumps)
	}
	fmt.Printf("Race time: %s (%d ticks, %d frames)\n", res.Duration.Round(time.Millisecond), res.Ticks, res.Frames)
	fmt.Printf("Seed:      %d\n", seed)

	if !flagSimSave {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		Score:    res.Score,
		Health:   res.Health,
		Ticks:    res.Ticks,
		Duration: res.Duration,
		Preset:   presetName(preset),
		Player:   "sim",
	})
	if err != nil {
		return err
	}
	fmt.Printf("Saved:     %s\n", id)
	return nil
}
