package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/road-race/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresPlayer string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [run-id]",
	Short: "Show the best runs",
	Long: `Display the top runs, or the details of a single run by ID.

Examples:
  roadrace scores
  roadrace scores --limit 20
  roadrace scores --recent
  roadrace scores --player alice
  roadrace scores 3f0c2f5e-...
  roadrace scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the newest runs instead of the best")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show runs by this player")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every stored run")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	if len(args) == 1 {
		return printRun(store, args[0])
	}

	var (
		runs  []storage.Run
		title = "High Scores"
	)
	switch {
	case flagScoresPlayer != "":
		title = "High Scores - " + flagScoresPlayer
		runs, err = store.PlayerRuns(flagScoresPlayer, flagScoresLimit)
	case flagScoresRecent:
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagScoresLimit)
	default:
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Road Race - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'roadrace play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-12s  %-8s  %-16s  %s\n", "Rank", "Score", "Time", "Player", "Preset", "Date", "ID")
	fmt.Printf("  %-4s  %-8s  %-7s  %-12s  %-8s  %-16s  %s\n", "----", "-----", "----", "------", "------", "----", "--")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-7s  %-12s  %-8s  %-16s  %s\n",
			i+1, r.Score, r.Duration.Round(100*time.Millisecond).String(), r.Player, r.Preset,
			r.CreatedAt.Local().Format("2006-01-02 15:04"), shortID(r.ID))
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	}
	return nil
}

func printRun(store *storage.Store, id string) error {
	r, err := store.RunByID(id)
	if err != nil {
		return err
	}
	fmt.Printf("Run %s\n\n", r.ID)
	fmt.Printf("  Score:    %d\n", r.Score)
	fmt.Printf("  Health:   %d\n", r.Health)
	fmt.Printf("  Ticks:    %d\n", r.Ticks)
	fmt.Printf("  Time:     %s\n", r.Duration)
	fmt.Printf("  Preset:   %s\n", r.Preset)
	fmt.Printf("  Player:   %s\n", r.Player)
	fmt.Printf("  Date:     %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
