package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/road-race/internal/platform/tui"
	"github.com/vovakirdan/road-race/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse runs in an interactive scoreboard",
	Long: `Open the scoreboard table. Tab switches between the best and the
most recent runs; Esc or q leaves.`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	rt := runtimeConfig()
	_, err = tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
	return err
}
