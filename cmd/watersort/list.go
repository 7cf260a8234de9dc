package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-watersort/internal/registry"
	"github.com/vovakirdan/tui-watersort/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long: `Shows every game mode that can be passed to 'watersort play',
with the best score recorded for it.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Scores are optional here
	store, err := storage.Open(flagDBPath)
	if err != nil {
		store = nil
	} else {
		defer store.Close()
	}

	rows := make([][]string, 0, len(games))
	for _, g := range games {
		best := "-"
		if store != nil {
			if score, err := store.HighScore(g.ID); err == nil && score > 0 {
				best = strconv.Itoa(score)
			}
		}
		rows = append(rows, []string{g.ID, g.Title, best})
	}

	fmt.Println(renderTable([]string{"ID", "Title", "Best"}, rows))
	fmt.Println("Run 'watersort play <id>' to play.")
}
