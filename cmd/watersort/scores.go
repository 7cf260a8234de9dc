package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-watersort/internal/registry"
	"github.com/vovakirdan/tui-watersort/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game mode",
	Long: `Display the top 10 high scores for the specified game mode.

With --clear the scores of the game are deleted instead.

Examples:
  watersort scores watersort
  watersort scores watersort --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

var flagClearScores bool

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores of the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'watersort list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("cannot create game: %v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClearScores {
		n, err := store.ClearScores(gameID)
		if err != nil {
			store.Close()
			fail("clearing scores: %v", err)
		}
		fmt.Printf("Deleted %d scores of %s.\n", n, game.Title())
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'watersort play %s' to set the first high score!\n", gameID)
		return
	}

	rows := make([][]string, len(scores))
	for i, entry := range scores {
		rows[i] = []string{strconv.Itoa(i + 1), strconv.Itoa(entry.Score), entry.CreatedAt.Format("2006-01-02 15:04")}
	}
	fmt.Println(renderTable([]string{"Rank", "Score", "Date"}, rows))

	if stats, err := store.Stats(gameID); err == nil {
		fmt.Printf("Best: %d  Average: %.0f  Campaigns: %d\n", stats.Best, stats.Average, stats.Plays)
	}
}
