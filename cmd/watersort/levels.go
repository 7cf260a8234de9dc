package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	wcore "github.com/vovakirdan/tui-watersort/internal/games/watersort/core"
	"github.com/vovakirdan/tui-watersort/internal/games/watersort/levels"
)

var flagLevelsDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long: `Shows the campaign levels in play order with their sizes.

Without --levels-dir the levels built into the binary are listed.

Examples:
  watersort levels
  watersort levels --levels-dir ./my-levels`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of level files (default: built-in levels)")
}

func runLevels(_ *cobra.Command, _ []string) {
	all, err := levels.Open(flagLevelsDir).LoadAll()
	if err != nil {
		fail("loading levels: %v", err)
	}

	if len(all) == 0 {
		fmt.Println("No levels found.")
		return
	}

	rows := make([][]string, len(all))
	for i, lvl := range all {
		colors := "-"
		if st, err := lvl.NewState(); err == nil {
			colors = strconv.Itoa(wcore.ComputeStats(st).Colors)
		}
		rows[i] = []string{strconv.Itoa(i + 1), lvl.ID, strconv.Itoa(len(lvl.Vials)), colors, lvl.Difficulty(), lvl.Name}
	}
	fmt.Println(renderTable([]string{"#", "ID", "Vials", "Colors", "Difficulty", "Name"}, rows))
	fmt.Println("Run 'watersort play watersort --level <#>' to start at a level.")
}
