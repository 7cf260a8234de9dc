package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-watersort/internal/core"
	"github.com/vovakirdan/tui-watersort/internal/games/watersort"
	"github.com/vovakirdan/tui-watersort/internal/platform/tui"
	"github.com/vovakirdan/tui-watersort/internal/registry"
	"github.com/vovakirdan/tui-watersort/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a game picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scores and solver runs
  Q            - Quit

Examples:
  watersort menu
  watersort menu --fps 30
  watersort menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	if _, err := loadConfig(flagConfig); err != nil {
		fail("%v", err)
	}
	watersort.SetDifficultyPreset(flagDifficulty)

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			log.Error("menu failed", "error", err)
			return
		}
		cfg = res.Config

		var again bool
		switch {
		case res.Quit, res.GameID == "" && !res.WantsScoreboard:
			return
		case res.WantsScoreboard:
			again, err = tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				log.Error("scoreboard failed", "error", err)
			}
		default:
			again = playFromMenu(store, cfg, res.GameID)
		}
		if !again {
			return
		}
	}
}

// playFromMenu runs the chosen mode and reports whether to show the menu
// again afterwards.
func playFromMenu(store *storage.Store, cfg core.RuntimeConfig, gameID string) bool {
	if gameID == "watersort" {
		chosen, ok, err := chooseWaterSort(cfg)
		if err != nil {
			log.Error("mode selector failed", "error", err)
			return true
		}
		if !ok {
			return true
		}
		gameID = chosen
	}

	game, err := registry.Create(gameID)
	if err != nil {
		log.Error("cannot create game", "game", gameID, "error", err)
		return true
	}

	cfg.Seed = time.Now().UnixNano()
	backToMenu, err := tui.Run(game, store, cfg)
	if err != nil {
		log.Error("game failed", "game", gameID, "error", err)
		return true
	}
	return backToMenu
}
