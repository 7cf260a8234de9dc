package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-watersort/internal/core"
	"github.com/vovakirdan/tui-watersort/internal/games/watersort"
	"github.com/vovakirdan/tui-watersort/internal/platform/tui"
	"github.com/vovakirdan/tui-watersort/internal/registry"
	"github.com/vovakirdan/tui-watersort/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game mode",
	Long: `Start playing the specified game mode.

Controls:
  Arrows/WASD  - Move cursor
  Enter/Space  - Pick a vial, then pour into another
  U            - Undo last pour
  X            - Solve (replay with Left/Right, Enter adopts the step)
  V            - Next sandbox preset
  R            - Restart level
  P            - Pause
  Q/Ctrl+C     - Quit

Difficulty options (hints per level):
  easy   - Unlimited hints, small move penalty
  normal - 3 hints
  hard   - No hints, large move penalty
  fixed  - Use the config values as-is

Examples:
  watersort play watersort
  watersort play watersort --level 4
  watersort play watersort --difficulty hard
  watersort play watersort_sandbox
  watersort play watersort --config ./my-watersort.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (1-based, skips the mode selector)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'watersort list' to see available games.")
		os.Exit(1)
	}

	cfg := runtimeConfig()
	if _, err := loadConfig(flagConfig); err != nil {
		fail("%v", err)
	}
	watersort.SetDifficultyPreset(flagDifficulty)

	if gameID == "watersort" {
		if flagLevel > 0 {
			watersort.SetStartLevel(flagLevel)
			log.Debug("starting level", "level", watersort.GetStartLevel())
		} else {
			chosen, ok, err := chooseWaterSort(cfg)
			if err != nil {
				fail("%v", err)
			}
			if !ok {
				return
			}
			gameID = chosen
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fail("cannot create game: %v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}

// chooseWaterSort shows the mode and level selector and applies the choice.
// ok is false when the player backed out.
func chooseWaterSort(cfg core.RuntimeConfig) (gameID string, ok bool, err error) {
	levelsDir := watersort.LoadConfig().Levels.Dir

	selection, err := tui.RunWaterSortModeSelector(levelsDir, cfg)
	if err != nil {
		return "", false, err
	}
	if selection == nil {
		return "", false, nil
	}

	watersort.SetStartLevel(selection.Level)
	log.Debug("mode selected", "game", selection.Mode.GameID(), "level", watersort.GetStartLevel())
	return selection.Mode.GameID(), true, nil
}
