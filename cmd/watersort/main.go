// watersort is a terminal water sort puzzle with a built-in solver.
//
// Usage:
//
//	watersort list              - List available game modes
//	watersort play <game>       - Play a game mode
//	watersort menu              - Start menu to pick modes interactively
//	watersort serve             - Start SSH server for remote play
//	watersort scores <game>     - Show high scores for a game mode
//	watersort solve [vials...]  - Solve a configuration and print every step
//	watersort levels            - List campaign levels
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed
//	--db <path>          - Set database path (default: ~/.watersort/scores.db)
//	--log-level <level>  - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-watersort/internal/config"
	"github.com/vovakirdan/tui-watersort/internal/core"
	"github.com/vovakirdan/tui-watersort/internal/games/watersort"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "watersort",
	Short: "Water Sort - sort colored liquids in your terminal",
	Long: `Water Sort is a terminal puzzle: pour liquids between vials until
every vial holds a single color. A solver can finish any level for you.

Available commands:
  list     - Show all game modes
  play     - Play a game mode directly
  menu     - Interactive picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  solve    - Solve a configuration from the command line
  levels   - List campaign levels

Examples:
  watersort play watersort
  watersort play watersort_sandbox
  watersort menu
  watersort solve ABCD ABCD ABCD ABCD EEFG EFFG EFGG "" ""
  watersort serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.watersort/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(levelsCmd)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	log.SetLevel(level)
	log.SetReportTimestamp(level == log.DebugLevel)
	return nil
}

// runtimeConfig sizes the game to the current terminal, 80x24 if unknown.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// loadConfig points the game at path and returns the resolved config. A
// config the user named must load; only the search fallbacks may be skipped.
func loadConfig(path string) (config.WaterSortConfig, error) {
	if path != "" {
		if _, err := config.LoadWaterSort(path); err != nil {
			return config.WaterSortConfig{}, err
		}
	}
	watersort.SetConfigPath(path)
	return watersort.LoadConfig(), nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
