package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-watersort/internal/config"
	wcore "github.com/vovakirdan/tui-watersort/internal/games/watersort/core"
	"github.com/vovakirdan/tui-watersort/internal/games/watersort/levels"
	"github.com/vovakirdan/tui-watersort/internal/storage"
)

var (
	flagSolveLevel  string
	flagStrategy    string
	flagMaxNodes    int
	flagRecord      bool
	flagSolveConfig string
)

var solveCmd = &cobra.Command{
	Use:   "solve [vials...]",
	Short: "Solve a configuration and print every step",
	Long: `Search for a sequence of pours that sorts the given configuration.

Vials are listed bottom to top, one argument per vial. Use "" for an
empty vial, or pass a single argument in key form with vials separated
by '|'. With --level the configuration comes from a campaign level.

Each step is printed as one line in key form, followed by statistics.
The exit status is 1 when there is no solution.

Examples:
  watersort solve ABCD ABCD ABCD ABCD EEFG EFFG EFGG "" ""
  watersort solve "AAB |BBA |AB  |    "
  watersort solve --level 07-classic-nine --strategy bfs
  watersort solve --level 10-classic-fourteen --record`,
	Run: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagSolveLevel, "level", "", "Solve the level with this ID instead of the arguments")
	solveCmd.Flags().StringVar(&flagStrategy, "strategy", "", "Search strategy: dfs or bfs (default from config)")
	solveCmd.Flags().IntVar(&flagMaxNodes, "max-nodes", 0, "Stop after expanding this many states (0 = no limit, default from config)")
	solveCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the run statistics to the database")
	solveCmd.Flags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of level files (default from config)")
	solveCmd.Flags().StringVar(&flagSolveConfig, "config", "", "Path to custom game config YAML")
}

func runSolve(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(flagSolveConfig)
	if err != nil {
		fail("%v", err)
	}

	solver, err := solverFromFlags(cmd, cfg.Solver)
	if err != nil {
		fail("%v", err)
	}

	var vials []string
	levelID := flagSolveLevel
	switch {
	case levelID != "":
		dir := flagLevelsDir
		if dir == "" {
			dir = cfg.Levels.Dir
		}
		loader := levels.Open(dir)
		lvl, err := loader.LoadByID(levelID)
		if err != nil {
			if ids, idsErr := loader.ListIDs(); idsErr == nil && len(ids) > 0 {
				fail("%v (known levels: %s)", err, strings.Join(ids, ", "))
			}
			fail("%v", err)
		}
		vials = lvl.Vials
	case len(args) > 0:
		vials = parseVialArgs(args)
	default:
		fail("give the vials as arguments or use --level")
	}

	initial, err := wcore.ParseVials(vials)
	if err != nil {
		var verr wcore.ValidationError
		if errors.As(err, &verr) {
			fail("Not a valid game state! %s", verr.Message)
		}
		fail("%v", err)
	}

	log.Debug("solving", "level", levelID, "vials", initial.Len(), "strategy", solver.Strategy, "max_nodes", solver.MaxNodes)

	start := time.Now()
	sol, solveErr := solver.Solve(initial)
	elapsed := time.Since(start)

	log.Info("search finished",
		"strategy", solver.Strategy,
		"explored", sol.Explored,
		"discovered", sol.Discovered,
		"elapsed", elapsed.Round(time.Millisecond),
	)

	if flagRecord {
		recordRun(storage.SolverRun{
			LevelID:  levelID,
			VialsKey: initial.Key(),
			Strategy: string(solver.Strategy),
			Moves:    sol.Len(),
			Explored: sol.Explored,
			Solved:   solveErr == nil,
			Duration: elapsed,
		})
	}

	switch {
	case errors.Is(solveErr, wcore.ErrNoSolution):
		fail("Cannot find solution! (explored %d states)", sol.Explored)
	case errors.Is(solveErr, wcore.ErrBudgetExceeded):
		fail("gave up after %d states", sol.Explored)
	case solveErr != nil:
		fail("%v", solveErr)
	}

	printSolution(os.Stdout, sol, elapsed)
}

// solverFromFlags starts from the configured solver and applies the
// flags the user set explicitly.
func solverFromFlags(cmd *cobra.Command, sc config.SolverConfig) (wcore.Solver, error) {
	name := sc.Strategy
	if cmd.Flags().Changed("strategy") {
		name = flagStrategy
	}
	strategy, err := wcore.ParseStrategy(name)
	if err != nil {
		return wcore.Solver{}, err
	}

	maxNodes := sc.MaxNodes
	if cmd.Flags().Changed("max-nodes") {
		if flagMaxNodes < 0 {
			return wcore.Solver{}, fmt.Errorf("--max-nodes must not be negative, got %d", flagMaxNodes)
		}
		maxNodes = flagMaxNodes
	}

	return wcore.Solver{Strategy: strategy, MaxNodes: maxNodes}, nil
}

// parseVialArgs accepts one argument per vial, or a single key-form
// argument with '|' between vials.
func parseVialArgs(args []string) []string {
	if len(args) == 1 && strings.ContainsRune(args[0], rune(wcore.Separator)) {
		return wcore.KeyToVials(args[0])
	}
	return args
}

// stepKey returns the key form of one solution step.
func stepKey(step []string) string {
	st, err := wcore.NewState(step)
	if err != nil {
		return strings.Join(step, string(wcore.Separator))
	}
	return st.Key()
}

func printSolution(w io.Writer, sol wcore.Solution, elapsed time.Duration) {
	for _, step := range sol.Steps {
		fmt.Fprintln(w, stepKey(step))
	}

	pours := make([]string, len(sol.Moves))
	for i, m := range sol.Moves {
		pours[i] = m.String()
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Moves:      %d\n", sol.Len())
	if len(pours) > 0 {
		fmt.Fprintf(w, "Pours:      %s\n", strings.Join(pours, " "))
	}
	fmt.Fprintf(w, "Explored:   %d\n", sol.Explored)
	fmt.Fprintf(w, "Discovered: %d\n", sol.Discovered)
	fmt.Fprintf(w, "Time:       %s\n", elapsed.Round(time.Microsecond))
}

func recordRun(run storage.SolverRun) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open database, run not recorded", "error", err)
		return
	}
	defer store.Close()

	id, err := store.SaveSolverRun(run)
	if err != nil {
		log.Warn("run not recorded", "error", err)
		return
	}

	saved, err := store.SolverRunByID(id)
	if err != nil || saved == nil {
		log.Warn("run recorded but cannot be read back", "id", id, "error", err)
		return
	}
	fmt.Fprintln(os.Stderr, recordedRunLine(*saved))
}

// recordedRunLine summarizes a stored run for the terminal.
func recordedRunLine(run storage.SolverRun) string {
	result := "solved"
	if !run.Solved {
		result = "failed"
	}
	return fmt.Sprintf("Recorded run %s: %s, %s, %d moves, %d states", run.ID, run.Strategy, result, run.Moves, run.Explored)
}
