package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-watersort/internal/config"
	"github.com/vovakirdan/tui-watersort/internal/games/watersort"
	wcore "github.com/vovakirdan/tui-watersort/internal/games/watersort/core"
	"github.com/vovakirdan/tui-watersort/internal/storage"
)

func TestParseVialArgs(t *testing.T) {
	assert.Equal(t, []string{"AB", "", "BA"}, parseVialArgs([]string{"AB", "", "BA"}))
	assert.Equal(t, []string{"AAB", "C", ""}, parseVialArgs([]string{"AAB |C   |    "}))
}

func TestPrintSolution(t *testing.T) {
	initial, err := wcore.NewState([]string{"AAAB", "BBB", "A"})
	require.NoError(t, err)
	sol, err := wcore.Solver{}.Solve(initial)
	require.NoError(t, err)

	var buf bytes.Buffer
	printSolution(&buf, sol, time.Millisecond)
	lines := strings.Split(buf.String(), "\n")

	assert.Equal(t, "AAAB|BBB |A   ", lines[0])
	assert.Equal(t, "AAA |BBBB|A   ", lines[1])
	assert.Equal(t, "AAAA|BBBB|    ", lines[2])
	assert.Empty(t, lines[3])
	assert.Contains(t, buf.String(), "Moves:      2\n")
	assert.Contains(t, buf.String(), "Pours:      1->2 3->1\n")
}

func newSolveFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.Flags().StringVar(&flagStrategy, "strategy", "", "")
	cmd.Flags().IntVar(&flagMaxNodes, "max-nodes", 0, "")
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestSolverFromFlags(t *testing.T) {
	sc := config.SolverConfig{Strategy: "bfs", MaxNodes: 50}

	s, err := solverFromFlags(newSolveFlags(t), sc)
	require.NoError(t, err)
	assert.Equal(t, wcore.Solver{Strategy: wcore.StrategyBFS, MaxNodes: 50}, s)

	s, err = solverFromFlags(newSolveFlags(t, "--strategy", "dfs", "--max-nodes", "0"), sc)
	require.NoError(t, err)
	assert.Equal(t, wcore.Solver{Strategy: wcore.StrategyDFS}, s)

	_, err = solverFromFlags(newSolveFlags(t, "--strategy", "astar"), sc)
	assert.Error(t, err)

	_, err = solverFromFlags(newSolveFlags(t, "--max-nodes", "-1"), sc)
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	t.Cleanup(func() { watersort.SetConfigPath("") })
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("solver:\n  strategy: bfs\n"), 0o600))
	cfg, err := loadConfig(good)
	require.NoError(t, err)
	assert.Equal(t, "bfs", cfg.Solver.Strategy)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("solver: [\n"), 0o600))
	_, err = loadConfig(broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), broken)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("solver:\n  strategy: astar\n"), 0o600))
	_, err = loadConfig(invalid)
	assert.Error(t, err)

	_, err = loadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestRecordedRunLine(t *testing.T) {
	line := recordedRunLine(storage.SolverRun{ID: "r1", Strategy: "dfs", Moves: 2, Explored: 3, Solved: true})
	assert.Equal(t, "Recorded run r1: dfs, solved, 2 moves, 3 states", line)

	line = recordedRunLine(storage.SolverRun{ID: "r2", Strategy: "bfs", Explored: 9})
	assert.Contains(t, line, "failed")
}
