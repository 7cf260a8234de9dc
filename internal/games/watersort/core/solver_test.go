package core_test

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-watersort/internal/games/watersort/core"
)

var elevenVials = []string{"FHDB", "CEEE", "GDHD", "AGBF", "FGHA", "AGIE", "BCHD", "CIFI", "CABI", "", ""}

func readGolden(t *testing.T, name string) []string {
	t.Helper()
	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.NoError(t, sc.Err())
	return lines
}

// requireValidPath checks that a solution starts at the input, ends solved
// and that each step follows from the previous one by a single legal pour.
func requireValidPath(t *testing.T, initial []string, steps [][]string) {
	t.Helper()
	require.NotEmpty(t, steps)
	require.Equal(t, mustState(initial...).Key(), mustState(steps[0]...).Key())

	for i := 1; i < len(steps); i++ {
		prev := mustState(steps[i-1]...)
		want := mustState(steps[i]...).Key()

		found := false
		for _, m := range prev.LegalMoves() {
			next := prev.Clone()
			next.Apply(m)
			if next.Key() == want {
				found = true
				break
			}
		}
		require.True(t, found, "step %d is not reachable by one pour", i)
	}

	assert.True(t, mustState(steps[len(steps)-1]...).Solved())
}

func TestSolveGoldenTrace(t *testing.T) {
	golden := readGolden(t, "testdata/golden_dfs.txt")

	steps := core.Solve(mustState(elevenVials...))
	require.Len(t, steps, len(golden))

	for i, step := range steps {
		assert.Equal(t, golden[i], mustState(step...).Key(), "step %d", i)
	}
	requireValidPath(t, elevenVials, steps)
}

func TestSolverStatsAndMoves(t *testing.T) {
	sol, err := core.Solver{}.Solve(mustState(elevenVials...))
	require.NoError(t, err)

	assert.Equal(t, 37, sol.Len())
	assert.Len(t, sol.Steps, sol.Len()+1)
	assert.Equal(t, 109, sol.Explored)
	assert.GreaterOrEqual(t, sol.Discovered, sol.Explored)

	for i, m := range sol.Moves {
		s := mustState(sol.Steps[i]...)
		s.Apply(m)
		require.Equal(t, mustState(sol.Steps[i+1]...).Key(), s.Key(), "move %d (%v)", i, m)
	}
}

func TestSolveAlreadySolved(t *testing.T) {
	steps := core.Solve(mustState("AAAA", "", "BBBB"))
	require.Len(t, steps, 1)
	assert.Equal(t, []string{"AAAA", "", "BBBB"}, steps[0])
}

func TestSolveUnsolvable(t *testing.T) {
	tests := []struct {
		name  string
		vials []string
	}{
		{"no legal moves", []string{"AB", "BA"}},
		{"never full", []string{"A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps := core.Solve(mustState(tt.vials...))
			assert.NotNil(t, steps)
			assert.Empty(t, steps)

			_, err := core.Solver{}.Solve(mustState(tt.vials...))
			assert.ErrorIs(t, err, core.ErrNoSolution)
		})
	}
}

func TestSolveDoesNotMutateInput(t *testing.T) {
	s := mustState("ABAB", "BABA", "", "")
	before := s.Key()
	core.Solve(s)
	assert.Equal(t, before, s.Key())
}

func TestSolveSmallPuzzles(t *testing.T) {
	tests := []struct {
		name  string
		vials []string
		dfs   int
		bfs   int
	}{
		{"two colors", []string{"ABAB", "BABA", "", ""}, 13, 7},
		{"four colors", []string{"ABCD", "DCBA", "BADC", "CDAB", "", ""}, 21, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dfs, err := core.Solver{Strategy: core.StrategyDFS}.Solve(mustState(tt.vials...))
			require.NoError(t, err)
			assert.Equal(t, tt.dfs, dfs.Len())
			requireValidPath(t, tt.vials, dfs.Steps)

			bfs, err := core.Solver{Strategy: core.StrategyBFS}.Solve(mustState(tt.vials...))
			require.NoError(t, err)
			assert.Equal(t, tt.bfs, bfs.Len())
			assert.LessOrEqual(t, bfs.Len(), dfs.Len())
			requireValidPath(t, tt.vials, bfs.Steps)
		})
	}
}

func TestSolverBudget(t *testing.T) {
	sol, err := core.Solver{MaxNodes: 50}.Solve(mustState(elevenVials...))
	require.ErrorIs(t, err, core.ErrBudgetExceeded)
	assert.NotErrorIs(t, err, core.ErrNoSolution)
	assert.Equal(t, 50, sol.Explored)
	assert.Empty(t, sol.Steps)

	_, err = core.Solver{MaxNodes: 109}.Solve(mustState(elevenVials...))
	assert.NoError(t, err, "budget equal to the explored count is enough")
}

func TestSolverUnknownStrategy(t *testing.T) {
	_, err := core.Solver{Strategy: "astar"}.Solve(mustState("AAAA"))
	assert.Error(t, err)
}

func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]core.Strategy{"": core.StrategyDFS, "dfs": core.StrategyDFS, "bfs": core.StrategyBFS} {
		got, err := core.ParseStrategy(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := core.ParseStrategy("DFS")
	assert.Error(t, err)
}

func TestSolveConcurrent(t *testing.T) {
	golden := readGolden(t, "testdata/golden_dfs.txt")

	var wg sync.WaitGroup
	results := make([][][]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = core.Solve(mustState(elevenVials...))
		}(i)
	}
	wg.Wait()

	for _, steps := range results {
		require.Len(t, steps, len(golden))
		last := mustState(steps[len(steps)-1]...).Key()
		assert.Equal(t, strings.TrimSpace(golden[len(golden)-1]), strings.TrimSpace(last))
	}
}
