package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveSolverRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveSolverRun(SolverRun{
		LevelID:  "08-classic-eleven",
		VialsKey: "AABB|BBAA|    |    ",
		Strategy: "dfs",
		Moves:    37,
		Explored: 109,
		Solved:   true,
		Duration: 1500 * time.Millisecond,
	})
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err, "generated ID should be a UUID")

	run, err := store.SolverRunByID(id)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, id, run.ID)
	assert.Equal(t, "08-classic-eleven", run.LevelID)
	assert.Equal(t, "AABB|BBAA|    |    ", run.VialsKey)
	assert.Equal(t, "dfs", run.Strategy)
	assert.Equal(t, 37, run.Moves)
	assert.Equal(t, 109, run.Explored)
	assert.True(t, run.Solved)
	assert.Equal(t, 1500*time.Millisecond, run.Duration)
	assert.False(t, run.CreatedAt.IsZero())
}

func TestSaveSolverRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveSolverRun(SolverRun{ID: "fixed", VialsKey: "AB  |BA  ", Strategy: "bfs"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", id)

	_, err = store.SaveSolverRun(SolverRun{ID: "fixed", VialsKey: "AB  |BA  ", Strategy: "bfs"})
	assert.Error(t, err, "IDs are unique")

	run, err := store.SolverRunByID("fixed")
	require.NoError(t, err)
	assert.False(t, run.Solved)
}

func TestSolverRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	run, err := store.SolverRunByID("missing")
	require.NoError(t, err)
	assert.Nil(t, run)
}

func TestRecentSolverRuns(t *testing.T) {
	store := openTestStore(t)

	for _, strategy := range []string{"dfs", "bfs", "dfs"} {
		_, err := store.SaveSolverRun(SolverRun{VialsKey: "AAAA|    ", Strategy: strategy, Solved: true})
		require.NoError(t, err)
	}

	runs, err := store.RecentSolverRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	// Same-second inserts fall back to insertion order, newest first.
	assert.Equal(t, "dfs", runs[0].Strategy)
	assert.Equal(t, "bfs", runs[1].Strategy)

	runs, err = store.RecentSolverRuns(0)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestSolverRunSummary(t *testing.T) {
	store := openTestStore(t)

	sum, err := store.SolverRunSummary()
	require.NoError(t, err)
	assert.Equal(t, SolverSummary{}, sum)

	runs := []SolverRun{
		{VialsKey: "a", Strategy: "dfs", Explored: 10, Solved: true, Duration: 4 * time.Millisecond},
		{VialsKey: "b", Strategy: "bfs", Explored: 30, Solved: false, Duration: 8 * time.Millisecond},
	}
	for _, r := range runs {
		_, err := store.SaveSolverRun(r)
		require.NoError(t, err)
	}

	sum, err = store.SolverRunSummary()
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Runs)
	assert.Equal(t, 1, sum.Solved)
	assert.InDelta(t, 20.0, sum.AvgExplored, 0.001)
	assert.Equal(t, 6*time.Millisecond, sum.AvgDuration)
}
