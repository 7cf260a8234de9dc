package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-watersort/internal/core"
	"github.com/vovakirdan/tui-watersort/internal/storage"
)

// stubGame finishes with a fixed score once it sees a Confirm action.
type stubGame struct {
	resets  int
	resized [2]int
	state   core.GameState
	last    core.InputFrame
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.last = core.NewInputFrame()
	for a := range in.Actions {
		g.last.Set(a)
	}
	if in.Has(core.ActionConfirm) {
		g.state = core.GameState{Score: 42, GameOver: true}
	}
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func newTestModel(t *testing.T, game *stubGame) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 30, Seed: 1})
	m.Init()
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestModelSavesScoreOnce(t *testing.T) {
	game := &stubGame{}
	m, store := newTestModel(t, game)
	assert.Equal(t, 1, game.resets)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	assert.True(t, m.gameState.GameOver)
	m = update(t, m, TickMsg{})

	scores, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	assert.Len(t, scores, 1)
	assert.Equal(t, 42, scores[0].Score)
}

func TestModelInputFrameClearedAfterTick(t *testing.T) {
	game := &stubGame{}
	m, _ := newTestModel(t, game)

	m = update(t, m, runeKey('x'))
	m = update(t, m, TickMsg{})
	assert.True(t, game.last.Has(core.ActionSolve))

	update(t, m, TickMsg{})
	assert.True(t, game.last.Empty())
}

func TestModelBackOnlyWhenNotPlaying(t *testing.T) {
	game := &stubGame{}
	m, _ := newTestModel(t, game)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu())

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{})
	require.True(t, m.gameState.Paused)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(Model).BackToMenu())
	assert.NotNil(t, cmd)
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, &stubGame{})

	m = update(t, m, runeKey('q'))
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestModelResizeUsesGameResize(t *testing.T) {
	game := &stubGame{}
	m, _ := newTestModel(t, game)

	m = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 8})
	assert.Equal(t, [2]int{30, 8}, game.resized)
	assert.Equal(t, 1, game.resets)
	assert.Equal(t, 30, m.screen.Width())
	assert.Contains(t, m.View(), "stub")
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &stubGame{}
	m, _ := newTestModel(t, game)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	require.True(t, m.gameState.GameOver)

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	assert.Equal(t, 2, game.resets)
	assert.False(t, m.gameState.GameOver)
	assert.False(t, m.scoreSaved)
}
