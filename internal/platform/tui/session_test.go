package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-watersort/internal/core"
	"github.com/vovakirdan/tui-watersort/internal/registry"
	"github.com/vovakirdan/tui-watersort/internal/storage"
)

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(SessionModel)
	require.True(t, ok)
	return out, cmd
}

func TestSessionPlaysAndReturnsToMenu(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	m := NewSessionModel(store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30}, "alice", nil)
	require.NotEmpty(t, m.SessionID())
	assert.False(t, m.InGame())

	// Select the first registered game
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.InGame())
	assert.Contains(t, m.View(), "stub")

	// Finish it and back out
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = sessionUpdate(t, m, TickMsg{})
	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.InGame())
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "W A T E R")

	best, err := store.HighScore("stub")
	require.NoError(t, err)
	assert.Equal(t, 42, best)
}

func TestSessionScoreboardKeepsMenu(t *testing.T) {
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10}, "bob", nil)

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Nil(t, cmd)
	assert.False(t, m.quitting)
	assert.False(t, m.menu.WantsScoreboard())
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10}, "carol", nil)

	m, cmd := sessionUpdate(t, m, runeKey('q'))
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestSessionIDsAreUnique(t *testing.T) {
	a := NewSessionModel(nil, core.RuntimeConfig{}, "x", nil)
	b := NewSessionModel(nil, core.RuntimeConfig{}, "x", nil)
	assert.NotEqual(t, a.SessionID(), b.SessionID())
}
