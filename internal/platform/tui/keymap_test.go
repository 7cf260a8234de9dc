package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-watersort/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runeKey('k'), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{runeKey('j'), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey('h'), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runeKey('d'), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{runeKey('x'), core.ActionSolve},
		{runeKey('u'), core.ActionUndo},
		{runeKey('v'), core.ActionCycle},
		{runeKey('r'), core.ActionRestart},
		{runeKey('p'), core.ActionPause},
		{runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			assert.Equal(t, tt.action, action)
			assert.False(t, quit)
		})
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		action, quit := km.MapKey(msg)
		assert.Equal(t, core.ActionQuit, action)
		assert.True(t, quit)
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	assert.False(t, km.MapKeyToFrame(runeKey('x'), &frame))
	assert.True(t, frame.Has(core.ActionSolve))

	assert.False(t, km.MapKeyToFrame(runeKey('z'), &frame))
	assert.True(t, km.MapKeyToFrame(runeKey('q'), &frame))
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(runeKey('k')))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runeKey('q')))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey('x')))
}

func TestKeysFor(t *testing.T) {
	assert.Equal(t, []string{"x"}, KeysFor(core.ActionSolve))
	assert.Equal(t, "u", KeysFor(core.ActionUndo)[0])
	assert.Empty(t, KeysFor(core.ActionNone))

	keys := KeysFor(core.ActionSolve)
	keys[0] = "z"
	assert.Equal(t, []string{"x"}, KeysFor(core.ActionSolve))
}

func TestEveryBoundKeyMaps(t *testing.T) {
	km := NewKeyMapper()
	for action, keys := range gameBindings {
		for _, k := range keys {
			msg := keyMsgFor(k)
			got, quit := km.MapKey(msg)
			assert.False(t, quit, k)
			assert.Equal(t, action, got, k)
		}
	}
}

// keyMsgFor builds the message whose String() is k.
func keyMsgFor(k string) tea.KeyMsg {
	switch k {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return runeKey([]rune(k)[0])
}
