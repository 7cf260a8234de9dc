package tui

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-watersort/internal/core"
)

// quitKeys end the program from any screen.
var quitKeys = []string{"ctrl+c", "q"}

// gameBindings lists the keys of every puzzle action.
var gameBindings = map[core.Action][]string{
	core.ActionUp:      {"up", "w", "k"},
	core.ActionDown:    {"down", "s", "j"},
	core.ActionLeft:    {"left", "a", "h"},
	core.ActionRight:   {"right", "d", "l"},
	core.ActionConfirm: {"enter", " "},
	core.ActionBack:    {"esc", "b"},
	core.ActionPause:   {"p"},
	core.ActionRestart: {"r"},
	core.ActionSolve:   {"x"},
	core.ActionUndo:    {"u", "backspace"},
	core.ActionCycle:   {"v"},
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

var menuBindings = map[MenuAction][]string{
	MenuActionUp:         {"up", "w", "k"},
	MenuActionDown:       {"down", "s", "j"},
	MenuActionSelect:     {"enter", " "},
	MenuActionBack:       {"esc", "b"},
	MenuActionScoreboard: {"tab"},
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{
		game: make(map[string]core.Action),
		menu: make(map[string]MenuAction),
	}
	for action, keys := range gameBindings {
		for _, k := range keys {
			km.game[k] = action
		}
	}
	for action, keys := range menuBindings {
		for _, k := range keys {
			km.menu[k] = action
		}
	}
	return km
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()
	if slices.Contains(quitKeys, key) {
		return core.ActionQuit, true
	}
	return km.game[key], false
}

// MapKeyToFrame sets the action of msg on frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()
	if slices.Contains(quitKeys, key) {
		return MenuActionQuit
	}
	return km.menu[key]
}

// KeysFor returns the keys bound to a game action, primary key first.
func KeysFor(action core.Action) []string {
	return slices.Clone(gameBindings[action])
}
