package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-watersort/internal/core"
	"github.com/vovakirdan/tui-watersort/internal/registry"
	"github.com/vovakirdan/tui-watersort/internal/storage"
)

// MenuItem is one game mode in the start menu.
type MenuItem struct {
	GameID string
	Title  string
	Best   int // 0 if never scored
	Plays  int
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("74"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuStatStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("108"))
)

// menuOutcome is how the menu was left.
type menuOutcome int

const (
	menuOpen menuOutcome = iota
	menuChose
	menuScoreboard
	menuQuit
)

// MenuModel is the start menu listing the registered game modes.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	outcome   menuOutcome
}

// NewMenuModel builds the menu from the registry. Scores are read from
// store when it is not nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title}
		if store == nil {
			continue
		}
		if stats, err := store.Stats(g.ID); err == nil {
			items[i].Best = stats.Best
			items[i].Plays = stats.Plays
		}
	}

	return MenuModel{items: items, config: cfg, keyMapper: NewKeyMapper()}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height

	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.outcome = menuQuit
			return m, tea.Quit
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			if len(m.items) > 0 {
				m.outcome = menuChose
				return m, tea.Quit
			}
		case MenuActionScoreboard:
			m.outcome = menuScoreboard
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.outcome == menuQuit {
		return ""
	}
	w := m.config.ScreenW

	lines := []string{
		"",
		centerText(menuTitleStyle.Render("  W A T E R   S O R T  "), w),
		"",
		centerText("Pour until every vial holds one color", w),
		"",
	}

	for i, item := range m.items {
		label := "  " + item.Title
		if i == m.cursor {
			label = menuCursorStyle.Render("> " + item.Title)
		}
		if item.Plays > 0 {
			label += menuStatStyle.Render(fmt.Sprintf("  best %d, %d played", item.Best, item.Plays))
		}
		lines = append(lines, centerText(label, w))
	}

	lines = append(lines,
		"",
		centerText(menuHintStyle.Render("Enter: Play  |  Tab: Scores  |  Q: Quit"), w),
		centerText(menuHintStyle.Render(gameKeysHint()), w),
	)
	return strings.Join(lines, "\n") + "\n"
}

// gameKeysHint summarizes the in-game keys that are not obvious.
func gameKeysHint() string {
	hints := []struct {
		action core.Action
		label  string
	}{
		{core.ActionSolve, "solve"},
		{core.ActionUndo, "undo"},
		{core.ActionRestart, "restart"},
		{core.ActionCycle, "sandbox preset"},
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = strings.ToUpper(KeysFor(h.action)[0]) + ": " + h.label
	}
	return "In game  " + strings.Join(parts, "  ")
}

// Selected returns the chosen item, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	if m.outcome != menuChose {
		return nil
	}
	item := m.items[m.cursor]
	return &item
}

// IsQuitting reports whether the user asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.outcome == menuQuit
}

// WantsScoreboard reports whether the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.outcome == menuScoreboard
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText pads text on the left to center it, measuring printable cells.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}

// MenuResult is what RunMenu returns.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the menu until the user picks something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		res.WantsScoreboard = true
	case m.Selected() != nil:
		res.GameID = m.Selected().GameID
	default:
		res.Quit = true
	}
	return res, nil
}
