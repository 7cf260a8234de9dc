package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-watersort/internal/core"
	wcore "github.com/vovakirdan/tui-watersort/internal/games/watersort/core"
	"github.com/vovakirdan/tui-watersort/internal/games/watersort/levels"
)

// WaterSortMode represents the selected game mode.
type WaterSortMode int

const (
	WaterSortModeCampaign WaterSortMode = iota
	WaterSortModeSandbox
)

// GameID returns the registry ID of the mode.
func (m WaterSortMode) GameID() string {
	if m == WaterSortModeSandbox {
		return "watersort_sandbox"
	}
	return "watersort"
}

// WaterSortSelection holds the user's selection from the Water Sort menu.
type WaterSortSelection struct {
	Mode  WaterSortMode
	Level int // 0 = start from beginning, otherwise 1-indexed
}

// levelPickerKeyMap defines the key bindings of the level table.
type levelPickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k levelPickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

func (k levelPickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultLevelPickerKeyMap() levelPickerKeyMap {
	return levelPickerKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// WaterSortModeModel lets users choose the mode and starting level.
type WaterSortModeModel struct {
	cursor        int
	inLevelSelect bool
	levels        []levels.Level
	loadErr       error
	table         table.Model
	help          help.Model
	keys          levelPickerKeyMap
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     WaterSortSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewWaterSortModeModel creates the selector for the levels in levelsDir.
// An empty levelsDir uses the built-in levels.
func NewWaterSortModeModel(levelsDir string, width, height int) WaterSortModeModel {
	m := WaterSortModeModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		keys:      defaultLevelPickerKeyMap(),
		help:      help.New(),
		choosing:  true,
	}
	m.levels, m.loadErr = levels.Open(levelsDir).LoadAll()
	m.table = m.createTable()
	return m
}

// createTable builds the level table.
func (m *WaterSortModeModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Level", Width: 22},
		{Title: "Vials", Width: 6},
		{Title: "Colors", Width: 7},
		{Title: "Difficulty", Width: 10},
	}

	rows := make([]table.Row, 0, len(m.levels))
	for i, lvl := range m.levels {
		colors := "-"
		if st, err := lvl.NewState(); err == nil {
			colors = fmt.Sprintf("%d", wcore.ComputeStats(st).Colors)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			lvl.Name,
			fmt.Sprintf("%d", len(lvl.Vials)),
			colors,
			lvl.Difficulty(),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the model.
func (m WaterSortModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m WaterSortModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inLevelSelect {
			return m.handleLevelSelectKey(msg)
		}
		return m.handleModeSelectKey(m.keyMapper.MapKeyToMenuAction(msg))
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		return m, nil
	}
	return m, nil
}

func (m WaterSortModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 2 { // Campaign, Sandbox, Select Level
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			m.choosing = false
			m.selection = WaterSortSelection{Mode: WaterSortModeCampaign}
			return m, tea.Quit
		case 1:
			m.choosing = false
			m.selection = WaterSortSelection{Mode: WaterSortModeSandbox}
			return m, tea.Quit
		case 2:
			m.inLevelSelect = true
			m.table.GotoTop()
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m WaterSortModeModel) handleLevelSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.inLevelSelect = false
		return m, nil
	case key.Matches(msg, m.keys.Select):
		if len(m.levels) == 0 {
			return m, nil
		}
		m.choosing = false
		m.selection = WaterSortSelection{
			Mode:  WaterSortModeCampaign,
			Level: m.table.Cursor() + 1,
		}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the mode/level selection.
func (m WaterSortModeModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m WaterSortModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("W A T E R   S O R T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		fmt.Sprintf("Campaign (%d levels)", len(m.levels)),
		"Sandbox",
		"Select Level...",
	}

	for i, mode := range modes {
		line := "  " + mode
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + mode)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

func (m WaterSortModeModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		b.WriteString(centerText(fmt.Sprintf("Cannot load levels: %v", m.loadErr), m.width))
	case len(m.levels) == 0:
		b.WriteString(centerText("No levels found", m.width))
	default:
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(menuHintStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m WaterSortModeModel) Selected() *WaterSortSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m WaterSortModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m WaterSortModeModel) WantsBack() bool {
	return m.back
}

// RunWaterSortModeSelector runs the Water Sort mode selection.
// Returns nil when the user backs out or quits.
func RunWaterSortModeSelector(levelsDir string, cfg core.RuntimeConfig) (*WaterSortSelection, error) {
	p := tea.NewProgram(
		NewWaterSortModeModel(levelsDir, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(WaterSortModeModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
