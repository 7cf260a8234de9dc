package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-watersort/internal/registry"
	"github.com/vovakirdan/tui-watersort/internal/storage"
)

const scoreboardRows = 100

// scoreboardView selects what the table shows.
type scoreboardView int

const (
	viewScores scoreboardView = iota
	viewRuns
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Runs     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Runs, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextGame, k.PrevGame}, {k.Runs, k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		Runs:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scores/solver runs")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("24")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// ScoreboardModel shows the high scores of every scored game and the
// history of recorded solver runs.
type ScoreboardModel struct {
	games   []registry.GameInfo
	game    int
	store   *storage.Store
	view    scoreboardView
	summary string
	empty   string
	table   table.Model
	help    help.Model
	keys    ScoreboardKeyMap
	width   int
	height  int
	back    bool
	quit    bool
}

// NewScoreboardModel creates a scoreboard over store, which may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	var games []registry.GameInfo
	for _, g := range registry.List() {
		// The sandbox never records scores
		if !strings.HasSuffix(g.ID, "_sandbox") {
			games = append(games, g)
		}
	}

	m := ScoreboardModel{
		games:  games,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// reload rebuilds the table for the current view and game.
func (m *ScoreboardModel) reload() {
	var columns []table.Column
	var rows []table.Row

	switch m.view {
	case viewRuns:
		columns, rows = m.runRows()
	default:
		columns, rows = m.scoreRows()
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
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
	m.table = t
}

func (m *ScoreboardModel) scoreRows() ([]table.Column, []table.Row) {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}
	m.summary = ""
	m.empty = "No scores recorded yet.\nFinish a campaign to set a high score!"

	if m.store == nil || len(m.games) == 0 {
		return columns, nil
	}
	gameID := m.games[m.game].ID

	if stats, err := m.store.Stats(gameID); err == nil && stats.Plays > 0 {
		m.summary = fmt.Sprintf("Best %d  Average %.0f  Campaigns %d  Last played %s",
			stats.Best, stats.Average, stats.Plays, stats.LastPlayed.Format("Jan 02 15:04"))
	}

	scores, err := m.store.TopScores(gameID, scoreboardRows)
	if err != nil {
		m.empty = fmt.Sprintf("Cannot load scores: %v", err)
		return columns, nil
	}
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return columns, rows
}

func (m *ScoreboardModel) runRows() ([]table.Column, []table.Row) {
	columns := []table.Column{
		{Title: "Level", Width: 20},
		{Title: "Strategy", Width: 8},
		{Title: "Result", Width: 8},
		{Title: "Moves", Width: 6},
		{Title: "States", Width: 9},
		{Title: "Time", Width: 9},
	}
	m.summary = ""
	m.empty = "No solver runs recorded yet.\nTry: watersort solve --record"

	if m.store == nil {
		return columns, nil
	}

	if sum, err := m.store.SolverRunSummary(); err == nil && sum.Runs > 0 {
		m.summary = fmt.Sprintf("%d runs  %d solved  %.0f states on average  %s on average",
			sum.Runs, sum.Solved, sum.AvgExplored, sum.AvgDuration.Round(time.Millisecond))
	}

	runs, err := m.store.RecentSolverRuns(scoreboardRows)
	if err != nil {
		m.empty = fmt.Sprintf("Cannot load solver runs: %v", err)
		return columns, nil
	}
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		level := r.LevelID
		if level == "" {
			level = "(custom)"
		}
		result := "solved"
		if !r.Solved {
			result = "failed"
		}
		rows[i] = table.Row{
			level,
			r.Strategy,
			result,
			fmt.Sprintf("%d", r.Moves),
			fmt.Sprintf("%d", r.Explored),
			r.Duration.String(),
		}
	}
	return columns, rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Runs):
			if m.view == viewRuns {
				m.view = viewScores
			} else {
				m.view = viewRuns
			}
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.NextGame), key.Matches(msg, m.keys.PrevGame):
			if m.view != viewScores || len(m.games) < 2 {
				return m, nil
			}
			step := 1
			if key.Matches(msg, m.keys.PrevGame) {
				step = len(m.games) - 1
			}
			m.game = (m.game + step) % len(m.games)
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quit || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render(m.title()), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	body := boardEmptyStyle.Render(m.empty)
	if len(m.table.Rows()) > 0 {
		body = m.table.View()
	}
	b.WriteString(centerText(boardFrameStyle.Render(body), m.width))
	b.WriteString("\n")

	if m.summary != "" {
		b.WriteString(centerText(menuStatStyle.Render(m.summary), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) title() string {
	if m.view == viewRuns {
		return "SOLVER RUNS"
	}
	if len(m.games) == 0 {
		return "HIGH SCORES"
	}
	return "HIGH SCORES - " + m.games[m.game].Title
}

// tabs renders the game tabs of the scores view, or the view switch hint.
func (m ScoreboardModel) tabs() string {
	if m.view == viewRuns || len(m.games) == 0 {
		return boardTabStyle.Render("s: back to scores")
	}
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.game {
			parts[i] = boardActiveTab.Render(g.Title)
		} else {
			parts[i] = boardTabStyle.Render(g.Title)
		}
	}
	return strings.Join(parts, " ")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quit
}

// RunScoreboard runs the scoreboard and reports whether the user went back
// to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
