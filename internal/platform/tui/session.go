package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-watersort/internal/core"
	"github.com/vovakirdan/tui-watersort/internal/registry"
	"github.com/vovakirdan/tui-watersort/internal/storage"
)

// SessionModel is the top-level model of a remote player: the start menu,
// then a game, then the menu again until the player quits.
type SessionModel struct {
	id       string
	user     string
	store    *storage.Store
	config   core.RuntimeConfig
	logger   *log.Logger
	menu     MenuModel
	game     *Model
	started  time.Time
	quitting bool
}

// NewSessionModel creates a session that starts in the menu. A nil logger
// means the default logger.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, user string, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	id := uuid.NewString()
	return SessionModel{
		id:     id,
		user:   user,
		store:  store,
		config: cfg,
		logger: logger.With("session", id, "user", user),
		menu:   NewMenuModel(store, cfg),
	}
}

// SessionID returns the unique ID of this session.
func (m SessionModel) SessionID() string {
	return m.id
}

// InGame reports whether a game is being played.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}
	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.menu.WantsScoreboard():
		// Remote players only get the menu; its entries already show the
		// best scores.
		return m.reopenMenu(), nil
	case m.menu.Selected() != nil:
		return m.startGame(m.menu.Selected().GameID)
	}
	return m, cmd
}

func (m SessionModel) startGame(gameID string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID)
	if err != nil {
		m.logger.Error("cannot create game", "game", gameID, "error", err)
		return m.reopenMenu(), nil
	}

	m.config = m.menu.Config()
	model := NewModel(game, m.store, m.config)
	model.quitOnBack = false
	m.game = &model
	m.started = time.Now()

	m.logger.Info("game started", "game", gameID)
	return m, model.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if model, ok := next.(Model); ok {
		m.game = &model
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if !m.game.BackToMenu() {
		return m, cmd
	}

	m.logger.Info("game ended",
		"game", m.game.game.ID(),
		"score", m.game.gameState.Score,
		"played", time.Since(m.started).Round(time.Second),
	)
	m.game = nil
	m = m.reopenMenu()
	return m, m.menu.Init()
}

// reopenMenu rebuilds the menu so it shows fresh scores.
func (m SessionModel) reopenMenu() SessionModel {
	m.menu = NewMenuModel(m.store, m.config)
	return m
}

func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.game != nil:
		return m.game.View()
	default:
		return m.menu.View()
	}
}
