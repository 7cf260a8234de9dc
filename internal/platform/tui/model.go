package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-watersort/internal/core"
	"github.com/vovakirdan/tui-watersort/internal/registry"
	"github.com/vovakirdan/tui-watersort/internal/storage"
)

// resizer is implemented by games that can adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// exitReason says why a game model stopped.
type exitReason int

const (
	running exitReason = iota
	exitQuit
	exitMenu
)

// Model runs one game: it feeds key presses into an InputFrame, steps the
// game on every tick and records the score when the game ends.
type Model struct {
	game       registry.Game
	store      *storage.Store
	config     core.RuntimeConfig
	screen     *core.Screen
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	scoreSaved bool
	exit       exitReason
	quitOnBack bool // false when embedded in a session
}

// NewModel creates a model for game. A zero seed is replaced by the clock
// and a missing tick rate by the default one.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		store:      store,
		config:     cfg,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		quitOnBack: true,
	}
}

// Init resets the game and starts ticking. gameState is filled on the
// first tick.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.exit != running {
			return m, nil
		}
		m.step()
		return m, tickCmd(m.config.TickRate)

	case tea.KeyMsg:
		return m.onKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	}
	return m, nil
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			log.Warn("screenshot failed", "error", err)
		} else {
			log.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.exit = exitQuit
		return m, tea.Quit
	}

	// Back only leaves a paused or finished game; otherwise the game
	// handles it on the next tick.
	idle := m.gameState.Paused || m.gameState.GameOver
	if idle && m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack {
		m.exit = exitMenu
		if m.quitOnBack {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) resize(w, h int) {
	m.config.ScreenW, m.config.ScreenH = w, h
	m.screen.Resize(w, h)

	switch r, ok := m.game.(resizer); {
	case ok:
		r.Resize(w, h)
	case !m.gameState.GameOver:
		// Layout depends on the size, so start over.
		m.game.Reset(m.config)
	}
}

// step advances the game by one tick and consumes the pending input.
func (m *Model) step() {
	defer m.inputFrame.Clear()

	if m.gameState.GameOver && m.inputFrame.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		return
	}

	m.gameState = m.game.Step(m.inputFrame).State
	if m.gameState.GameOver && !m.scoreSaved {
		m.recordScore()
	}
}

// recordScore stores the final score once per finished game. Games that
// end without points are not recorded.
func (m *Model) recordScore() {
	m.scoreSaved = true
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		log.Warn("score not saved", "game", m.game.ID(), "score", m.gameState.Score, "error", err)
	}
}

// saveScreenshot writes the current frame as plain text under
// ~/.watersort/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".watersort", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func (m Model) View() string {
	if m.exit == exitQuit {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.exit == exitQuit
}

// BackToMenu reports whether the player left the game for the menu.
func (m Model) BackToMenu() bool {
	return m.exit == exitMenu
}

// Run plays game in its own full-screen program. It reports whether the
// player backed out to the menu instead of quitting.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	final, err := tea.NewProgram(NewModel(game, store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
