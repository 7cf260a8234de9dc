// Package watersort provides the Water Sort puzzle as arcade games: a
// campaign over level files and a sandbox editor with the automatic solver.
package watersort

import (
	"github.com/vovakirdan/tui-watersort/internal/config"
	"github.com/vovakirdan/tui-watersort/internal/core"
	wcore "github.com/vovakirdan/tui-watersort/internal/games/watersort/core"
	"github.com/vovakirdan/tui-watersort/internal/games/watersort/levels"
	"github.com/vovakirdan/tui-watersort/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeSandbox  Mode = "sandbox"
)

const (
	// levelClearDelay is the number of ticks the cleared banner stays up.
	levelClearDelay = 120
	// messageTicks is how long a status message is shown.
	messageTicks = 180
	// interactiveMaxNodes bounds in-game solves when the config sets no
	// limit, so an unsolvable sandbox layout cannot freeze the UI.
	interactiveMaxNodes = 500_000
)

// Game implements the Water Sort puzzle.
type Game struct {
	mode Mode
	cfg  config.WaterSortConfig
	tick uint64

	// Campaign
	allLevels  []levels.Level
	levelIndex int
	state      *wcore.State
	history    []*wcore.State
	moves      int
	hintsUsed  int
	hinted     bool
	score      int
	lastGain   int // points awarded for the last cleared level

	// Sandbox
	vials       []string
	sandboxSize int
	segment     int // cursor segment, 0 = bottom
	selSegment  int

	// Shared
	cursor   int
	selected int // selected vial, -1 = none
	replay   *replay
	message  string
	msgColor core.Color
	msgTicks int

	screenW int
	screenH int

	levelCleared    bool
	levelClearTicks int
	won             bool
	noLevels        bool
	paused          bool
	tooSmall        bool
}

// Package-level variables for config
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
)

// SetConfigPath sets the config file path. Empty uses the default search.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level (1-indexed). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates a new campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewSandbox creates a new sandbox editor.
func NewSandbox() *Game {
	return &Game{mode: ModeSandbox}
}

func init() {
	registry.Register("watersort", func() registry.Game {
		return New()
	})
	registry.Register("watersort_sandbox", func() registry.Game {
		return NewSandbox()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSandbox {
		return "watersort_sandbox"
	}
	return "watersort"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSandbox {
		return "Water Sort (Sandbox)"
	}
	return "Water Sort"
}

// LoadConfig resolves the active configuration from the config path and
// difficulty preset set on the package.
func LoadConfig() config.WaterSortConfig {
	cfg, err := config.LoadWaterSort(configPath)
	if err != nil {
		cfg = config.DefaultWaterSortConfig()
	}
	if preset, err := config.ParseDifficulty(difficultyPreset); err == nil {
		config.ApplyWaterSortPreset(&cfg, preset)
	}
	return cfg
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.cfg = LoadConfig()
	g.tick = 0
	g.score = 0
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.levelCleared = false
	g.levelClearTicks = 0
	g.won = false
	g.noLevels = false
	g.paused = false
	g.clearMessage()

	if g.mode == ModeSandbox {
		g.sandboxSize = g.cfg.Gameplay.SandboxVials
		g.loadPreset(g.sandboxSize)
	} else {
		g.loadCampaign()
	}

	g.checkScreenSize()
}

// Resize updates the screen size without restarting the puzzle.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// loadCampaign reads the level set and applies the selected start level.
func (g *Game) loadCampaign() {
	all, err := levels.Open(g.cfg.Levels.Dir).LoadAll()
	if err != nil || len(all) == 0 {
		g.allLevels = nil
		g.state = nil
		g.noLevels = true
		return
	}
	g.allLevels = all

	if selectedStartLevel > 0 && selectedStartLevel <= len(all) {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIndex = 0
	}

	g.loadLevel()
}

// loadLevel sets up the current level from its file.
func (g *Game) loadLevel() {
	g.history = nil
	g.moves = 0
	g.hintsUsed = 0
	g.hinted = false
	g.replay = nil
	g.resetCursor()

	lvl := g.allLevels[g.levelIndex]
	st, err := lvl.NewState()
	if err != nil {
		// LoadAll already validated the level.
		g.noLevels = true
		return
	}
	g.state = st
}

// restartLevel puts the current level back to its starting layout. Hints
// already used stay counted.
func (g *Game) restartLevel() {
	used, hinted := g.hintsUsed, g.hinted
	g.loadLevel()
	g.hintsUsed, g.hinted = used, hinted
	g.flash("Level restarted", core.ColorGray)
}

func (g *Game) resetCursor() {
	g.cursor = 0
	g.selected = -1
	g.segment = 0
	g.selSegment = 0
}

// vialCount returns the number of vials on screen.
func (g *Game) vialCount() int {
	if g.mode == ModeSandbox {
		return len(g.vials)
	}
	if g.state == nil {
		return 0
	}
	return g.state.Len()
}

// checkScreenSize checks if the screen can hold both vial rows.
func (g *Game) checkScreenSize() {
	minW, minH := layoutSize(g.vialCount())
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.msgTicks > 0 {
		g.msgTicks--
		if g.msgTicks == 0 {
			g.message = ""
		}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart after the campaign is over is handled by the platform
	if g.won || g.noLevels {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDelay || in.Has(core.ActionConfirm) {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	switch {
	case g.replay != nil:
		g.stepReplay(in)
	case g.mode == ModeSandbox:
		g.stepSandbox(in)
	default:
		g.stepCampaign(in)
	}

	return core.StepResult{State: g.State()}
}

// advanceLevel moves to the next level or finishes the campaign.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= len(g.allLevels)-1 {
		g.won = true
		return
	}

	g.levelIndex++
	g.loadLevel()
	g.checkScreenSize()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.won || g.noLevels,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

func (g *Game) flash(msg string, c core.Color) {
	g.message = msg
	g.msgColor = c
	g.msgTicks = messageTicks
}

func (g *Game) clearMessage() {
	g.message = ""
	g.msgTicks = 0
}

// moveCursor moves the vial cursor. Left and right walk the vials in
// order; up and down jump between the two rows.
func (g *Game) moveCursor(in core.InputFrame, rows bool) {
	n := g.vialCount()
	if n == 0 {
		return
	}
	top := topRowCount(n)

	switch {
	case in.Has(core.ActionLeft):
		g.cursor = core.Wrap(g.cursor-1, n)
	case in.Has(core.ActionRight):
		g.cursor = core.Wrap(g.cursor+1, n)
	case rows && in.Has(core.ActionUp):
		if g.cursor >= top {
			g.cursor -= top
		}
	case rows && in.Has(core.ActionDown):
		if g.cursor < top {
			g.cursor = min(g.cursor+top, n-1)
		}
	}
}
