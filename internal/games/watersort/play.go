package watersort

import (
	"fmt"

	"github.com/vovakirdan/tui-watersort/internal/core"
	wcore "github.com/vovakirdan/tui-watersort/internal/games/watersort/core"
)

// stepCampaign handles input while a level is being played.
func (g *Game) stepCampaign(in core.InputFrame) {
	if g.state == nil {
		return
	}

	g.moveCursor(in, true)

	switch {
	case in.Has(core.ActionConfirm):
		g.confirmVial()
	case in.Has(core.ActionBack):
		g.selected = -1
	case in.Has(core.ActionUndo):
		g.undo()
	case in.Has(core.ActionRestart):
		g.restartLevel()
	case in.Has(core.ActionSolve):
		g.hint()
	}
}

// confirmVial picks the origin on the first press and pours on the second.
func (g *Game) confirmVial() {
	if g.selected < 0 {
		st := g.state.Stack(g.cursor)
		if st.Empty() {
			g.flash("That vial is empty", core.ColorGray)
			return
		}
		g.selected = g.cursor
		return
	}

	if g.selected == g.cursor {
		g.selected = -1
		return
	}

	m := wcore.Move{From: g.selected, To: g.cursor}
	g.selected = -1
	g.pour(m)
}

// pour applies m if it is legal.
func (g *Game) pour(m wcore.Move) bool {
	if !g.state.CanPour(m.From, m.To) {
		g.flash(fmt.Sprintf("Cannot pour %s", m), core.ColorError)
		return false
	}

	g.history = append(g.history, g.state.Clone())
	g.state.Pour(m)
	g.moves++
	g.checkLevelSolved()
	return true
}

// undo restores the configuration before the last pour.
func (g *Game) undo() {
	if len(g.history) == 0 {
		g.flash("Nothing to undo", core.ColorGray)
		return
	}
	last := len(g.history) - 1
	g.state = g.history[last]
	g.history = g.history[:last]
	g.selected = -1
}

// checkLevelSolved awards the level score once every vial is sorted.
func (g *Game) checkLevelSolved() {
	if !g.state.Solved() {
		return
	}
	g.lastGain = g.cfg.Gameplay.LevelScore(g.moves, g.hinted)
	g.score += g.lastGain
	g.levelCleared = true
	g.levelClearTicks = 0
	g.selected = -1
}

// hint runs the solver from the current layout and opens the replay.
func (g *Game) hint() {
	if !g.cfg.Gameplay.HintsAllowed(g.hintsUsed) {
		g.flash("No hints left for this level", core.ColorError)
		return
	}
	if g.startReplay(g.state) {
		g.hintsUsed++
		g.hinted = true
	}
}

// adoptStep continues play from the replay step on screen.
func (g *Game) adoptStep() {
	st, err := wcore.NewState(g.replay.current())
	if err != nil {
		g.flash(err.Error(), core.ColorError)
		return
	}

	if g.replay.index > 0 {
		g.history = append(g.history, g.state)
		g.moves += g.replay.index
	}
	g.state = st
	g.replay = nil
	g.selected = -1
	g.checkLevelSolved()
}
