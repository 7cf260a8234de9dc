package watersort

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-watersort/internal/core"
	wcore "github.com/vovakirdan/tui-watersort/internal/games/watersort/core"
)

// replay walks through a computed solution one configuration at a time.
type replay struct {
	steps    [][]string
	moves    []wcore.Move
	index    int
	explored int
}

func (r *replay) current() []string {
	return r.steps[r.index]
}

// counter returns the 1-based "i/N" position.
func (r *replay) counter() string {
	return fmt.Sprintf("%d/%d", r.index+1, len(r.steps))
}

// lastMove returns the pour that led to the current step.
func (r *replay) lastMove() (wcore.Move, bool) {
	if r.index == 0 {
		return wcore.Move{}, false
	}
	return r.moves[r.index-1], true
}

// solver builds the solver from the active config.
func (g *Game) solver() wcore.Solver {
	strategy, err := wcore.ParseStrategy(g.cfg.Solver.Strategy)
	if err != nil {
		strategy = wcore.StrategyDFS
	}
	maxNodes := g.cfg.Solver.MaxNodes
	if maxNodes == 0 {
		maxNodes = interactiveMaxNodes
	}
	return wcore.Solver{Strategy: strategy, MaxNodes: maxNodes}
}

// startReplay solves from st and enters the replay on success.
func (g *Game) startReplay(st *wcore.State) bool {
	sol, err := g.solver().Solve(st)
	switch {
	case errors.Is(err, wcore.ErrNoSolution):
		g.flash("Cannot find solution!", core.ColorError)
		return false
	case errors.Is(err, wcore.ErrBudgetExceeded):
		g.flash(fmt.Sprintf("Gave up after %d states", sol.Explored), core.ColorError)
		return false
	case err != nil:
		g.flash(err.Error(), core.ColorError)
		return false
	}

	g.replay = &replay{
		steps:    sol.Steps,
		moves:    sol.Moves,
		explored: sol.Explored,
	}
	g.selected = -1
	g.flash(fmt.Sprintf("Solved in %d moves", sol.Len()), core.ColorSuccess)
	return true
}

// stepReplay handles input while a solution is on screen.
func (g *Game) stepReplay(in core.InputFrame) {
	r := g.replay
	switch {
	case in.Has(core.ActionRight):
		if r.index < len(r.steps)-1 {
			r.index++
		}
	case in.Has(core.ActionLeft):
		if r.index > 0 {
			r.index--
		}
	case in.Has(core.ActionRestart):
		r.index = 0
	case in.Has(core.ActionBack):
		g.replay = nil
	case in.Has(core.ActionConfirm):
		if g.mode == ModeSandbox {
			g.adoptSandboxStep()
		} else {
			g.adoptStep()
		}
	}
}
