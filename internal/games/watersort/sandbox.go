package watersort

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/vovakirdan/tui-watersort/internal/core"
	wcore "github.com/vovakirdan/tui-watersort/internal/games/watersort/core"
	"github.com/vovakirdan/tui-watersort/internal/games/watersort/levels"
)

// loadPreset replaces the sandbox layout with the n-vial preset.
func (g *Game) loadPreset(n int) {
	vials, ok := levels.Preset(n)
	if !ok {
		n = levels.DefaultPresetSize
		vials, _ = levels.Preset(n)
	}
	g.sandboxSize = n
	g.vials = vials
	g.replay = nil
	g.resetCursor()
}

// stepSandbox handles input in the editor.
func (g *Game) stepSandbox(in core.InputFrame) {
	g.moveCursor(in, false)

	switch {
	case in.Has(core.ActionUp):
		g.segment = core.Clamp(g.segment+1, 0, wcore.Capacity-1)
	case in.Has(core.ActionDown):
		g.segment = core.Clamp(g.segment-1, 0, wcore.Capacity-1)
	}

	switch {
	case in.Has(core.ActionConfirm):
		g.confirmSegment()
	case in.Has(core.ActionBack):
		g.selected = -1
	case in.Has(core.ActionRestart):
		g.loadPreset(g.sandboxSize)
		g.flash("Layout reset", core.ColorGray)
	case in.Has(core.ActionCycle):
		g.loadPreset(levels.NextPresetSize(g.sandboxSize))
		g.checkScreenSize()
		g.flash(fmt.Sprintf("%d vials", g.sandboxSize), core.ColorGray)
	case in.Has(core.ActionSolve):
		g.solveSandbox()
	}
}

// confirmSegment picks a segment on the first press and swaps it with the
// segment under the cursor on the second.
func (g *Game) confirmSegment() {
	if g.selected < 0 {
		g.selected = g.cursor
		g.selSegment = g.segment
		return
	}

	a := [2]int{g.selected, g.selSegment}
	b := [2]int{g.cursor, g.segment}
	g.selected = -1
	if a == b {
		return
	}
	g.vials = swapSegments(g.vials, a, b)
}

// swapSegments exchanges two segments, blank slots included, and trims
// trailing blanks off every vial.
func swapSegments(vials []string, a, b [2]int) []string {
	padded := make([][]byte, len(vials))
	for i, v := range vials {
		buf := []byte(strings.Repeat(string(wcore.Blank), wcore.Capacity))
		copy(buf, v)
		padded[i] = buf
	}

	padded[a[0]][a[1]], padded[b[0]][b[1]] = padded[b[0]][b[1]], padded[a[0]][a[1]]

	out := make([]string, len(padded))
	for i, buf := range padded {
		out[i] = strings.TrimRight(string(buf), string(wcore.Blank))
	}
	return out
}

// solveSandbox validates the layout and runs the solver on it.
func (g *Game) solveSandbox() {
	g.selected = -1
	if err := wcore.ValidateVials(g.vials); err != nil {
		var verr wcore.ValidationError
		if errors.As(err, &verr) {
			g.flash("Not a valid game state! "+verr.Message, core.ColorError)
		} else {
			g.flash("Not a valid game state!", core.ColorError)
		}
		return
	}

	st, err := wcore.NewState(g.vials)
	if err != nil {
		g.flash(err.Error(), core.ColorError)
		return
	}
	g.startReplay(st)
}

// adoptSandboxStep copies the replay step on screen into the editor.
func (g *Game) adoptSandboxStep() {
	g.vials = slices.Clone(g.replay.current())
	g.replay = nil
}
