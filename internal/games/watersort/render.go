package watersort

import (
	"fmt"

	"github.com/vovakirdan/tui-watersort/internal/core"
	wcore "github.com/vovakirdan/tui-watersort/internal/games/watersort/core"
)

const (
	hudHeight  = 3
	vialWidth  = 4 // wall, two liquid columns, wall
	vialPitch  = vialWidth + 2
	rowHeight  = wcore.Capacity + 3 // marker, segments, bottom, number
	rowGap     = 1
	footerRows = 2
	minWidth   = 40
)

// topRowCount returns how many of n vials go on the top row.
func topRowCount(n int) int {
	return (n + 1) / 2
}

// layoutSize returns the minimum screen size for n vials.
func layoutSize(n int) (w, h int) {
	top := topRowCount(n)
	rows := 1
	if n-top > 0 {
		rows = 2
	}
	w = max(top*vialPitch+2, minWidth)
	h = hudHeight + 1 + rows*rowHeight + (rows-1)*rowGap + footerRows
	return w, h
}

// liquidColor maps a label to its screen color. Labels A-L use the liquid
// palette; anything else is drawn white.
func liquidColor(c wcore.Color) core.Color {
	if c >= 'A' && c <= 'L' {
		return core.ColorBlue + core.Color(c-'A')
	}
	return core.ColorWhite
}

// displayVials returns the configuration currently on screen.
func (g *Game) displayVials() []string {
	switch {
	case g.replay != nil:
		return g.replay.current()
	case g.mode == ModeSandbox:
		return g.vials
	case g.state != nil:
		return g.state.Vials()
	}
	return nil
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderVials(dst)
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	w, h := layoutSize(g.vialCount())
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", w, h))
}

// renderHUD draws the title and the score line.
func (g *Game) renderHUD(dst *core.Screen) {
	var title string
	if g.mode == ModeSandbox {
		title = fmt.Sprintf("WATER SORT  Sandbox: %d vials", len(g.vials))
	} else if len(g.allLevels) > 0 {
		lvl := g.allLevels[g.levelIndex]
		title = fmt.Sprintf("WATER SORT  Level %d/%d: %s", g.levelIndex+1, len(g.allLevels), lvl.Name)
	} else {
		title = "WATER SORT"
	}
	dst.DrawTextColored(1, 0, title, core.ColorAccent)

	var info string
	if g.mode == ModeCampaign {
		info = fmt.Sprintf("Score: %d  Moves: %d  Hints: %s", g.score, g.moves, g.hintLabel())
	}
	if g.replay != nil {
		if info != "" {
			info += "  "
		}
		info += fmt.Sprintf("Solution %s", g.replay.counter())
		if m, ok := g.replay.lastMove(); ok {
			info += fmt.Sprintf(" (poured %s)", m)
		}
	}
	dst.DrawText(1, 1, info)

	dst.DrawHLine(0, 2, dst.Width(), '─', core.ColorGray)
}

func (g *Game) hintLabel() string {
	if g.cfg.Gameplay.HintsPerLevel < 0 {
		return fmt.Sprintf("%d/∞", g.hintsUsed)
	}
	return fmt.Sprintf("%d/%d", g.hintsUsed, g.cfg.Gameplay.HintsPerLevel)
}

// vialOrigin returns the top-left corner of vial i.
func (g *Game) vialOrigin(i, n int) (x, y int) {
	top := topRowCount(n)
	row, col, count := 0, i, top
	if i >= top {
		row, col, count = 1, i-top, n-top
	}
	left := (g.screenW - count*vialPitch + 2) / 2
	return left + col*vialPitch, hudHeight + 1 + row*(rowHeight+rowGap)
}

// renderVials draws every vial in two rows.
func (g *Game) renderVials(dst *core.Screen) {
	vials := g.displayVials()
	for i, v := range vials {
		x, y := g.vialOrigin(i, len(vials))
		g.drawVial(dst, i, x, y, v)
	}
}

// drawVial draws one vial with its cursor and selection markers.
func (g *Game) drawVial(dst *core.Screen, i, x, y int, vial string) {
	editing := g.replay == nil
	isCursor := editing && g.cursor == i
	isSelected := editing && g.selected == i

	wall := core.ColorGray
	if isSelected && g.mode == ModeCampaign {
		wall = core.ColorAccent
	}

	if isCursor {
		dst.DrawTextColored(x+1, y, "▼▼", core.ColorHighlight)
	}

	for s := 0; s < wcore.Capacity; s++ {
		row := y + wcore.Capacity - s
		left, right, wc := '│', '│', wall
		if g.mode == ModeSandbox && editing {
			switch {
			case isSelected && g.selSegment == s:
				left, right, wc = '(', ')', core.ColorAccent
			case isCursor && g.segment == s:
				left, right, wc = '[', ']', core.ColorHighlight
			}
		}
		dst.SetColored(x, row, left, wc)
		dst.SetColored(x+3, row, right, wc)

		if s >= len(vial) {
			continue
		}
		if vial[s] == wcore.Blank {
			dst.DrawTextColored(x+1, row, "░░", core.ColorDim)
			continue
		}
		c := liquidColor(wcore.Color(vial[s]))
		dst.SetColored(x+1, row, '█', c)
		dst.SetColored(x+2, row, '█', c)
	}

	dst.DrawTextColored(x, y+wcore.Capacity+1, "└──┘", wall)

	num := fmt.Sprintf("%2d", i+1)
	numColor := core.ColorDim
	if isCursor {
		numColor = core.ColorHighlight
	}
	dst.DrawTextColored(x+1, y+wcore.Capacity+2, num, numColor)
}

// renderFooter draws the status message and the control hints.
func (g *Game) renderFooter(dst *core.Screen) {
	h := dst.Height()
	if g.message != "" {
		dst.DrawTextColored(1, h-2, g.message, g.msgColor)
	}
	dst.DrawTextColored(1, h-1, g.Controls(), core.ColorGray)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen) {
	cx, cy := g.screenW/2, g.screenH/2

	switch {
	case g.noLevels:
		g.drawOverlay(dst, cx, cy, "No levels found", "Check levels.dir in the config")
	case g.paused:
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	case g.won:
		g.drawOverlay(dst, cx, cy, "ALL LEVELS SORTED!", fmt.Sprintf("Final score: %d", g.score), "Press R to restart")
	case g.levelCleared:
		gain := fmt.Sprintf("+%d points in %d moves", g.lastGain, g.moves)
		if g.levelIndex >= len(g.allLevels)-1 {
			g.drawOverlay(dst, cx, cy, "Level sorted!", gain, "Final level complete!")
		} else {
			g.drawOverlay(dst, cx, cy, "Level sorted!", gain, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawTextColored(x, box.Y+1+i, line, core.ColorWhite)
	}
}

// Controls returns the control hints for the current mode.
func (g *Game) Controls() string {
	switch {
	case g.replay != nil:
		return "←/→: Step | R: First step | Enter: Continue from here | Esc: Close"
	case g.mode == ModeSandbox:
		return "Arrows: Move | Enter: Swap | X: Solve | V: Vials | R: Reset | Q: Quit"
	default:
		return "Arrows: Move | Enter: Pick/Pour | U: Undo | X: Hint | R: Restart | Q: Quit"
	}
}
