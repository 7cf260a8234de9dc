package watersort

import "slices"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateReplay       GameStateType = "replay"
	StateLevelCleared GameStateType = "level_cleared"
	StateWin          GameStateType = "win"
	StateNoLevels     GameStateType = "no_levels"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for tests.
type Snapshot struct {
	Tick      uint64
	Mode      string // "campaign" or "sandbox"
	Level     int    // 1-indexed, 0 for sandbox
	LevelID   string
	Vials     []string // configuration on screen
	Cursor    int
	Segment   int
	Selected  int // -1 = none
	Moves     int
	HintsUsed int
	Score     int
	Replay    string // "i/N" while a solution is shown
	Message   string
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.noLevels:
		state = StateNoLevels
	case g.won:
		state = StateWin
	case g.paused:
		state = StatePaused
	case g.levelCleared:
		state = StateLevelCleared
	case g.replay != nil:
		state = StateReplay
	}

	snap := Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Vials:     slices.Clone(g.displayVials()),
		Cursor:    g.cursor,
		Segment:   g.segment,
		Selected:  g.selected,
		Moves:     g.moves,
		HintsUsed: g.hintsUsed,
		Score:     g.score,
		Message:   g.message,
		State:     state,
	}
	if g.mode == ModeCampaign && len(g.allLevels) > 0 {
		snap.Level = g.levelIndex + 1
		snap.LevelID = g.allLevels[g.levelIndex].ID
	}
	if g.replay != nil {
		snap.Replay = g.replay.counter()
	}
	return snap
}
