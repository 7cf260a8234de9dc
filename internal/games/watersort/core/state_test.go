package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-watersort/internal/games/watersort/core"
)

func mustState(vials ...string) *core.State {
	s, err := core.NewState(vials)
	if err != nil {
		panic(err)
	}
	return s
}

func TestIsLegalMove(t *testing.T) {
	tests := []struct {
		name  string
		vials []string
		from  int
		to    int
		want  bool
	}{
		{"same vial", []string{"AB", ""}, 0, 0, false},
		{"out of range", []string{"AB", ""}, 0, 5, false},
		{"negative index", []string{"AB", ""}, -1, 1, false},
		{"destination full", []string{"AB", "BBBA"}, 0, 1, false},
		{"origin empty", []string{"", "A"}, 0, 1, false},
		{"origin solved", []string{"AAAA", "A"}, 0, 1, false},
		{"mixed into empty", []string{"AB", ""}, 0, 1, true},
		{"monocolor into empty", []string{"AA", ""}, 0, 1, false},
		{"missing one onto match", []string{"AAA", "BA"}, 0, 1, false},
		{"matching tops", []string{"AB", "CB"}, 0, 1, true},
		{"mismatched tops", []string{"AB", "BA"}, 0, 1, false},
		{"monocolor onto match", []string{"AA", "BA"}, 0, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustState(tt.vials...)
			assert.Equal(t, tt.want, s.IsLegalMove(tt.from, tt.to))
		})
	}
}

func TestLegalMovesOrder(t *testing.T) {
	s := mustState("AB", "CB", "", "DB")
	moves := s.LegalMoves()

	want := []core.Move{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 0, To: 3},
		{From: 1, To: 0}, {From: 1, To: 2}, {From: 1, To: 3},
		{From: 3, To: 0}, {From: 3, To: 1}, {From: 3, To: 2},
	}
	assert.Equal(t, want, moves)
}

func TestApplyPoursWholeRun(t *testing.T) {
	s := mustState("ABBB", "", "CB")

	n := s.Apply(core.Move{From: 0, To: 2})
	assert.Equal(t, 2, n, "pour stops when destination is full")
	assert.Equal(t, []string{"AB", "", "CBBB"}, s.Vials())

	s = mustState("ABBB", "")
	n = s.Apply(core.Move{From: 0, To: 1})
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"A", "BBB"}, s.Vials())
}

func TestApplyIllegalIsNoOp(t *testing.T) {
	s := mustState("AB", "BA")
	before := s.Key()

	n := s.Apply(core.Move{From: 0, To: 1})
	assert.Zero(t, n)
	assert.Equal(t, before, s.Key())
}

func TestApplyConservesColors(t *testing.T) {
	s := mustState("FHDB", "CEEE", "GDHD", "AGBF", "FGHA", "AGIE", "BCHD", "CIFI", "CABI", "", "")
	want := s.ColorCounts()

	for range 20 {
		moves := s.LegalMoves()
		if len(moves) == 0 {
			break
		}
		s.Apply(moves[len(moves)-1])
		require.Equal(t, want, s.ColorCounts())
	}
}

func TestNoMonocolorIntoEmpty(t *testing.T) {
	s := mustState("AA", "B", "", "CCC")
	for _, m := range s.LegalMoves() {
		to := s.Stack(m.To)
		from := s.Stack(m.From)
		assert.False(t, to.Empty() && from.Monocolor(), "move %v pours a monocolor vial into an empty one", m)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := mustState("AB", "")
	c := s.Clone()
	c.Apply(core.Move{From: 0, To: 1})

	assert.Equal(t, []string{"AB", ""}, s.Vials())
	assert.Equal(t, []string{"A", "B"}, c.Vials())
}

func TestStateSolved(t *testing.T) {
	assert.True(t, mustState("AAAA", "", "BBBB").Solved())
	assert.True(t, mustState().Solved())
	assert.False(t, mustState("AAA", "A").Solved())
}

func TestKeyRoundTrip(t *testing.T) {
	vials := []string{"FHDB", "CEEE", "A", "", "AB"}
	s := mustState(vials...)

	assert.Equal(t, "FHDB|CEEE|A   |    |AB  ", s.Key())
	assert.Equal(t, vials, core.KeyToVials(s.Key()))

	again, err := core.NewState(core.KeyToVials(s.Key()))
	require.NoError(t, err)
	assert.Equal(t, s.Key(), again.Key())
}

func TestKeyToVialsEmpty(t *testing.T) {
	assert.Empty(t, core.KeyToVials(""))
	assert.Equal(t, []string{""}, core.KeyToVials("    "))
}

func TestNewStateTrimsBlanks(t *testing.T) {
	s, err := core.NewState([]string{" AB ", "    "})
	require.NoError(t, err)
	assert.Equal(t, []string{"AB", ""}, s.Vials())
}

func TestNewStateReportsVial(t *testing.T) {
	_, err := core.NewState([]string{"AB", "ABCDE"})
	require.ErrorIs(t, err, core.ErrStackFull)
	assert.Contains(t, err.Error(), "vial 2")
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "1->3", core.Move{From: 0, To: 2}.String())
}

func TestCanPour(t *testing.T) {
	tests := []struct {
		name  string
		vials []string
		from  int
		to    int
		want  bool
	}{
		{"same vial", []string{"AB", ""}, 0, 0, false},
		{"out of range", []string{"AB", ""}, 0, 5, false},
		{"origin empty", []string{"", "A"}, 0, 1, false},
		{"destination full", []string{"AB", "BBBA"}, 0, 1, false},
		{"mismatched tops", []string{"AB", "BA"}, 0, 1, false},
		{"monocolor into empty", []string{"AA", ""}, 0, 1, true},
		{"missing one onto match", []string{"AAA", "BA"}, 0, 1, true},
		{"full vial into empty", []string{"AAAA", ""}, 0, 1, true},
		{"matching tops", []string{"AB", "CB"}, 0, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustState(tt.vials...).CanPour(tt.from, tt.to))
		})
	}
}

func TestPourMovesWhatFits(t *testing.T) {
	s := mustState("AAA", "BA", "BBB", "")

	assert.Equal(t, 2, s.Pour(core.Move{From: 0, To: 1}))
	assert.Equal(t, []string{"A", "BAAA", "BBB", ""}, s.Vials())

	assert.Equal(t, 3, s.Pour(core.Move{From: 2, To: 3}))
	assert.Equal(t, []string{"A", "BAAA", "", "BBB"}, s.Vials())

	assert.Equal(t, 0, s.Pour(core.Move{From: 3, To: 1}))
	assert.Equal(t, []string{"A", "BAAA", "", "BBB"}, s.Vials())
}

func TestPourFinishesVial(t *testing.T) {
	s := mustState("AAA", "A")
	require.False(t, s.IsLegalMove(0, 1), "the solver prunes this move")

	assert.Equal(t, 3, s.Pour(core.Move{From: 0, To: 1}))
	assert.True(t, s.Solved())
}
