// Package core provides the water sort puzzle model and its solver.
// This package is UI-agnostic and deterministic.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvariant marks a broken internal invariant, such as a pour that the
// legality check allowed but the stacks could not perform.
var ErrInvariant = errors.New("watersort: internal invariant violated")

// Move pours from one vial into another.
type Move struct {
	From int
	To   int
}

// String returns the move in "from->to" form with 1-based vial numbers.
func (m Move) String() string {
	return fmt.Sprintf("%d->%d", m.From+1, m.To+1)
}

// State is a full puzzle configuration: a fixed-order list of vials.
type State struct {
	stacks []Stack
}

// NewState builds a state from per-vial bottom-to-top strings.
// Surrounding blanks in each vial are trimmed.
func NewState(vials []string) (*State, error) {
	stacks := make([]Stack, len(vials))
	for i, v := range vials {
		st, err := NewStack(strings.Trim(v, string(Blank)))
		if err != nil {
			return nil, fmt.Errorf("vial %d: %w", i+1, err)
		}
		stacks[i] = st
	}
	return &State{stacks: stacks}, nil
}

// Len returns the number of vials.
func (s *State) Len() int {
	return len(s.stacks)
}

// Stack returns a copy of the vial at index i.
func (s *State) Stack(i int) Stack {
	return s.stacks[i]
}

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	stacks := make([]Stack, len(s.stacks))
	copy(stacks, s.stacks)
	return &State{stacks: stacks}
}

// Solved reports whether every vial is solved or empty.
func (s *State) Solved() bool {
	for _, st := range s.stacks {
		if !st.Solved() && !st.Empty() {
			return false
		}
	}
	return true
}

// IsLegalMove reports whether pouring from orig into dest is allowed.
// Two legal-but-useless pours are rejected to prune the search: a
// monocolor vial into an empty one, and any pour out of a vial that is
// three-of-a-kind.
func (s *State) IsLegalMove(orig, dest int) bool {
	if orig == dest || !s.inRange(orig) || !s.inRange(dest) {
		return false
	}
	from, to := s.stacks[orig], s.stacks[dest]
	if to.Full() {
		return false
	}
	if from.Empty() || from.Solved() {
		return false
	}
	if to.Empty() {
		return !from.Monocolor()
	}
	if from.MissingOne() {
		return false
	}
	fromTop, _ := from.Top()
	toTop, _ := to.Top()
	return fromTop == toTop
}

// LegalMoves lists all legal moves, origin-major then destination, both
// ascending. The solver's determinism depends on this order.
func (s *State) LegalMoves() []Move {
	var moves []Move
	for orig := range s.stacks {
		for dest := range s.stacks {
			if s.IsLegalMove(orig, dest) {
				moves = append(moves, Move{From: orig, To: dest})
			}
		}
	}
	return moves
}

// Apply pours one segment at a time while the move stays legal, so the
// whole run of matching segments moves at once. An illegal move leaves the
// state unchanged. Returns the number of segments poured.
func (s *State) Apply(m Move) int {
	poured := 0
	for s.IsLegalMove(m.From, m.To) {
		c, err := s.stacks[m.From].Pop()
		if err != nil {
			panic(fmt.Errorf("%w: pour %v: %w", ErrInvariant, m, err))
		}
		if err := s.stacks[m.To].Push(c); err != nil {
			panic(fmt.Errorf("%w: pour %v: %w", ErrInvariant, m, err))
		}
		poured++
	}
	return poured
}

// CanPour reports whether a player may pour from orig into dest: the
// origin holds liquid, the destination has room, and it is either empty or
// topped with the same color. Unlike IsLegalMove nothing is pruned.
func (s *State) CanPour(orig, dest int) bool {
	if orig == dest || !s.inRange(orig) || !s.inRange(dest) {
		return false
	}
	from, to := s.stacks[orig], s.stacks[dest]
	if from.Empty() || to.Full() {
		return false
	}
	if to.Empty() {
		return true
	}
	fromTop, _ := from.Top()
	toTop, _ := to.Top()
	return fromTop == toTop
}

// Pour moves the top run of one color from m.From into m.To, as much of it
// as fits. It returns the number of segments moved, 0 if CanPour is false.
func (s *State) Pour(m Move) int {
	if !s.CanPour(m.From, m.To) {
		return 0
	}
	from, to := &s.stacks[m.From], &s.stacks[m.To]
	color, _ := from.Top()

	poured := 0
	for !to.Full() {
		if c, ok := from.Top(); !ok || c != color {
			break
		}
		c, err := from.Pop()
		if err != nil {
			panic(fmt.Errorf("%w: pour %v: %w", ErrInvariant, m, err))
		}
		if err := to.Push(c); err != nil {
			panic(fmt.Errorf("%w: pour %v: %w", ErrInvariant, m, err))
		}
		poured++
	}
	return poured
}

// Key returns the canonical key of the state.
func (s *State) Key() string {
	return StacksToKey(s.stacks)
}

// Vials returns the per-vial strings of the state.
func (s *State) Vials() []string {
	vials := make([]string, len(s.stacks))
	for i, st := range s.stacks {
		vials[i] = st.String()
	}
	return vials
}

// ColorCounts returns the number of segments of each color.
func (s *State) ColorCounts() map[Color]int {
	counts := make(map[Color]int)
	for _, st := range s.stacks {
		for _, c := range st.Items() {
			counts[c]++
		}
	}
	return counts
}

// String returns the key form, which doubles as a readable one-line dump.
func (s *State) String() string {
	return s.Key()
}

func (s *State) inRange(i int) bool {
	return i >= 0 && i < len(s.stacks)
}

// StacksToKey joins the fixed-width keys of the stacks with Separator.
func StacksToKey(stacks []Stack) string {
	var sb strings.Builder
	sb.Grow(len(stacks) * (Capacity + 1))
	for i, st := range stacks {
		if i > 0 {
			sb.WriteByte(Separator)
		}
		sb.WriteString(st.Key())
	}
	return sb.String()
}

// KeyToVials splits a state key back into per-vial strings with the
// padding removed.
func KeyToVials(key string) []string {
	if key == "" {
		return []string{}
	}
	parts := strings.Split(key, string(Separator))
	for i, p := range parts {
		parts[i] = strings.TrimRight(p, string(Blank))
	}
	return parts
}
