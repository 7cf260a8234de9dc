package core

import (
	"errors"
	"fmt"
	"strings"
)

// Capacity is the number of segments a vial holds.
const Capacity = 4

var (
	// ErrStackFull is returned when pushing onto a full stack.
	ErrStackFull = errors.New("watersort: stack is full")
	// ErrStackEmpty is returned when popping from an empty stack.
	ErrStackEmpty = errors.New("watersort: stack is empty")
)

// Stack is the contents of one vial. Index 0 is the bottom segment.
// Segments live in a fixed array so copying a Stack copies its contents.
type Stack struct {
	items [Capacity]Color
	n     int
}

// NewStack builds a stack from a bottom-to-top string of color labels.
func NewStack(s string) (Stack, error) {
	var st Stack
	for i, r := range s {
		c, ok := ParseColor(r)
		if !ok {
			return Stack{}, fmt.Errorf("watersort: invalid color %q at position %d in %q", r, i, s)
		}
		if err := st.Push(c); err != nil {
			return Stack{}, fmt.Errorf("watersort: vial %q: %w", s, err)
		}
	}
	return st, nil
}

// Push adds a segment on top.
func (s *Stack) Push(c Color) error {
	if s.n == Capacity {
		return ErrStackFull
	}
	s.items[s.n] = c
	s.n++
	return nil
}

// Pop removes and returns the top segment.
func (s *Stack) Pop() (Color, error) {
	if s.n == 0 {
		return 0, ErrStackEmpty
	}
	s.n--
	c := s.items[s.n]
	s.items[s.n] = 0
	return c, nil
}

// Top returns the top segment without removing it.
func (s Stack) Top() (Color, bool) {
	if s.n == 0 {
		return 0, false
	}
	return s.items[s.n-1], true
}

// Len returns the number of segments.
func (s Stack) Len() int {
	return s.n
}

// At returns the segment at position i (0 = bottom).
func (s Stack) At(i int) (Color, bool) {
	if i < 0 || i >= s.n {
		return 0, false
	}
	return s.items[i], true
}

// Full reports whether the stack is at capacity.
func (s Stack) Full() bool {
	return s.n == Capacity
}

// Empty reports whether the stack holds no segments.
func (s Stack) Empty() bool {
	return s.n == 0
}

// Monocolor reports whether all segments share one color.
// An empty stack is monocolor.
func (s Stack) Monocolor() bool {
	for i := 1; i < s.n; i++ {
		if s.items[i] != s.items[0] {
			return false
		}
	}
	return true
}

// MissingOne reports whether the stack is one matching pour away from solved.
func (s Stack) MissingOne() bool {
	return s.n == Capacity-1 && s.Monocolor()
}

// Solved reports whether the stack is full of a single color.
func (s Stack) Solved() bool {
	return s.Full() && s.Monocolor()
}

// Items returns a copy of the segments, bottom first.
func (s Stack) Items() []Color {
	out := make([]Color, s.n)
	copy(out, s.items[:s.n])
	return out
}

// String returns the segments as a bottom-to-top label string.
func (s Stack) String() string {
	var sb strings.Builder
	sb.Grow(s.n)
	for i := 0; i < s.n; i++ {
		sb.WriteByte(byte(s.items[i]))
	}
	return sb.String()
}

// Key returns the fixed-width form used in state keys: the labels padded
// with Blank up to Capacity.
func (s Stack) Key() string {
	var buf [Capacity]byte
	for i := range buf {
		if i < s.n {
			buf[i] = byte(s.items[i])
		} else {
			buf[i] = Blank
		}
	}
	return string(buf[:])
}
