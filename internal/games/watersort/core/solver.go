package core

import (
	"errors"
	"fmt"
	"slices"
)

// Strategy selects the frontier discipline of the search.
type Strategy string

const (
	// StrategyDFS pops the most recently discovered state first. It finds
	// a solution quickly but not necessarily the shortest one.
	StrategyDFS Strategy = "dfs"
	// StrategyBFS expands states in discovery order and returns a solution
	// with the fewest pours.
	StrategyBFS Strategy = "bfs"
)

// ParseStrategy converts a name to a Strategy. Empty means DFS.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", StrategyDFS:
		return StrategyDFS, nil
	case StrategyBFS:
		return StrategyBFS, nil
	default:
		return "", fmt.Errorf("watersort: unknown strategy %q", s)
	}
}

var (
	// ErrNoSolution means every reachable configuration was explored and
	// none is solved.
	ErrNoSolution = errors.New("watersort: no solution")
	// ErrBudgetExceeded means the search stopped at Solver.MaxNodes before
	// either finding a solution or exhausting the state space.
	ErrBudgetExceeded = errors.New("watersort: search budget exceeded")
)

// Solver searches for a sequence of pours that solves a state.
// The zero value runs an unbounded depth-first search.
type Solver struct {
	Strategy Strategy
	// MaxNodes caps the number of expanded states. 0 means no limit.
	MaxNodes int
}

// Solution is a path from the initial configuration to a solved one.
type Solution struct {
	// Steps holds every configuration as per-vial strings, starting with
	// the initial one. Consecutive steps differ by exactly one pour.
	Steps [][]string
	// Moves[i] turns Steps[i] into Steps[i+1].
	Moves []Move
	// Explored is the number of states expanded.
	Explored int
	// Discovered is the number of distinct states seen.
	Discovered int
}

// Len returns the number of pours in the solution.
func (s Solution) Len() int {
	return len(s.Moves)
}

// Solve runs an unbounded depth-first search and returns the solution
// steps, or an empty slice if the puzzle cannot be solved.
func Solve(initial *State) [][]string {
	sol, err := Solver{}.Solve(initial)
	if err != nil {
		return [][]string{}
	}
	return sol.Steps
}

// link records how a state was first discovered.
type link struct {
	parent string
	move   Move
}

// search holds the bookkeeping of one solve call.
type search struct {
	strategy Strategy
	visited  map[string]struct{}
	parents  map[string]link
	frontier []*State
}

func newSearch(strategy Strategy) *search {
	return &search{
		strategy: strategy,
		visited:  make(map[string]struct{}),
		parents:  make(map[string]link),
	}
}

func (s *search) push(st *State) {
	s.frontier = append(s.frontier, st)
}

func (s *search) pop() *State {
	var st *State
	if s.strategy == StrategyBFS {
		st = s.frontier[0]
		s.frontier[0] = nil
		s.frontier = s.frontier[1:]
	} else {
		last := len(s.frontier) - 1
		st = s.frontier[last]
		s.frontier[last] = nil
		s.frontier = s.frontier[:last]
	}
	return st
}

// Solve searches from initial. It returns ErrNoSolution when the reachable
// state space holds no solved configuration and ErrBudgetExceeded when
// MaxNodes states were expanded without an answer.
func (sv Solver) Solve(initial *State) (Solution, error) {
	strategy, err := ParseStrategy(string(sv.Strategy))
	if err != nil {
		return Solution{}, err
	}

	s := newSearch(strategy)
	startKey := initial.Key()
	s.visited[startKey] = struct{}{}
	s.push(initial.Clone())

	explored := 0
	for len(s.frontier) > 0 {
		if sv.MaxNodes > 0 && explored >= sv.MaxNodes {
			return Solution{Explored: explored, Discovered: len(s.visited)}, ErrBudgetExceeded
		}

		current := s.pop()
		explored++
		currentKey := current.Key()

		if current.Solved() {
			sol := s.path(startKey, currentKey)
			sol.Explored = explored
			sol.Discovered = len(s.visited)
			return sol, nil
		}

		for _, m := range current.LegalMoves() {
			next := current.Clone()
			next.Apply(m)
			key := next.Key()
			if _, seen := s.visited[key]; seen {
				continue
			}
			s.visited[key] = struct{}{}
			s.parents[key] = link{parent: currentKey, move: m}
			s.push(next)
		}
	}

	return Solution{Explored: explored, Discovered: len(s.visited)}, ErrNoSolution
}

// path follows parent links from key back to start.
func (s *search) path(start, key string) Solution {
	steps := [][]string{KeyToVials(key)}
	var moves []Move
	for key != start {
		l := s.parents[key]
		steps = append(steps, KeyToVials(l.parent))
		moves = append(moves, l.move)
		key = l.parent
	}
	slices.Reverse(steps)
	slices.Reverse(moves)
	return Solution{Steps: steps, Moves: moves}
}
