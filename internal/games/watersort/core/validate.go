package core

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validation codes.
const (
	CodeNoVials      = "NO_VIALS"
	CodeBadLength    = "BAD_LENGTH"
	CodeBlankGap     = "BLANK_GAP"
	CodeInvalidColor = "INVALID_COLOR"
	CodeColorCount   = "COLOR_COUNT"
)

// ValidateVials checks that vials describe a puzzle that can be loaded and
// could in principle be solved.
// Checks:
//   - At least one vial
//   - No vial longer than Capacity
//   - No blank below a filled segment
//   - Every label is a valid color
//   - Every color fills a whole number of vials
//
// Trailing blanks are allowed, so key-form vials ("AB  ") pass.
func ValidateVials(vials []string) error {
	if len(vials) == 0 {
		return ValidationError{
			Code:    CodeNoVials,
			Message: "puzzle has no vials",
		}
	}

	counts := make(map[Color]int)
	for i, v := range vials {
		if err := validateVial(i, v); err != nil {
			return err
		}
		for _, r := range strings.TrimRight(v, string(Blank)) {
			counts[Color(r)]++
		}
	}

	return validateColorCounts(counts)
}

func validateVial(i int, v string) error {
	filled := strings.TrimRight(v, string(Blank))
	if len(filled) > Capacity {
		return ValidationError{
			Code:    CodeBadLength,
			Message: fmt.Sprintf("vial %d holds %d segments, capacity is %d", i+1, len(filled), Capacity),
		}
	}

	for pos, r := range filled {
		if r == rune(Blank) {
			return ValidationError{
				Code:    CodeBlankGap,
				Message: fmt.Sprintf("vial %d has a blank at position %d below a filled segment", i+1, pos+1),
			}
		}
		if _, ok := ParseColor(r); !ok {
			return ValidationError{
				Code:    CodeInvalidColor,
				Message: fmt.Sprintf("vial %d has invalid color %q at position %d", i+1, r, pos+1),
			}
		}
	}
	return nil
}

func validateColorCounts(counts map[Color]int) error {
	// Sorted for a deterministic first error.
	colors := make([]Color, 0, len(counts))
	for c := range counts {
		colors = append(colors, c)
	}
	slices.Sort(colors)

	for _, c := range colors {
		if n := counts[c]; n%Capacity != 0 {
			return ValidationError{
				Code:    CodeColorCount,
				Message: fmt.Sprintf("color %s has %d segments, need a multiple of %d", c, n, Capacity),
			}
		}
	}
	return nil
}

// ParseVials validates vials and builds the state.
func ParseVials(vials []string) (*State, error) {
	if err := ValidateVials(vials); err != nil {
		return nil, err
	}
	return NewState(vials)
}

// StateStats summarizes a configuration.
type StateStats struct {
	Vials       int
	EmptyVials  int
	SolvedVials int
	Colors      int
	Segments    int
}

// ComputeStats analyzes a state and returns statistics.
func ComputeStats(s *State) StateStats {
	stats := StateStats{Vials: s.Len()}
	for i := 0; i < s.Len(); i++ {
		st := s.Stack(i)
		stats.Segments += st.Len()
		switch {
		case st.Empty():
			stats.EmptyVials++
		case st.Solved():
			stats.SolvedVials++
		}
	}
	stats.Colors = len(s.ColorCounts())
	return stats
}
