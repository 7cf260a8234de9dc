package core

// Color is the label of one liquid type. Labels are single printable ASCII
// characters; the built-in puzzles use 'A' through 'L'.
type Color byte

const (
	// Blank pads a stack key to Capacity. It is never a color.
	Blank byte = ' '
	// Separator joins stack keys into a state key. It is never a color.
	Separator byte = '|'
)

// Valid reports whether c can be used as a liquid label.
func (c Color) Valid() bool {
	b := byte(c)
	return b > ' ' && b <= '~' && b != Separator
}

// String returns the label as a one-character string.
func (c Color) String() string {
	return string(rune(c))
}

// ParseColor converts a rune to a Color.
// Returns false for blanks, the separator and anything outside printable ASCII.
func ParseColor(r rune) (Color, bool) {
	if r <= ' ' || r > '~' {
		return 0, false
	}
	c := Color(r)
	if !c.Valid() {
		return 0, false
	}
	return c, true
}
