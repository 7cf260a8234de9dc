package core

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Interface colors.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorDim
	ColorHighlight
	ColorAccent
	ColorError
	ColorSuccess
)

// Liquid colors, in label order A through L.
const (
	ColorBlue Color = iota + 16
	ColorOrange
	ColorRed
	ColorLime
	ColorPink
	ColorSlate
	ColorSky
	ColorPurple
	ColorOlive
	ColorYellow
	ColorBrown
	ColorForest
)

var ansi256 = map[Color]string{
	ColorWhite:     "15",
	ColorGray:      "245",
	ColorDim:       "240",
	ColorHighlight: "229",
	ColorAccent:    "212",
	ColorError:     "203",
	ColorSuccess:   "114",

	ColorBlue:   "20",
	ColorOrange: "208",
	ColorRed:    "160",
	ColorLime:   "77",
	ColorPink:   "204",
	ColorSlate:  "242",
	ColorSky:    "74",
	ColorPurple: "54",
	ColorOlive:  "100",
	ColorYellow: "221",
	ColorBrown:  "94",
	ColorForest: "22",
}

// ANSI256 returns the terminal color code for c.
// ColorDefault and unknown values return "".
func (c Color) ANSI256() string {
	return ansi256[c]
}
