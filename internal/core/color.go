package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Palette. Aliens use Green, Cyan and Magenta by variant; the HUD uses the
// bright colors; Gray marks inactive things like a respawning ship.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorGray

	numColors
)

var colorInfo = [numColors]struct {
	name string
	code string // ANSI 256-color code, empty for the terminal default
}{
	ColorDefault:      {"default", ""},
	ColorRed:          {"red", "1"},
	ColorGreen:        {"green", "2"},
	ColorYellow:       {"yellow", "3"},
	ColorBlue:         {"blue", "4"},
	ColorMagenta:      {"magenta", "5"},
	ColorCyan:         {"cyan", "6"},
	ColorWhite:        {"white", "7"},
	ColorBrightRed:    {"bright-red", "9"},
	ColorBrightGreen:  {"bright-green", "10"},
	ColorBrightYellow: {"bright-yellow", "11"},
	ColorBrightCyan:   {"bright-cyan", "14"},
	ColorGray:         {"gray", "245"},
}

// Code returns the ANSI 256-color code for c. Unknown colors and
// ColorDefault return "".
func (c Color) Code() string {
	if c >= numColors {
		return ""
	}
	return colorInfo[c].code
}

func (c Color) String() string {
	if c >= numColors {
		return "unknown"
	}
	return colorInfo[c].name
}
