package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the board renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorGold
	ColorOrange
	ColorLightBlue
	ColorCyan
	ColorWhite
	ColorGray
)

// Cell is a single rune with its color.
type Cell struct {
	Rune  rune
	Color Color
}
