package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each one to an ANSI 256-color style.
type Color uint8

// Colors used by the snake renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightCyan
	ColorGray
)
