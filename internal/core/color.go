package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI colors by the platform renderer.
type Color uint8

// Colors used by the game's rendering.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorBrightGreen
	ColorYellow
	ColorBrightYellow
	ColorWhite
	ColorGray
	ColorOrange
	ColorRed
)
