package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI palette entries in the platform renderer.
// ColorDefault doubles as "empty" for game grids, so every drawable
// color is non-zero.
type Color uint8

// Palette used by the block game and its chrome.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)
