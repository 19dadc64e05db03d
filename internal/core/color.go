package core

// Color represents a foreground color for a screen cell.
// Values index the palette in the platform renderer, not ANSI codes directly.
type Color uint8

// Palette used by the race scene.
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
	ColorOrange
	ColorGray
)
