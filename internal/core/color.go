package core

// Color represents a foreground color for a screen cell.
// Frontends map these onto their own palettes (ANSI 256-color codes).
type Color uint8

// Predefined colors for game elements.
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
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ANSI returns the ANSI 256-color code for the color.
// ColorDefault returns -1 (terminal default).
func (c Color) ANSI() int {
	switch c {
	case ColorRed:
		return 1
	case ColorGreen:
		return 2
	case ColorYellow:
		return 3
	case ColorBlue:
		return 4
	case ColorMagenta:
		return 5
	case ColorCyan:
		return 6
	case ColorWhite:
		return 7
	case ColorBrightRed:
		return 9
	case ColorBrightYellow:
		return 11
	case ColorBrightCyan:
		return 14
	case ColorBrightWhite:
		return 15
	case ColorOrange:
		return 208
	case ColorGray:
		return 245
	default:
		return -1
	}
}
