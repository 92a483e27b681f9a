package core

// Color is the palette entry of a screen cell. The platform layer maps each
// entry to a terminal colour; ColorDefault leaves the terminal foreground.
type Color uint8

// Palette used by the play field and the surrounding screens.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorDarkGray
	ColorGray
	ColorLightGray
	ColorRed
	ColorWhite
	ColorYellow
)

// String returns the palette name of the colour.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorDarkGray:
		return "darkgray"
	case ColorGray:
		return "gray"
	case ColorLightGray:
		return "lightgray"
	case ColorRed:
		return "red"
	case ColorWhite:
		return "white"
	case ColorYellow:
		return "yellow"
	default:
		return "unknown"
	}
}
