package core

// Color is a semantic color for a screen cell or a drawn primitive.
// Platforms map each value to their own palette (ANSI for the terminal,
// RGBA for the window driver).
type Color uint8

const (
	ColorDefault  Color = iota
	ColorTop            // Top side pucks and HUD
	ColorBottom         // Bottom side pucks and HUD
	ColorWall           // Midline wall segments
	ColorObstacle       // Circular obstacles
	ColorBand           // Band lines and sling bands
	ColorHeld           // Highlight for a puck under drag
	ColorText           // Overlay text
	ColorDim            // Hints and secondary text
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorTop:
		return "top"
	case ColorBottom:
		return "bottom"
	case ColorWall:
		return "wall"
	case ColorObstacle:
		return "obstacle"
	case ColorBand:
		return "band"
	case ColorHeld:
		return "held"
	case ColorText:
		return "text"
	case ColorDim:
		return "dim"
	default:
		return "unknown"
	}
}
