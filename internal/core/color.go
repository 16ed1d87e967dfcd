package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Predefined colors for UI elements and endpoint markers.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorAmber
	ColorPurple
	ColorDeepOrange
	ColorCyan
	ColorWhite
	ColorGray
	ColorDimGray
)

// Palette is the fixed ordered color sequence for endpoint pairs.
// Seven entries, so up to five pairs render without repeats.
var Palette = [7]Color{
	ColorRed,
	ColorGreen,
	ColorBlue,
	ColorAmber,
	ColorPurple,
	ColorDeepOrange,
	ColorCyan,
}

// PairColor returns the palette color for the given pair index.
// Indices wrap around the palette length.
func PairColor(idx int) Color {
	if idx < 0 {
		idx = -idx
	}
	return Palette[idx%len(Palette)]
}
