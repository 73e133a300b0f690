package editor

import colorful "github.com/lucasb-eyer/go-colorful"

// InvertedColor returns the RGB inverse of a "#rrggbb" color, used to keep
// text readable on top of a highlight background. Unparseable colors fall
// back to black.
func InvertedColor(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#000000"
	}
	return colorful.Color{R: 1 - c.R, G: 1 - c.G, B: 1 - c.B}.Hex()
}
