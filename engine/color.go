package engine

import "image/color"

// Color is the opaque tag stored in grid cells. NoColor marks an empty cell.
type Color uint8

const (
	NoColor Color = iota
	Cyan
	Blue
	Orange
	Yellow
	Green
	Magenta
	Red
)

var palette = [...]color.RGBA{
	NoColor: {0, 0, 0, 0},
	Cyan:    {0, 178, 178, 255},
	Blue:    {0, 0, 255, 255},
	Orange:  {255, 200, 0, 255},
	Yellow:  {178, 178, 0, 255},
	Green:   {0, 178, 0, 255},
	Magenta: {178, 0, 178, 255},
	Red:     {255, 0, 0, 255},
}

// Empty reports whether c marks an unoccupied cell.
func (c Color) Empty() bool {
	return c == NoColor
}

// RGBA returns the display color for c. NoColor and unknown tags are fully
// transparent.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(palette) {
		return color.RGBA{}
	}
	return palette[c]
}
