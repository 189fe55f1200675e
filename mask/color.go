package mask

import "image/color"

// Color is the state of a single cell of a Mask.
type Color bool

// The two possible cell states.
const (
	Off Color = false
	On  Color = true
)

func (c Color) String() string {
	if c {
		return "On"
	}
	return "Off"
}

func (c Color) RGBA() (r, g, b, a uint32) {
	if c {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0
}

// Model implements color.Model for a Mask. Any color that is not
// fully transparent converts to On.
var Model color.Model = color.ModelFunc(convert)

func convert(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}

	_, _, _, a := c.RGBA()
	return Color(a != 0)
}
