package cvdsim

import (
	"fmt"
	"math"
)

var _ = fmt.Print

// RGBColor is an 8-bit-per-channel sRGB color without alpha. It is an
// immutable value type, every transform produces a new instance.
type RGBColor struct {
	R, G, B uint8
}

func (c RGBColor) AsSharp() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGBColor) String() string {
	return fmt.Sprintf("RGBColor{%02X %02X %02X}", c.R, c.G, c.B)
}

func (c RGBColor) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 65535 // (255 << 8 | 255)
	return
}

// NewRGBColor validates that every channel is an integral value in
// [0, 255] and returns the corresponding RGBColor. Violations report
// ErrInvalidChannelValue and signal a bug in the calling layer.
func NewRGBColor(r, g, b float64) (RGBColor, error) {
	for _, ch := range [3]float64{r, g, b} {
		if ch != math.Trunc(ch) || ch < 0 || ch > 255 {
			return RGBColor{}, fmt.Errorf("%w: got %v", ErrInvalidChannelValue, ch)
		}
	}
	return RGBColor{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}
