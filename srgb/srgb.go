// Package srgb converts individual channel values between the sRGB
// encoding used for storage and display and linear light intensity, the
// space in which additive matrix mixing is physically meaningful.
package srgb

import (
	"math"
	"sync"
)

// ToLinear converts a normalised sRGB encoded value to linear light.
// Input is expected in [0, 1] but is not clamped, values outside the
// range are extended by the same piecewise formula.
func ToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// FromLinear converts a linear light value to the normalised sRGB
// encoding. Matrix outputs can go negative, a fractional power of a
// negative base is undefined, so negatives are zeroed before the pow.
// Values above 1 flow through the formula and are left for the caller's
// final clamp.
func FromLinear(c float64) float64 {
	if c <= 0 {
		return 0
	}
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

var from8BitLUT = sync.OnceValue(func() *[256]float64 {
	var t [256]float64
	for v := range t {
		t[v] = ToLinear(float64(v) / 255)
	}
	return &t
})

// From8Bit converts an 8-bit sRGB encoded channel to a linear value in
// [0, 1].
//
// This implementation uses a look-up table without sacrificing accuracy,
// there are only 256 possible inputs.
func From8Bit(v uint8) float64 {
	return from8BitLUT()[v]
}

// To8Bit converts a linear value to an 8-bit sRGB encoded channel:
// encode, scale by 255, round to nearest and clamp to [0, 255]. This is
// where out-of-gamut matrix results are finally constrained.
func To8Bit(c float64) uint8 {
	v := math.Round(FromLinear(c) * 255)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
