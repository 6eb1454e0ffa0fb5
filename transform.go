package cvdsim

import (
	"math"

	"github.com/colorvis/cvdsim/srgb"
)

// Simulate transforms a single color under a deficiency simulation matrix
// and blends the result with the original by strength.
//
// The pipeline: each channel is normalised to [0, 1], decoded to linear
// light, the matrix is applied as a matrix-vector product, each output
// channel is re-encoded, scaled to [0, 255], rounded and clamped, and
// finally blended per channel as round(orig*(1-strength) + sim*strength).
//
// strength 0 returns the input exactly, strength 1 the fully simulated
// color. strength is deliberately not clamped: values outside [0, 1]
// extrapolate the blend linearly, with the result constrained to [0, 255]
// only by the 8-bit storage.
func Simulate(c RGBColor, m Matrix, strength float64) RGBColor {
	sr, sg, sb := simulate(c.R, c.G, c.B, &m)
	return RGBColor{
		R: blend8(c.R, sr, strength),
		G: blend8(c.G, sg, strength),
		B: blend8(c.B, sb, strength),
	}
}

func simulate(r, g, b uint8, m *Matrix) (sr, sg, sb uint8) {
	lr, lg, lb := m.Apply(Vec3{srgb.From8Bit(r), srgb.From8Bit(g), srgb.From8Bit(b)})
	return srgb.To8Bit(lr), srgb.To8Bit(lg), srgb.To8Bit(lb)
}

func blend8(orig, sim uint8, strength float64) uint8 {
	v := math.Round(float64(orig)*(1-strength) + float64(sim)*strength)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// simulator8 returns a function that rewrites the first three bytes of s,
// an RGB triple, in place. Shared by the buffer and image paths.
func simulator8(m Matrix, strength float64) func(s []uint8) {
	if strength == 0 {
		return func(s []uint8) {}
	}
	return func(s []uint8) {
		sr, sg, sb := simulate(s[0], s[1], s[2], &m)
		s[0] = blend8(s[0], sr, strength)
		s[1] = blend8(s[1], sg, strength)
		s[2] = blend8(s[2], sb, strength)
	}
}
