// Package preview generates the small interactive swatch grid: a
// hue/saturation sweep with every cell run through the single-pixel
// simulation.
package preview

import (
	"image"
	"math"

	"github.com/colorvis/cvdsim"
)

// Options configures a swatch grid. Hues columns sweep the hue circle at
// full value, Sats rows sweep saturation from full (top row) down to
// Sats equal steps above zero.
type Options struct {
	Hues     int
	Sats     int
	Matrix   cvdsim.Matrix
	Strength float64
}

// Grid produces the simulated swatches, indexed [row][col]. Each cell is
// generated from the HSV sweep and passed through cvdsim.Simulate once.
func Grid(o Options) [][]cvdsim.RGBColor {
	ans := make([][]cvdsim.RGBColor, o.Sats)
	for row := range ans {
		cells := make([]cvdsim.RGBColor, o.Hues)
		s := 1 - float64(row)/float64(max(o.Sats, 1))
		for col := range cells {
			h := 360 * float64(col) / float64(max(o.Hues, 1))
			cells[col] = cvdsim.Simulate(HSV(h, s, 1), o.Matrix, o.Strength)
		}
		ans[row] = cells
	}
	return ans
}

// Render rasterizes the grid to an image with square cells of the given
// side length.
func Render(o Options, cell int) *image.NRGBA {
	grid := Grid(o)
	d := image.NewNRGBA(image.Rect(0, 0, o.Hues*cell, o.Sats*cell))
	for row, cells := range grid {
		for col, c := range cells {
			for y := row * cell; y < (row+1)*cell; y++ {
				drow := d.Pix[d.Stride*y:]
				for x := col * cell; x < (col+1)*cell; x++ {
					s := drow[4*x : 4*x+4 : 4*x+4]
					s[0], s[1], s[2], s[3] = c.R, c.G, c.B, 0xff
				}
			}
		}
	}
	return d
}

// HSV converts a hue in degrees, saturation and value in [0, 1] to an
// 8-bit RGB color.
func HSV(h, s, v float64) cvdsim.RGBColor {
	r, g, b := hsvToRGB(h, s, v)
	return cvdsim.RGBColor{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
	}
}

func hsvToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
