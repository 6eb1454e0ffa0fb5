package cvdsim

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/kovidgoyal/go-parallel"
)

var _ = fmt.Print

func premultiply8(r, a uint8) uint8 {
	return uint8((uint16(r) * uint16(a)) / uint16(0xff))
}

func unpremultiply8(r, a uint8) uint8 {
	return uint8((uint16(r) * 0xff) / uint16(a))
}

// SimulateImage applies the simulation to an image and returns the
// result as a new image, the input is never modified. Known pixel
// layouts are processed row-band-parallel directly on their byte
// buffers, palette images remap only the palette, everything else falls
// back to a generic per-pixel walk producing an *image.NRGBA.
//
// Cancellation is all-or-nothing: if ctx is cancelled before the run
// completes, nil and ctx.Err() are returned and no partial result
// escapes. workers <= 0 uses one worker per CPU.
func SimulateImage(ctx context.Context, image_any image.Image, m Matrix, strength float64, workers int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b := image_any.Bounds()
	width, height := b.Dx(), b.Dy()
	if width <= 0 || height <= 0 {
		return image_any, nil
	}
	convert := simulator8(m, strength)
	var ans image.Image
	var f func(start, limit int)
	switch img := image_any.(type) {
	case *image.NRGBA:
		d := image.NewNRGBA(b)
		ans = d
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				if ctx.Err() != nil {
					return
				}
				// strides can differ when img is a sub-image
				row := d.Pix[d.Stride*y : d.Stride*y+4*width]
				copy(row, img.Pix[img.Stride*y:])
				for range width {
					convert(row[0:3:3])
					row = row[4:]
				}
			}
		}
	case *image.RGBA:
		d := image.NewRGBA(b)
		ans = d
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				if ctx.Err() != nil {
					return
				}
				row := d.Pix[d.Stride*y : d.Stride*y+4*width]
				copy(row, img.Pix[img.Stride*y:])
				for range width {
					r := row[0:3:3]
					if a := row[3]; a != 0 {
						r[0], r[1], r[2] = unpremultiply8(r[0], a), unpremultiply8(r[1], a), unpremultiply8(r[2], a)
						convert(r)
						r[0], r[1], r[2] = premultiply8(r[0], a), premultiply8(r[1], a), premultiply8(r[2], a)
					}
					row = row[4:]
				}
			}
		}
	case *image.Gray:
		d := image.NewNRGBA(b)
		ans = d
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				if ctx.Err() != nil {
					return
				}
				row := img.Pix[img.Stride*y:]
				_ = row[width-1]
				drow := d.Pix[d.Stride*y:]
				for _, gray := range row[:width] {
					s := drow[0:4:4]
					s[0], s[1], s[2], s[3] = gray, gray, gray, 0xff
					convert(s[0:3:3])
					drow = drow[4:]
				}
			}
		}
	case *image.Paletted:
		// Only the palette needs transforming, not the pixel grid.
		d := image.NewPaletted(b, remapPalette(img.Palette, m, strength))
		for y := 0; y < height; y++ {
			copy(d.Pix[d.Stride*y:d.Stride*y+width], img.Pix[img.Stride*y:])
		}
		return d, nil
	default:
		d := image.NewNRGBA(b)
		ans = d
		f = func(start, limit int) {
			for y := start; y < limit; y++ {
				if ctx.Err() != nil {
					return
				}
				row := d.Pix[d.Stride*y:]
				for x := 0; x < width; x++ {
					c := color.NRGBAModel.Convert(img.At(x+b.Min.X, y+b.Min.Y)).(color.NRGBA)
					s := row[4*x : 4*x+4 : 4*x+4]
					s[0], s[1], s[2], s[3] = c.R, c.G, c.B, c.A
					convert(s[0:3:3])
				}
			}
		}
	}
	if workers < 0 {
		workers = 0
	}
	if err := parallel.Run_in_parallel_over_range(workers, f, 0, height); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ans, nil
}

func remapPalette(p color.Palette, m Matrix, strength float64) color.Palette {
	ans := make(color.Palette, len(p))
	for i, c := range p {
		nc := color.NRGBAModel.Convert(c).(color.NRGBA)
		sc := Simulate(RGBColor{nc.R, nc.G, nc.B}, m, strength)
		ans[i] = color.NRGBA{R: sc.R, G: sc.G, B: sc.B, A: nc.A}
	}
	return ans
}
