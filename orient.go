package cvdsim

import (
	"image"
	"image/draw"
)

func toNRGBA(img image.Image) *image.NRGBA {
	if p, ok := img.(*image.NRGBA); ok && p.Rect.Min == (image.Point{}) {
		return p
	}
	b := img.Bounds()
	d := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(d, d.Rect, img, b.Min, draw.Src)
	return d
}

// remap copies src into a new image of the given size, with the source
// coordinates of destination pixel (x, y) produced by at.
func remap(src *image.NRGBA, w, h int, at func(x, y int) (sx, sy int)) *image.NRGBA {
	d := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		drow := d.Pix[d.Stride*y:]
		for x := 0; x < w; x++ {
			sx, sy := at(x, y)
			si := src.Stride*sy + 4*sx
			copy(drow[4*x:4*x+4], src.Pix[si:si+4])
		}
	}
	return d
}

// FlipH returns the image mirrored around its vertical axis.
func FlipH(img image.Image) *image.NRGBA {
	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	return remap(src, w, h, func(x, y int) (int, int) { return w - 1 - x, y })
}

// FlipV returns the image mirrored around its horizontal axis.
func FlipV(img image.Image) *image.NRGBA {
	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	return remap(src, w, h, func(x, y int) (int, int) { return x, h - 1 - y })
}

// Rotate90 returns the image rotated 90 degrees counter-clockwise.
func Rotate90(img image.Image) *image.NRGBA {
	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	return remap(src, h, w, func(x, y int) (int, int) { return w - 1 - y, x })
}

// Rotate180 returns the image rotated 180 degrees.
func Rotate180(img image.Image) *image.NRGBA {
	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	return remap(src, w, h, func(x, y int) (int, int) { return w - 1 - x, h - 1 - y })
}

// Rotate270 returns the image rotated 270 degrees counter-clockwise.
func Rotate270(img image.Image) *image.NRGBA {
	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	return remap(src, h, w, func(x, y int) (int, int) { return y, h - 1 - x })
}

// Transpose returns the image flipped around its main diagonal.
func Transpose(img image.Image) *image.NRGBA {
	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	return remap(src, h, w, func(x, y int) (int, int) { return y, x })
}

// Transverse returns the image flipped around its anti-diagonal.
func Transverse(img image.Image) *image.NRGBA {
	src := toNRGBA(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	return remap(src, h, w, func(x, y int) (int, int) { return w - 1 - y, h - 1 - x })
}
