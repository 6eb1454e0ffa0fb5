package cvdsim

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func orientTestImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	i := uint8(0)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{i, 100 + i, 200 + i, 255})
			i++
		}
	}
	return img
}

func samePixels(t *testing.T, a, b *image.NRGBA) {
	t.Helper()
	require.Equal(t, a.Rect.Dx(), b.Rect.Dx())
	require.Equal(t, a.Rect.Dy(), b.Rect.Dy())
	require.Equal(t, a.Pix, b.Pix)
}

func TestFlipsAreInvolutions(t *testing.T) {
	src := orientTestImage()
	samePixels(t, src, FlipH(FlipH(src)))
	samePixels(t, src, FlipV(FlipV(src)))
	samePixels(t, src, Rotate180(Rotate180(src)))
	samePixels(t, src, Transpose(Transpose(src)))
	samePixels(t, src, Transverse(Transverse(src)))
}

func TestRotationsCompose(t *testing.T) {
	src := orientTestImage()
	samePixels(t, src, Rotate270(Rotate90(src)))
	samePixels(t, src, Rotate90(Rotate270(src)))
	samePixels(t, Rotate180(src), Rotate90(Rotate90(src)))
	samePixels(t, src, Rotate90(Rotate90(Rotate90(Rotate90(src)))))
}

func TestRotate90Bounds(t *testing.T) {
	src := orientTestImage()
	got := Rotate90(src)
	require.Equal(t, 2, got.Rect.Dx())
	require.Equal(t, 3, got.Rect.Dy())
	// counter-clockwise: the top-right source pixel becomes top-left
	require.Equal(t, src.NRGBAAt(2, 0), got.NRGBAAt(0, 0))
}

func TestFlipHPixels(t *testing.T) {
	src := orientTestImage()
	got := FlipH(src)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			require.Equal(t, src.NRGBAAt(2-x, y), got.NRGBAAt(x, y))
		}
	}
}
