package cvdsim

import (
	"context"
	"image"
	"image/color"
	"image/color/palette"
	"testing"

	"github.com/stretchr/testify/require"
)

func makeNRGBA(r image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(r)
	i := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(i * 7), uint8(i * 13), uint8(i * 29), uint8(200 + i%56)})
			i++
		}
	}
	return img
}

func TestSimulateImageNRGBA(t *testing.T) {
	src := makeNRGBA(image.Rect(0, 0, 17, 9))
	ans, err := SimulateImage(context.Background(), src, achromatopsia, 1, 0)
	require.NoError(t, err)
	d, ok := ans.(*image.NRGBA)
	require.True(t, ok)
	require.NotSame(t, src, d, "input must not be returned for mutation")
	for y := 0; y < 9; y++ {
		for x := 0; x < 17; x++ {
			s := src.NRGBAAt(x, y)
			g := d.NRGBAAt(x, y)
			want := Simulate(RGBColor{s.R, s.G, s.B}, achromatopsia, 1)
			require.Equal(t, color.NRGBA{want.R, want.G, want.B, s.A}, g, "pixel (%d,%d)", x, y)
		}
	}
}

func TestSimulateImageDoesNotMutateInput(t *testing.T) {
	src := makeNRGBA(image.Rect(0, 0, 8, 8))
	before := append([]uint8(nil), src.Pix...)
	_, err := SimulateImage(context.Background(), src, wild, 1, 0)
	require.NoError(t, err)
	require.Equal(t, before, src.Pix)
}

func TestSimulateImageRGBAOpaque(t *testing.T) {
	// with full alpha the premultiplied path must agree with the NRGBA path
	r := image.Rect(0, 0, 5, 4)
	nrgba := image.NewNRGBA(r)
	rgba := image.NewRGBA(r)
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			c := color.NRGBA{uint8(x * 50), uint8(y * 60), uint8(x * y * 10), 255}
			nrgba.SetNRGBA(x, y, c)
			rgba.Set(x, y, c)
		}
	}
	a1, err := SimulateImage(context.Background(), nrgba, achromatopsia, 1, 0)
	require.NoError(t, err)
	a2, err := SimulateImage(context.Background(), rgba, achromatopsia, 1, 0)
	require.NoError(t, err)
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			c1 := color.NRGBAModel.Convert(a1.At(x, y)).(color.NRGBA)
			c2 := color.NRGBAModel.Convert(a2.At(x, y)).(color.NRGBA)
			require.Equal(t, c1, c2, "pixel (%d,%d)", x, y)
		}
	}
}

func TestSimulateImageFullyTransparentRGBA(t *testing.T) {
	r := image.Rect(0, 0, 3, 3)
	rgba := image.NewRGBA(r) // all zero, alpha included
	ans, err := SimulateImage(context.Background(), rgba, wild, 1, 0)
	require.NoError(t, err)
	d := ans.(*image.RGBA)
	for _, b := range d.Pix {
		require.Equal(t, uint8(0), b)
	}
}

func TestSimulateImageGray(t *testing.T) {
	r := image.Rect(0, 0, 7, 3)
	gray := image.NewGray(r)
	for i := range gray.Pix {
		gray.Pix[i] = uint8(i * 11)
	}
	ans, err := SimulateImage(context.Background(), gray, Identity(), 1, 0)
	require.NoError(t, err)
	d, ok := ans.(*image.NRGBA)
	require.True(t, ok, "gray input promotes to NRGBA")
	for y := 0; y < 3; y++ {
		for x := 0; x < 7; x++ {
			v := gray.GrayAt(x, y).Y
			g := d.NRGBAAt(x, y)
			require.Equal(t, color.NRGBA{v, v, v, 255}, g)
		}
	}
}

func TestSimulateImagePaletted(t *testing.T) {
	r := image.Rect(0, 0, 16, 16)
	src := image.NewPaletted(r, palette.Plan9)
	for i := range src.Pix {
		src.Pix[i] = uint8(i)
	}
	ans, err := SimulateImage(context.Background(), src, achromatopsia, 1, 0)
	require.NoError(t, err)
	d, ok := ans.(*image.Paletted)
	require.True(t, ok)
	require.Equal(t, src.Pix, d.Pix, "only the palette is remapped")
	for i, c := range src.Palette {
		nc := color.NRGBAModel.Convert(c).(color.NRGBA)
		want := Simulate(RGBColor{nc.R, nc.G, nc.B}, achromatopsia, 1)
		got := color.NRGBAModel.Convert(d.Palette[i]).(color.NRGBA)
		require.Equal(t, color.NRGBA{want.R, want.G, want.B, nc.A}, got, "palette entry %d", i)
	}
}

func TestSimulateImageGenericFallback(t *testing.T) {
	r := image.Rect(0, 0, 6, 6)
	src := image.NewNRGBA64(r)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			src.SetNRGBA64(x, y, color.NRGBA64{uint16(x * 9000), uint16(y * 9000), 30000, 0xffff})
		}
	}
	ans, err := SimulateImage(context.Background(), src, achromatopsia, 1, 0)
	require.NoError(t, err)
	d, ok := ans.(*image.NRGBA)
	require.True(t, ok)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			nc := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			want := Simulate(RGBColor{nc.R, nc.G, nc.B}, achromatopsia, 1)
			require.Equal(t, color.NRGBA{want.R, want.G, want.B, nc.A}, d.NRGBAAt(x, y))
		}
	}
}

func TestSimulateImageOffsetBounds(t *testing.T) {
	src := makeNRGBA(image.Rect(-3, 2, 5, 7))
	ans, err := SimulateImage(context.Background(), src, achromatopsia, 0.5, 0)
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), ans.Bounds())
}

func TestSimulateImageCancelled(t *testing.T) {
	src := makeNRGBA(image.Rect(0, 0, 64, 64))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ans, err := SimulateImage(ctx, src, achromatopsia, 1, 0)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, ans)
}
