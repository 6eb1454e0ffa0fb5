package cvdsim

import (
	"bytes"
	"image"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatFromExtension(t *testing.T) {
	cases := []struct {
		ext  string
		want Format
	}{
		{"jpg", JPEG}, {".jpg", JPEG}, {"JPEG", JPEG},
		{"png", PNG}, {".PNG", PNG},
		{"gif", GIF}, {"tif", TIFF}, {"tiff", TIFF}, {"bmp", BMP},
	}
	for _, tc := range cases {
		got, err := FormatFromExtension(tc.ext)
		require.NoError(t, err, tc.ext)
		require.Equal(t, tc.want, got, tc.ext)
	}
	_, err := FormatFromExtension(".xcf")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	src := makeNRGBA(image.Rect(0, 0, 9, 5))
	for _, format := range []Format{PNG, TIFF, BMP} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, src, format))
			got, err := Decode(&buf)
			require.NoError(t, err)
			require.Equal(t, src.Bounds().Dx(), got.Bounds().Dx())
			require.Equal(t, src.Bounds().Dy(), got.Bounds().Dy())
		})
	}
}

func TestSaveOpen(t *testing.T) {
	src := makeNRGBA(image.Rect(0, 0, 4, 4))
	name := filepath.Join(t.TempDir(), "x.png")
	require.NoError(t, Save(src, name))
	got, err := Open(name)
	require.NoError(t, err)
	d, ok := got.(*image.NRGBA)
	require.True(t, ok)
	require.Equal(t, src.Pix, d.Pix)
}

func TestSaveUnsupported(t *testing.T) {
	src := makeNRGBA(image.Rect(0, 0, 2, 2))
	err := Save(src, filepath.Join(t.TempDir(), "x.xcf"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeNotAnImage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")))
	require.Error(t, err)
}
