package cvdsim

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/kettek/apng"
)

var _ = fmt.Print

// Frame is one frame of an animated PNG. The APNG compositing fields are
// carried through untouched so a decode/encode round trip is lossless.
type Frame struct {
	Number           uint
	Image            image.Image
	X, Y             int
	DelayNumerator   uint16
	DelayDenominator uint16
	DisposeOp        byte
	BlendOp          byte
}

// Animation is a decoded, possibly multi-frame, PNG image.
type Animation struct {
	Frames       []*Frame
	LoopCount    uint        // 0 means loop forever, 1 means loop once, ...
	DefaultImage image.Image // a "default image" that is not part of the actual animation
}

func animationFromAPNG(p *apng.APNG) *Animation {
	ans := &Animation{LoopCount: p.LoopCount}
	for _, f := range p.Frames {
		if f.IsDefault {
			ans.DefaultImage = f.Image
			continue
		}
		ans.Frames = append(ans.Frames, &Frame{
			Number: uint(len(ans.Frames) + 1), Image: f.Image, X: f.XOffset, Y: f.YOffset,
			DelayNumerator: f.DelayNumerator, DelayDenominator: f.DelayDenominator,
			DisposeOp: f.DisposeOp, BlendOp: f.BlendOp,
		})
	}
	return ans
}

func (a *Animation) asAPNG() (ans apng.APNG) {
	ans.LoopCount = a.LoopCount
	if a.DefaultImage != nil {
		ans.Frames = append(ans.Frames, apng.Frame{Image: a.DefaultImage, IsDefault: true})
	}
	for _, f := range a.Frames {
		ans.Frames = append(ans.Frames, apng.Frame{
			Image: f.Image, XOffset: f.X, YOffset: f.Y,
			DelayNumerator: f.DelayNumerator, DelayDenominator: f.DelayDenominator,
			DisposeOp: f.DisposeOp, BlendOp: f.BlendOp,
		})
	}
	return
}

// DecodeAll reads a PNG from r including all animation frames. A plain
// PNG yields a single frame.
func DecodeAll(r io.Reader) (*Animation, error) {
	p, err := apng.DecodeAll(r)
	if err != nil {
		return nil, err
	}
	ans := animationFromAPNG(&p)
	if len(ans.Frames) == 0 {
		if ans.DefaultImage == nil {
			return nil, fmt.Errorf("no frames found in PNG stream")
		}
		// a plain PNG decodes as a bare default image
		ans.Frames = append(ans.Frames, &Frame{Number: 1, Image: ans.DefaultImage})
		ans.DefaultImage = nil
	}
	return ans, nil
}

// OpenAll loads a possibly animated PNG from file.
func OpenAll(filename string) (*Animation, error) {
	file, err := fs.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return DecodeAll(file)
}

// EncodeAsPNG writes the animation to w, as an APNG when there is more
// than one frame and a plain PNG otherwise.
func (a *Animation) EncodeAsPNG(w io.Writer) error {
	if len(a.Frames) < 2 {
		img := a.DefaultImage
		if img == nil {
			img = a.Frames[0].Image
		}
		return png.Encode(w, img)
	}
	return apng.Encode(w, a.asAPNG())
}

// SimulateAll runs the simulation over every frame (and the default
// image, if any), returning a new Animation with timing and compositing
// preserved. Cancellation follows SimulateImage: all-or-nothing.
func SimulateAll(ctx context.Context, a *Animation, m Matrix, strength float64, workers int) (*Animation, error) {
	ans := &Animation{LoopCount: a.LoopCount, Frames: make([]*Frame, 0, len(a.Frames))}
	var err error
	if a.DefaultImage != nil {
		if ans.DefaultImage, err = SimulateImage(ctx, a.DefaultImage, m, strength, workers); err != nil {
			return nil, err
		}
	}
	for _, f := range a.Frames {
		nf := *f
		if nf.Image, err = SimulateImage(ctx, f.Image, m, strength, workers); err != nil {
			return nil, err
		}
		ans.Frames = append(ans.Frames, &nf)
	}
	return ans, nil
}
