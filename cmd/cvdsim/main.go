// Command cvdsim simulates color vision deficiencies on images.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/colorvis/cvdsim"
	"github.com/colorvis/cvdsim/matrices"
	"github.com/colorvis/cvdsim/preview"
)

type simFlags struct {
	Deficiency string  `help:"Deficiency type to simulate (normal, protanopia, deuteranopia, tritanopia, achromatopsia)" default:"deuteranopia"`
	Algorithm  string  `help:"Simulation algorithm. Defaults to the first algorithm published for the deficiency." default:""`
	Strength   float64 `help:"Blend strength between the original and the simulated color, 0 to 1" default:"1"`
	Workers    int     `help:"Worker count for the pixel transform, 0 means one per CPU" default:"0"`
}

func (s *simFlags) matrix(ds *matrices.Dataset) (cvdsim.Matrix, error) {
	d, err := matrices.ParseDeficiency(s.Deficiency)
	if err != nil {
		return cvdsim.Matrix{}, err
	}
	var a matrices.Algorithm
	if s.Algorithm == "" {
		if a, err = ds.DefaultAlgorithm(d); err != nil {
			return cvdsim.Matrix{}, err
		}
	} else if a, err = matrices.ParseAlgorithm(s.Algorithm); err != nil {
		return cvdsim.Matrix{}, err
	}
	return ds.Lookup(d, a)
}

type ImageCmd struct {
	simFlags
	Input  string `arg:"" help:"Input image (jpg, png, apng, gif, tiff, bmp, webp)"`
	Output string `arg:"" help:"Output image, format chosen by extension"`
}

func (c *ImageCmd) Run(ds *matrices.Dataset) error {
	m, err := c.matrix(ds)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	started := time.Now()
	if strings.EqualFold(c.Output, c.Input) {
		return fmt.Errorf("refusing to overwrite the input file %q", c.Input)
	}
	if f, err := cvdsim.FormatFromFilename(c.Input); err == nil && f == cvdsim.PNG {
		// PNG in, PNG out: preserve animation frames if any
		if of, err := cvdsim.FormatFromFilename(c.Output); err == nil && of == cvdsim.PNG {
			return c.runPNG(ctx, m, started)
		}
	}
	img, err := cvdsim.Open(c.Input)
	if err != nil {
		return fmt.Errorf("could not open image %q: %w", c.Input, err)
	}
	ans, err := cvdsim.SimulateImage(ctx, img, m, c.Strength, c.Workers)
	if err != nil {
		return err
	}
	if err = cvdsim.Save(ans, c.Output); err != nil {
		return fmt.Errorf("could not save image %q: %w", c.Output, err)
	}
	b := img.Bounds()
	slog.Info("simulated", "deficiency", c.Deficiency, "strength", c.Strength,
		"pixels", b.Dx()*b.Dy(), "took", time.Since(started), "output", c.Output)
	return nil
}

func (c *ImageCmd) runPNG(ctx context.Context, m cvdsim.Matrix, started time.Time) error {
	anim, err := cvdsim.OpenAll(c.Input)
	if err != nil {
		return fmt.Errorf("could not open PNG %q: %w", c.Input, err)
	}
	ans, err := cvdsim.SimulateAll(ctx, anim, m, c.Strength, c.Workers)
	if err != nil {
		return err
	}
	out, err := os.Create(c.Output)
	if err != nil {
		return err
	}
	err = ans.EncodeAsPNG(out)
	if errc := out.Close(); err == nil {
		err = errc
	}
	if err != nil {
		return fmt.Errorf("could not save PNG %q: %w", c.Output, err)
	}
	slog.Info("simulated", "deficiency", c.Deficiency, "strength", c.Strength,
		"frames", len(ans.Frames), "took", time.Since(started), "output", c.Output)
	return nil
}

type PreviewCmd struct {
	simFlags
	Output string `arg:"" help:"Output PNG for the swatch grid"`
	Hues   int    `help:"Number of hue steps in the sweep" default:"24"`
	Sats   int    `help:"Number of saturation steps in the sweep" default:"8"`
	Cell   int    `help:"Swatch cell size in pixels" default:"24"`
}

func (c *PreviewCmd) Run(ds *matrices.Dataset) error {
	m, err := c.matrix(ds)
	if err != nil {
		return err
	}
	img := preview.Render(preview.Options{
		Hues: c.Hues, Sats: c.Sats, Matrix: m, Strength: c.Strength,
	}, c.Cell)
	if err = cvdsim.Save(img, c.Output); err != nil {
		return fmt.Errorf("could not save preview %q: %w", c.Output, err)
	}
	slog.Info("preview written", "deficiency", c.Deficiency, "size", img.Bounds().Max, "output", c.Output)
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ds *matrices.Dataset) error {
	for _, d := range ds.Deficiencies() {
		algos := ds.AlgorithmsFor(d)
		names := make([]string, len(algos))
		for i, a := range algos {
			names[i] = a.String()
		}
		fmt.Printf("%-14s %s\n", d, strings.Join(names, ", "))
	}
	return nil
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(cvdsim.Version)
	return nil
}

var cli struct {
	Image   ImageCmd   `cmd:"" help:"Simulate a color vision deficiency on an image file"`
	Preview PreviewCmd `cmd:"" help:"Render the simulated hue/saturation swatch grid"`
	List    ListCmd    `cmd:"" help:"List deficiency types and their algorithms"`
	Version VersionCmd `cmd:"" help:"Print the version"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("cvdsim"),
		kong.Description("Simulate color vision deficiencies on images."),
		kong.UsageOnError(),
	)
	err := kctx.Run(matrices.New())
	kctx.FatalIfErrorf(err)
}
