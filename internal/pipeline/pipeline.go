package pipeline

import (
	"fmt"
	"os"

	"github.com/shalex88/argus-rg10-scripts/internal/bayer"
	"github.com/shalex88/argus-rg10-scripts/internal/raw"
)

// Options controls a single color → RG10 frame run.
type Options struct {
	Color  string
	Width  int
	Height int
	Layout bayer.Layout
}

// Result holds the output of a pipeline run.
type Result struct {
	Frame *raw.Frame
	Spec  bayer.ColorSpec
}

// Run executes the generation pipeline: resolve the color name, then
// encode the frame. It performs no I/O.
func Run(opts Options) (*Result, error) {
	spec, err := bayer.ResolveColor(opts.Color)
	if err != nil {
		return nil, err
	}
	return RunSpec(spec, opts)
}

// RunSpec encodes a frame from an already-resolved ColorSpec.
func RunSpec(spec bayer.ColorSpec, opts Options) (*Result, error) {
	g := bayer.Geometry{Width: opts.Width, Height: opts.Height}
	data, err := bayer.EncodeLayout(spec, g, opts.Layout)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return &Result{
		Frame: &raw.Frame{Width: opts.Width, Height: opts.Height, Layout: opts.Layout, Data: data},
		Spec:  spec,
	}, nil
}

// WriteFile writes the frame bytes verbatim to path. The file handle
// is closed on every exit path; a close failure after a clean write is
// still reported, since it can mean the data never reached disk.
func WriteFile(frame *raw.Frame, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if _, err := f.Write(frame.Data); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
