package main

import (
	"fmt"
	"os"

	"github.com/shalex88/argus-rg10-scripts/internal/bayer"
	"github.com/spf13/cobra"
)

var identifyCmd = &cobra.Command{
	Use:   "identify <file>",
	Short: "Inspect a headerless RG10 RGGB raw file",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	identifyCmd.Flags().Int("width", 0, "Frame width in pixels")
	identifyCmd.Flags().Int("height", 0, "Frame height in pixels")
	identifyCmd.Flags().String("layout", "packed", "Sample layout (packed, expanded)")
	identifyCmd.MarkFlagRequired("width")
	identifyCmd.MarkFlagRequired("height")
	rootCmd.AddCommand(identifyCmd)
}

// channelStats accumulates min/max per Bayer channel.
type channelStats struct {
	min, max uint16
	seen     bool
}

func (s *channelStats) add(v uint16) {
	if !s.seen || v < s.min {
		s.min = v
	}
	if !s.seen || v > s.max {
		s.max = v
	}
	s.seen = true
}

func (s *channelStats) String() string {
	if !s.seen {
		return "none"
	}
	if s.min == s.max {
		return fmt.Sprintf("%d (uniform)", s.min)
	}
	return fmt.Sprintf("%d..%d", s.min, s.max)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	height, _ := cmd.Flags().GetInt("height")
	layoutStr, _ := cmd.Flags().GetString("layout")

	layout, err := bayer.ParseLayout(layoutStr)
	if err != nil {
		return err
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	g := bayer.Geometry{Width: width, Height: height}
	samples, err := bayer.UnpackLayout(data, g, layout)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	var r, gr, gb, b channelStats
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := samples[y*width+x]
			switch {
			case y%2 == 0 && x%2 == 0:
				r.add(v)
			case y%2 == 0:
				gr.add(v)
			case x%2 == 0:
				gb.add(v)
			default:
				b.add(v)
			}
		}
	}

	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Dimensions: %d x %d\n", width, height)
	fmt.Printf("Layout:     %s\n", layout)
	fmt.Printf("File size:  %d bytes (%d per row)\n", len(data), bayer.RowBytes(width, layout))
	fmt.Printf("R:  %s\n", r.String())
	fmt.Printf("Gr: %s\n", gr.String())
	fmt.Printf("Gb: %s\n", gb.String())
	fmt.Printf("B:  %s\n", b.String())
	return nil
}
