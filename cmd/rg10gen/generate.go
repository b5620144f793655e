package main

import (
	"fmt"
	"strconv"

	"github.com/shalex88/argus-rg10-scripts/internal/bayer"
	"github.com/shalex88/argus-rg10-scripts/internal/pipeline"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <R> <G> <B> <width> <height> <output>",
	Short: "Write an RG10 RGGB frame from raw channel values",
	Args:  cobra.ExactArgs(6),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().Bool("rgb8", false, "Treat R, G, B as 8-bit values and scale to 10-bit")
	generateCmd.Flags().String("layout", "packed", "Sample layout (packed, expanded)")
	rootCmd.AddCommand(generateCmd)
}

func parseChannel(s, name string, max int) (uint16, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > max {
		return 0, fmt.Errorf("%s value %q must be an integer in [0, %d]", name, s, max)
	}
	return uint16(v), nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	rgb8, _ := cmd.Flags().GetBool("rgb8")
	layoutStr, _ := cmd.Flags().GetString("layout")

	layout, err := bayer.ParseLayout(layoutStr)
	if err != nil {
		return err
	}

	max := bayer.MaxSample
	if rgb8 {
		max = 255
	}
	r, err := parseChannel(args[0], "R", max)
	if err != nil {
		return err
	}
	g, err := parseChannel(args[1], "G", max)
	if err != nil {
		return err
	}
	b, err := parseChannel(args[2], "B", max)
	if err != nil {
		return err
	}
	if rgb8 {
		r = bayer.Scale8To10(uint8(r))
		g = bayer.Scale8To10(uint8(g))
		b = bayer.Scale8To10(uint8(b))
	}

	width, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("width must be an integer: %q", args[3])
	}
	height, err := strconv.Atoi(args[4])
	if err != nil {
		return fmt.Errorf("height must be an integer: %q", args[4])
	}

	spec, err := bayer.FromRGB(r, g, b)
	if err != nil {
		return err
	}
	result, err := pipeline.RunSpec(spec, pipeline.Options{
		Width:  width,
		Height: height,
		Layout: layout,
	})
	if err != nil {
		return err
	}

	outputPath := args[5]
	if err := pipeline.WriteFile(result.Frame, outputPath); err != nil {
		return err
	}

	fmt.Printf("RG10 RGGB image written to %s\n", outputPath)
	fmt.Printf("Channels: R=%d Gr=%d Gb=%d B=%d, %d bytes\n", spec.R, spec.Gr, spec.Gb, spec.B, result.Frame.Size())
	return nil
}
