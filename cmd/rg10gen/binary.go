package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shalex88/argus-rg10-scripts/internal/bayer"
	"github.com/shalex88/argus-rg10-scripts/internal/pipeline"
	"github.com/spf13/cobra"
)

var binaryCmd = &cobra.Command{
	Use:   "binary <color> <width> <height>",
	Short: "Write a solid-color RG10 RGGB frame to a file",
	Args:  cobra.ExactArgs(3),
	RunE:  runBinary,
}

func init() {
	binaryCmd.Flags().StringP("output", "o", "", "Output file (default <color>.rggb.raw)")
	binaryCmd.Flags().String("layout", "packed", "Sample layout (packed, expanded)")
	rootCmd.AddCommand(binaryCmd)
}

func runBinary(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	layoutStr, _ := cmd.Flags().GetString("layout")

	layout, err := bayer.ParseLayout(layoutStr)
	if err != nil {
		return err
	}

	width, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("width must be an integer: %q", args[1])
	}
	height, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("height must be an integer: %q", args[2])
	}

	result, err := pipeline.Run(pipeline.Options{
		Color:  args[0],
		Width:  width,
		Height: height,
		Layout: layout,
	})
	if err != nil {
		return err
	}

	if outputPath == "" {
		outputPath = strings.ToLower(args[0]) + ".rggb.raw"
	}
	if err := pipeline.WriteFile(result.Frame, outputPath); err != nil {
		return err
	}

	fmt.Printf("RG10 RGGB image written to %s\n", outputPath)
	fmt.Printf("Geometry: %dx%d, layout %s, %d bytes\n", width, height, layout, result.Frame.Size())
	return nil
}
