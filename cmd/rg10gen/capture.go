package main

import (
	"fmt"
	"strings"

	"github.com/shalex88/argus-rg10-scripts/internal/camera"
	"github.com/spf13/cobra"
)

var captureCmd = &cobra.Command{
	Use:   "capture <output-prefix>",
	Short: "Capture a frame from the sensor with nvargus_nvraw",
	Args:  cobra.ExactArgs(1),
	RunE:  runCapture,
}

func init() {
	captureCmd.Flags().Int("sensor-id", 1, "Argus sensor index")
	captureCmd.Flags().Int("mode", 0, "Sensor capture mode")
	captureCmd.Flags().String("exposure", "0.012", "Exposure time in seconds")
	captureCmd.Flags().String("gain", "100", "Analog gain")
	captureCmd.Flags().String("format", "raw", "Capture output format (raw, jpeg)")
	rootCmd.AddCommand(captureCmd)
}

func runCapture(cmd *cobra.Command, args []string) error {
	cfg := camera.DefaultConfig()
	cfg.SensorID, _ = cmd.Flags().GetInt("sensor-id")
	cfg.Mode, _ = cmd.Flags().GetInt("mode")
	cfg.Exposure, _ = cmd.Flags().GetString("exposure")
	cfg.Gain, _ = cmd.Flags().GetString("gain")
	cfg.Format, _ = cmd.Flags().GetString("format")

	if cfg.Format != "raw" && cfg.Format != "jpeg" {
		return fmt.Errorf("unknown format: %q (available: raw, jpeg)", cfg.Format)
	}

	fmt.Printf("Running: %s\n", strings.Join(camera.CaptureArgs(cfg, args[0]), " "))
	return camera.Capture(cmd.Context(), cfg, args[0])
}
