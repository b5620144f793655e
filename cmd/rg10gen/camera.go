package main

import (
	"fmt"
	"os"

	"github.com/shalex88/argus-rg10-scripts/internal/bayer"
	"github.com/shalex88/argus-rg10-scripts/internal/camera"
	"github.com/spf13/cobra"
)

var cameraCmd = &cobra.Command{
	Use:   "camera <color>",
	Short: "Program the live sensor's test pattern to emit a solid color",
	Args:  cobra.ExactArgs(1),
	RunE:  runCamera,
}

func init() {
	cameraCmd.Flags().Int("bus", 2, "I2C bus number")
	cameraCmd.Flags().Int("sensor-id", 1, "Argus sensor index")
	cameraCmd.Flags().Int("mode", 0, "Sensor capture mode")
	cameraCmd.Flags().String("overrides", "", "ISP override file to install before restarting the daemon")
	cameraCmd.Flags().Bool("no-preview", false, "Skip the live gstreamer preview")
	rootCmd.AddCommand(cameraCmd)
}

func runCamera(cmd *cobra.Command, args []string) error {
	spec, err := bayer.ResolveColor(args[0])
	if err != nil {
		return err
	}

	cfg := camera.DefaultConfig()
	cfg.Bus, _ = cmd.Flags().GetInt("bus")
	cfg.SensorID, _ = cmd.Flags().GetInt("sensor-id")
	cfg.Mode, _ = cmd.Flags().GetInt("mode")
	overrides, _ := cmd.Flags().GetString("overrides")
	noPreview, _ := cmd.Flags().GetBool("no-preview")

	program := camera.CommandFor(spec, cfg)
	for _, line := range program.Describe() {
		fmt.Println(line)
	}

	if err := camera.UnloadDriver(); err != nil {
		return err
	}

	fmt.Printf("Writing registers on I2C bus %d, device address 0x%02x\n", cfg.Bus, cfg.Addr)
	if err := camera.Apply(program); err != nil {
		// Put the system back in a usable state before reporting.
		if rerr := camera.ReloadDriver(); rerr != nil {
			fmt.Fprintln(os.Stderr, rerr)
		}
		if rerr := camera.RestartISP(); rerr != nil {
			fmt.Fprintln(os.Stderr, rerr)
		}
		return err
	}
	fmt.Println("Complete: test pattern registers written")

	if overrides != "" {
		if err := camera.InstallOverrides(overrides); err != nil {
			return err
		}
	}
	if err := camera.ReloadDriver(); err != nil {
		return err
	}
	if err := camera.RestartISP(); err != nil {
		return err
	}

	if noPreview {
		return nil
	}
	return camera.Preview(cmd.Context(), cfg)
}
