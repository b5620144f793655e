package camera

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	driverModule = "li_imx477"
	ispService   = "nvargus-daemon"
	// settingsDir holds the ISP override file and the serial/
	// calibration caches. Restarting the ISP daemon makes it re-read
	// the directory.
	settingsDir  = "/var/nvidia/nvcam/settings"
	overrideFile = "camera_overrides.isp"
)

// UnloadDriver removes the camera driver so the sensor's I2C bus can
// be programmed directly. An already-unloaded module is not an error.
func UnloadDriver() error {
	out, err := exec.Command("sudo", "rmmod", driverModule).CombinedOutput()
	if err != nil {
		if strings.Contains(string(out), "not currently loaded") {
			return nil
		}
		return fmt.Errorf("rmmod %s: %v: %s", driverModule, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// ReloadDriver loads the camera driver back after register writes.
func ReloadDriver() error {
	if out, err := exec.Command("sudo", "modprobe", driverModule).CombinedOutput(); err != nil {
		return fmt.Errorf("modprobe %s: %v: %s", driverModule, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// RestartISP restarts the argus daemon so it drops its cached sensor
// state and picks up the current settings directory.
func RestartISP() error {
	if out, err := exec.Command("sudo", "systemctl", "restart", ispService).CombinedOutput(); err != nil {
		return fmt.Errorf("restarting %s: %v: %s", ispService, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// InstallOverrides copies an ISP override file into the settings
// directory. Takes effect on the next RestartISP.
func InstallOverrides(src string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening override %s: %w", src, err)
	}
	defer in.Close()

	dst := filepath.Join(settingsDir, overrideFile)
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying override to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}

// CaptureArgs builds the nvargus_nvraw invocation that captures a
// frame from the programmed sensor to outPrefix.
func CaptureArgs(cfg Config, outPrefix string) []string {
	return []string{
		"nvargus_nvraw",
		"--c", strconv.Itoa(cfg.SensorID),
		"--mode", strconv.Itoa(cfg.Mode),
		"--exp0", fmt.Sprintf("%s,%s", cfg.Exposure, cfg.Gain),
		"--format", cfg.Format,
		"--file", outPrefix,
	}
}

// Capture runs the external capture tool. Its stdout/stderr are passed
// through and its exit status is returned verbatim.
func Capture(ctx context.Context, cfg Config, outPrefix string) error {
	args := CaptureArgs(cfg, outPrefix)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Preview opens a live view of the sensor via gstreamer. Blocks until
// the pipeline exits or ctx is canceled.
func Preview(ctx context.Context, cfg Config) error {
	cmd := exec.CommandContext(ctx, "gst-launch-1.0",
		"nvarguscamerasrc",
		fmt.Sprintf("sensor-id=%d", cfg.SensorID),
		fmt.Sprintf("sensor-mode=%d", cfg.Mode),
		"!", "nv3dsink")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
