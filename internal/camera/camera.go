// Package camera programs the IMX477 sensor's solid-color test
// pattern over I2C and drives the system glue around it: driver
// module reload, ISP daemon restart, override installation, and the
// external capture/preview tools.
package camera

import (
	"fmt"

	"github.com/shalex88/argus-rg10-scripts/internal/bayer"
)

// Sensor test-pattern register map. Each channel value is 10 bits,
// split across two registers: low 8 bits at the LSB address, top 2
// bits at the following address.
const (
	regTestPatternEnable = 0x0600
	regRedLSB            = 0x0602
	regGreen1LSB         = 0x0604
	regGreen2LSB         = 0x0606
	regBlueLSB           = 0x0608
)

// Config identifies the sensor and the capture parameters handed to
// the external capture tool.
type Config struct {
	Bus      int    // I2C bus number (/dev/i2c-N)
	Addr     uint16 // sensor slave address
	SensorID int    // argus sensor index
	Mode     int    // sensor capture mode
	Exposure string // exposure time in seconds
	Gain     string // analog gain
	Format   string // capture output format: "raw" or "jpeg"
}

// DefaultConfig matches the bench setup this tool was written for.
func DefaultConfig() Config {
	return Config{
		Bus:      2,
		Addr:     0x10,
		SensorID: 1,
		Mode:     0,
		Exposure: "0.012",
		Gain:     "100",
		Format:   "raw",
	}
}

// RegisterWrite is a single byte write to a sensor register.
type RegisterWrite struct {
	Reg uint16
	Val byte
}

// ConfigurationCommand is the full parameter set that reproduces a
// solid color on the live sensor: the ordered register writes plus
// the capture-tool invocation they are meant to feed.
type ConfigurationCommand struct {
	Config Config
	Writes []RegisterWrite
}

// split10 splits a 10-bit value into its low byte and 2-bit high byte.
func split10(v uint16) (lsb, msb byte) {
	return byte(v & 0xff), byte(v >> 8 & 0x03)
}

// channelWrites yields the LSB/MSB register pair for one channel.
func channelWrites(lsbReg uint16, v uint16) []RegisterWrite {
	lsb, msb := split10(v)
	return []RegisterWrite{
		{Reg: lsbReg, Val: lsb},
		{Reg: lsbReg + 1, Val: msb},
	}
}

// CommandFor builds the register program that makes the sensor emit a
// uniform frame of the given color. Pure; no hardware access.
func CommandFor(spec bayer.ColorSpec, cfg Config) *ConfigurationCommand {
	writes := []RegisterWrite{
		{Reg: regTestPatternEnable, Val: 0x01},
		{Reg: regTestPatternEnable + 1, Val: 0x00},
	}
	writes = append(writes, channelWrites(regRedLSB, spec.R)...)
	writes = append(writes, channelWrites(regGreen1LSB, spec.Gr)...)
	writes = append(writes, channelWrites(regGreen2LSB, spec.Gb)...)
	writes = append(writes, channelWrites(regBlueLSB, spec.B)...)
	return &ConfigurationCommand{Config: cfg, Writes: writes}
}

// Describe returns one log line per channel value, showing how the
// 10-bit value maps onto the register pair.
func (c *ConfigurationCommand) Describe() []string {
	var lines []string
	// Writes come in LSB/MSB pairs after the two enable writes.
	for i := 2; i+1 < len(c.Writes); i += 2 {
		lo, hi := c.Writes[i], c.Writes[i+1]
		v := uint16(lo.Val) | uint16(hi.Val&0x03)<<8
		lines = append(lines, fmt.Sprintf(
			"value 0x%03x -> reg 0x%03x[7:0]=0x%02x, reg 0x%03x[1:0]=0x%02x",
			v, lo.Reg, lo.Val, hi.Reg, hi.Val))
	}
	return lines
}

// Apply delivers the register program to the sensor over I2C. The
// camera driver must be unloaded first so the bus is free.
func Apply(cmd *ConfigurationCommand) error {
	bus, err := OpenBus(cmd.Config.Bus)
	if err != nil {
		return err
	}
	defer bus.Close()

	for _, w := range cmd.Writes {
		if err := bus.WriteReg(cmd.Config.Addr, w.Reg, w.Val); err != nil {
			return fmt.Errorf("writing reg 0x%03x: %w", w.Reg, err)
		}
	}
	return nil
}
