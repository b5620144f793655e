//go:build linux

package camera

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// i2cSlave is the I2C_SLAVE ioctl from <linux/i2c-dev.h>; x/sys/unix
// does not export the I2C ioctl numbers.
const i2cSlave = 0x0703

// Bus is an open I2C adapter character device.
type Bus struct {
	file *os.File
	addr uint16 // last selected slave, 0 = none
}

// writeSettle is the pause after each register write; the sensor needs
// a moment between test-pattern register updates.
const writeSettle = 100 * time.Millisecond

// OpenBus opens /dev/i2c-<n>.
func OpenBus(n int) (*Bus, error) {
	path := fmt.Sprintf("/dev/i2c-%d", n)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if info.Mode()&os.ModeCharDevice == 0 {
		return nil, fmt.Errorf("opening %s: not a character device", path)
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &Bus{file: f}, nil
}

// setSlave selects the target device for subsequent writes.
func (b *Bus) setSlave(addr uint16) error {
	if b.addr == addr {
		return nil
	}
	if err := unix.IoctlSetInt(int(b.file.Fd()), i2cSlave, int(addr)); err != nil {
		return fmt.Errorf("selecting slave 0x%02x: %w", addr, err)
	}
	b.addr = addr
	return nil
}

// WriteReg writes one byte to a 16-bit sensor register: the register
// address big-endian, then the value, in a single bus transaction.
func (b *Bus) WriteReg(addr uint16, reg uint16, val byte) error {
	if err := b.setSlave(addr); err != nil {
		return err
	}
	msg := []byte{byte(reg >> 8), byte(reg), val}
	if _, err := b.file.Write(msg); err != nil {
		return fmt.Errorf("i2c write to 0x%02x reg 0x%03x: %w", addr, reg, err)
	}
	time.Sleep(writeSettle)
	return nil
}

// Close releases the adapter.
func (b *Bus) Close() error {
	return b.file.Close()
}
