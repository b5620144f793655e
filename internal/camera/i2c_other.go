//go:build !linux

package camera

import "errors"

// Bus is an open I2C adapter character device. I2C character devices
// only exist on Linux; on other platforms every operation fails.
type Bus struct{}

func OpenBus(n int) (*Bus, error) {
	return nil, errors.New("i2c: only supported on linux")
}

func (b *Bus) WriteReg(addr uint16, reg uint16, val byte) error {
	return errors.New("i2c: only supported on linux")
}

func (b *Bus) Close() error { return nil }
