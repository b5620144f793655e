//go:build linux

package camera

import "testing"

// The slave-select ioctl number is part of the kernel ABI
// (<linux/i2c-dev.h>); a wrong value would silently address the wrong
// device instead of failing.
func TestI2CSlaveIoctlNumber(t *testing.T) {
	if i2cSlave != 0x0703 {
		t.Errorf("i2cSlave = %#04x, want 0x0703", i2cSlave)
	}
}

func TestOpenBusRejectsNonDevice(t *testing.T) {
	if _, err := OpenBus(9999); err == nil {
		t.Error("expected error opening a nonexistent adapter")
	}
}
