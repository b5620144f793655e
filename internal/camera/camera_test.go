package camera

import (
	"reflect"
	"strings"
	"testing"

	"github.com/shalex88/argus-rg10-scripts/internal/bayer"
)

func TestCommandForRed(t *testing.T) {
	spec := bayer.ColorSpec{R: 1023}
	cmd := CommandFor(spec, DefaultConfig())

	want := []RegisterWrite{
		{Reg: 0x0600, Val: 0x01},
		{Reg: 0x0601, Val: 0x00},
		{Reg: 0x0602, Val: 0xff},
		{Reg: 0x0603, Val: 0x03},
		{Reg: 0x0604, Val: 0x00},
		{Reg: 0x0605, Val: 0x00},
		{Reg: 0x0606, Val: 0x00},
		{Reg: 0x0607, Val: 0x00},
		{Reg: 0x0608, Val: 0x00},
		{Reg: 0x0609, Val: 0x00},
	}
	if !reflect.DeepEqual(cmd.Writes, want) {
		t.Errorf("register program mismatch:\ngot  %+v\nwant %+v", cmd.Writes, want)
	}
}

func TestCommandForGreySplit(t *testing.T) {
	// 512 = 0x200 splits into LSB 0x00, MSB 0x02.
	spec := bayer.ColorSpec{R: 512, Gr: 512, Gb: 512, B: 512}
	cmd := CommandFor(spec, DefaultConfig())
	for i := 2; i+1 < len(cmd.Writes); i += 2 {
		if cmd.Writes[i].Val != 0x00 {
			t.Errorf("LSB write %d = 0x%02x, want 0x00", i, cmd.Writes[i].Val)
		}
		if cmd.Writes[i+1].Val != 0x02 {
			t.Errorf("MSB write %d = 0x%02x, want 0x02", i+1, cmd.Writes[i+1].Val)
		}
	}
}

func TestDescribe(t *testing.T) {
	spec := bayer.ColorSpec{R: 1023, B: 512}
	lines := CommandFor(spec, DefaultConfig()).Describe()
	if len(lines) != 4 {
		t.Fatalf("got %d description lines, want 4 (one per channel)", len(lines))
	}
	if !strings.Contains(lines[0], "value 0x3ff") || !strings.Contains(lines[0], "reg 0x602") {
		t.Errorf("R line malformed: %q", lines[0])
	}
	if !strings.Contains(lines[3], "value 0x200") || !strings.Contains(lines[3], "reg 0x608") {
		t.Errorf("B line malformed: %q", lines[3])
	}
}

func TestCaptureArgs(t *testing.T) {
	cfg := DefaultConfig()
	args := CaptureArgs(cfg, "/tmp/red")
	got := strings.Join(args, " ")
	for _, frag := range []string{
		"nvargus_nvraw",
		"--c 1",
		"--mode 0",
		"--exp0 0.012,100",
		"--format raw",
		"--file /tmp/red",
	} {
		if !strings.Contains(got, frag) {
			t.Errorf("capture args missing %q: %s", frag, got)
		}
	}
}

func TestSplit10(t *testing.T) {
	cases := []struct {
		in       uint16
		lsb, msb byte
	}{
		{0, 0x00, 0x00},
		{255, 0xff, 0x00},
		{256, 0x00, 0x01},
		{512, 0x00, 0x02},
		{1023, 0xff, 0x03},
	}
	for _, tc := range cases {
		lsb, msb := split10(tc.in)
		if lsb != tc.lsb || msb != tc.msb {
			t.Errorf("split10(%d) = (0x%02x, 0x%02x), want (0x%02x, 0x%02x)",
				tc.in, lsb, msb, tc.lsb, tc.msb)
		}
	}
}
