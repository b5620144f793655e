package bayer

import "testing"

func TestScale8To10Anchors(t *testing.T) {
	cases := []struct {
		in   uint8
		want uint16
	}{
		{0x00, 0x000},
		{0x40, 0x101},
		{0x80, 0x202},
		{0xff, 0x3ff},
	}
	for _, tc := range cases {
		if got := Scale8To10(tc.in); got != tc.want {
			t.Errorf("Scale8To10(0x%02x) = 0x%03x, want 0x%03x", tc.in, got, tc.want)
		}
	}
}

func TestScale8To10Monotonic(t *testing.T) {
	prev := Scale8To10(0)
	for v := 1; v < 256; v++ {
		cur := Scale8To10(uint8(v))
		if cur < prev {
			t.Fatalf("Scale8To10 not monotonic at %d: %d < %d", v, cur, prev)
		}
		if cur > MaxSample {
			t.Fatalf("Scale8To10(%d) = %d exceeds 10-bit range", v, cur)
		}
		prev = cur
	}
}
