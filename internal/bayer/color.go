package bayer

import (
	"fmt"
	"sort"
	"strings"
)

// ColorSpec holds the per-channel intensities of an RGGB Bayer frame.
// Each value is a 10-bit sample in [0, 1023]. Gr and Gb are kept
// separate because the sensor exposes separate G1/G2 test-pattern
// registers, but every named color sets them equal.
type ColorSpec struct {
	R  uint16
	Gr uint16
	Gb uint16
	B  uint16
}

// MaxSample is the largest value a 10-bit sample can carry.
const MaxSample = 1023

// midScale is the value used for grey/gray. The sensor's test-pattern
// registers treat 512 as half scale.
const midScale = 512

var colorTable = map[string]ColorSpec{
	"red":     {R: MaxSample},
	"green":   {Gr: MaxSample, Gb: MaxSample},
	"blue":    {B: MaxSample},
	"white":   {R: MaxSample, Gr: MaxSample, Gb: MaxSample, B: MaxSample},
	"black":   {},
	"yellow":  {R: MaxSample, Gr: MaxSample, Gb: MaxSample},
	"magenta": {R: MaxSample, B: MaxSample},
	"grey":    {R: midScale, Gr: midScale, Gb: midScale, B: midScale},
	"gray":    {R: midScale, Gr: midScale, Gb: midScale, B: midScale},
}

// UnknownColorError reports a color name outside the supported set.
type UnknownColorError struct {
	Name string
}

func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("unknown color: %q (available: %s)", e.Name, strings.Join(ColorNames(), ", "))
}

// ColorNames returns the supported color names in sorted order.
func ColorNames() []string {
	names := make([]string, 0, len(colorTable))
	for name := range colorTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveColor maps a color name to its channel intensities. Matching
// is case-insensitive and exact; there is no fuzzy fallback.
func ResolveColor(name string) (ColorSpec, error) {
	spec, ok := colorTable[strings.ToLower(name)]
	if !ok {
		return ColorSpec{}, &UnknownColorError{Name: name}
	}
	return spec, nil
}

// FromRGB builds a ColorSpec from raw 10-bit R, G, B values, using the
// same green value for both green sites.
func FromRGB(r, g, b uint16) (ColorSpec, error) {
	for _, v := range [...]struct {
		name string
		val  uint16
	}{{"R", r}, {"G", g}, {"B", b}} {
		if v.val > MaxSample {
			return ColorSpec{}, fmt.Errorf("%s value %d out of 10-bit range [0, %d]", v.name, v.val, MaxSample)
		}
	}
	return ColorSpec{R: r, Gr: g, Gb: g, B: b}, nil
}
