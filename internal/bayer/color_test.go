package bayer

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveColorTable(t *testing.T) {
	cases := []struct {
		name string
		want ColorSpec
	}{
		{"red", ColorSpec{R: 1023}},
		{"green", ColorSpec{Gr: 1023, Gb: 1023}},
		{"blue", ColorSpec{B: 1023}},
		{"white", ColorSpec{R: 1023, Gr: 1023, Gb: 1023, B: 1023}},
		{"black", ColorSpec{}},
		{"yellow", ColorSpec{R: 1023, Gr: 1023, Gb: 1023}},
		{"magenta", ColorSpec{R: 1023, B: 1023}},
		{"grey", ColorSpec{R: 512, Gr: 512, Gb: 512, B: 512}},
		{"gray", ColorSpec{R: 512, Gr: 512, Gb: 512, B: 512}},
	}
	for _, tc := range cases {
		got, err := ResolveColor(tc.name)
		if err != nil {
			t.Fatalf("ResolveColor(%q): %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("ResolveColor(%q) = %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestResolveColorCaseInsensitive(t *testing.T) {
	for _, name := range []string{"RED", "Red", "rEd"} {
		got, err := ResolveColor(name)
		if err != nil {
			t.Fatalf("ResolveColor(%q): %v", name, err)
		}
		want, _ := ResolveColor("red")
		if got != want {
			t.Errorf("ResolveColor(%q) = %+v, want %+v", name, got, want)
		}
	}
}

func TestResolveColorUnknown(t *testing.T) {
	_, err := ResolveColor("orange")
	if err == nil {
		t.Fatal("expected error for unknown color")
	}
	var uerr *UnknownColorError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *UnknownColorError, got %T: %v", err, err)
	}
	if uerr.Name != "orange" {
		t.Errorf("error carries name %q, want %q", uerr.Name, "orange")
	}
	if !strings.Contains(err.Error(), "magenta") {
		t.Errorf("error message should list available colors, got: %v", err)
	}
}

func TestColorNamesSorted(t *testing.T) {
	names := ColorNames()
	if len(names) != 9 {
		t.Fatalf("got %d color names, want 9: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestFromRGB(t *testing.T) {
	spec, err := FromRGB(1023, 512, 0)
	if err != nil {
		t.Fatalf("FromRGB: %v", err)
	}
	want := ColorSpec{R: 1023, Gr: 512, Gb: 512, B: 0}
	if spec != want {
		t.Errorf("FromRGB = %+v, want %+v", spec, want)
	}

	if _, err := FromRGB(1024, 0, 0); err == nil {
		t.Error("expected error for R out of 10-bit range")
	}
	if _, err := FromRGB(0, 0, 2000); err == nil {
		t.Error("expected error for B out of 10-bit range")
	}
}
