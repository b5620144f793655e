package bayer

import "fmt"

// Layout selects how 10-bit samples are serialized.
type Layout int

const (
	// LayoutPacked is the RAW10 wire layout: four consecutive samples
	// share five bytes, bits concatenated most-significant-first, with
	// the final partial group of a row zero-padded to a whole byte.
	LayoutPacked Layout = iota
	// LayoutExpanded stores each sample in two bytes: the low 8 bits
	// followed by a byte carrying the top 2 bits.
	LayoutExpanded
)

// ParseLayout converts a layout name used on the command line.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "packed":
		return LayoutPacked, nil
	case "expanded":
		return LayoutExpanded, nil
	default:
		return 0, fmt.Errorf("unknown layout: %q (available: packed, expanded)", s)
	}
}

func (l Layout) String() string {
	switch l {
	case LayoutPacked:
		return "packed"
	case LayoutExpanded:
		return "expanded"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Geometry is the pixel extent of a frame.
type Geometry struct {
	Width  int
	Height int
}

// InvalidGeometryError reports non-positive frame dimensions.
type InvalidGeometryError struct {
	Width  int
	Height int
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid geometry %dx%d: width and height must be positive", e.Width, e.Height)
}

// Validate checks that both dimensions are positive. Odd dimensions
// are accepted: the Bayer phase is taken from absolute pixel
// coordinates, so a trailing odd column or row simply truncates the
// 2x2 mosaic tile at the frame edge.
func (g Geometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return &InvalidGeometryError{Width: g.Width, Height: g.Height}
	}
	return nil
}

// RowBytes returns the serialized length of one row of width samples.
func RowBytes(width int, layout Layout) int {
	if layout == LayoutExpanded {
		return width * 2
	}
	return (width*10 + 7) / 8
}

// FrameBytes returns the serialized length of a full frame.
func FrameBytes(g Geometry, layout Layout) int {
	return RowBytes(g.Width, layout) * g.Height
}

// channelAt returns the sample value for pixel (x, y) under the RGGB
// mosaic: (even, even) = R, (even, odd) = Gr, (odd, even) = Gb,
// (odd, odd) = B, indexed (row, column).
func channelAt(spec ColorSpec, x, y int) uint16 {
	if y%2 == 0 {
		if x%2 == 0 {
			return spec.R
		}
		return spec.Gr
	}
	if x%2 == 0 {
		return spec.Gb
	}
	return spec.B
}

// Encode serializes a solid-color RGGB frame in the packed RAW10
// layout. It is a pure function: identical inputs produce
// byte-identical output.
func Encode(spec ColorSpec, g Geometry) ([]byte, error) {
	return EncodeLayout(spec, g, LayoutPacked)
}

// EncodeLayout serializes a solid-color RGGB frame in the given
// layout. Every pixel is visited individually so that non-uniform
// patterns can reuse the same packing path.
func EncodeLayout(spec ColorSpec, g Geometry, layout Layout) ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	out := make([]byte, 0, FrameBytes(g, layout))
	for y := 0; y < g.Height; y++ {
		switch layout {
		case LayoutExpanded:
			for x := 0; x < g.Width; x++ {
				v := channelAt(spec, x, y)
				out = append(out, byte(v&0xff), byte(v>>8))
			}
		default:
			// Bit accumulator, flushed a byte at a time so partial
			// trailing groups pad with zero bits on the right.
			var acc uint32
			var nbits uint
			for x := 0; x < g.Width; x++ {
				acc = acc<<10 | uint32(channelAt(spec, x, y))
				nbits += 10
				for nbits >= 8 {
					out = append(out, byte(acc>>(nbits-8)))
					nbits -= 8
				}
			}
			if nbits > 0 {
				out = append(out, byte(acc<<(8-nbits)))
			}
		}
	}
	return out, nil
}

// Unpack recovers the per-pixel sample values from a packed RAW10
// frame. It is the exact inverse of Encode.
func Unpack(data []byte, g Geometry) ([]uint16, error) {
	return UnpackLayout(data, g, LayoutPacked)
}

// UnpackLayout recovers per-pixel sample values from a serialized
// frame, row-major, one uint16 per pixel.
func UnpackLayout(data []byte, g Geometry, layout Layout) ([]uint16, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if want := FrameBytes(g, layout); len(data) != want {
		return nil, fmt.Errorf("frame is %d bytes, want %d for %dx%d %s", len(data), want, g.Width, g.Height, layout)
	}

	samples := make([]uint16, 0, g.Width*g.Height)
	rowBytes := RowBytes(g.Width, layout)
	for y := 0; y < g.Height; y++ {
		row := data[y*rowBytes : (y+1)*rowBytes]
		switch layout {
		case LayoutExpanded:
			for x := 0; x < g.Width; x++ {
				samples = append(samples, uint16(row[2*x])|uint16(row[2*x+1])<<8)
			}
		default:
			var acc uint32
			var nbits uint
			i := 0
			for x := 0; x < g.Width; x++ {
				for nbits < 10 {
					acc = acc<<8 | uint32(row[i])
					i++
					nbits += 8
				}
				samples = append(samples, uint16(acc>>(nbits-10))&MaxSample)
				nbits -= 10
			}
		}
	}
	return samples, nil
}
