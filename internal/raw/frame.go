package raw

import "github.com/shalex88/argus-rg10-scripts/internal/bayer"

// Frame is the encoded RG10 frame passed from the encoder to an
// output sink. Data holds the serialized samples, row-major,
// headerless. A Frame is built once and never mutated.
type Frame struct {
	Width  int
	Height int
	Layout bayer.Layout
	Data   []byte
}

// Size returns the serialized frame length in bytes.
func (f *Frame) Size() int {
	return len(f.Data)
}
