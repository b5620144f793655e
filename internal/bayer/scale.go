package bayer

// scaleLUT maps every 8-bit value to its 10-bit equivalent using
// rounded scaling: (v*1023 + 127) / 255. The endpoints map exactly
// (0x00 -> 0x000, 0xFF -> 0x3FF); midtones land on the rounded value,
// e.g. 0x80 -> 0x202.
var scaleLUT = func() [256]uint16 {
	var lut [256]uint16
	for v := 0; v < 256; v++ {
		lut[v] = uint16((v*MaxSample + 127) / 255)
	}
	return lut
}()

// Scale8To10 converts an 8-bit channel value to the sensor's 10-bit
// range.
func Scale8To10(v uint8) uint16 {
	return scaleLUT[v]
}
