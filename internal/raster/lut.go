// Package raster implements the two renderer variants: a simple aliased
// renderer and a 4x8 supersampled antialiased renderer with a coverage
// look-up table and SWAR population count.
package raster

// LUT is a 33-entry coverage->premultiplied-color table: LUT[n] is the
// premultiplied color scaled by coverage n/32 and by the renderer's
// constant alpha.
type LUT [33]uint32

// BuildLUT constructs the 33-entry table for color (premultiplied ARGB,
// little-endian packed as 0xAARRGGBB) and constantAlpha (0-255).
//
// Each entry computes round(c*n/32) per 8-bit component directly in
// closed form rather than via an iterative shift-and-OR accumulator; this
// avoids accumulating rounding error across entries while preserving the
// boundary values LUT[0]==0 and LUT[32]==premultiply(c).
func BuildLUT(argb uint32, constantAlpha uint8) LUT {
	ca := uint32(constantAlpha)
	a := uint8((argb >> 24) * ca / 255)
	r := uint8((argb >> 16 & 0xFF) * ca / 255)
	g := uint8((argb >> 8 & 0xFF) * ca / 255)
	b := uint8((argb & 0xFF) * ca / 255)

	scale := func(c uint8) [33]uint8 {
		var t [33]uint8
		for n := 0; n <= 32; n++ {
			t[n] = uint8((uint32(c)*uint32(n) + 16) / 32)
		}
		return t
	}
	ta, tr, tg, tb := scale(a), scale(r), scale(g), scale(b)

	var lut LUT
	for n := 0; n <= 32; n++ {
		lut[n] = uint32(tb[n]) | uint32(tg[n])<<8 | uint32(tr[n])<<16 | uint32(ta[n])<<24
	}
	return lut
}

// BuildAlphaOnlyLUT builds a LUT carrying only the constant-alpha channel,
// for use when a paint generator (not a fixed color) drives the fill: the
// generator reads pure coverage x constant-alpha from this table and
// supplies its own color.
func BuildAlphaOnlyLUT(constantAlpha uint8) LUT {
	var lut LUT
	for n := 0; n <= 32; n++ {
		v := uint8((uint32(constantAlpha)*uint32(n) + 16) / 32)
		lut[n] = uint32(v) << 24
	}
	return lut
}

// PopCount4 computes, for a single 32-bit word carrying four bytes of
// packed one-bit-per-subpixel coverage (one byte per output pixel's
// 8-subpixel-column slice), the population count of each byte in parallel,
// via the standard SWAR bit-count reduction. The result's four bytes each
// hold an independent count in [0,8].
func PopCount4(v uint32) uint32 {
	v = (v & 0x55555555) + ((v >> 1) & 0x55555555)
	v = (v & 0x33333333) + ((v >> 2) & 0x33333333)
	v = (v & 0x0f0f0f0f) + ((v >> 4) & 0x0f0f0f0f)
	return v
}

// SumRows4 adds the four per-byte SWAR popcounts of the AA-buffer's four
// subpixel rows for one 4-pixel-wide word group, producing four per-pixel
// byte counts in [0,32] packed into one word.
func SumRows4(row0, row1, row2, row3 uint32) uint32 {
	return PopCount4(row0) + PopCount4(row1) + PopCount4(row2) + PopCount4(row3)
}
