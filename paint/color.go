// Package paint implements the solid, tiled-pattern, and gradient paint
// generators, their shared color-stop table, and a pixel-buffer box blur.
package paint

import "github.com/tinyvector/shapegen/pixbuf"

// RGBA is a straight-alpha (not premultiplied) 8-bit-per-channel color, the
// unit callers add color stops and pattern pixels in.
type RGBA struct {
	R, G, B, A uint8
}

// Transparent is fully transparent black.
var Transparent = RGBA{}

// Packed returns c premultiplied and packed as a little-endian BGRA word,
// matching pixbuf.Pixmap's storage convention.
func (c RGBA) Packed() uint32 {
	return pixbuf.Premultiply(c.A, c.R, c.G, c.B)
}

// lerp8 linearly interpolates two bytes by t in [0,1].
func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func lerpRGBA(c1, c2 RGBA, t float64) RGBA {
	return RGBA{
		R: lerp8(c1.R, c2.R, t),
		G: lerp8(c1.G, c2.G, t),
		B: lerp8(c1.B, c2.B, t),
		A: lerp8(c1.A, c2.A, t),
	}
}
