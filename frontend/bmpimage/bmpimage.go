// Package bmpimage decodes BMP files into pixbuf.Pixmap, the buffer type
// the rasterizer and pattern generators consume. It is a supplied
// frontend, not part of the core rasterizer: callers that already have
// pixels in memory can build a Pixmap directly and skip this package.
package bmpimage

import (
	"fmt"
	"image"
	"io"

	"golang.org/x/image/bmp"

	"github.com/tinyvector/shapegen/pixbuf"
)

// Decode reads a BMP image from r and converts it into a premultiplied
// BGRA Pixmap. Pixels with no alpha channel in the source format (the
// common 24bpp case) are given full opacity.
func Decode(r io.Reader) (*pixbuf.Pixmap, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("bmpimage: decode: %w", err)
	}
	return fromImage(img), nil
}

// fromImage converts any decoded image.Image into a Pixmap, premultiplying
// alpha and packing to the buffer's little-endian BGRA word layout.
func fromImage(img image.Image) *pixbuf.Pixmap {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pm := pixbuf.New(w, h)

	hasAlpha := modelHasAlpha(img)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r16, g16, b16, a16 := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			a := uint8(255)
			if hasAlpha {
				a = uint8(a16 >> 8)
			}
			r := uint8(r16 >> 8)
			g := uint8(g16 >> 8)
			bl := uint8(b16 >> 8)
			pm.Set(x, y, pixbuf.Premultiply(a, r, g, bl))
		}
	}
	return pm
}

// modelHasAlpha reports whether img's color model carries a meaningful
// alpha channel. BMP's common 24bpp and indexed formats decode into Go
// image types with no alpha, in which case RGBA() always reports 0xffff
// and an explicit alpha of 255 should be used instead.
func modelHasAlpha(img image.Image) bool {
	switch img.(type) {
	case *image.NRGBA, *image.RGBA, *image.NRGBA64, *image.RGBA64:
		return true
	default:
		return false
	}
}
