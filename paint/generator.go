package paint

import "github.com/tinyvector/shapegen/pixbuf"

// Generator produces a straight-alpha source color for any device pixel
// center (PixelFunc premultiplies it for the renderer). It is the common interface solid colors, gradients, and tiled
// patterns implement so any of them can drive raster.AA.SetGenerator.
type Generator interface {
	ColorAt(x, y float64) RGBA
}

// PixelFunc adapts a Generator into the func(x, y int) uint32 shape
// raster.AA.SetGenerator expects, sampling at pixel centers.
func PixelFunc(g Generator) func(x, y int) uint32 {
	return func(x, y int) uint32 {
		return g.ColorAt(float64(x)+0.5, float64(y)+0.5).Packed()
	}
}

// Solid is a Generator that returns the same color everywhere.
type Solid struct {
	Color RGBA
}

// NewSolid returns a Generator filling with a single flat color.
func NewSolid(c RGBA) *Solid { return &Solid{Color: c} }

// ColorAt implements Generator.
func (s *Solid) ColorAt(x, y float64) RGBA { return s.Color }

// Tiled is a Generator sampling a source pixmap through an affine
// transform from device space into the pixmap's own texel space, tiling
// at the edges and antialiasing with a small supersampled box filter.
type Tiled struct {
	Src     *pixbuf.Pixmap
	Inverse Matrix // device -> texel
}

// NewTiled returns a Generator tiling src, mapped into device space by
// the forward transform m (Inverse is computed from m).
func NewTiled(src *pixbuf.Pixmap, m Matrix) *Tiled {
	return &Tiled{Src: src, Inverse: m.Invert()}
}

// supersample is the per-axis sample count of Tiled's box filter: 3x3 = 9
// samples in total.
const supersample = 3

// ColorAt implements Generator, averaging a small regular grid of samples
// around (x, y) in texel space to soften tile-boundary aliasing.
func (t *Tiled) ColorAt(x, y float64) RGBA {
	if t.Src == nil || t.Src.Width == 0 || t.Src.Height == 0 {
		return Transparent
	}
	var sumR, sumG, sumB, sumA uint32
	n := 0
	for j := 0; j < supersample; j++ {
		for i := 0; i < supersample; i++ {
			ox := (float64(i)+0.5)/float64(supersample) - 0.5
			oy := (float64(j)+0.5)/float64(supersample) - 0.5
			tx, ty := t.Inverse.TransformPoint(x+ox, y+oy)
			c := t.sampleTexel(tx, ty)
			sumR += uint32(c.R)
			sumG += uint32(c.G)
			sumB += uint32(c.B)
			sumA += uint32(c.A)
			n++
		}
	}
	return RGBA{
		R: uint8(sumR / uint32(n)),
		G: uint8(sumG / uint32(n)),
		B: uint8(sumB / uint32(n)),
		A: uint8(sumA / uint32(n)),
	}
}

// sampleTexel reads one texel and unpremultiplies it, since the pixmap
// stores premultiplied alpha but Generator.ColorAt returns straight alpha
// (RGBA.Packed premultiplies again on the way to the renderer).
func (t *Tiled) sampleTexel(tx, ty float64) RGBA {
	w, h := t.Src.Width, t.Src.Height
	ix := wrap(int(floorDiv(tx)), w)
	iy := wrap(int(floorDiv(ty)), h)
	px := t.Src.At(ix, iy)
	a, r, g, b := pixbuf.Unpack(px)
	if a == 0 || a == 255 {
		return RGBA{R: r, G: g, B: b, A: a}
	}
	unmul := func(c uint8) uint8 {
		v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return RGBA{R: unmul(r), G: unmul(g), B: unmul(b), A: a}
}

func floorDiv(x float64) float64 {
	i := float64(int64(x))
	if x < 0 && i != x {
		i--
	}
	return i
}

func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
