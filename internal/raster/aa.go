package raster

import (
	"github.com/tinyvector/shapegen/internal/feed"
	"github.com/tinyvector/shapegen/pixbuf"
)

// BlendOp selects how a flushed, LUT-looked-up source pixel combines with
// the destination pixel.
type BlendOp int

const (
	// BlendSrcOverDst is the default: standard premultiplied-alpha
	// compositing of src over dst.
	BlendSrcOverDst BlendOp = iota
	// BlendAddWithSat adds src and dst per channel, saturating at 255.
	BlendAddWithSat
	// BlendAlphaClear subtracts src's coverage from dst, punching a hole
	// proportional to src's alpha (used to erase through a mask).
	BlendAlphaClear
)

const subCols = 8 // subpixel columns per pixel, 3 fractional bits in feed's x units
const subRows = 4 // subpixel rows per scanline, matches y-resolution 2

// AA is the 4x8 antialiased renderer: it supersamples each scanline at 4
// sub-rows x 8 sub-columns, reduces coverage via SWAR population count, and
// looks up the blended color through a 33-entry LUT.
type AA struct {
	pm            *pixbuf.Pixmap
	width         int // device pixels covered by the AA buffer, rounded up to a multiple of 4
	maxWidth      int // clip: do not touch columns >= maxWidth
	scrollX       int32
	rows          [subRows][]byte // one byte per device pixel column, 8 coverage bits each
	lut           LUT
	constantAlpha uint8
	color         uint32
	blend         BlendOp
	curRow        int32
	haveRow       bool
	generator     func(x, y int) uint32 // optional paint-generator hook, overrides color
}

// NewAA returns an AA renderer targeting pm, sized to pm's width.
func NewAA(pm *pixbuf.Pixmap) *AA {
	w := (pm.Width + 3) &^ 3
	a := &AA{
		pm:            pm,
		width:         w,
		maxWidth:      pm.Width,
		constantAlpha: 255,
		curRow:        -1,
	}
	for i := range a.rows {
		a.rows[i] = make([]byte, w)
	}
	a.rebuildLUT()
	return a
}

// QueryYResolution reports the y-subpixel resolution this renderer needs:
// 2 (four sub-rows per scanline).
func (a *AA) QueryYResolution() uint { return 2 }

// SetColor sets a flat fill color (premultiplied BGRA) and clears any
// paint-generator hook.
func (a *AA) SetColor(argb uint32) {
	a.color = argb
	a.generator = nil
	a.rebuildLUT()
}

// SetGenerator installs a per-pixel paint callback: the LUT carries only
// coverage x constant-alpha, and fn supplies the premultiplied packed
// color at each device pixel coordinate (as paint.PixelFunc produces).
func (a *AA) SetGenerator(fn func(x, y int) uint32) {
	a.generator = fn
	a.lut = BuildAlphaOnlyLUT(a.constantAlpha)
}

// SetConstantAlpha sets the overall opacity multiplier (0-255) applied on
// top of per-pixel coverage.
func (a *AA) SetConstantAlpha(alpha uint8) {
	a.constantAlpha = alpha
	a.rebuildLUT()
}

// SetBlendOperation selects how flushed pixels combine with the
// destination.
func (a *AA) SetBlendOperation(op BlendOp) { a.blend = op }

// SetScrollPosition offsets every span's x coordinates by -x, translating
// device space before rasterizing into the fixed-size AA buffer.
func (a *AA) SetScrollPosition(x int32) { a.scrollX = x }

// SetMaxWidth clips flush output to columns < w.
func (a *AA) SetMaxWidth(w int) {
	if w > a.pm.Width {
		w = a.pm.Width
	}
	a.maxWidth = w
}

func (a *AA) rebuildLUT() {
	if a.generator != nil {
		a.lut = BuildAlphaOnlyLUT(a.constantAlpha)
		return
	}
	a.lut = BuildLUT(a.color, a.constantAlpha)
}

// Render drains f, accumulating subpixel coverage per scanline and flushing
// each completed row into the pixmap.
func (a *AA) Render(f *feed.Feeder) {
	for {
		sp, ok := f.NextSpan()
		if !ok {
			break
		}
		row := sp.YSub >> 2
		sub := sp.YSub & 3
		if a.haveRow && row != a.curRow {
			a.flushRow()
		}
		a.curRow = row
		a.haveRow = true
		a.fillSpan(int(sub), sp.XL-a.scrollX*8, sp.XR-a.scrollX*8)
	}
	if a.haveRow {
		a.flushRow()
	}
}

// fillSpan sets bits [xl,xr) (eighths-of-a-pixel units) in sub-row sub.
func (a *AA) fillSpan(sub int, xl, xr int32) {
	if xr <= xl {
		return
	}
	if xl < 0 {
		xl = 0
	}
	maxX := int32(a.width) * 8
	if xr > maxX {
		xr = maxX
	}
	if xl >= xr {
		return
	}
	buf := a.rows[sub]
	pxl, bl := xl>>3, uint(xl&7)
	pxr, br := xr>>3, uint(xr&7)

	if pxl == pxr {
		buf[pxl] |= (byte(0xFF) >> bl) & (byte(0xFF) << (8 - br))
		return
	}
	buf[pxl] |= byte(0xFF) >> bl
	for x := pxl + 1; x < pxr; x++ {
		buf[x] = 0xFF
	}
	if br > 0 && int(pxr) < len(buf) {
		buf[pxr] |= byte(0xFF) << (8 - br)
	}
}

// flushRow reduces the four sub-row buffers into per-pixel coverage counts,
// looks each up through the LUT, blends into the pixmap, then clears the
// buffers for the next scanline.
func (a *AA) flushRow() {
	y := int(a.curRow)
	r0, r1, r2, r3 := a.rows[0], a.rows[1], a.rows[2], a.rows[3]
	limit := a.maxWidth
	for base := 0; base+4 <= a.width; base += 4 {
		w0 := packWord(r0, base)
		w1 := packWord(r1, base)
		w2 := packWord(r2, base)
		w3 := packWord(r3, base)
		if w0 == 0 && w1 == 0 && w2 == 0 && w3 == 0 {
			continue
		}
		sum := SumRows4(w0, w1, w2, w3)
		for i := 0; i < 4; i++ {
			x := base + i
			if x >= limit {
				continue
			}
			n := uint8(sum >> (8 * i))
			if n == 0 {
				continue
			}
			src := a.lut[n]
			if a.generator != nil {
				src = blendGeneratorAlpha(a.generator(x, y), uint8(src>>24))
			}
			a.blendPixel(x, y, src)
		}
	}
	for i := range a.rows {
		row := a.rows[i]
		for j := range row {
			row[j] = 0
		}
	}
	a.haveRow = false
}

func packWord(row []byte, base int) uint32 {
	return uint32(row[base]) | uint32(row[base+1])<<8 | uint32(row[base+2])<<16 | uint32(row[base+3])<<24
}

// blendGeneratorAlpha scales all four components of a generator-supplied
// premultiplied color by the coverage-derived alpha from the alpha-only LUT.
func blendGeneratorAlpha(argb uint32, covAlpha uint8) uint32 {
	a, r, g, b := pixbuf.Unpack(argb)
	scale := func(c uint8) uint32 { return (uint32(c)*uint32(covAlpha) + 128) / 255 }
	return scale(b) | scale(g)<<8 | scale(r)<<16 | scale(a)<<24
}

func lerp8(x, a uint8) uint8 {
	v := uint32(x) * uint32(a)
	return uint8((v + 128 + (v+128)>>8) >> 8)
}

func (a *AA) blendPixel(x, y int, src uint32) {
	dst := a.pm.At(x, y)
	da, dr, dg, db := pixbuf.Unpack(dst)
	sa, sr, sg, sb := pixbuf.Unpack(src)
	// src and dst are both premultiplied, so the result is packed as is.
	pack := func(a, r, g, b uint8) uint32 {
		return uint32(b) | uint32(g)<<8 | uint32(r)<<16 | uint32(a)<<24
	}

	switch a.blend {
	case BlendAddWithSat:
		a.pm.Set(x, y, pack(
			satAdd(sa, da), satAdd(sr, dr), satAdd(sg, dg), satAdd(sb, db)))
	case BlendAlphaClear:
		inv := 255 - sa
		a.pm.Set(x, y, pack(
			lerp8(da, inv), lerp8(dr, inv), lerp8(dg, inv), lerp8(db, inv)))
	default: // BlendSrcOverDst
		inv := 255 - sa
		a.pm.Set(x, y, pack(
			satAdd(sa, lerp8(da, inv)),
			satAdd(sr, lerp8(dr, inv)),
			satAdd(sg, lerp8(dg, inv)),
			satAdd(sb, lerp8(db, inv))))
	}
}

func satAdd(a, b uint8) uint8 {
	v := uint16(a) + uint16(b)
	if v > 255 {
		return 255
	}
	return uint8(v)
}
