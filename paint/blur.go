package paint

import "github.com/tinyvector/shapegen/pixbuf"

// BoxBlur applies an in-place separable box blur of the given radius to
// pm, a premultiplied BGRA pixel buffer. Each pass averages 2*radius+1
// samples along one axis, clamping to the buffer's edge rather than
// growing it. A radius <= 0 is a no-op.
func BoxBlur(pm *pixbuf.Pixmap, radius int) {
	if pm == nil || radius <= 0 || pm.Width == 0 || pm.Height == 0 {
		return
	}
	boxBlurHorizontal(pm, radius)
	boxBlurVertical(pm, radius)
}

func boxBlurHorizontal(pm *pixbuf.Pixmap, radius int) {
	w := pm.Width
	row := make([]uint32, w)
	for y := 0; y < pm.Height; y++ {
		for x := 0; x < w; x++ {
			row[x] = pm.At(x, y)
		}
		out := boxBlurLine(row, radius)
		for x := 0; x < w; x++ {
			pm.Set(x, y, out[x])
		}
	}
}

func boxBlurVertical(pm *pixbuf.Pixmap, radius int) {
	h := pm.Height
	col := make([]uint32, h)
	for x := 0; x < pm.Width; x++ {
		for y := 0; y < h; y++ {
			col[y] = pm.At(x, y)
		}
		out := boxBlurLine(col, radius)
		for y := 0; y < h; y++ {
			pm.Set(x, y, out[y])
		}
	}
}

// boxBlurLine averages each of the four premultiplied BGRA channels over
// a window of 2*radius+1 samples centered on each position, clamping
// out-of-range indices to the line's edge.
func boxBlurLine(line []uint32, radius int) []uint32 {
	n := len(line)
	out := make([]uint32, n)
	window := 2*radius + 1
	for i := 0; i < n; i++ {
		var sumA, sumR, sumG, sumB uint32
		for k := -radius; k <= radius; k++ {
			j := i + k
			if j < 0 {
				j = 0
			} else if j >= n {
				j = n - 1
			}
			a, r, g, b := pixbuf.Unpack(line[j])
			sumA += uint32(a)
			sumR += uint32(r)
			sumG += uint32(g)
			sumB += uint32(b)
		}
		a := uint8(sumA / uint32(window))
		r := uint8(sumR / uint32(window))
		g := uint8(sumG / uint32(window))
		b := uint8(sumB / uint32(window))
		out[i] = uint32(b) | uint32(g)<<8 | uint32(r)<<16 | uint32(a)<<24
	}
	return out
}
