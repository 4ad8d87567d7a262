package raster

import (
	"github.com/tinyvector/shapegen/internal/feed"
	"github.com/tinyvector/shapegen/pixbuf"
)

// Simple is the aliased renderer: it pulls integer rectangles from a
// feeder and fills them with a single premultiplied color, with no
// blending.
type Simple struct {
	pm    *pixbuf.Pixmap
	color uint32
}

// NewSimple returns a Simple renderer targeting pm.
func NewSimple(pm *pixbuf.Pixmap) *Simple { return &Simple{pm: pm} }

// SetColor sets the fill color as a packed premultiplied BGRA word.
func (s *Simple) SetColor(argb uint32) { s.color = argb }

// QueryYResolution reports the y-subpixel resolution this renderer needs
// from the edge manager: 0 (whole scanlines).
func (s *Simple) QueryYResolution() uint { return 0 }

// Render drains f, filling each rectangle with the current color.
func (s *Simple) Render(f *feed.Feeder) {
	for {
		r, ok := f.NextRect()
		if !ok {
			return
		}
		x0, x1 := r.X, r.X+r.W
		if x0 < 0 {
			x0 = 0
		}
		if x1 > int32(s.pm.Width) {
			x1 = int32(s.pm.Width)
		}
		for y := r.Y; y < r.Y+r.H; y++ {
			if y < 0 || y >= int32(s.pm.Height) {
				continue
			}
			for x := x0; x < x1; x++ {
				s.pm.Set(int(x), int(y), s.color)
			}
		}
	}
}
