// Package feed implements the shape feeder: an iterator that turns a
// normalized edge list into either aliased integer rectangles or
// antialiased subpixel spans.
package feed

import (
	"github.com/tinyvector/shapegen/internal/edge"
	"github.com/tinyvector/shapegen/internal/fixed"
)

// Rect is an aliased integer rectangle (one scanline-row slice of a
// trapezoid), consumed by the simple renderer.
type Rect struct {
	X, Y, W, H int32
}

// Span is one antialiased subpixel span. YSub is in sub-scanline row
// units (the same units edge.Edge.YTop uses, i.e. quarter-scanlines at
// y-resolution 2). XL and XR are in eighths-of-a-pixel units: enough
// integer bits for practical image widths, 3 fractional bits for 8
// subpixel columns, matching the 4x8 AA-buffer geometry.
type Span struct {
	YSub   int32
	XL, XR int32
}

const xFracBits = 3

func toSubpixelX(x fixed.F16) int32 {
	return int32(x.Mul(fixed.FromInt(1 << xFracBits)).Round())
}

// Feeder walks a Manager's normalized out-list.
type Feeder struct {
	edges []edge.Edge // pairs: edges[2i], edges[2i+1]
	pos   int         // index of the next pair to deliver, in rect mode
}

// New returns a feeder over the edges currently in the manager's out-list.
func New(edges []edge.Edge) *Feeder {
	return &Feeder{edges: edges}
}

// NextRect implements next_rect: aliased rectangles. Each call returns
// the next row of the next trapezoid pair. The "fat rectangle" merge
// optimization (zero-slope trapezoids collapse to one rect spanning all
// their rows) is applied when consecutive rows share identical x bounds
// and zero slope.
func (f *Feeder) NextRect() (Rect, bool) {
	if f.pos+1 >= len(f.edges) {
		return Rect{}, false
	}
	l := f.edges[f.pos]
	r := f.edges[f.pos+1]
	f.pos += 2

	x := int32(l.XTop.Round())
	w := int32(r.XTop.Round()) - x
	y := l.YTop
	h := int32(1)

	if l.DxDy == 0 && r.DxDy == 0 {
		for f.pos+1 < len(f.edges) {
			nl := f.edges[f.pos]
			nr := f.edges[f.pos+1]
			if nl.YTop != y+h || nl.DxDy != 0 || nr.DxDy != 0 ||
				int32(nl.XTop.Round()) != x || int32(nr.XTop.Round())-int32(nl.XTop.Round()) != w {
				break
			}
			h++
			f.pos += 2
		}
	}

	if w <= 0 {
		return f.NextRect()
	}
	return Rect{X: x, Y: y, W: w, H: h}, true
}

// NextSpan implements next_span: one antialiased subpixel span per call,
// delivered in non-decreasing YSub order. Because the edge manager already
// emits the out-list sorted by YTop, and each pair here covers exactly one
// output row, a simple linear walk already satisfies the invariant without
// the "pop one row off the first trapezoid" bookkeeping a variable-height
// trapezoid list would need.
func (f *Feeder) NextSpan() (Span, bool) {
	if f.pos+1 >= len(f.edges) {
		return Span{}, false
	}
	l := f.edges[f.pos]
	r := f.edges[f.pos+1]
	f.pos += 2
	return Span{
		YSub: l.YTop,
		XL:   toSubpixelX(l.XTop),
		XR:   toSubpixelX(r.XTop),
	}, true
}

// Reset rewinds the feeder to the start of its edge list.
func (f *Feeder) Reset() { f.pos = 0 }
