// Package path implements the path-buffer data model, curve flattening, and
// ellipse generation.
package path

import "github.com/tinyvector/shapegen/internal/fixed"

// Point is a single path vertex in 16.16 fixed point.
type Point struct {
	X, Y fixed.F16
}

// Element is one slot of the path buffer: either a point or a figure
// header. Slots are addressed by index into a slice rather than by raw
// pointer, so slice growth (Go's append) never needs to rebase anything.
type Element struct {
	IsHeader bool
	Pt       Point
	Closed   bool
	Prev     int // index of previous figure header; -1 terminates
}

// Buffer is the growable path buffer: points and figure headers in one
// contiguous slice.
type Buffer struct {
	slots   []Element
	curHdr  int // index of current figure header, -1 if none
	firstPt int // index of first point of current figure, -1 if empty
	curPt   int // index of current point, -1 if undefined
}

// NewBuffer returns an empty path buffer with one empty current figure,
// equivalent to begin_path.
func NewBuffer() *Buffer {
	b := &Buffer{curHdr: -1, firstPt: -1, curPt: -1}
	b.openFigure()
	return b
}

// Reset clears the buffer back to begin_path state, reusing storage.
func (b *Buffer) Reset() {
	b.slots = b.slots[:0]
	b.curHdr, b.firstPt, b.curPt = -1, -1, -1
	b.openFigure()
}

func (b *Buffer) openFigure() {
	prev := b.curHdr
	b.curHdr = len(b.slots)
	b.slots = append(b.slots, Element{IsHeader: true, Prev: prev})
	b.firstPt = -1
	b.curPt = -1
}

// HasCurrentPoint reports whether a current point is defined (required by
// Line/PolyLine).
func (b *Buffer) HasCurrentPoint() bool { return b.curPt >= 0 }

// CurrentPoint returns the current point; valid only if HasCurrentPoint.
func (b *Buffer) CurrentPoint() Point { return b.slots[b.curPt].Pt }

// Move finalizes the current figure (dropping it if empty) and starts a
// new one anchored at p, matching move(x, y).
func (b *Buffer) Move(p Point) {
	b.finalizeFigure(false)
	b.openFigure()
	b.appendPoint(p)
}

// Line appends a segment to p; requires a defined current point.
func (b *Buffer) Line(p Point) bool {
	if !b.HasCurrentPoint() {
		return false
	}
	b.appendPoint(p)
	return true
}

// PolyLine appends a run of segments.
func (b *Buffer) PolyLine(pts []Point) bool {
	if !b.HasCurrentPoint() {
		return false
	}
	for _, p := range pts {
		b.appendPoint(p)
	}
	return true
}

func (b *Buffer) appendPoint(p Point) {
	if b.firstPt < 0 {
		b.firstPt = len(b.slots)
	} else if b.curPt >= 0 && b.slots[b.curPt].Pt == p {
		return // coalesce consecutive duplicate points
	}
	b.curPt = len(b.slots)
	b.slots = append(b.slots, Element{Pt: p})
}

// CloseFigure finalizes the current figure as closed and starts a new
// empty one.
func (b *Buffer) CloseFigure() {
	b.finalizeFigure(true)
	b.openFigure()
}

// EndFigure finalizes the current figure as open and starts a new empty
// one.
func (b *Buffer) EndFigure() {
	b.finalizeFigure(false)
	b.openFigure()
}

// finalizeFigure drops single-point (or empty) figures and records the
// closed flag on the figure's header.
func (b *Buffer) finalizeFigure(closed bool) {
	npts := 0
	if b.firstPt >= 0 {
		npts = b.curPt - b.firstPt + 1
	}
	if npts < 2 {
		b.slots = b.slots[:b.curHdr] // drop: truncate back to this figure's header
		return
	}
	b.slots[b.curHdr].Closed = closed
}

// Figure describes one finalized figure's point range for iteration.
type Figure struct {
	Closed bool
	Points []Point
}

// Figures returns all finalized figures (the open trailing empty figure,
// if any, is skipped), walking the slot slice from the start.
func (b *Buffer) Figures() []Figure {
	var figs []Figure
	for i := 0; i < len(b.slots); {
		el := b.slots[i]
		if !el.IsHeader {
			i++
			continue
		}
		j := i + 1
		var pts []Point
		for j < len(b.slots) && !b.slots[j].IsHeader {
			pts = append(pts, b.slots[j].Pt)
			j++
		}
		if len(pts) >= 2 {
			figs = append(figs, Figure{Closed: el.Closed, Points: pts})
		}
		i = j
	}
	return figs
}

// BBoxFlags extend the bounding box computed by BBox.
type BBoxFlags uint8

const (
	// BBoxAccum unions the result with the box passed in.
	BBoxAccum BBoxFlags = 1 << iota
)

// BBox walks all figures accumulating (xmin,ymin,xmax,ymax) in F16.
// Stroke/clip padding is the caller's responsibility (it depends on stroke
// style, not on the path alone).
func (b *Buffer) BBox(flags BBoxFlags, acc [4]fixed.F16) [4]fixed.F16 {
	xmin, ymin := fixed.F16(1<<30), fixed.F16(1<<30)
	xmax, ymax := -fixed.F16(1<<30), -fixed.F16(1<<30)
	any := false
	for _, el := range b.slots {
		if el.IsHeader {
			continue
		}
		any = true
		if el.Pt.X < xmin {
			xmin = el.Pt.X
		}
		if el.Pt.Y < ymin {
			ymin = el.Pt.Y
		}
		if el.Pt.X > xmax {
			xmax = el.Pt.X
		}
		if el.Pt.Y > ymax {
			ymax = el.Pt.Y
		}
	}
	if !any {
		if flags&BBoxAccum != 0 {
			return acc
		}
		return [4]fixed.F16{0, 0, 0, 0}
	}
	if flags&BBoxAccum != 0 {
		if acc[0] < xmin {
			xmin = acc[0]
		}
		if acc[1] < ymin {
			ymin = acc[1]
		}
		if acc[2] > xmax {
			xmax = acc[2]
		}
		if acc[3] > ymax {
			ymax = acc[3]
		}
	}
	return [4]fixed.F16{xmin, ymin, xmax, ymax}
}
