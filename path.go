package shapegen

import (
	"math"

	"github.com/tinyvector/shapegen/internal/edge"
	"github.com/tinyvector/shapegen/internal/feed"
	"github.com/tinyvector/shapegen/internal/fixed"
	"github.com/tinyvector/shapegen/internal/path"
	"github.com/tinyvector/shapegen/internal/stroke"
)

// Point is a public 2-D coordinate. Under the default options it is a
// plain device-pixel integer; WithFixedBits reinterprets it as 16.N
// fixed point.
type Point struct{ X, Y int }

// Rect is an axis-aligned rectangle in public coordinates.
type Rect struct{ X, Y, W, H int }

// Renderer is the interface Path.Fill and Path.Stroke drive: a feeder
// consumer that also reports the y-subpixel resolution it needs from the
// edge manager. *raster.Simple and *raster.AA both implement it.
type Renderer interface {
	QueryYResolution() uint
	Render(f *feed.Feeder)
}

// Path accumulates figures (lines, curves, elliptic arcs) in a single
// growable buffer and fills or strokes them against a Renderer.
type Path struct {
	buf  *path.Buffer
	opts pathOptions
}

// NewPath returns an empty path with one empty current figure.
func NewPath(opts ...PathOption) *Path {
	o := defaultPathOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Path{buf: path.NewBuffer(), opts: o}
}

// BeginPath resets p to an empty path with one empty current figure,
// reusing the underlying storage.
func (p *Path) BeginPath() { p.buf.Reset() }

func (p *Path) toF16(v int) fixed.F16 { return fixed.FromIntN(int32(v), p.opts.fixedBits) }

func (p *Path) toPoint(pt Point) path.Point {
	return path.Point{X: p.toF16(pt.X), Y: p.toF16(pt.Y)}
}

func (p *Path) tolerance() fixed.F16 { return fixed.FromFloat(p.opts.flatness) }

// Move finalizes the current figure and starts a new one anchored at
// (x, y).
func (p *Path) Move(x, y int) { p.buf.Move(p.toPoint(Point{x, y})) }

// Line appends a segment to (x, y); requires a defined current point.
func (p *Path) Line(x, y int) bool { return p.buf.Line(p.toPoint(Point{x, y})) }

// PolyLine appends a run of segments; requires a defined current point.
func (p *Path) PolyLine(pts []Point) bool {
	converted := make([]path.Point, len(pts))
	for i, pt := range pts {
		converted[i] = p.toPoint(pt)
	}
	return p.buf.PolyLine(converted)
}

// CloseFigure finalizes the current figure as closed (a segment from the
// current point back to the figure's first point is implied at fill
// time) and starts a new empty figure.
func (p *Path) CloseFigure() { p.buf.CloseFigure() }

// EndFigure finalizes the current figure as open and starts a new empty
// figure.
func (p *Path) EndFigure() { p.buf.EndFigure() }

// Rectangle appends a clockwise closed figure for r.
func (p *Path) Rectangle(r Rect) {
	p.buf.Move(p.toPoint(Point{r.X, r.Y}))
	p.buf.Line(p.toPoint(Point{r.X + r.W, r.Y}))
	p.buf.Line(p.toPoint(Point{r.X + r.W, r.Y + r.H}))
	p.buf.Line(p.toPoint(Point{r.X, r.Y + r.H}))
	p.buf.CloseFigure()
}

// Ellipse appends a full closed ellipse centered at c, with v1, v2 the
// endpoints of a pair of conjugate diameters.
func (p *Path) Ellipse(c, v1, v2 Point) {
	p.buf.Ellipse(p.toPoint(c), p.toPoint(v1), p.toPoint(v2), p.tolerance())
}

// EllipticArc appends a chord-approximated elliptic arc of an ellipse
// centered at c with conjugate diameter endpoints v1, v2. aStart and
// aSweep are radians of the ellipse parameter; a negative sweep runs from
// v1 toward -v2.
func (p *Path) EllipticArc(c, v1, v2 Point, aStart, aSweep float64) bool {
	return p.buf.FlattenEllipticArc(p.toPoint(c), p.toPoint(v1), p.toPoint(v2), aStart, aSweep, p.tolerance(), true)
}

// EllipticSpline appends a quarter-ellipse from the current point to v2,
// centered at v1: the current point and v2 are the ends of a pair of
// conjugate radii, so the tangents at the two ends meet at
// current point + v2 - v1.
func (p *Path) EllipticSpline(v1, v2 Point) bool {
	if !p.buf.HasCurrentPoint() {
		return false
	}
	cur := p.buf.CurrentPoint()
	center := p.toPoint(v1)
	end := p.toPoint(v2)
	radius1 := path.Point{X: cur.X - center.X, Y: cur.Y - center.Y}
	radius2 := path.Point{X: end.X - center.X, Y: end.Y - center.Y}
	return p.buf.FlattenEllipticArc(center, radius1, radius2, 0, math.Pi/2, p.tolerance(), false)
}

// Bezier2 appends a flattened quadratic Bézier curve from the current
// point through control point v1 to endpoint v2.
func (p *Path) Bezier2(v1, v2 Point) bool {
	return p.buf.FlattenQuadratic(p.toPoint(v1), p.toPoint(v2), p.tolerance())
}

// Bezier3 appends a flattened cubic Bézier curve from the current point
// through control points v1, v2 to endpoint v3.
func (p *Path) Bezier3(v1, v2, v3 Point) bool {
	return p.buf.FlattenCubic(p.toPoint(v1), p.toPoint(v2), p.toPoint(v3), p.tolerance())
}

// RoundedRectangle appends a closed figure for r with its corners rounded
// by a quarter-ellipse of the given radius, one arc generated per corner.
// round is clamped to half the
// shorter side, so an oversized radius degrades to a capsule or ellipse
// instead of producing self-intersecting geometry.
func (p *Path) RoundedRectangle(r Rect, round int) {
	rad := round
	if half := r.W / 2; rad > half {
		rad = half
	}
	if half := r.H / 2; rad > half {
		rad = half
	}
	if rad <= 0 {
		p.Rectangle(r)
		return
	}

	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W, r.Y+r.H

	p.Move(x0+rad, y0)
	p.Line(x1-rad, y0)
	p.quarterArc(Point{x1 - rad, y0 + rad}, Point{x1 - rad, y0}, Point{x1, y0 + rad})
	p.Line(x1, y1-rad)
	p.quarterArc(Point{x1 - rad, y1 - rad}, Point{x1, y1 - rad}, Point{x1 - rad, y1})
	p.Line(x0+rad, y1)
	p.quarterArc(Point{x0 + rad, y1 - rad}, Point{x0 + rad, y1}, Point{x0, y1 - rad})
	p.Line(x0, y0+rad)
	p.quarterArc(Point{x0 + rad, y0 + rad}, Point{x0, y0 + rad}, Point{x0 + rad, y0})
	p.CloseFigure()
}

// quarterArc appends a quarter-ellipse from the current point to v2,
// centered at c, without starting a new figure.
func (p *Path) quarterArc(c, v1, v2 Point) {
	center := p.toPoint(c)
	r1 := p.toPoint(v1)
	r2 := p.toPoint(v2)
	radius1 := path.Point{X: r1.X - center.X, Y: r1.Y - center.Y}
	radius2 := path.Point{X: r2.X - center.X, Y: r2.Y - center.Y}
	p.buf.FlattenEllipticArc(center, radius1, radius2, 0, math.Pi/2, p.tolerance(), false)
}

func edgeRuleFor(rule FillRule) edge.Rule {
	switch rule {
	case FillRuleEvenOdd:
		return edge.RuleEvenOdd
	case FillRuleIntersect:
		return edge.RuleIntersect
	case FillRuleExclude:
		return edge.RuleExclude
	default:
		return edge.RuleWinding
	}
}

func toEdgePoint(pt path.Point) edge.Point { return edge.Point{X: pt.X, Y: pt.Y} }

// fillBuffer attaches every segment of buf's figures to a fresh edge
// manager sized to r's y-subpixel resolution, normalizes under rule, and
// drains the result into r.
func fillBuffer(buf *path.Buffer, r Renderer, rule FillRule) {
	mgr := edge.NewManager(r.QueryYResolution())
	mgr.ResetIn()
	for _, fig := range buf.Figures() {
		pts := fig.Points
		for i := 0; i+1 < len(pts); i++ {
			mgr.AttachEdge(toEdgePoint(pts[i]), toEdgePoint(pts[i+1]))
		}
		if fig.Closed {
			mgr.AttachEdge(toEdgePoint(pts[len(pts)-1]), toEdgePoint(pts[0]))
		}
	}
	mgr.NormalizeEdges(edgeRuleFor(rule))
	f := feed.New(mgr.OutEdges())
	r.Render(f)
}

// Fill rasterizes the path's figures directly into r under rule.
func (p *Path) Fill(r Renderer, rule FillRule) {
	fillBuffer(p.buf, r, rule)
}

func toStrokeCap(c LineCap) stroke.Cap {
	switch c {
	case LineCapRound:
		return stroke.CapRound
	case LineCapSquare:
		return stroke.CapSquare
	default:
		return stroke.CapFlat
	}
}

func toStrokeJoin(j LineJoin) stroke.Join {
	switch j {
	case LineJoinRound:
		return stroke.JoinRound
	case LineJoinBevel:
		return stroke.JoinBevel
	default:
		return stroke.JoinMiter
	}
}

func toStrokeStyle(s StrokeStyle) stroke.Style {
	st := stroke.Style{
		Width:      s.Width,
		Cap:        toStrokeCap(s.Cap),
		Join:       toStrokeJoin(s.Join),
		MiterLimit: s.MiterLimit,
	}
	if s.Dash.IsDashed() {
		st.Dash = s.Dash.Array
		st.DashOffset = s.Dash.NormalizedOffset()
	}
	return st
}

// Stroke expands the path's figures into a filled outline per style and
// rasterizes that outline into r under the nonzero winding rule.
func (p *Path) Stroke(r Renderer, style StrokeStyle) {
	outline := path.NewBuffer()
	stroke.Expand(outline, p.buf, toStrokeStyle(style))
	fillBuffer(outline, r, FillRuleNonZero)
}

// BBox returns the path's bounding box in device pixels, expanded for a
// stroke of the given style if style is non-nil.
func (p *Path) BBox(style *StrokeStyle) (xmin, ymin, xmax, ymax float64) {
	box := p.buf.BBox(0, [4]fixed.F16{})
	pad := fixed.F16(0)
	if style != nil {
		half := fixed.FromFloat(style.Width / 2)
		switch style.Join {
		case LineJoinMiter:
			pad = fixed.FromFloat(math.Sqrt(style.MiterLimit*style.MiterLimit + 1)).Mul(half)
		default:
			pad = fixed.FromFloat(math.Sqrt2).Mul(half)
		}
	}
	return box[0].Float() - pad.Float(), box[1].Float() - pad.Float(),
		box[2].Float() + pad.Float(), box[3].Float() + pad.Float()
}
