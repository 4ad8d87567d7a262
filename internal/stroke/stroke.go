// Package stroke converts a stroked path into a filled outline described by
// closed figures, ready to be fed to the edge manager under the nonzero
// winding rule.
package stroke

import (
	"math"

	"github.com/tinyvector/shapegen/internal/fixed"
	"github.com/tinyvector/shapegen/internal/path"
)

// Cap selects the shape drawn at an open figure's endpoints.
type Cap int

const (
	CapFlat Cap = iota
	CapRound
	CapSquare
)

// Join selects the shape drawn at interior vertices.
type Join int

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// Style holds the resolved stroke parameters for one Expand call. Dash
// holds alternating on/off lengths in the same units as the path's
// coordinates; a nil or empty Dash strokes solid.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
	Dash       []float64
	DashOffset float64
}

const collinearEps = 1e-9

type vec struct{ X, Y float64 }

func (v vec) add(o vec) vec       { return vec{v.X + o.X, v.Y + o.Y} }
func (v vec) sub(o vec) vec       { return vec{v.X - o.X, v.Y - o.Y} }
func (v vec) scale(s float64) vec { return vec{v.X * s, v.Y * s} }
func (v vec) dot(o vec) float64   { return v.X*o.X + v.Y*o.Y }
func (v vec) cross(o vec) float64 { return v.X*o.Y - v.Y*o.X }
func (v vec) len() float64        { return math.Hypot(v.X, v.Y) }

func (v vec) norm() vec {
	l := v.len()
	if l == 0 {
		return vec{}
	}
	return vec{v.X / l, v.Y / l}
}

// normal returns v rotated 90 degrees counter-clockwise.
func (v vec) normal() vec { return vec{-v.Y, v.X} }

func fp(p path.Point) vec      { return vec{p.X.Float(), p.Y.Float()} }
func toPoint(v vec) path.Point { return path.Point{X: fixed.FromFloat(v.X), Y: fixed.FromFloat(v.Y)} }

// segment is one non-degenerate chord of a flattened figure.
type segment struct {
	a, b vec
	t    vec // unit tangent, a -> b
}

func buildSegments(pts []vec) []segment {
	var segs []segment
	for i := 0; i+1 < len(pts); i++ {
		d := pts[i+1].sub(pts[i])
		if d.len() == 0 {
			continue
		}
		segs = append(segs, segment{a: pts[i], b: pts[i+1], t: d.norm()})
	}
	return segs
}

// Expand appends the stroked outline of every figure in src to dst, as one
// or more closed figures meant to be filled with the nonzero winding rule.
func Expand(dst *path.Buffer, src *path.Buffer, style Style) {
	for _, fig := range src.Figures() {
		pts := make([]vec, len(fig.Points))
		for i, p := range fig.Points {
			pts[i] = fp(p)
		}
		if fig.Closed {
			pts = append(pts, pts[0])
		}
		segs := buildSegments(pts)
		if len(segs) == 0 {
			continue
		}

		if style.Width <= 0 {
			expandThin(dst, segs, fig.Closed)
			continue
		}

		half := style.Width / 2
		if len(style.Dash) > 0 {
			// segs for a closed figure already includes the closing chord
			// (see the pts = append(pts, pts[0]) above), so it reads as one
			// open chain from the seam back to itself; dashing it the same
			// way as an open figure is correct and avoids a separate
			// closed-dash code path.
			for _, dsegs := range dashSegments(segs, style.Dash, style.DashOffset) {
				expandOpen(dst, dsegs, half, style)
			}
			continue
		}
		if fig.Closed {
			expandClosed(dst, segs, half, style)
		} else {
			expandOpen(dst, segs, half, style)
		}
	}
}

// expandThin mimics a one-pixel-wide Bresenham-style stroke by falling back
// to a flat-capped, bevel-joined width-1 outline.
func expandThin(dst *path.Buffer, segs []segment, closed bool) {
	style := Style{Width: 1, Cap: CapFlat, Join: JoinBevel, MiterLimit: 1}
	if closed {
		expandClosed(dst, segs, 0.5, style)
	} else {
		expandOpen(dst, segs, 0.5, style)
	}
}

func expandOpen(dst *path.Buffer, segs []segment, half float64, style Style) {
	n := len(segs)
	first, last := segs[0], segs[n-1]
	var outline []vec

	outline = append(outline, startCap(first.a, first.t, half, style.Cap)...)
	for i := 0; i < n; i++ {
		s := segs[i]
		outline = append(outline, s.a.add(s.t.normal().scale(half)))
		outline = append(outline, s.b.add(s.t.normal().scale(half)))
		if i+1 < n {
			next := segs[i+1]
			outline = append(outline, addCorner(s.b, s.t, next.t, half, style, true)...)
		}
	}
	outline = append(outline, endCap(last.b, last.t, half, style.Cap)...)
	for i := n - 1; i >= 0; i-- {
		s := segs[i]
		outline = append(outline, s.b.sub(s.t.normal().scale(half)))
		outline = append(outline, s.a.sub(s.t.normal().scale(half)))
		if i > 0 {
			prev := segs[i-1]
			outline = append(outline, addCorner(s.a, prev.t, s.t, half, style, false)...)
		}
	}
	emitPolygon(dst, outline)
}

// expandClosed emits the stroked ring of a closed figure as two separate
// closed contours (outer offset walked forward, inner offset walked
// backward), which the nonzero winding rule combines into an annulus.
func expandClosed(dst *path.Buffer, segs []segment, half float64, style Style) {
	n := len(segs)
	var outer []vec
	for i := 0; i < n; i++ {
		s := segs[i]
		outer = append(outer, s.a.add(s.t.normal().scale(half)))
		outer = append(outer, s.b.add(s.t.normal().scale(half)))
		next := segs[(i+1)%n]
		outer = append(outer, addCorner(s.b, s.t, next.t, half, style, true)...)
	}
	emitPolygon(dst, outer)

	var inner []vec
	for i := n - 1; i >= 0; i-- {
		s := segs[i]
		inner = append(inner, s.b.sub(s.t.normal().scale(half)))
		inner = append(inner, s.a.sub(s.t.normal().scale(half)))
		prev := segs[(i-1+n)%n]
		inner = append(inner, addCorner(s.a, prev.t, s.t, half, style, false)...)
	}
	emitPolygon(dst, inner)
}

// addCorner returns the extra vertices to insert at a vertex on the
// convex (outer) side of a turn. The concave side gets no extra geometry:
// the two raw offset points already emitted overlap slightly there, and
// the nonzero winding rule absorbs the overlap harmlessly.
func addCorner(p, t1, t2 vec, half float64, style Style, positive bool) []vec {
	sinTheta := t1.cross(t2)
	if math.Abs(sinTheta) < collinearEps {
		return nil
	}
	outer := (sinTheta < 0) == positive
	if !outer {
		return nil
	}
	switch style.Join {
	case JoinRound:
		n1, n2 := t1.normal(), t2.normal()
		if !positive {
			n1, n2 = n1.scale(-1), n2.scale(-1)
		}
		return arcPoints(p, half, n1, n2)
	case JoinMiter:
		cosTheta := t1.dot(t2)
		halfAngle := math.Sqrt(math.Max(0, (1+cosTheta)/2))
		if halfAngle > 1e-9 && 1/halfAngle <= style.MiterLimit {
			n1, n2 := t1.normal().scale(half), t2.normal().scale(half)
			if !positive {
				n1, n2 = n1.scale(-1), n2.scale(-1)
			}
			bis := n1.add(n2).norm()
			return []vec{p.add(bis.scale(half / halfAngle))}
		}
		return nil // miter-limit overflow: fall back to a plain bevel
	default: // JoinBevel
		return nil
	}
}

// arcPoints samples the short way around from n1 to n2 (both unit normals
// scaled by the caller to the desired radius via their own length).
func arcPoints(center vec, radius float64, n1, n2 vec) []vec {
	a1 := math.Atan2(n1.Y, n1.X)
	a2 := math.Atan2(n2.Y, n2.X)
	delta := a2 - a1
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta < -math.Pi {
		delta += 2 * math.Pi
	}
	const steps = 8
	pts := make([]vec, 0, steps-1)
	for i := 1; i < steps; i++ {
		a := a1 + delta*float64(i)/float64(steps)
		pts = append(pts, center.add(vec{math.Cos(a), math.Sin(a)}.scale(radius)))
	}
	return pts
}

func startCap(p, t vec, half float64, cap Cap) []vec {
	n := t.normal().scale(half)
	switch cap {
	case CapRound:
		return arcSemicircle(p, n, half, true)
	case CapSquare:
		ext := t.scale(-half)
		return []vec{p.sub(n).add(ext), p.add(n).add(ext)}
	default: // CapFlat
		return []vec{p.sub(n), p.add(n)}
	}
}

func endCap(p, t vec, half float64, cap Cap) []vec {
	n := t.normal().scale(half)
	switch cap {
	case CapRound:
		return arcSemicircle(p, n, half, false)
	case CapSquare:
		ext := t.scale(half)
		return []vec{p.add(n).add(ext), p.sub(n).add(ext)}
	default: // CapFlat
		return []vec{p.add(n), p.sub(n)}
	}
}

// arcSemicircle samples a pi-radian arc around center, always sweeping
// through decreasing angle: from -n to +n (startAtNegN) or from +n to -n.
// Either way the arc passes through the direction 90 degrees clockwise of
// its starting normal, which is the outward tangent at that endpoint.
func arcSemicircle(center, n vec, radius float64, startAtNegN bool) []vec {
	var a0 float64
	if startAtNegN {
		a0 = math.Atan2(-n.Y, -n.X)
	} else {
		a0 = math.Atan2(n.Y, n.X)
	}
	const steps = 8
	pts := make([]vec, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := a0 - math.Pi*float64(i)/float64(steps)
		pts = append(pts, center.add(vec{math.Cos(a), math.Sin(a)}.scale(radius)))
	}
	return pts
}

func emitPolygon(dst *path.Buffer, pts []vec) {
	if len(pts) < 3 {
		return
	}
	dst.Move(toPoint(pts[0]))
	for _, p := range pts[1:] {
		dst.Line(toPoint(p))
	}
	dst.CloseFigure()
}

// dashSegments splits an open chain of segments into the sub-chains that
// fall within an "on" run of dash, starting dash-pattern phase at offset.
func dashSegments(segs []segment, dash []float64, offset float64) [][]segment {
	total := 0.0
	for _, d := range dash {
		total += d
	}
	if total <= 0 {
		return [][]segment{segs}
	}

	off := math.Mod(offset, total)
	if off < 0 {
		off += total
	}
	idx, on, remain := 0, true, dash[0]
	for off > 0 {
		if off < remain {
			remain -= off
			break
		}
		off -= remain
		idx = (idx + 1) % len(dash)
		remain = dash[idx]
		on = !on
	}

	var result [][]segment
	var current []segment
	for _, s := range segs {
		segLen := s.len()
		a := s.a
		pos := 0.0
		for pos < segLen {
			step := math.Min(remain, segLen-pos)
			b := a.add(s.t.scale(step))
			if on && step > 0 {
				current = append(current, segment{a: a, b: b, t: s.t})
			}
			pos += step
			remain -= step
			a = b
			if remain <= 1e-9 {
				if on && len(current) > 0 {
					result = append(result, current)
					current = nil
				}
				idx = (idx + 1) % len(dash)
				remain = dash[idx]
				on = !on
			}
		}
	}
	if on && len(current) > 0 {
		result = append(result, current)
	}
	return result
}

func (s segment) len() float64 { return s.b.sub(s.a).len() }
