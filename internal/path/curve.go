package path

import "github.com/tinyvector/shapegen/internal/fixed"

// MaxLevels caps the recursive/stack-based Bezier subdivision depth.
const MaxLevels = 12

// quadTask and cubicTask hold one pending subdivision task each. Rather
// than recursing (which would need a real call stack to cap at MaxLevels),
// subdivision uses an explicit slice as its stack.
type quadTask struct {
	v0, v1, v2 Point
	level      int
}

type cubicTask struct {
	v0, v1, v2, v3 Point
	level          int
}

// quadFlatError computes the quadratic flatness error: ||v0-2v1+v2||/4.
func quadFlatError(v0, v1, v2 Point) fixed.F16 {
	ex := v0.X - 2*v1.X + v2.X
	ey := v0.Y - 2*v1.Y + v2.Y
	return fixed.VLen(ex, ey) / 4
}

// cubicFlatError computes the cubic flatness error:
// u = 2(v1-v0) + (v1-v3), v = 2(v2-v3) + (v2-v0), error = max(|u|,|v|)/4.
func cubicFlatError(v0, v1, v2, v3 Point) fixed.F16 {
	u := Point{
		X: 2*(v1.X-v0.X) + (v1.X - v3.X),
		Y: 2*(v1.Y-v0.Y) + (v1.Y - v3.Y),
	}
	v := Point{
		X: 2*(v2.X-v3.X) + (v2.X - v0.X),
		Y: 2*(v2.Y-v3.Y) + (v2.Y - v0.Y),
	}
	lu := fixed.VLen(u.X, u.Y)
	lv := fixed.VLen(v.X, v.Y)
	if lu > lv {
		return lu / 4
	}
	return lv / 4
}

func midpoint(a, b Point) Point { return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2} }

// FlattenQuadratic appends a recursively-subdivided quadratic Bezier
// (v0 is the current point, v1 the control point, v2 the endpoint) to the
// buffer, emitting line segments whose chord error is within tolerance.
// A curve that cannot reach tolerance within MaxLevels subdivisions is
// silently truncated at its current flatness.
func (b *Buffer) FlattenQuadratic(v1, v2 Point, tolerance fixed.F16) bool {
	if !b.HasCurrentPoint() {
		return false
	}
	v0 := b.CurrentPoint()
	stack := []quadTask{{v0, v1, v2, 0}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.level >= MaxLevels || quadFlatError(t.v0, t.v1, t.v2) <= tolerance {
			b.appendPoint(t.v2)
			continue
		}
		v01 := midpoint(t.v0, t.v1)
		v12 := midpoint(t.v1, t.v2)
		vmid := midpoint(v01, v12)
		// Push second half first so the first half is processed next
		// (stack is LIFO but we want in-order emission).
		stack = append(stack, quadTask{vmid, v12, t.v2, t.level + 1})
		stack = append(stack, quadTask{t.v0, v01, vmid, t.level + 1})
	}
	return true
}

// FlattenCubic appends a recursively-subdivided cubic Bezier to the buffer.
func (b *Buffer) FlattenCubic(v1, v2, v3 Point, tolerance fixed.F16) bool {
	if !b.HasCurrentPoint() {
		return false
	}
	v0 := b.CurrentPoint()
	stack := []cubicTask{{v0, v1, v2, v3, 0}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.level >= MaxLevels || cubicFlatError(t.v0, t.v1, t.v2, t.v3) <= tolerance {
			b.appendPoint(t.v3)
			continue
		}
		v01 := midpoint(t.v0, t.v1)
		v12 := midpoint(t.v1, t.v2)
		v23 := midpoint(t.v2, t.v3)
		v012 := midpoint(v01, v12)
		v123 := midpoint(v12, v23)
		vmid := midpoint(v012, v123)
		stack = append(stack, cubicTask{vmid, v123, v23, t.v3, t.level + 1})
		stack = append(stack, cubicTask{t.v0, v01, v012, vmid, t.level + 1})
	}
	return true
}
