package paint

import "math"

// X0Y0 is a plain 2D point, kept free of any other package's Point type
// so paint has no dependency on path or fixed.
type X0Y0 struct{ X, Y float64 }

// LinearGradient transitions colors along the line from Start to End,
// extrapolating beyond the segment according to Spread.
type LinearGradient struct {
	Start, End X0Y0
	Stops      Table
	Spread     Spread

	// Inverse maps device-space coordinates into the gradient's own
	// (Start, End) space, letting a gradient be painted under an affine
	// transform without reshaping its geometry. Defaults to Identity.
	Inverse Matrix
}

// NewLinearGradient returns a linear gradient between two device-space
// points, with no color stops and SpreadPad.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{Start: X0Y0{x0, y0}, End: X0Y0{x1, y1}, Inverse: Identity()}
}

// AddColorStop adds a stop; see Table.AddColorStop.
func (g *LinearGradient) AddColorStop(offset float64, c RGBA) *LinearGradient {
	g.Stops.AddColorStop(offset, c)
	return g
}

// SetTransform maps the gradient's (Start, End) geometry through m before
// painting, so the gradient rotates, scales, or shears along with whatever
// it fills.
func (g *LinearGradient) SetTransform(m Matrix) *LinearGradient {
	g.Inverse = m.Invert()
	return g
}

// ColorAt implements Generator.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	x, y = g.Inverse.TransformPoint(x, y)
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		if g.Stops.ExtendStart == ExtendTransparent {
			return Transparent
		}
		return g.Stops.ColorAt(0, g.Spread)
	}
	px, py := x-g.Start.X, y-g.Start.Y
	t := (px*dx + py*dy) / lenSq
	return g.Stops.ColorAt(t, g.Spread)
}

// RadialGradient transitions colors between two circles: the start circle
// centered at Focus with radius StartRadius, and the end circle centered
// at Center with radius EndRadius. When Focus equals Center and
// StartRadius is 0 this is a simple concentric radial gradient; otherwise
// it is the general two-circle gradient, solved as the largest t for
// which the pixel lies on the circle centered at Focus+t*(Center-Focus)
// with radius StartRadius+t*(EndRadius-StartRadius).
type RadialGradient struct {
	Center, Focus          X0Y0
	StartRadius, EndRadius float64
	Stops                  Table
	Spread                 Spread

	// Inverse maps device-space coordinates into the gradient's own
	// (Center, Focus) space. Defaults to Identity.
	Inverse Matrix
}

// NewRadialGradient returns a radial gradient with focus defaulted to
// center, start radius 0, no color stops, and SpreadPad.
func NewRadialGradient(cx, cy, radius float64) *RadialGradient {
	c := X0Y0{cx, cy}
	return &RadialGradient{Center: c, Focus: c, EndRadius: radius, Inverse: Identity()}
}

// SetFocus offsets the start circle's center from Center, producing a
// spotlight-style asymmetric gradient.
func (g *RadialGradient) SetFocus(fx, fy float64) *RadialGradient {
	g.Focus = X0Y0{fx, fy}
	return g
}

// SetStartRadius sets the radius of the circle centered at Focus,
// enabling the general two-circle gradient named in place of the
// focal-point (StartRadius == 0) special case.
func (g *RadialGradient) SetStartRadius(r float64) *RadialGradient {
	g.StartRadius = r
	return g
}

// AddColorStop adds a stop; see Table.AddColorStop.
func (g *RadialGradient) AddColorStop(offset float64, c RGBA) *RadialGradient {
	g.Stops.AddColorStop(offset, c)
	return g
}

// SetTransform maps the gradient's two circles through m before painting.
func (g *RadialGradient) SetTransform(m Matrix) *RadialGradient {
	g.Inverse = m.Invert()
	return g
}

// ColorAt implements Generator.
func (g *RadialGradient) ColorAt(x, y float64) RGBA {
	x, y = g.Inverse.TransformPoint(x, y)
	t, ok := g.computeT(x, y)
	if !ok {
		// No circle of the family passes through this point (or the two
		// circles coincide), so only extend-end's pad color can fill it.
		if g.Spread == SpreadPad && g.Stops.ExtendEnd == ExtendClamp {
			return g.Stops.ColorAt(1, SpreadPad)
		}
		return Transparent
	}
	return g.Stops.ColorAt(t, g.Spread)
}

// computeT solves for the largest t >= 0 (with StartRadius+t*dr >= 0) such
// that (x, y) lies on the circle centered at Focus+t*(Center-Focus) with
// radius StartRadius+t*(EndRadius-StartRadius), per spec.md's two-circle
// radial gradient definition. ok is false when no such t exists: the two
// circles coincide, the quadratic has no real root, or every root gives a
// negative radius.
func (g *RadialGradient) computeT(x, y float64) (t float64, ok bool) {
	dx := g.Center.X - g.Focus.X
	dy := g.Center.Y - g.Focus.Y
	dr := g.EndRadius - g.StartRadius

	px := x - g.Focus.X
	py := y - g.Focus.Y

	a := dx*dx + dy*dy - dr*dr
	b := px*dx + py*dy + g.StartRadius*dr
	c := px*px + py*py - g.StartRadius*g.StartRadius

	best := 0.0
	found := false
	consider := func(candidate float64) {
		if g.StartRadius+candidate*dr < 0 {
			return
		}
		if !found || candidate > best {
			best, found = candidate, true
		}
	}

	if math.Abs(a) < 1e-12 {
		if b == 0 {
			return 0, false
		}
		consider(c / (2 * b))
	} else {
		disc := b*b - a*c
		if disc < 0 {
			return 0, false
		}
		sq := math.Sqrt(disc)
		consider((b + sq) / a)
		consider((b - sq) / a)
	}
	return best, found
}

// ConicGradient sweeps colors angularly around Center, from StartAngle
// to EndAngle (radians).
type ConicGradient struct {
	Center               X0Y0
	StartAngle, EndAngle float64
	Stops                Table
	Spread               Spread

	// Inverse maps device-space coordinates into the gradient's own
	// Center-relative space. Defaults to Identity.
	Inverse Matrix
}

// NewConicGradient returns a full-turn conic gradient starting at
// startAngle, with no color stops and SpreadPad.
func NewConicGradient(cx, cy, startAngle float64) *ConicGradient {
	return &ConicGradient{
		Center:     X0Y0{cx, cy},
		StartAngle: startAngle,
		EndAngle:   startAngle + 2*math.Pi,
		Inverse:    Identity(),
	}
}

// AddColorStop adds a stop; see Table.AddColorStop.
func (g *ConicGradient) AddColorStop(offset float64, c RGBA) *ConicGradient {
	g.Stops.AddColorStop(offset, c)
	return g
}

// SetTransform maps the gradient's angular sweep through m before
// painting, analogous to RadialGradient.SetTransform.
func (g *ConicGradient) SetTransform(m Matrix) *ConicGradient {
	g.Inverse = m.Invert()
	return g
}

// ColorAt implements Generator.
func (g *ConicGradient) ColorAt(x, y float64) RGBA {
	x, y = g.Inverse.TransformPoint(x, y)
	dx, dy := x-g.Center.X, y-g.Center.Y
	if dx == 0 && dy == 0 {
		return g.Stops.ColorAt(0, g.Spread)
	}
	angle := math.Atan2(dy, dx)
	sweep := g.EndAngle - g.StartAngle
	if sweep == 0 {
		return g.Stops.ColorAt(0, g.Spread)
	}
	rel := angle - g.StartAngle
	rel = wrapAngle(rel, sweep)
	return g.Stops.ColorAt(rel/sweep, g.Spread)
}

func wrapAngle(angle, sweep float64) float64 {
	const twoPi = 2 * math.Pi
	if sweep > 0 {
		for angle < 0 {
			angle += twoPi
		}
		for angle >= twoPi {
			angle -= twoPi
		}
		return angle
	}
	for angle > 0 {
		angle -= twoPi
	}
	for angle <= -twoPi {
		angle += twoPi
	}
	return angle
}
