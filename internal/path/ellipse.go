package path

import (
	"math"

	"github.com/tinyvector/shapegen/internal/fixed"
)

// KMax bounds the angular-step exponent used by the Minsky ellipse
// generator.
const KMax = 6

// ellipseStep chooses the smallest k in [0, KMax] such that the angular
// increment alpha = 2^-k keeps the chord error below tolerance for a
// circle of (overestimated) radius r. The error of the Minsky rotation at
// step k is dominated by r*alpha^2/8 (2nd order) plus a smaller 4th order
// term; if no k in range satisfies the bound, KMax is used (finest
// available step).
func ellipseStep(r, tolerance fixed.F16) int {
	rf := r.Float()
	tol := tolerance.Float()
	if rf <= 0 {
		return KMax
	}
	for k := 0; k < KMax; k++ {
		alpha := 1.0 / float64(int(1)<<uint(k))
		errEst := rf*(alpha*alpha)/8 + rf*math.Pow(alpha, 4)/128
		if errEst <= tol {
			return k
		}
	}
	return KMax
}

// minskyRotate performs one step of Minsky's circle-drawing recurrence:
// u -= v>>k; v += u>>k. The caller passes Q first and P second (Q is the
// decremented term, P the incremented one), matching the original
// CircleGen(xQ, xP, k)/CircleGen(yQ, yP, k) call order: P steps toward Q
// as the rotation advances, which is what carries a positive sweep from
// v1 toward v2.
func minskyRotate(u, v fixed.F16, k uint) (fixed.F16, fixed.F16) {
	u -= v >> k
	v += u >> k
	return u, v
}

// FlattenEllipticArc appends a chord-approximated elliptic arc to the
// buffer, for an ellipse centered at c with conjugate diameter endpoints
// p, q. aStart and aSweep are in radians of the ellipse parameter; a
// negative sweep flips q and negates the sweep before generation.
func (b *Buffer) FlattenEllipticArc(c, p, q Point, aStart, aSweep float64, tolerance fixed.F16, moveTo bool) bool {
	if aSweep == 0 {
		return true
	}

	// Rotate P, Q by aStart: P' = P*cos(aStart) + Q*sin(aStart),
	// Q' = -P*sin(aStart) + Q*cos(aStart) (standard ellipse parameterization
	// rotation under the conjugate-diameter basis).
	sinA, cosA := math.Sincos(aStart)
	p, q = rotateConjugate(p, q, sinA, cosA)
	if aSweep < 0 {
		q = Point{-q.X, -q.Y}
		aSweep = -aSweep
	}

	// Auxiliary radius overestimate from P, Q, P+Q, P-Q.
	r := fixed.VLen(p.X, p.Y)
	if l := fixed.VLen(q.X, q.Y); l > r {
		r = l
	}
	if l := fixed.VLen(p.X+q.X, p.Y+q.Y); l > r {
		r = l
	}
	if l := fixed.VLen(p.X-q.X, p.Y-q.Y); l > r {
		r = l
	}

	k := ellipseStep(r, tolerance)
	alpha := 1.0 / float64(int(1)<<uint(k))
	count := int(aSweep / alpha)
	if count < 1 {
		count = 1
	}

	// Precondition xQ, yQ by cos(alpha/2) to cancel first-order drift,
	// keeping the generator's radius error bounded across the whole sweep.
	u0 := math.Cos(alpha / 2)
	xP, yP := p.X, p.Y
	xQ, yQ := fixed.FromFloat(q.X.Float()*u0), fixed.FromFloat(q.Y.Float()*u0)

	if moveTo {
		b.Move(Point{c.X + xP, c.Y + yP})
	} else {
		b.appendPoint(Point{c.X + xP, c.Y + yP})
	}

	kk := uint(k)
	for i := 0; i < count; i++ {
		xQ, xP = minskyRotate(xQ, xP, kk)
		yQ, yP = minskyRotate(yQ, yP, kk)
		b.appendPoint(Point{c.X + xP, c.Y + yP})
	}
	return true
}

// rotateConjugate rotates the conjugate-diameter pair (p,q) by the angle
// whose sine/cosine are given.
func rotateConjugate(p, q Point, sinA, cosA float64) (Point, Point) {
	px, py := p.X.Float(), p.Y.Float()
	qx, qy := q.X.Float(), q.Y.Float()
	np := Point{fixed.FromFloat(px*cosA + qx*sinA), fixed.FromFloat(py*cosA + qy*sinA)}
	nq := Point{fixed.FromFloat(-px*sinA + qx*cosA), fixed.FromFloat(-py*sinA + qy*cosA)}
	return np, nq
}

// Ellipse appends a full closed ellipse, centered at c with conjugate
// diameter endpoints p and q, as a closed figure.
func (b *Buffer) Ellipse(c, p, q Point, tolerance fixed.F16) {
	b.FlattenEllipticArc(c, p, q, 0, 2*math.Pi, tolerance, true)
	b.CloseFigure()
}
