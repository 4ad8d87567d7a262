// Package fixed implements the 16.16 fixed-point arithmetic used throughout
// the rasterization pipeline.
package fixed

import "math"

// One is the fixed-point representation of 1.0.
const One = 1 << 16

// Shift is the number of fractional bits in a F16 value.
const Shift = 16

// F16 is a signed 16.16 fixed-point number.
type F16 int32

// FromInt converts an integer to F16.
func FromInt(i int) F16 { return F16(i << Shift) }

// FromFloat converts a float64 to F16, rounding to nearest.
func FromFloat(f float64) F16 { return F16(math.Round(f * One)) }

// FromIntN interprets i as a 16.n fixed-point integer (n in [0,16]) and
// converts it to F16.
func FromIntN(i int32, n int) F16 {
	if n < 0 {
		n = 0
	}
	if n > 16 {
		n = 16
	}
	return F16(i) << uint(16-n)
}

// Float returns the value as a float64.
func (v F16) Float() float64 { return float64(v) / One }

// Int returns the integer part, truncated toward negative infinity.
func (v F16) Int() int { return int(v >> Shift) }

// Round returns the value rounded to the nearest integer.
func (v F16) Round() int { return int((v + (One >> 1)) >> Shift) }

// Frac returns the fractional part in [0, One).
func (v F16) Frac() F16 { return v & (One - 1) }

// Mul multiplies two F16 values using a 64-bit intermediate to avoid
// overflow.
func (v F16) Mul(w F16) F16 { return F16((int64(v) * int64(w)) >> Shift) }

// Div divides v by w using a 64-bit intermediate.
func (v F16) Div(w F16) F16 {
	if w == 0 {
		return 0
	}
	return F16((int64(v) << Shift) / int64(w))
}

// Reciprocal computes One/w as an F16, for use with ReciprocalMul when the
// same divisor is reused across many multiplications (e.g. an edge's slope
// denominator). The reciprocal should be computed once and reused.
func Reciprocal(w F16) F16 {
	if w == 0 {
		return 0
	}
	return F16((int64(One) << Shift) / int64(w))
}

// ReciprocalMul multiplies v by a value produced by Reciprocal.
func (v F16) ReciprocalMul(recip F16) F16 { return F16((int64(v) * int64(recip)) >> Shift) }

// BiasedShiftRight performs a "bias then shift" y-quantization: it adds
// half a unit at the given shift before truncating, so that e.g. shift=0
// rounds to nearest integer scanline and shift>0 rounds to the nearest
// sub-scanline at 2^-shift resolution.
func BiasedShiftRight(v F16, shift uint) int32 {
	half := F16(1) << (Shift - 1 - shift)
	return int32((v + half) >> (Shift - shift))
}

// Abs returns the absolute value.
func (v F16) Abs() F16 {
	if v < 0 {
		return -v
	}
	return v
}

// VLen approximates the Euclidean length of (dx, dy) using a fast,
// L1-biased approximation with documented error bounds of roughly
// [-2.8%, +0.78%].
//
// With hi = max(|dx|,|dy|) and lo = min(|dx|,|dy|), the approximation is
// hi + max(lo/8, lo/2 - hi/8).
func VLen(dx, dy F16) F16 {
	adx, ady := dx.Abs(), dy.Abs()
	hi, lo := adx, ady
	if lo > hi {
		hi, lo = lo, hi
	}
	return hi + max(lo>>3, lo>>1-hi>>3)
}
