package paint

import "sort"

// Spread selects how a gradient's parameter t is folded back into [0,1]
// once it falls outside the color-stop table's domain.
type Spread int

const (
	SpreadPad Spread = iota
	SpreadRepeat
	SpreadReflect
)

// maxStops bounds the color-stop table at 33 entries, matching the fixed
// capacity of the coverage LUT this module's AA renderer uses.
const maxStops = 33

// ExtendMode controls what SpreadPad does once a parameter falls outside
// [0,1] at one end of the table. ExtendClamp (the zero value) repeats the
// boundary stop's color, matching FLAG_EXTEND_START/FLAG_EXTEND_END set;
// ExtendTransparent leaves that side of the gradient unpainted instead.
type ExtendMode int

const (
	ExtendClamp ExtendMode = iota
	ExtendTransparent
)

// Stop is one color-stop table entry.
type Stop struct {
	Offset float64 // in [0,1]
	Color  RGBA    // premultiplied
}

// Table is a color-stop table: always valid for lookup once non-empty,
// with its first offset clamped to 0 and stops kept non-decreasing.
// ExtendStart/ExtendEnd gate SpreadPad's behavior independently at each
// end; both default to ExtendClamp.
type Table struct {
	stops       []Stop
	ExtendStart ExtendMode
	ExtendEnd   ExtendMode
}

// AddColorStop appends a stop at offset, clamping offset to the previous
// stop's offset if it would otherwise go backwards, and premultiplying c.
// The very first stop inserted with offset > 0 is preceded by an implicit
// (0, c) stop, so the table is always valid for lookup. At most 33 stops
// are kept; further calls are ignored.
func (t *Table) AddColorStop(offset float64, c RGBA) {
	if len(t.stops) >= maxStops {
		return
	}
	pm := premultiply(c)
	if len(t.stops) == 0 {
		if offset > 0 {
			t.stops = append(t.stops, Stop{Offset: 0, Color: pm})
			if len(t.stops) >= maxStops {
				return
			}
		}
		t.stops = append(t.stops, Stop{Offset: clamp01(offset), Color: pm})
		return
	}
	last := t.stops[len(t.stops)-1].Offset
	off := offset
	if off < last {
		off = last
	}
	t.stops = append(t.stops, Stop{Offset: clamp01(off), Color: pm})
}

// Reset clears the table back to empty.
func (t *Table) Reset() { t.stops = t.stops[:0] }

// Len reports the number of stops currently in the table.
func (t *Table) Len() int { return len(t.stops) }

// ColorAt returns the color at parameter t, after folding t into [0,1]
// according to spread and linearly interpolating premultiplied components
// between the bracketing pair of stops.
func (t *Table) ColorAt(param float64, spread Spread) RGBA {
	if len(t.stops) == 0 {
		return Transparent
	}
	if len(t.stops) == 1 {
		return t.stops[0].Color
	}
	if spread == SpreadPad {
		if param < 0 {
			if t.ExtendStart == ExtendTransparent {
				return Transparent
			}
			return t.stops[0].Color
		}
		if param > 1 {
			if t.ExtendEnd == ExtendTransparent {
				return Transparent
			}
			return t.stops[len(t.stops)-1].Color
		}
	}
	x := applySpread(param, spread)

	idx := sort.Search(len(t.stops), func(i int) bool { return t.stops[i].Offset >= x })
	if idx == 0 {
		return t.stops[0].Color
	}
	if idx >= len(t.stops) {
		return t.stops[len(t.stops)-1].Color
	}
	lo, hi := t.stops[idx-1], t.stops[idx]
	if hi.Offset == lo.Offset {
		return lo.Color
	}
	localT := (x - lo.Offset) / (hi.Offset - lo.Offset)
	return lerpRGBA(lo.Color, hi.Color, localT)
}

func applySpread(t float64, spread Spread) float64 {
	switch spread {
	case SpreadRepeat:
		f := t - float64(int(t))
		if f < 0 {
			f++
		}
		return f
	case SpreadReflect:
		a := t
		if a < 0 {
			a = -a
		}
		period := float64(int(a))
		f := a - period
		if int(period)%2 == 1 {
			f = 1 - f
		}
		return f
	default: // SpreadPad
		return clamp01(t)
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func premultiply(c RGBA) RGBA {
	if c.A == 255 {
		return c
	}
	mul := func(v uint8) uint8 {
		return uint8((uint32(v)*uint32(c.A) + 127) / 255)
	}
	return RGBA{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: c.A}
}
