package shapegen

// Dash describes a dash pattern applied during stroke expansion. Array
// holds alternating on/off segment lengths in user units; Offset shifts
// the starting phase along the pattern.
type Dash struct {
	Array  []float64
	Offset float64
}

// NewDash returns a Dash with the given on/off segment lengths. Lengths
// that are zero or negative are dropped. An odd-length array is doubled,
// so "on,off,on" becomes "on,off,on,on,off,on", keeping the total pattern
// length well defined regardless of how many segments the caller listed.
func NewDash(lengths ...float64) *Dash {
	filtered := make([]float64, 0, len(lengths))
	for _, l := range lengths {
		if l > 0 {
			filtered = append(filtered, l)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered)%2 != 0 {
		filtered = append(filtered, filtered...)
	}
	return &Dash{Array: filtered}
}

// WithOffset returns a copy of d with Offset set to off.
func (d *Dash) WithOffset(off float64) *Dash {
	if d == nil {
		return nil
	}
	c := d.Clone()
	c.Offset = off
	return c
}

// IsDashed reports whether d describes an actual dash pattern (as opposed
// to a nil or degenerate solid line).
func (d *Dash) IsDashed() bool {
	return d != nil && len(d.Array) > 0
}

// PatternLength returns the sum of one full on/off cycle.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, l := range d.Array {
		total += l
	}
	return total
}

// NormalizedOffset returns Offset reduced modulo the pattern length, always
// in [0, PatternLength()).
func (d *Dash) NormalizedOffset() float64 {
	total := d.PatternLength()
	if total <= 0 {
		return 0
	}
	off := d.Offset
	off -= total * float64(int(off/total))
	if off < 0 {
		off += total
	}
	return off
}

// Scale returns a copy of d with every length (including Offset) multiplied
// by factor, used when a path is stroked under a non-unit transform.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil {
		return nil
	}
	c := d.Clone()
	for i := range c.Array {
		c.Array[i] *= factor
	}
	c.Offset *= factor
	return c
}

// Clone returns a deep copy of d.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	arr := make([]float64, len(d.Array))
	copy(arr, d.Array)
	return &Dash{Array: arr, Offset: d.Offset}
}

// effectiveArray returns the dash array to iterate, or a single-element
// "fully on" array when d has no pattern, so callers can treat dashed and
// solid strokes uniformly.
func (d *Dash) effectiveArray(totalLength float64) []float64 {
	if !d.IsDashed() {
		return []float64{totalLength}
	}
	return d.Array
}
