package paint

import "testing"

func TestIdentityTransformIsNoOp(t *testing.T) {
	x, y := Identity().TransformPoint(3, 4)
	if x != 3 || y != 4 {
		t.Errorf("TransformPoint = (%v, %v), want (3, 4)", x, y)
	}
}

func TestTranslateShiftsPoint(t *testing.T) {
	x, y := Translate(10, -5).TransformPoint(1, 1)
	if x != 11 || y != -4 {
		t.Errorf("TransformPoint = (%v, %v), want (11, -4)", x, y)
	}
}

func TestScaleMultipliesCoordinates(t *testing.T) {
	x, y := Scale(2, 3).TransformPoint(5, 5)
	if x != 10 || y != 15 {
		t.Errorf("TransformPoint = (%v, %v), want (10, 15)", x, y)
	}
}

func TestInvertRoundTrips(t *testing.T) {
	m := Translate(4, -2).Multiply(Scale(2, 0.5))
	inv := m.Invert()
	x, y := m.TransformPoint(3, 3)
	x2, y2 := inv.TransformPoint(x, y)
	if diff(x2, 3) > 1e-9 || diff(y2, 3) > 1e-9 {
		t.Errorf("round trip = (%v, %v), want (3, 3)", x2, y2)
	}
}

func TestInvertSingularReturnsIdentity(t *testing.T) {
	m := Matrix{A: 0, B: 0, C: 0, D: 0, E: 0, F: 0}
	if inv := m.Invert(); !inv.IsIdentity() {
		t.Errorf("Invert(singular) = %+v, want identity", inv)
	}
}

func diff(a, b float64) float64 {
	if a < b {
		return b - a
	}
	return a - b
}
