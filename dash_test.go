package shapegen

import "testing"

func TestNewDashDropsNonPositive(t *testing.T) {
	d := NewDash(5, -1, 0, 3)
	if len(d.Array) != 2 {
		t.Fatalf("Array = %v, want 2 positive entries", d.Array)
	}
}

func TestNewDashDoublesOddLength(t *testing.T) {
	d := NewDash(4, 2, 4)
	if len(d.Array) != 6 {
		t.Fatalf("Array len = %d, want 6 (doubled)", len(d.Array))
	}
}

func TestNewDashAllNonPositiveIsNil(t *testing.T) {
	if d := NewDash(0, -1, -2); d != nil {
		t.Errorf("NewDash(all non-positive) = %v, want nil", d)
	}
}

func TestPatternLength(t *testing.T) {
	d := NewDash(4, 2)
	if got := d.PatternLength(); got != 6 {
		t.Errorf("PatternLength() = %v, want 6", got)
	}
}

func TestNormalizedOffsetWraps(t *testing.T) {
	d := NewDash(4, 2).WithOffset(-2)
	got := d.NormalizedOffset()
	if got < 0 || got >= d.PatternLength() {
		t.Errorf("NormalizedOffset() = %v, want in [0,%v)", got, d.PatternLength())
	}
}

func TestScaleMultipliesLengthsAndOffset(t *testing.T) {
	d := NewDash(4, 2).WithOffset(1)
	scaled := d.Scale(2)
	if scaled.Array[0] != 8 || scaled.Array[1] != 4 || scaled.Offset != 2 {
		t.Errorf("Scale(2) = %+v, want {[8 4] 2}", scaled)
	}
	if d.Array[0] != 4 {
		t.Error("Scale must not mutate the receiver")
	}
}

func TestIsDashedNilAndEmpty(t *testing.T) {
	var nilDash *Dash
	if nilDash.IsDashed() {
		t.Error("nil Dash should not report dashed")
	}
	if (&Dash{}).IsDashed() {
		t.Error("empty Dash should not report dashed")
	}
}

func TestEffectiveArraySolidFallback(t *testing.T) {
	var nilDash *Dash
	arr := nilDash.effectiveArray(10)
	if len(arr) != 1 || arr[0] != 10 {
		t.Errorf("effectiveArray(nil) = %v, want [10]", arr)
	}
}

func TestCloneIndependence(t *testing.T) {
	d := NewDash(4, 2)
	c := d.Clone()
	c.Array[0] = 99
	if d.Array[0] == 99 {
		t.Error("Clone should deep-copy Array")
	}
}
