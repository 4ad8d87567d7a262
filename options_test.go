package shapegen

import "testing"

func TestDefaultPathOptions(t *testing.T) {
	o := defaultPathOptions()
	if o.flatness != 0.25 {
		t.Errorf("default flatness = %v, want 0.25", o.flatness)
	}
}

func TestWithFlatness(t *testing.T) {
	o := defaultPathOptions()
	WithFlatness(1.5)(&o)
	if o.flatness != 1.5 {
		t.Errorf("flatness = %v, want 1.5", o.flatness)
	}
}

func TestWithFlatnessIgnoresNonPositive(t *testing.T) {
	o := defaultPathOptions()
	orig := o.flatness
	WithFlatness(0)(&o)
	WithFlatness(-1)(&o)
	if o.flatness != orig {
		t.Errorf("flatness changed to %v on non-positive input, want unchanged %v", o.flatness, orig)
	}
}
