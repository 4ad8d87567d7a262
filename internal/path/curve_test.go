package path

import (
	"testing"

	"github.com/tinyvector/shapegen/internal/fixed"
)

func TestFlattenQuadraticProducesPoints(t *testing.T) {
	b := NewBuffer()
	b.Move(pt(0, 0))
	ok := b.FlattenQuadratic(pt(50, 100), pt(100, 0), fixed.FromFloat(0.25))
	if !ok {
		t.Fatal("FlattenQuadratic failed")
	}
	b.EndFigure()
	figs := b.Figures()
	if len(figs) != 1 {
		t.Fatalf("len(figures) = %d, want 1", len(figs))
	}
	if len(figs[0].Points) < 3 {
		t.Errorf("expected subdivision to add intermediate points, got %d", len(figs[0].Points))
	}
	last := figs[0].Points[len(figs[0].Points)-1]
	if last != pt(100, 0) {
		t.Errorf("last point = %v, want endpoint (100,0)", last)
	}
}

func TestFlattenQuadraticDegenerateDrawsMinimal(t *testing.T) {
	b := NewBuffer()
	b.Move(pt(5, 5))
	b.FlattenQuadratic(pt(5, 5), pt(5, 5), fixed.FromFloat(0.25))
	b.EndFigure()
	// All control points equal: flatness error is zero everywhere, so this
	// should terminate immediately with a single degenerate segment, which
	// the figure finalizer drops entirely (single-point figure).
	if figs := b.Figures(); len(figs) != 0 {
		t.Errorf("degenerate curve should draw nothing, got %d figures", len(figs))
	}
}

func TestFlattenQuadraticRequiresCurrentPoint(t *testing.T) {
	b := NewBuffer()
	if b.FlattenQuadratic(pt(1, 1), pt(2, 2), fixed.FromFloat(0.25)) {
		t.Error("FlattenQuadratic should fail without a current point")
	}
}

func TestFlattenCubicEndsAtFinalControlPoint(t *testing.T) {
	b := NewBuffer()
	b.Move(pt(0, 0))
	b.FlattenCubic(pt(0, 50), pt(100, 50), pt(100, 0), fixed.FromFloat(0.1))
	b.EndFigure()
	figs := b.Figures()
	if len(figs) != 1 {
		t.Fatalf("len(figures) = %d, want 1", len(figs))
	}
	last := figs[0].Points[len(figs[0].Points)-1]
	if last != pt(100, 0) {
		t.Errorf("last point = %v, want (100,0)", last)
	}
}

func TestFlattenQuadraticTighterToleranceProducesMorePoints(t *testing.T) {
	coarse := NewBuffer()
	coarse.Move(pt(0, 0))
	coarse.FlattenQuadratic(pt(50, 200), pt(100, 0), fixed.FromFloat(4))
	coarse.EndFigure()

	fine := NewBuffer()
	fine.Move(pt(0, 0))
	fine.FlattenQuadratic(pt(50, 200), pt(100, 0), fixed.FromFloat(0.05))
	fine.EndFigure()

	cf, ff := coarse.Figures(), fine.Figures()
	if len(cf) != 1 || len(ff) != 1 {
		t.Fatalf("expected one figure each, got %d / %d", len(cf), len(ff))
	}
	if len(ff[0].Points) <= len(cf[0].Points) {
		t.Errorf("tighter tolerance should yield more points: coarse=%d fine=%d",
			len(cf[0].Points), len(ff[0].Points))
	}
}

func TestMaxLevelsBoundsRecursion(t *testing.T) {
	// A pathological curve with a zero tolerance must still terminate,
	// bounded by MaxLevels, rather than subdividing indefinitely.
	b := NewBuffer()
	b.Move(pt(0, 0))
	b.FlattenCubic(pt(0, 1000000), pt(1000000, 1000000), pt(1000000, 0), 0)
	b.EndFigure()
	figs := b.Figures()
	if len(figs) != 1 {
		t.Fatalf("len(figures) = %d, want 1", len(figs))
	}
	// At most 2^MaxLevels segments, plus the starting point.
	maxPoints := 1<<MaxLevels + 1
	if len(figs[0].Points) > maxPoints {
		t.Errorf("got %d points, want at most 2^MaxLevels+1=%d", len(figs[0].Points), maxPoints)
	}
}
