package path

import (
	"testing"

	"github.com/tinyvector/shapegen/internal/fixed"
)

func pt(x, y int) Point { return Point{fixed.FromInt(x), fixed.FromInt(y)} }

func TestNewBufferEmpty(t *testing.T) {
	b := NewBuffer()
	if b.HasCurrentPoint() {
		t.Error("new buffer should have no current point")
	}
	if figs := b.Figures(); len(figs) != 0 {
		t.Errorf("new buffer should have no figures, got %d", len(figs))
	}
}

func TestMoveLineCloseFigure(t *testing.T) {
	b := NewBuffer()
	b.Move(pt(0, 0))
	b.Line(pt(10, 0))
	b.Line(pt(10, 10))
	b.CloseFigure()

	figs := b.Figures()
	if len(figs) != 1 {
		t.Fatalf("len(figures) = %d, want 1", len(figs))
	}
	if !figs[0].Closed {
		t.Error("figure should be closed")
	}
	if len(figs[0].Points) != 3 {
		t.Errorf("len(points) = %d, want 3", len(figs[0].Points))
	}
}

func TestSinglePointFigureDropped(t *testing.T) {
	b := NewBuffer()
	b.Move(pt(5, 5))
	b.CloseFigure()
	if figs := b.Figures(); len(figs) != 0 {
		t.Errorf("single-point figure should be dropped, got %d figures", len(figs))
	}
}

func TestDuplicateConsecutivePointsCoalesced(t *testing.T) {
	b := NewBuffer()
	b.Move(pt(0, 0))
	b.Line(pt(5, 5))
	b.Line(pt(5, 5))
	b.Line(pt(10, 10))
	b.EndFigure()
	figs := b.Figures()
	if len(figs) != 1 || len(figs[0].Points) != 3 {
		t.Fatalf("got %+v, want one figure of 3 points", figs)
	}
}

func TestLineWithoutCurrentPointFails(t *testing.T) {
	b := NewBuffer()
	if b.Line(pt(1, 1)) {
		t.Error("Line() with no current point should fail")
	}
}

func TestMultipleFigures(t *testing.T) {
	b := NewBuffer()
	b.Move(pt(0, 0))
	b.Line(pt(1, 0))
	b.EndFigure()
	b.Move(pt(5, 5))
	b.Line(pt(6, 5))
	b.CloseFigure()

	figs := b.Figures()
	if len(figs) != 2 {
		t.Fatalf("len(figures) = %d, want 2", len(figs))
	}
	if figs[0].Closed || !figs[1].Closed {
		t.Errorf("unexpected closed flags: %v, %v", figs[0].Closed, figs[1].Closed)
	}
}
