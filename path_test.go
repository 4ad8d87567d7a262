package shapegen

import (
	"testing"

	"github.com/tinyvector/shapegen/internal/raster"
	"github.com/tinyvector/shapegen/pixbuf"
)

func countOpaque(pm *pixbuf.Pixmap) int {
	n := 0
	for y := 0; y < pm.Height; y++ {
		for x := 0; x < pm.Width; x++ {
			if a, _, _, _ := pixbuf.Unpack(pm.At(x, y)); a != 0 {
				n++
			}
		}
	}
	return n
}

func TestFillRectangleExactPixelCount(t *testing.T) {
	pm := pixbuf.New(20, 20)
	r := raster.NewSimple(pm)
	r.SetColor(0xffff0000)

	p := NewPath()
	p.Rectangle(Rect{X: 5, Y: 5, W: 10, H: 4})
	p.Fill(r, FillRuleNonZero)

	if got, want := countOpaque(pm), 40; got != want {
		t.Errorf("filled pixel count = %d, want %d", got, want)
	}
}

func TestFillRectangleOutsideIsUntouched(t *testing.T) {
	pm := pixbuf.New(10, 10)
	r := raster.NewSimple(pm)
	r.SetColor(0xff00ff00)

	p := NewPath()
	p.Rectangle(Rect{X: 2, Y: 2, W: 3, H: 3})
	p.Fill(r, FillRuleNonZero)

	if a, _, _, _ := pixbuf.Unpack(pm.At(0, 0)); a != 0 {
		t.Error("corner pixel outside the rectangle should remain transparent")
	}
	if a, _, _, _ := pixbuf.Unpack(pm.At(3, 3)); a == 0 {
		t.Error("interior pixel of the rectangle should be filled")
	}
}

func TestFillTwoOverlappingRectanglesNonZero(t *testing.T) {
	pm := pixbuf.New(20, 20)
	r := raster.NewSimple(pm)
	r.SetColor(0xff0000ff)

	p := NewPath()
	p.Rectangle(Rect{X: 0, Y: 0, W: 10, H: 10})
	p.Rectangle(Rect{X: 5, Y: 5, W: 10, H: 10})
	p.Fill(r, FillRuleNonZero)

	// Union of two 10x10 squares overlapping in a 5x5 corner: 100+100-25.
	if got, want := countOpaque(pm), 175; got != want {
		t.Errorf("union pixel count = %d, want %d", got, want)
	}
}

func TestFillTwoOverlappingRectanglesEvenOdd(t *testing.T) {
	pm := pixbuf.New(20, 20)
	r := raster.NewSimple(pm)
	r.SetColor(0xff0000ff)

	p := NewPath()
	p.Rectangle(Rect{X: 0, Y: 0, W: 10, H: 10})
	p.Rectangle(Rect{X: 5, Y: 5, W: 10, H: 10})
	p.Fill(r, FillRuleEvenOdd)

	// Even-odd punches out the overlap: 175 - 25.
	if got, want := countOpaque(pm), 150; got != want {
		t.Errorf("even-odd pixel count = %d, want %d", got, want)
	}
}

func TestStrokeRectangleProducesHollowOutline(t *testing.T) {
	pm := pixbuf.New(20, 20)
	r := raster.NewSimple(pm)
	r.SetColor(0xffffffff)

	p := NewPath()
	p.Rectangle(Rect{X: 4, Y: 4, W: 10, H: 10})
	style := NewStrokeStyle()
	style.Width = 2
	p.Stroke(r, style)

	if a, _, _, _ := pixbuf.Unpack(pm.At(9, 9)); a != 0 {
		t.Error("stroked rectangle interior should remain unfilled")
	}
	if a, _, _, _ := pixbuf.Unpack(pm.At(4, 9)); a == 0 {
		t.Error("stroked rectangle border should be filled")
	}
}

func TestStrokeWithDashProducesGaps(t *testing.T) {
	pm := pixbuf.New(60, 10)
	r := raster.NewSimple(pm)
	r.SetColor(0xffffffff)

	p := NewPath()
	p.Move(0, 5)
	p.Line(50, 5)
	p.EndFigure()

	style := NewStrokeStyle()
	style.Width = 2
	style.Dash = NewDash(5, 5)
	p.Stroke(r, style)

	onOpaque := countOpaque(pm)
	if onOpaque == 0 {
		t.Fatal("dashed stroke produced no output")
	}

	solid := NewPath()
	solid.Move(0, 5)
	solid.Line(50, 5)
	solid.EndFigure()
	pmSolid := pixbuf.New(60, 10)
	rSolid := raster.NewSimple(pmSolid)
	rSolid.SetColor(0xffffffff)
	solidStyle := NewStrokeStyle()
	solidStyle.Width = 2
	solid.Stroke(rSolid, solidStyle)

	if onOpaque >= countOpaque(pmSolid) {
		t.Error("dashed stroke should cover fewer pixels than a solid stroke of the same line")
	}
}

func TestRoundedRectangleClampsOversizedRadius(t *testing.T) {
	pm := pixbuf.New(20, 20)
	r := raster.NewSimple(pm)
	r.SetColor(0xffff00ff)

	p := NewPath()
	p.RoundedRectangle(Rect{X: 2, Y: 2, W: 10, H: 6}, 100)
	p.Fill(r, FillRuleNonZero)

	if countOpaque(pm) == 0 {
		t.Fatal("oversized corner radius should still produce a filled shape")
	}
}

func TestEllipseFillsApproximateArea(t *testing.T) {
	pm := pixbuf.New(40, 40)
	r := raster.NewSimple(pm)
	r.SetColor(0xff112233)

	p := NewPath()
	p.Ellipse(Point{20, 20}, Point{15, 0}, Point{0, 15})
	p.Fill(r, FillRuleNonZero)

	got := countOpaque(pm)
	want := 3.14159 * 15 * 15
	if float64(got) < want*0.85 || float64(got) > want*1.15 {
		t.Errorf("ellipse fill area = %d, want roughly %.0f", got, want)
	}
}

func TestPolyLineRequiresCurrentPoint(t *testing.T) {
	p := NewPath()
	if p.PolyLine([]Point{{1, 1}, {2, 2}}) {
		t.Error("PolyLine should fail without a current point")
	}
	p.Move(0, 0)
	if !p.PolyLine([]Point{{1, 1}, {2, 2}}) {
		t.Error("PolyLine should succeed with a current point")
	}
}

func TestBezier2RequiresCurrentPoint(t *testing.T) {
	p := NewPath()
	if p.Bezier2(Point{1, 1}, Point{2, 2}) {
		t.Error("Bezier2 should fail without a current point")
	}
}

func TestWithFixedBitsScalesCoordinates(t *testing.T) {
	pm := pixbuf.New(20, 20)
	r := raster.NewSimple(pm)
	r.SetColor(0xffffffff)

	// With 4 fractional bits, integer coordinates are in sixteenths of a
	// pixel: a 160x160 rectangle in raw units covers a 10x10 device area.
	p := NewPath(WithFixedBits(4))
	p.Rectangle(Rect{X: 5 * 16, Y: 5 * 16, W: 10 * 16, H: 4 * 16})
	p.Fill(r, FillRuleNonZero)

	if got, want := countOpaque(pm), 40; got != want {
		t.Errorf("fixed-point rectangle pixel count = %d, want %d", got, want)
	}
}

func TestBeginPathClearsFigures(t *testing.T) {
	pm := pixbuf.New(20, 20)
	r := raster.NewSimple(pm)
	r.SetColor(0xffffffff)

	p := NewPath()
	p.Rectangle(Rect{X: 0, Y: 0, W: 10, H: 10})
	p.BeginPath()
	p.Rectangle(Rect{X: 0, Y: 0, W: 2, H: 2})
	p.Fill(r, FillRuleNonZero)

	if got, want := countOpaque(pm), 4; got != want {
		t.Errorf("pixel count after BeginPath = %d, want %d", got, want)
	}
}
