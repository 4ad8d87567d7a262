package paint

import (
	"testing"

	"github.com/tinyvector/shapegen/pixbuf"
)

func TestBoxBlurNoOpForZeroRadius(t *testing.T) {
	pm := pixbuf.New(4, 4)
	pm.Set(2, 2, RGBA{R: 255, A: 255}.Packed())
	before := pm.At(2, 2)
	BoxBlur(pm, 0)
	if pm.At(2, 2) != before {
		t.Error("BoxBlur(radius=0) must not modify the pixmap")
	}
}

func TestBoxBlurSpreadsAnIsolatedPixel(t *testing.T) {
	pm := pixbuf.New(9, 9)
	pm.Set(4, 4, RGBA{R: 255, A: 255}.Packed())
	BoxBlur(pm, 2)

	a, _, _, _ := pixbuf.Unpack(pm.At(4, 4))
	if a == 0 {
		t.Fatal("blurred center pixel lost all alpha")
	}
	aNear, _, _, _ := pixbuf.Unpack(pm.At(5, 4))
	if aNear == 0 {
		t.Error("blur should spread coverage to neighboring pixels")
	}
}

func TestBoxBlurPreservesUniformFill(t *testing.T) {
	pm := pixbuf.New(6, 6)
	pm.Clear(RGBA{R: 50, G: 60, B: 70, A: 255}.Packed())
	BoxBlur(pm, 1)
	got := pm.At(3, 3)
	want := RGBA{R: 50, G: 60, B: 70, A: 255}.Packed()
	if got != want {
		t.Errorf("BoxBlur on uniform fill changed interior pixel: got %#x, want %#x", got, want)
	}
}
