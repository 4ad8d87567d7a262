package edge

import (
	"testing"

	"github.com/tinyvector/shapegen/internal/fixed"
)

func p(x, y int) Point { return Point{fixed.FromInt(x), fixed.FromInt(y)} }

func rectEdges(m *Manager, x0, y0, x1, y1 int) {
	m.AttachEdge(p(x0, y0), p(x0, y1))
	m.AttachEdge(p(x0, y1), p(x1, y1))
	m.AttachEdge(p(x1, y1), p(x1, y0))
	m.AttachEdge(p(x1, y0), p(x0, y0))
}

func TestNormalizeRectEvenOdd(t *testing.T) {
	m := NewManager(0)
	rectEdges(m, 10, 20, 40, 60)
	m.NormalizeEdges(RuleEvenOdd)
	out := m.OutEdges()
	if len(out)%2 != 0 {
		t.Fatalf("out-list has odd length %d", len(out))
	}
	// 40 rows (y from 20 to 60), 2 edges per row.
	if len(out) != 80 {
		t.Errorf("len(out) = %d, want 80", len(out))
	}
	for i := 0; i+1 < len(out); i += 2 {
		l, r := out[i], out[i+1]
		if l.Dy <= 0 || r.Dy >= 0 {
			t.Fatalf("pair %d signs wrong: l.Dy=%d r.Dy=%d", i/2, l.Dy, r.Dy)
		}
		if l.XTop > r.XTop {
			t.Errorf("pair %d not left<=right: %v > %v", i/2, l.XTop, r.XTop)
		}
	}
}

func TestNormalizeRectYAscending(t *testing.T) {
	m := NewManager(0)
	rectEdges(m, 0, 0, 5, 5)
	m.NormalizeEdges(RuleEvenOdd)
	out := m.OutEdges()
	for i := 1; i < len(out); i++ {
		if out[i].YTop < out[i-1].YTop {
			t.Fatalf("out-list not y-ascending at %d: %d < %d", i, out[i].YTop, out[i-1].YTop)
		}
	}
}

func TestSetClipListThenClipEdgesIntersect(t *testing.T) {
	m := NewManager(0)
	rectEdges(m, 0, 0, 10, 10)
	m.NormalizeEdges(RuleEvenOdd)
	m.SetClipList()

	m2 := NewManager(0)
	m2.AttachEdge(p(5, 5), p(5, 15))
	m2.AttachEdge(p(5, 15), p(15, 15))
	m2.AttachEdge(p(15, 15), p(15, 5))
	m2.AttachEdge(p(15, 5), p(5, 5))
	m2.NormalizeEdges(RuleEvenOdd)

	// Merge: copy m2's normalized rows as "out", then intersect with m's clip.
	m.out = m2.out
	m.ClipEdges(RuleIntersect)
	out := m.OutEdges()
	if len(out) == 0 {
		t.Fatal("expected nonempty intersection")
	}
	for _, e := range out {
		if e.YTop < 0 || e.YTop > 10 {
			t.Errorf("intersection row %d outside overlap region [0,10]", e.YTop)
		}
	}
}

func TestSaveSwapClipRegionRoundTrip(t *testing.T) {
	m := NewManager(0)
	m.SetDeviceClipRectangle(10, 10, false)
	before := m.OutEdges() // unrelated, just to exercise both lists
	_ = before

	origClip := snapshotClip(m)
	m.SaveClipRegion()
	m.SwapClipRegion()
	m.SwapClipRegion()
	after := snapshotClip(m)

	if len(origClip) != len(after) {
		t.Fatalf("clip length changed: %d vs %d", len(origClip), len(after))
	}
	for i := range origClip {
		if origClip[i] != after[i] {
			t.Errorf("clip edge %d changed: %+v vs %+v", i, origClip[i], after[i])
		}
	}
}

func snapshotClip(m *Manager) []Edge {
	idxs := m.clip.slice()
	out := make([]Edge, len(idxs))
	for i, idx := range idxs {
		e := *m.clip.pool.Get(idx)
		e.Next = 0
		out[i] = e
	}
	return out
}

func TestReverseEdgesNegatesDy(t *testing.T) {
	m := NewManager(0)
	rectEdges(m, 0, 0, 5, 5)
	m.NormalizeEdges(RuleEvenOdd)
	before := m.OutEdges()
	m.ReverseEdges()
	after := m.OutEdges()
	for i := range before {
		if before[i].Dy != -after[i].Dy {
			t.Errorf("edge %d: Dy not negated, before=%d after=%d", i, before[i].Dy, after[i].Dy)
		}
	}
}

func TestAttachEdgeDropsHorizontal(t *testing.T) {
	m := NewManager(0)
	m.AttachEdge(p(0, 5), p(10, 5))
	if m.in.pool.Len() != 0 {
		t.Errorf("horizontal edge should be dropped, got %d edges", m.in.pool.Len())
	}
}
