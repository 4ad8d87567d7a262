// Package edge implements edge construction, sorting, clipping and
// trapezoid normalization.
package edge

import "github.com/tinyvector/shapegen/internal/fixed"

// Edge is one directed polygon edge. Dy carries both the subpixel height
// and the winding direction.
type Edge struct {
	YTop int32
	Dy   int32
	XTop fixed.F16
	DxDy fixed.F16
	Next int32 // index into the owning Pool.edges; -1 terminates
}

const nilIdx int32 = -1

// Pool is a bump allocator for Edge values. Go's slice append already
// provides amortized-constant geometric growth, so Pool is a single
// growable slice; Reset truncates it back to empty while retaining the
// underlying array.
type Pool struct {
	edges []Edge
}

// Alloc allocates a new edge slot and returns its index.
func (p *Pool) Alloc() int32 {
	p.edges = append(p.edges, Edge{Next: nilIdx})
	return int32(len(p.edges) - 1)
}

// Get returns a pointer to the edge at index i.
func (p *Pool) Get(i int32) *Edge { return &p.edges[i] }

// Reset discards all allocated edges, retaining backing storage.
func (p *Pool) Reset() { p.edges = p.edges[:0] }

// Len returns the number of allocated edges.
func (p *Pool) Len() int { return len(p.edges) }
